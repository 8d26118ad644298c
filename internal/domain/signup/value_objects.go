package signup

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrDomainNotAllowed  = errors.New("email domain is not a partner domain")
	ErrInvalidPINFormat  = errors.New("pin must be 6 digits")
	ErrPINGenerateFailed = errors.New("failed to generate pin")
)

const PINLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email is trimmed and lowercased so it can key the PIN store.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string { return e.value }

func (e Email) Domain() string {
	return e.value[strings.LastIndexByte(e.value, '@')+1:]
}

// DomainPolicy restricts signups to partner company domains. An empty policy allows all.
type DomainPolicy struct {
	allowed map[string]struct{}
}

func NewDomainPolicy(domains []string) DomainPolicy {
	allowed := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(d), "@"))
		if d != "" {
			allowed[d] = struct{}{}
		}
	}
	return DomainPolicy{allowed: allowed}
}

func (p DomainPolicy) Check(e Email) error {
	if len(p.allowed) == 0 {
		return nil
	}
	if _, ok := p.allowed[e.Domain()]; !ok {
		return ErrDomainNotAllowed
	}
	return nil
}

type PIN struct {
	value string
}

func NewPIN(s string) (PIN, error) {
	s = strings.TrimSpace(s)
	if len(s) != PINLength {
		return PIN{}, ErrInvalidPINFormat
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return PIN{}, ErrInvalidPINFormat
		}
	}
	return PIN{value: s}, nil
}

func (p PIN) Value() string { return p.value }

var pinSpace = big.NewInt(1_000_000)

// GeneratePIN draws six uniformly random digits; leading zeros are kept.
func GeneratePIN() (PIN, error) {
	n, err := rand.Int(rand.Reader, pinSpace)
	if err != nil {
		return PIN{}, errors.Join(ErrPINGenerateFailed, err)
	}
	s := n.String()
	return PIN{value: strings.Repeat("0", PINLength-len(s)) + s}, nil
}
