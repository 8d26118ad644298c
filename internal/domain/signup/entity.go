package signup

import (
	"errors"
	"time"
)

// The four verification failures. Verify reports exactly one of them, checked in this order.
var (
	ErrPINNotFound    = errors.New("no pin issued for this email")
	ErrPINAlreadyUsed = errors.New("pin already used")
	ErrPINExpired     = errors.New("pin expired")
	ErrPINMismatch    = errors.New("pin does not match")
)

const DefaultTTL = 15 * time.Minute

// PINRecord is the one active credential for an email. Only the hash of the PIN is held.
type PINRecord struct {
	email     Email
	pinHash   string
	createdAt time.Time
	expiresAt time.Time
	usedAt    *time.Time
}

func NewPINRecord(email Email, pinHash string, now time.Time, ttl time.Duration) *PINRecord {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PINRecord{
		email:     email,
		pinHash:   pinHash,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
}

func (r *PINRecord) Email() Email         { return r.email }
func (r *PINRecord) PINHash() string      { return r.pinHash }
func (r *PINRecord) CreatedAt() time.Time { return r.createdAt }
func (r *PINRecord) ExpiresAt() time.Time { return r.expiresAt }
func (r *PINRecord) UsedAt() *time.Time   { return r.usedAt }
func (r *PINRecord) Used() bool           { return r.usedAt != nil }

func (r *PINRecord) Expired(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

// Matcher compares a stored hash with a candidate PIN and returns nil on a match.
type Matcher func(hash, pin string) error

// Clone returns a copy that can be inspected without the owner's lock.
func (r *PINRecord) Clone() *PINRecord {
	c := *r
	if r.usedAt != nil {
		used := *r.usedAt
		c.usedAt = &used
	}
	return &c
}

// SameIssue reports whether other came from the same signup as r.
func (r *PINRecord) SameIssue(other *PINRecord) bool {
	return other != nil && r.pinHash == other.pinHash && r.createdAt.Equal(other.createdAt)
}

func (r *PINRecord) MarkUsed(now time.Time) {
	used := now
	r.usedAt = &used
}

// Verify consumes the record when pin matches. A nil record means nothing was issued.
func Verify(r *PINRecord, pin PIN, now time.Time, match Matcher) error {
	if err := Check(r, pin, now, match); err != nil {
		return err
	}
	r.MarkUsed(now)
	return nil
}

// Check runs the verification steps of Verify without consuming the record.
func Check(r *PINRecord, pin PIN, now time.Time, match Matcher) error {
	if r == nil {
		return ErrPINNotFound
	}
	if r.Used() {
		return ErrPINAlreadyUsed
	}
	if r.Expired(now) {
		return ErrPINExpired
	}
	if err := match(r.pinHash, pin.Value()); err != nil {
		return ErrPINMismatch
	}
	return nil
}
