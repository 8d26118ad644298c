package pinhash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("pin hashing failed")
	ErrMismatch        = errors.New("pin does not match")
	ErrInvalidPIN      = errors.New("invalid pin")
	ErrInvalidHashCost = errors.New("invalid hash cost")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher hashes one-time PINs so the in-memory store never holds them in clear text.
type Hasher struct {
	cost int
}

func NewHasher(cost int) (*Hasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, ErrInvalidHashCost
	}
	return &Hasher{cost: cost}, nil
}

func (h *Hasher) Hash(pin string) (string, error) {
	if pin == "" {
		return "", ErrInvalidPIN
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(pin), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func (h *Hasher) Compare(hashedPIN, pin string) error {
	if hashedPIN == "" || pin == "" {
		return ErrInvalidPIN
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
