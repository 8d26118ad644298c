package commands

import (
	"context"
	"time"

	"rv-portal/internal/domain/location"
	"rv-portal/internal/domain/signup"
	"rv-portal/internal/usecase/shared"
)

// Write-side ports are declared here so commands never depend on query-side interfaces.

type PINStore interface {
	Save(rec *signup.PINRecord)
	// Get returns a copy safe to read without holding the store.
	Get(email signup.Email) *signup.PINRecord
	Consume(email signup.Email, seen *signup.PINRecord, now time.Time) error
}

type EmailRegistry interface {
	Add(email signup.Email, at time.Time)
}

type PINHasher interface {
	Hash(pin string) (string, error)
	Compare(hashedPIN, pin string) error
}

type Mailer interface {
	SendPIN(ctx context.Context, email, pin string, expiresAt time.Time) error
}

type SessionIssuer interface {
	GenerateToken(email string) (string, time.Time, error)
}

type SignatureStore interface {
	PutSignature(ctx context.Context, key string, png []byte) (string, error)
	DeleteSignature(ctx context.Context, key string) error
}

type RouteDistances interface {
	Distances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error)
}

type LocationLookup interface {
	FindByCMF(ctx context.Context, cmf int) (*location.Location, error)
}
