package commands

import (
	"context"
	"log/slog"
	"time"

	"rv-portal/internal/domain/signup"
	"rv-portal/internal/pkg/clock"
	"rv-portal/internal/pkg/errs"
)

var (
	ErrPINIssueFailed    = errs.New("pin could not be issued")
	ErrPINDeliveryFailed = errs.New("pin could not be delivered")
	ErrSessionIssue      = errs.New("session could not be issued")
)

type SignupResult struct {
	Email     string
	ExpiresAt time.Time
	// DebugPIN is only set when PIN exposure is enabled outside release mode.
	DebugPIN string
}

type VerifyResult struct {
	Email        string
	SessionToken string
	ExpiresAt    time.Time
}

type SignupCommands interface {
	// Signup issues a fresh PIN for email, replacing any PIN issued before.
	Signup(ctx context.Context, email string) (*SignupResult, error)
	// VerifyPIN consumes the PIN and opens a session. Failures carry one of the
	// signup.ErrPIN* sentinels.
	VerifyPIN(ctx context.Context, email, pin string) (*VerifyResult, error)
}

type SignupOptions struct {
	TTL       time.Duration
	ExposePIN bool
}

type signupCommandsImpl struct {
	policy   signup.DomainPolicy
	pins     PINStore
	emails   EmailRegistry
	hasher   PINHasher
	mailer   Mailer
	sessions SessionIssuer
	clock    clock.Clock
	opts     SignupOptions
}

func NewSignupCommands(
	policy signup.DomainPolicy,
	pins PINStore,
	emails EmailRegistry,
	hasher PINHasher,
	mailer Mailer,
	sessions SessionIssuer,
	clk clock.Clock,
	opts SignupOptions,
) SignupCommands {
	if opts.TTL <= 0 {
		opts.TTL = signup.DefaultTTL
	}
	return &signupCommandsImpl{
		policy:   policy,
		pins:     pins,
		emails:   emails,
		hasher:   hasher,
		mailer:   mailer,
		sessions: sessions,
		clock:    clk,
		opts:     opts,
	}
}

func (s *signupCommandsImpl) Signup(ctx context.Context, rawEmail string) (*SignupResult, error) {
	email, err := signup.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := s.policy.Check(email); err != nil {
		slog.Info("signup rejected", "domain", email.Domain())
		return nil, errs.Mark(err, errs.ErrEmailNotAllowed)
	}

	pin, err := signup.GeneratePIN()
	if err != nil {
		return nil, errs.Mark(err, ErrPINIssueFailed)
	}
	hash, err := s.hasher.Hash(pin.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrPINIssueFailed)
	}

	// The previous PIN stays valid until the new one has actually been delivered.
	rec := signup.NewPINRecord(email, hash, s.clock.Now(), s.opts.TTL)
	if err := s.mailer.SendPIN(ctx, email.Value(), pin.Value(), rec.ExpiresAt()); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "send pin"), ErrPINDeliveryFailed)
	}
	s.pins.Save(rec)

	res := &SignupResult{Email: email.Value(), ExpiresAt: rec.ExpiresAt()}
	if s.opts.ExposePIN {
		res.DebugPIN = pin.Value()
	}
	return res, nil
}

func (s *signupCommandsImpl) VerifyPIN(ctx context.Context, rawEmail, rawPIN string) (*VerifyResult, error) {
	email, err := signup.NewEmail(rawEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	pin, err := signup.NewPIN(rawPIN)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Check runs on a copy outside the store's lock; Consume re-validates under it.
	now := s.clock.Now()
	rec := s.pins.Get(email)
	err = signup.Check(rec, pin, now, s.hasher.Compare)
	if err == nil {
		err = s.pins.Consume(email, rec, now)
	}
	if err != nil {
		slog.InfoContext(ctx, "pin verification failed", "domain", email.Domain(), "reason", err.Error())
		return nil, err
	}

	s.emails.Add(email, now)

	token, expiresAt, err := s.sessions.GenerateToken(email.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrSessionIssue)
	}
	return &VerifyResult{Email: email.Value(), SessionToken: token, ExpiresAt: expiresAt}, nil
}
