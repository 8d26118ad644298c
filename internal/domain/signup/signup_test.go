//go:build unit

package signup_test

import (
	"errors"
	"testing"
	"time"

	"rv-portal/internal/domain/signup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainMatch(hash, pin string) error {
	if hash != pin {
		return errors.New("mismatch")
	}
	return nil
}

func TestNewEmail(t *testing.T) {
	e, err := signup.NewEmail("  Jane.Doe@Partner.Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@partner.example.com", e.Value())
	assert.Equal(t, "partner.example.com", e.Domain())

	for _, bad := range []string{"", "jane", "jane@", "@example.com", "jane@example"} {
		_, err := signup.NewEmail(bad)
		assert.ErrorIs(t, err, signup.ErrInvalidEmail, bad)
	}
}

func TestDomainPolicy(t *testing.T) {
	partner, _ := signup.NewEmail("a@partner.example.com")
	other, _ := signup.NewEmail("a@gmail.com")

	open := signup.NewDomainPolicy(nil)
	assert.NoError(t, open.Check(other))

	policy := signup.NewDomainPolicy([]string{" @Partner.Example.com", ""})
	assert.NoError(t, policy.Check(partner))
	assert.ErrorIs(t, policy.Check(other), signup.ErrDomainNotAllowed)
}

func TestNewPIN(t *testing.T) {
	p, err := signup.NewPIN("012345")
	require.NoError(t, err)
	assert.Equal(t, "012345", p.Value())

	for _, bad := range []string{"", "12345", "1234567", "12a456"} {
		_, err := signup.NewPIN(bad)
		assert.ErrorIs(t, err, signup.ErrInvalidPINFormat, bad)
	}
}

func TestGeneratePIN(t *testing.T) {
	seen := make(map[string]struct{})
	for range 200 {
		p, err := signup.GeneratePIN()
		require.NoError(t, err)
		_, err = signup.NewPIN(p.Value())
		require.NoError(t, err, "generated pin must be six digits: %q", p.Value())
		seen[p.Value()] = struct{}{}
	}
	assert.Greater(t, len(seen), 150)
}

func TestVerify(t *testing.T) {
	email, _ := signup.NewEmail("a@partner.example.com")
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	good, _ := signup.NewPIN("123456")
	wrong, _ := signup.NewPIN("654321")

	t.Run("success consumes the record", func(t *testing.T) {
		rec := signup.NewPINRecord(email, "123456", issued, 15*time.Minute)
		require.NoError(t, signup.Verify(rec, good, issued.Add(time.Minute), plainMatch))
		assert.True(t, rec.Used())
		assert.Equal(t, issued.Add(time.Minute), *rec.UsedAt())

		assert.ErrorIs(t, signup.Verify(rec, good, issued.Add(2*time.Minute), plainMatch), signup.ErrPINAlreadyUsed)
	})

	tests := []struct {
		name   string
		record func() *signup.PINRecord
		pin    signup.PIN
		at     time.Time
		want   error
	}{
		{
			name:   "unknown email",
			record: func() *signup.PINRecord { return nil },
			pin:    good,
			at:     issued,
			want:   signup.ErrPINNotFound,
		},
		{
			name: "already used wins over expiry and mismatch",
			record: func() *signup.PINRecord {
				r := signup.NewPINRecord(email, "123456", issued, 15*time.Minute)
				_ = signup.Verify(r, good, issued, plainMatch)
				return r
			},
			pin:  wrong,
			at:   issued.Add(time.Hour),
			want: signup.ErrPINAlreadyUsed,
		},
		{
			name:   "expired wins over mismatch",
			record: func() *signup.PINRecord { return signup.NewPINRecord(email, "123456", issued, 15*time.Minute) },
			pin:    wrong,
			at:     issued.Add(15 * time.Minute),
			want:   signup.ErrPINExpired,
		},
		{
			name:   "mismatch",
			record: func() *signup.PINRecord { return signup.NewPINRecord(email, "123456", issued, 15*time.Minute) },
			pin:    wrong,
			at:     issued.Add(14 * time.Minute),
			want:   signup.ErrPINMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.record()
			err := signup.Verify(rec, tt.pin, tt.at, plainMatch)
			assert.ErrorIs(t, err, tt.want)
			for _, other := range []error{signup.ErrPINNotFound, signup.ErrPINAlreadyUsed, signup.ErrPINExpired, signup.ErrPINMismatch} {
				if other != tt.want {
					assert.NotErrorIs(t, err, other)
				}
			}
		})
	}
}

func TestCheck_DoesNotConsume(t *testing.T) {
	email, _ := signup.NewEmail("a@partner.example.com")
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	good, _ := signup.NewPIN("123456")
	rec := signup.NewPINRecord(email, "123456", issued, 15*time.Minute)

	require.NoError(t, signup.Check(rec, good, issued, plainMatch))
	assert.False(t, rec.Used())

	clone := rec.Clone()
	assert.True(t, clone.SameIssue(rec))
	assert.False(t, signup.NewPINRecord(email, "123456", issued.Add(time.Second), 15*time.Minute).SameIssue(rec))
}

func TestNewPINRecord_DefaultTTL(t *testing.T) {
	email, _ := signup.NewEmail("a@partner.example.com")
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rec := signup.NewPINRecord(email, "h", now, 0)
	assert.Equal(t, now.Add(signup.DefaultTTL), rec.ExpiresAt())
	assert.False(t, rec.Expired(now.Add(signup.DefaultTTL-time.Second)))
	assert.True(t, rec.Expired(now.Add(signup.DefaultTTL)))
}
