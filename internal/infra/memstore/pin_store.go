package memstore

import (
	"sync"
	"time"

	"rv-portal/internal/domain/signup"
)

// PINStore keeps the single active PIN record per email in process memory.
type PINStore struct {
	mu      sync.Mutex
	records map[string]*signup.PINRecord
}

func NewPINStore() *PINStore {
	return &PINStore{records: make(map[string]*signup.PINRecord)}
}

// Save replaces whatever record the email had.
func (s *PINStore) Save(rec *signup.PINRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Email().Value()] = rec
}

// Get returns a copy of the email's record, or nil when none exists.
func (s *PINStore) Get(email signup.Email) *signup.PINRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.records[email.Value()]
	if rec == nil {
		return nil
	}
	return rec.Clone()
}

// Consume marks the stored record used if it is still the one seen was read from.
// A record replaced by a newer signup in the meantime counts as a mismatch.
func (s *PINStore) Consume(email signup.Email, seen *signup.PINRecord, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.records[email.Value()]
	switch {
	case rec == nil:
		return signup.ErrPINNotFound
	case !rec.SameIssue(seen):
		return signup.ErrPINMismatch
	case rec.Used():
		return signup.ErrPINAlreadyUsed
	}
	rec.MarkUsed(now)
	return nil
}

func (s *PINStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Sweep drops records that expired more than grace ago and returns how many went.
func (s *PINStore) Sweep(now time.Time, grace time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for email, rec := range s.records {
		if rec.Expired(now.Add(-grace)) {
			delete(s.records, email)
			removed++
		}
	}
	return removed
}

// Snapshot lists the stored records without PIN hashes, for debug output.
func (s *PINStore) Snapshot(now time.Time) []PINStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]PINStatus, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, PINStatus{
			Email:     rec.Email().Value(),
			CreatedAt: rec.CreatedAt(),
			ExpiresAt: rec.ExpiresAt(),
			Used:      rec.Used(),
			Expired:   rec.Expired(now),
		})
	}
	return out
}

type PINStatus struct {
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
	Expired   bool
}
