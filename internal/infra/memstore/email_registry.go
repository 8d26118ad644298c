package memstore

import (
	"sort"
	"sync"
	"time"

	"rv-portal/internal/domain/signup"
)

// EmailRegistry records every email that completed PIN verification.
type EmailRegistry struct {
	mu     sync.RWMutex
	emails map[string]time.Time
}

func NewEmailRegistry() *EmailRegistry {
	return &EmailRegistry{emails: make(map[string]time.Time)}
}

// Add keeps the first verification time for an email.
func (r *EmailRegistry) Add(email signup.Email, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.emails[email.Value()]; !ok {
		r.emails[email.Value()] = at
	}
}

func (r *EmailRegistry) Contains(email signup.Email) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.emails[email.Value()]
	return ok
}

func (r *EmailRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.emails))
	for e := range r.emails {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
