package queries

import (
	"context"
	"time"

	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/pkg/clock"
)

type PoolStats struct {
	TotalConns    int32
	IdleConns     int32
	AcquiredConns int32
	MaxConns      int32
}

// DebugInfo is only served when gin runs in debug mode.
type DebugInfo struct {
	Now            time.Time
	PendingPINs    int
	PINs           []memstore.PINStatus
	VerifiedEmails []string
	Pool           *PoolStats
}

type DebugQueries interface {
	Snapshot(ctx context.Context) *DebugInfo
}

type debugQueriesImpl struct {
	pins   PINInspector
	emails EmailLister
	pool   PoolStatter
	clock  clock.Clock
}

func NewDebugQueries(pins PINInspector, emails EmailLister, pool PoolStatter, clk clock.Clock) DebugQueries {
	return &debugQueriesImpl{pins: pins, emails: emails, pool: pool, clock: clk}
}

func (q *debugQueriesImpl) Snapshot(_ context.Context) *DebugInfo {
	now := q.clock.Now()
	info := &DebugInfo{
		Now:            now,
		PendingPINs:    q.pins.Len(),
		PINs:           q.pins.Snapshot(now),
		VerifiedEmails: q.emails.List(),
	}
	if q.pool != nil {
		if st := q.pool.Stat(); st != nil {
			info.Pool = &PoolStats{
				TotalConns:    st.TotalConns(),
				IdleConns:     st.IdleConns(),
				AcquiredConns: st.AcquiredConns(),
				MaxConns:      st.MaxConns(),
			}
		}
	}
	return info
}
