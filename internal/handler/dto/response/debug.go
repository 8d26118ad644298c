package response

import (
	"time"

	"github.com/jinzhu/copier"

	"rv-portal/internal/usecase/queries"
)

type PINStatusResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"used"`
	Expired   bool      `json:"expired"`
}

type PoolStatsResponse struct {
	TotalConns    int32 `json:"totalConns"`
	IdleConns     int32 `json:"idleConns"`
	AcquiredConns int32 `json:"acquiredConns"`
	MaxConns      int32 `json:"maxConns"`
}

type DebugResponse struct {
	Now            time.Time           `json:"now"`
	PendingPINs    int                 `json:"pendingPins"`
	PINs           []PINStatusResponse `json:"pins"`
	VerifiedEmails []string            `json:"verifiedEmails"`
	Pool           *PoolStatsResponse  `json:"pool,omitempty"`
}

func FromDebugInfo(info *queries.DebugInfo) DebugResponse {
	var res DebugResponse
	_ = copier.Copy(&res, info)
	if res.PINs == nil {
		res.PINs = []PINStatusResponse{}
	}
	return res
}
