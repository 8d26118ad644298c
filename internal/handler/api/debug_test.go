//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rv-portal/internal/handler/api"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/infra/memstore"
	"rv-portal/internal/usecase/queries"
	"rv-portal/tests/common/httptest"
	queriesmock "rv-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDebugHandler_Snapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockDebugQueries(ctrl)
	router := gin.New()
	router.GET("/api/debug", api.NewDebugHandler(q).Snapshot)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	q.EXPECT().Snapshot(gomock.Any()).Return(&queries.DebugInfo{
		Now:         now,
		PendingPINs: 1,
		PINs: []memstore.PINStatus{
			{Email: partnerEmail, CreatedAt: now.Add(-time.Minute), ExpiresAt: now.Add(14 * time.Minute)},
		},
		VerifiedEmails: []string{"done@partner.example.com"},
		Pool:           &queries.PoolStats{TotalConns: 3, IdleConns: 2, AcquiredConns: 1, MaxConns: 10},
	}).Times(1)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/api/debug", nil, "")

	var body resdto.DebugResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	assert.Equal(t, 1, body.PendingPINs)
	require.Len(t, body.PINs, 1)
	assert.Equal(t, partnerEmail, body.PINs[0].Email)
	assert.False(t, body.PINs[0].Used)
	assert.Equal(t, []string{"done@partner.example.com"}, body.VerifiedEmails)
	require.NotNil(t, body.Pool)
	assert.Equal(t, int32(10), body.Pool.MaxConns)
}
