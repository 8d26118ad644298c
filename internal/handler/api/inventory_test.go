//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"rv-portal/internal/domain/inventory"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/domain/pricing"
	"rv-portal/internal/handler/api"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/queries"
	"rv-portal/tests/common/builder"
	"rv-portal/tests/common/httptest"
	queriesmock "rv-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockInventoryQueries
	handler     *api.InventoryHandler
	terms       pricing.Terms
}

func (s *InventoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewInventoryHandler(s.mockQueries)

	terms, err := pricing.NewTerms(0.05, 0.0799, 180)
	s.Require().NoError(err)
	s.terms = terms

	s.router.GET("/api/init", s.handler.Init)
	s.router.GET("/api/inventory", s.handler.List)
	s.router.GET("/api/inventory/:stock", s.handler.Get)
}

func (s *InventoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestInventoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(InventoryHandlerTestSuite))
}

func (s *InventoryHandlerTestSuite) unit(stock string) inventory.RV {
	rv, err := builder.NewUnitBuilder().With(func(b *builder.UnitBuilder) {
		b.StockNumber = stock
	}).BuildRV(s.terms)
	s.Require().NoError(err)
	return rv
}

// ================================================================================
// TestInit
// ================================================================================

func (s *InventoryHandlerTestSuite) TestInit() {
	s.Run("success: returns locations and unit classes", func() {
		s.mockQueries.EXPECT().InitData(gomock.Any()).Return(&queries.InitData{
			Locations:   []location.Location{{CMF: 101, Code: "AUS", StoreName: "Austin"}},
			UnitClasses: []inventory.UnitClass{{ID: 1, Code: "C", Description: "Class C"}},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/init", nil, "")

		var body resdto.InitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Locations, 1)
		s.Equal(101, body.Locations[0].CMF)
		s.Equal("Class C", body.UnitClasses[0].Description)
	})

	s.Run("error: 503 when the database is unavailable", func() {
		s.mockQueries.EXPECT().InitData(gomock.Any()).Return(nil, queries.ErrInventoryUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/init", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *InventoryHandlerTestSuite) TestList() {
	s.Run("success: binds filters and forwards them", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.InventoryQuery) (*queries.InventoryResult, error) {
				s.Equal([]int{101, 102}, q.Search.LocationIDs)
				s.Equal([]string{"Class C"}, q.Search.ClassNames)
				s.Equal("price_desc", q.Sort)
				s.Require().NotNil(q.Criteria.MinYear)
				s.Equal(2023, *q.Criteria.MinYear)
				s.Require().NotNil(q.Criteria.MinPrice)
				s.True(q.Criteria.MinPrice.Equal(decimal.NewFromInt(1)))
				s.Nil(q.Origin)
				return &queries.InventoryResult{
					Units:   []inventory.RV{s.unit("S1"), s.unit("S2")},
					Fetched: 5,
					Sort:    inventory.SortPriceDesc,
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/inventory?locationIds=101,102&classNames=Class%20C&minYear=2023&minPrice=1&sort=price_desc", nil, "")

		var body resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
		s.Equal(5, body.Fetched)
		s.Equal("S1", body.Units[0].StockNumber)
		s.Empty(body.Groups)
	})

	s.Run("success: grouped results carry distance when an origin is given", func() {
		units := []inventory.RV{s.unit("S1"), s.unit("S2")}
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, q queries.InventoryQuery) (*queries.InventoryResult, error) {
				s.True(q.Group)
				s.Require().NotNil(q.Origin)
				return &queries.InventoryResult{Units: units, Groups: inventory.Group(units), Fetched: 2, Sort: inventory.SortDistanceAsc}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/inventory?group=true&sort=distance_asc&lat=30.2672&lng=-97.7431", nil, "")

		var body resdto.InventoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Groups, 1)
		s.Equal(2, body.Groups[0].Quantity)
		s.Require().NotNil(body.Units[0].DistanceMiles)
		s.Equal(0, *body.Units[0].DistanceMiles)
	})

	s.Run("error: 400 on malformed parameters", func() {
		testCases := []struct {
			name  string
			query string
		}{
			{name: "non-numeric location id", query: "locationIds=abc"},
			{name: "unknown condition", query: "condition=salvage"},
			{name: "negative price", query: "minPrice=-5"},
			{name: "lat without lng", query: "lat=30.1"},
			{name: "latitude out of range", query: "lat=91&lng=0"},
			{name: "year out of range", query: "minYear=1800"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/inventory?"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "invalid sort", queriesError: errs.Mark(errors.New("bad sort"), queries.ErrInvalidInventoryQuery), expectedStatus: http.StatusBadRequest},
			{name: "database down", queriesError: queries.ErrInventoryUnavailable, expectedStatus: http.StatusServiceUnavailable},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/inventory", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *InventoryHandlerTestSuite) TestGet() {
	s.Run("success: returns the unit with partner pricing", func() {
		rv := s.unit("S100")
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), "S100").Return(&rv, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/inventory/S100", nil, "")

		var body resdto.RVResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("S100", body.StockNumber)
		s.True(rv.PartnerPrice.Equal(body.PartnerPrice))
		s.True(body.PartnerPrice.LessThan(body.ListPrice))
		s.Equal("Austin", body.Location.Name)
		s.Nil(body.DistanceMiles)
	})

	s.Run("error: 404 when the unit does not exist", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), "NOPE").Return(nil, errs.ErrUnitNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/inventory/NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Unit not found")
	})

	s.Run("error: 503 on store failure", func() {
		s.mockQueries.EXPECT().GetUnit(gomock.Any(), "S1").Return(nil, queries.ErrInventoryUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/inventory/S1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
