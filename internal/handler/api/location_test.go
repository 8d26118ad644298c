//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/handler/api"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/queries"
	"rv-portal/internal/usecase/shared"
	"rv-portal/tests/common/httptest"
	queriesmock "rv-portal/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LocationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLocationQueries
}

func (s *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLocationQueries(s.mockCtrl)
	h := api.NewLocationHandler(s.mockQueries)

	s.router.GET("/api/locations", h.List)
	s.router.GET("/api/distance", h.Distance)
}

func (s *LocationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLocationHandlerSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}

func (s *LocationHandlerTestSuite) TestList() {
	austin := location.Location{CMF: 101, Code: "AUS", StoreName: "Austin", Coords: geo.Coordinates{Latitude: 30.2672, Longitude: -97.7431}}
	dallas := location.Location{CMF: 102, Code: "DAL", StoreName: "Dallas", Coords: geo.Coordinates{Latitude: 32.7767, Longitude: -96.797}}

	s.Run("success: without origin miles are omitted", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), (*geo.Coordinates)(nil)).
			Return([]location.WithDistance{{Location: austin}, {Location: dallas}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/locations", nil, "")

		var body []resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Nil(body[0].Miles)
		s.Equal(30.2672, body[0].Latitude)
	})

	s.Run("success: with origin locations carry miles", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Not(gomock.Nil())).
			DoAndReturn(func(_ any, origin *geo.Coordinates) ([]location.WithDistance, error) {
				return location.SortByDistance([]location.Location{dallas, austin}, *origin), nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/locations?lat=30.2672&lng=-97.7431", nil, "")

		var body []resdto.LocationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal(101, body[0].CMF)
		s.Require().NotNil(body[0].Miles)
		s.Equal(0, *body[0].Miles)
		s.Greater(*body[1].Miles, 150)
	})

	s.Run("error: 400 when only one coordinate is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/locations?lng=-97.7", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
	})

	s.Run("error: 503 on store failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, queries.ErrLocationsUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/locations", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}

func (s *LocationHandlerTestSuite) TestDistance() {
	s.Run("success: splits pipe separated destinations", func() {
		s.mockQueries.EXPECT().DrivingDistances(gomock.Any(), "78701", []string{"75201", "77002"}).
			Return([]shared.DrivingDistance{
				{Destination: "75201", Miles: 195.4, DurationMinutes: 180, Status: "OK"},
				{Destination: "77002", Status: "ZERO_RESULTS"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/distance?origin=78701&destinations=75201|%2077002%20|", nil, "")

		var body resdto.DistanceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("78701", body.Origin)
		s.Require().Len(body.Legs, 2)
		s.Equal(195.4, body.Legs[0].Miles)
		s.Equal("ZERO_RESULTS", body.Legs[1].Status)
	})

	s.Run("error: 400 when required parameters are missing", func() {
		for _, q := range []string{"", "origin=78701", "destinations=75201"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/distance?"+q, nil, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
		}{
			{name: "too many destinations", queriesError: errs.Mark(errs.New("too many"), queries.ErrInvalidDistanceQuery), expectedStatus: http.StatusBadRequest},
			{name: "upstream failure", queriesError: errs.Mark(errs.New("timeout"), errs.ErrUpstreamUnavailable), expectedStatus: http.StatusBadGateway},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().DrivingDistances(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/distance?origin=a&destinations=b", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
