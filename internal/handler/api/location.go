package api

import (
	"net/http"

	reqdto "rv-portal/internal/handler/dto/request"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/handler/httperr"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LocationHandler struct {
	q queries.LocationQueries
}

func NewLocationHandler(q queries.LocationQueries) *LocationHandler {
	return &LocationHandler{q: q}
}

// @Summary List locations
// @Description With lat/lng the list carries great-circle miles and is sorted nearest first
// @Tags locations
// @Produce json
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {array} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/locations [get]
func (h *LocationHandler) List(c *gin.Context) {
	var req reqdto.LocationsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", httperr.BindingDetail(err))
		return
	}
	origin, err := reqdto.Origin(req.Lat, req.Lng)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}

	locs, err := h.q.List(c.Request.Context(), origin)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Locations are temporarily unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocations(locs, origin != nil))
}

// @Summary Driving distance
// @Description Proxies the driving-distance API for one origin and many destinations
// @Tags locations
// @Produce json
// @Param origin query string true "Origin address or zip"
// @Param destinations query string true "Pipe separated destinations"
// @Success 200 {object} resdto.DistanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/distance [get]
func (h *LocationHandler) Distance(c *gin.Context) {
	var req reqdto.DistanceQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", httperr.BindingDetail(err))
		return
	}

	legs, err := h.q.DrivingDistances(c.Request.Context(), req.Origin, req.DestinationList())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidDistanceQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Distance service unavailable", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDrivingDistances(req.Origin, legs))
}
