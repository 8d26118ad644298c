package api

import (
	"net/http"
	"strings"

	reqdto "rv-portal/internal/handler/dto/request"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/handler/httperr"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	q queries.InventoryQueries
}

func NewInventoryHandler(q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{q: q}
}

// @Summary Init data
// @Description Locations and unit classes for the filter panel
// @Tags inventory
// @Produce json
// @Success 200 {object} resdto.InitResponse
// @Failure 503 {object} httperr.Response
// @Router /api/init [get]
func (h *InventoryHandler) Init(c *gin.Context) {
	data, err := h.q.InitData(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Inventory is temporarily unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInitData(data))
}

// @Summary Search inventory
// @Description Filter, sort and optionally group the RV inventory
// @Tags inventory
// @Produce json
// @Param locationIds query string false "Comma separated location ids"
// @Param classNames query string false "Comma separated class names"
// @Param sort query string false "price_asc, price_desc, year_desc, year_asc, length_asc, length_desc, sleeps_desc, distance_asc"
// @Param group query bool false "Group identical units"
// @Param lat query number false "Origin latitude"
// @Param lng query number false "Origin longitude"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var req reqdto.InventoryQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", httperr.BindingDetail(err))
		return
	}
	q, err := req.ToQuery()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		return
	}

	result, err := h.q.Search(c.Request.Context(), q)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidInventoryQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Inventory is temporarily unavailable", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryResult(result, q.Origin))
}

// @Summary Get unit
// @Description Single unit by stock number
// @Tags inventory
// @Produce json
// @Param stock path string true "Stock number"
// @Success 200 {object} resdto.RVResponse
// @Failure 404 {object} httperr.Response
// @Router /api/inventory/{stock} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	stock := strings.TrimSpace(c.Param("stock"))
	rv, err := h.q.GetUnit(c.Request.Context(), stock)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrUnitNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Inventory is temporarily unavailable", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRV(*rv, nil))
}
