package api

import (
	"net/http"

	"rv-portal/internal/domain/checkout"
	reqdto "rv-portal/internal/handler/dto/request"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/handler/httperr"
	"rv-portal/internal/handler/middleware"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/commands"
	"rv-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Purchase catalog
// @Description Accessories, protection plans and delivery rates
// @Tags orders
// @Produce json
// @Success 200 {object} resdto.CatalogResponse
// @Router /api/catalog [get]
func (h *OrderHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCatalog(h.q.Catalog(c.Request.Context())))
}

// @Summary Quote a configuration
// @Description Prices a partial configuration and reports the next wizard step
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.OrderRequest true "Configuration"
// @Success 200 {object} resdto.SummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/quote [post]
func (h *OrderHandler) Quote(c *gin.Context) {
	var req reqdto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.BindingDetail(err))
		return
	}

	summary, err := h.cmds.Quote(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(*summary))
}

// @Summary Submit an order
// @Description Places a complete configuration for the verified session email
// @Tags orders
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body reqdto.OrderRequest true "Complete configuration"
// @Success 201 {object} resdto.SubmitOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/orders [post]
func (h *OrderHandler) Submit(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrSessionRequired, "Verified session required", nil)
		return
	}
	var req reqdto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.BindingDetail(err))
		return
	}

	order, err := h.cmds.Submit(c.Request.Context(), email, req.ToCommand())
	if err != nil {
		abortOrderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrder(order))
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security SessionCookie
// @Param limit query int false "Max orders (default 20)"
// @Success 200 {array} resdto.OrderResponse
// @Failure 401 {object} httperr.Response
// @Router /api/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrSessionRequired, "Verified session required", nil)
		return
	}
	var req reqdto.ListOrdersQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", httperr.BindingDetail(err))
		return
	}

	recs, err := h.q.ListMine(c.Request.Context(), email, req.Limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Orders are temporarily unavailable", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRecords(recs))
}

// @Summary Get my order
// @Tags orders
// @Produce json
// @Security SessionCookie
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	email, ok := middleware.GetSessionEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, middleware.ErrSessionRequired, "Verified session required", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	rec, err := h.q.Get(c.Request.Context(), email, id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Orders are temporarily unavailable", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderRecord(rec))
}

func abortOrderError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrUnitNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unit not found", nil)
	case errs.Is(err, errs.ErrLocationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
	case errs.Is(err, commands.ErrUnitAlreadyOrdered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Unit already has an open order", nil)
	case errs.Is(err, commands.ErrOrderIncomplete):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order configuration is incomplete", err.Error())
	case errs.Is(err, checkout.ErrStepOutOfOrder):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Steps must be completed in order", err.Error())
	case errs.Is(err, commands.ErrInvalidOrder), errs.Is(err, commands.ErrDeliveryUnroutable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order configuration", err.Error())
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "A dependent service is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
