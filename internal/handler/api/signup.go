package api

import (
	"net/http"
	"time"

	"rv-portal/internal/domain/signup"
	reqdto "rv-portal/internal/handler/dto/request"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/handler/httperr"
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/pkg/cookie"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SignupHandler struct {
	cmds    commands.SignupCommands
	session config.SessionConfig
}

func NewSignupHandler(cmds commands.SignupCommands, session config.SessionConfig) *SignupHandler {
	return &SignupHandler{cmds: cmds, session: session}
}

// @Summary Request a PIN
// @Description Issues a one-time PIN to a partner company email
// @Tags signup
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 200 {object} resdto.SignupResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/signup [post]
func (h *SignupHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.BindingDetail(err))
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
		case errs.Is(err, errs.ErrEmailNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Email domain is not eligible for the partner program", nil)
		case errs.Is(err, commands.ErrPINDeliveryFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "PIN could not be delivered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SignupResponse{
		Email:     result.Email,
		ExpiresAt: result.ExpiresAt,
		PIN:       result.DebugPIN,
	})
}

// @Summary Verify a PIN
// @Description Consumes the PIN and opens a session (cookie and token)
// @Tags signup
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPINRequest true "Verify request"
// @Success 200 {object} resdto.VerifyPINResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /api/verify-pin [post]
func (h *SignupHandler) VerifyPIN(c *gin.Context) {
	var req reqdto.VerifyPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", httperr.BindingDetail(err))
		return
	}

	result, err := h.cmds.VerifyPIN(c.Request.Context(), req.Email, req.PIN)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or PIN format", nil)
		case errs.Is(err, signup.ErrPINNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No PIN was issued for this email", nil)
		case errs.Is(err, signup.ErrPINAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "PIN has already been used", nil)
		case errs.Is(err, signup.ErrPINExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "PIN has expired", nil)
		case errs.Is(err, signup.ErrPINMismatch):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Incorrect PIN", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetSessionCookie(c, h.session, result.SessionToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.VerifyPINResponse{
		Verified:     true,
		Email:        result.Email,
		SessionToken: result.SessionToken,
		ExpiresAt:    result.ExpiresAt,
	})
}

// @Summary Logout
// @Description Clears the session cookie
// @Tags signup
// @Success 204 "No Content"
// @Router /api/logout [post]
func (h *SignupHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.session)
	c.Status(http.StatusNoContent)
}
