//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"rv-portal/internal/domain/signup"
	"rv-portal/internal/handler/api"
	resdto "rv-portal/internal/handler/dto/response"
	"rv-portal/internal/pkg/config"
	"rv-portal/internal/pkg/cookie"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/commands"
	"rv-portal/tests/common/httptest"
	"rv-portal/tests/common/testutil"
	commandsmock "rv-portal/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SignupHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSignupCommands
}

func (s *SignupHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSignupCommands(s.mockCtrl)
	h := api.NewSignupHandler(s.mockCommands, config.NewTestConfig().Session)

	s.router.POST("/api/signup", h.Signup)
	s.router.POST("/api/verify-pin", h.VerifyPIN)
	s.router.POST("/api/logout", h.Logout)
}

func (s *SignupHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSignupHandlerSuite(t *testing.T) {
	suite.Run(t, new(SignupHandlerTestSuite))
}

const partnerEmail = "buyer@partner.example.com"

// ================================================================================
// TestSignup
// ================================================================================

func (s *SignupHandlerTestSuite) TestSignup() {
	url := "/api/signup"
	expiresAt := time.Now().Add(15 * time.Minute).UTC().Truncate(time.Second)

	s.Run("success: issues a PIN without echoing it", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), partnerEmail).
			Return(&commands.SignupResult{Email: partnerEmail, ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"email": partnerEmail}, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(partnerEmail, body["email"])
		s.NotContains(body, "pin")
	})

	s.Run("success: debug PIN is echoed when exposed", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), partnerEmail).
			Return(&commands.SignupResult{Email: partnerEmail, ExpiresAt: expiresAt, DebugPIN: "012345"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"email": partnerEmail}, "")

		var body resdto.SignupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("012345", body.PIN)
		s.True(expiresAt.Equal(body.ExpiresAt))
	})

	s.Run("error: 400 when email is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "malformed email",
				commandsError:  errs.Mark(signup.ErrInvalidEmail, errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid email",
			},
			{
				name:           "domain not allowed",
				commandsError:  errs.Mark(signup.ErrDomainNotAllowed, errs.ErrEmailNotAllowed),
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "not eligible",
			},
			{
				name:           "delivery failed",
				commandsError:  errs.Mark(errs.New("smtp down"), commands.ErrPINDeliveryFailed),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "could not be delivered",
			},
			{
				name:           "issue failed",
				commandsError:  commands.ErrPINIssueFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]string{"email": "x@y.z"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestVerifyPIN
// ================================================================================

func (s *SignupHandlerTestSuite) TestVerifyPIN() {
	url := "/api/verify-pin"
	reqBody := map[string]string{"email": partnerEmail, "pin": "012345"}

	s.Run("success: returns the session and sets the cookie", func() {
		expiresAt := time.Now().Add(time.Hour)
		s.mockCommands.EXPECT().VerifyPIN(gomock.Any(), partnerEmail, "012345").
			Return(&commands.VerifyResult{Email: partnerEmail, SessionToken: "signed-token", ExpiresAt: expiresAt}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.VerifyPINResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Verified)
		s.Equal("signed-token", body.SessionToken)

		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		s.Require().NotNil(c)
		s.Equal("signed-token", c.Value)
		s.True(c.HttpOnly)
		s.Greater(c.MaxAge, 0)
		httptest.AssertHeaderHas(s.T(), rec, "Set-Cookie", cookie.SessionCookieName+"=signed-token", "Path=/", "HttpOnly", "SameSite=Lax")
	})

	s.Run("error: 400 on missing fields", func() {
		for _, mutate := range []func(map[string]any){testutil.Field("email", nil), testutil.Field("pin", nil)} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: each PIN failure has its own status", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "bad format", commandsError: errs.Mark(signup.ErrInvalidPINFormat, errs.ErrDomainValidation), expectedStatus: http.StatusBadRequest},
			{name: "unknown email", commandsError: signup.ErrPINNotFound, expectedStatus: http.StatusNotFound},
			{name: "already used", commandsError: signup.ErrPINAlreadyUsed, expectedStatus: http.StatusConflict},
			{name: "expired", commandsError: signup.ErrPINExpired, expectedStatus: http.StatusGone},
			{name: "mismatch", commandsError: signup.ErrPINMismatch, expectedStatus: http.StatusUnauthorized},
			{name: "session issue", commandsError: commands.ErrSessionIssue, expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().VerifyPIN(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
				s.Nil(httptest.ExtractCookie(rec, cookie.SessionCookieName))
				httptest.AssertHeaders(s.T(), rec, map[string]string{"Set-Cookie": ""})
			})
		}
	})
}

func (s *SignupHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Less(c.MaxAge, 0)
	httptest.AssertHeaderHas(s.T(), rec, "Set-Cookie", cookie.SessionCookieName+"=;", "Max-Age=0", "HttpOnly")
}
