package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"questionnaire/forms"
	"questionnaire/middleware"
	"questionnaire/responses"
	"questionnaire/services"
)

type AuthHandler struct {
	authService *services.AuthService
	log         *logrus.Logger
}

func NewAuthHandler(authService *services.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		log:         log,
	}
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	// A request that already carries a live session gets no new one.
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if _, err := h.authService.Authenticate(c.Request.Context(), token); err == nil {
			responses.Error(c, responses.MsgAlreadyLoggedIn)
			return
		}
	}

	var req loginRequest
	_ = c.ShouldBind(&req)

	token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, services.ErrBadCredentials) {
		responses.Error(c, responses.MsgBadCredentials)
		return
	}
	if err != nil {
		h.log.WithError(err).Error("login failed")
		responses.ServerError(c)
		return
	}

	maxAge := int(h.authService.SessionTTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
	responses.OK(c, nil, responses.MsgLoginSuccess)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form forms.RegisterForm
	_ = c.ShouldBind(&form)

	_, errs, err := h.authService.Register(c.Request.Context(), &form)
	if err != nil {
		h.log.WithError(err).Error("registration failed")
		responses.ServerError(c)
		return
	}
	if !errs.IsValid() {
		responses.ValidationError(c, errs)
		return
	}

	responses.OK(c, nil, responses.MsgRegistered)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err == nil {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, services.ErrNotAuthenticated) {
			h.log.WithError(err).Error("logout failed")
			responses.ServerError(c)
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	responses.OK(c, nil, responses.MsgLoggedOut)
}
