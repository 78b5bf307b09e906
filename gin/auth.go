package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
	"github.com/bobinette/notenet/jwt"
	"github.com/bobinette/notenet/mock"
)

type AuthHandler struct {
	Backend *mock.Backend
	Encoder *jwt.EncodeDecoder
}

func (h *AuthHandler) RegisterRoutes(router gin.IRouter, authenticated gin.HandlerFunc) {
	router.POST("/login", JSONFormatter(http.StatusOK, h.Login))
	router.GET("/profile", authenticated, JSONFormatter(http.StatusOK, h.Profile))
	router.POST("/invite", authenticated, JSONFormatter(http.StatusCreated, h.Invite))
}

func (h *AuthHandler) Login(c *gin.Context) (interface{}, error) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Invalid request body", errors.BadRequest())
	}

	user, err := h.Backend.Authenticate(body.Email, body.Password)
	if err != nil {
		return nil, err
	}

	token, err := h.Encoder.Encode(user.ID, user.Tenant.Slug)
	if err != nil {
		return nil, err
	}

	return gin.H{"token": token, "user": user}, nil
}

func (h *AuthHandler) Profile(c *gin.Context) (interface{}, error) {
	return gin.H{"user": currentUser(c)}, nil
}

func (h *AuthHandler) Invite(c *gin.Context) (interface{}, error) {
	var body struct {
		Email string       `json:"email"`
		Role  notenet.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, errors.New("Invalid request body", errors.BadRequest())
	}

	user, err := h.Backend.Invite(currentUser(c), body.Email, body.Role)
	if err != nil {
		return nil, err
	}

	return gin.H{"user": user}, nil
}
