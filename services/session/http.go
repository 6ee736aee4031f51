package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/apierror"
	"github.com/nvbf/tournament-tracker/pkg/auth"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Sessions interface {
	Login(ctx context.Context, request LoginRequest) (*LoginResponse, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Sessions

	// The router instance to configure the HTTP routes.
	Router Router

	// Guards the verify endpoint.
	Authenticate gin.HandlerFunc

	Logger *logrus.Logger
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	if opts.Service != nil {
		r.POST("/login", h.loginHandler)
	}
	r.GET("/verify", opts.Authenticate, h.verifyHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) loginHandler(c *gin.Context) {
	var request LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		apierror.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := s.Service.Login(c, request)
	if err != nil {
		if errors.Is(err, auth.ErrSessionTooShort) || errors.Is(err, auth.ErrSessionCharset) {
			apierror.Abort(c, http.StatusBadRequest, err.Error())
			return
		}
		apierror.Respond(c, s.Logger, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (s *httpHandler) verifyHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"valid": true, "sessionId": auth.Owner(c)})
}
