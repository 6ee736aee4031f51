package playoff

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/apierror"
	"github.com/nvbf/tournament-tracker/pkg/auth"
	"github.com/nvbf/tournament-tracker/pkg/league"
)

// Router is the interface for a router.
type Router interface {
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Playoff interface {
	Generate(ctx context.Context, id, owner string) (*league.Tournament, error)
	RecordResult(ctx context.Context, id, owner, round string, request ResultRequest) (*league.Tournament, error)
	Reset(ctx context.Context, id, owner string) (*league.Tournament, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Playoff

	// The router instance to configure the HTTP routes.
	Router Router

	Logger *logrus.Logger
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("/:id/playoff/generar", h.generateHandler)
	r.PUT("/:id/playoff/:round", h.resultHandler)
	r.DELETE("/:id/playoff", h.resetHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) generateHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	t, err := h.Service.Generate(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *httpHandler) resultHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	var request ResultRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		apierror.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Service.RecordResult(c, id, auth.Owner(c), c.Param("round"), request)
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *httpHandler) resetHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	t, err := h.Service.Reset(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
