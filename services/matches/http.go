package matches

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
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Results is the interface for the league results service.
type Results interface {
	ReportResult(ctx context.Context, id, owner string, request AddRequest) (*league.Tournament, error)
	RemoveResult(ctx context.Context, id, owner, matchID string) (*league.Tournament, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Results

	// The router instance to configure the HTTP routes.
	Router Router

	Logger *logrus.Logger
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.PUT("/:id/partidos", h.resultHandler)
	r.DELETE("/:id/partidos/:matchId", h.removeHandler)
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) resultHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	var request AddRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		apierror.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Service.ReportResult(c, id, auth.Owner(c), request)
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *httpHandler) removeHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	t, err := h.Service.RemoveResult(c, id, auth.Owner(c), c.Param("matchId"))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
