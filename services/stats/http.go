package stats

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/apierror"
	"github.com/nvbf/tournament-tracker/pkg/auth"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

type Stats interface {
	GetStandings(ctx context.Context, id, owner string) ([]StandingRow, error)
	GetStats(ctx context.Context, id, owner string) (*TournamentStats, error)
	PublicStandings(ctx context.Context, code string) ([]StandingRow, error)
	PublicStats(ctx context.Context, code string) (*TournamentStats, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Stats

	// The router instance to configure the HTTP routes.
	Router Router

	// Optional router for share code access.
	PublicRouter Router

	Logger *logrus.Logger
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.GET("/:id/clasificacion", h.standingsHandler)
	r.GET("/:id/estadisticas", h.statsHandler)

	if opts.PublicRouter != nil {
		opts.PublicRouter.GET("/:code/clasificacion", h.publicStandingsHandler)
		opts.PublicRouter.GET("/:code/estadisticas", h.publicStatsHandler)
	}
}

type httpHandler struct {
	HTTPOptions
}

func (s *httpHandler) standingsHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	standings, err := s.Service.GetStandings(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, s.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": standings})
}

func (s *httpHandler) statsHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	stats, err := s.Service.GetStats(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, s.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func (s *httpHandler) publicStandingsHandler(c *gin.Context) {
	standings, err := s.Service.PublicStandings(c, c.Param("code"))
	if err != nil {
		apierror.Respond(c, s.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"standings": standings})
}

func (s *httpHandler) publicStatsHandler(c *gin.Context) {
	stats, err := s.Service.PublicStats(c, c.Param("code"))
	if err != nil {
		apierror.Respond(c, s.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
