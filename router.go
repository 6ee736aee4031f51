package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/apierror"
	"github.com/nvbf/tournament-tracker/pkg/auth"
	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/ratelimit"
	"github.com/nvbf/tournament-tracker/pkg/requestlog"
	tournamentsrepo "github.com/nvbf/tournament-tracker/repos/tournaments"

	matches "github.com/nvbf/tournament-tracker/services/matches"
	playoff "github.com/nvbf/tournament-tracker/services/playoff"
	session "github.com/nvbf/tournament-tracker/services/session"
	stats "github.com/nvbf/tournament-tracker/services/stats"
	teams "github.com/nvbf/tournament-tracker/services/teams"
	tournaments "github.com/nvbf/tournament-tracker/services/tournaments"
)

const maxBodyBytes = 50 << 10

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdnjs.cloudflare.com; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data:; " +
	"connect-src 'self'"

type routerOptions struct {
	Store    tournamentsrepo.Store
	Engine   *league.Engine
	Verifier auth.Verifier

	// Issuer is nil when sessions come from an external identity provider.
	Issuer session.Issuer

	CORSHosts   []string
	StaticDir   string
	AuthLimiter *ratelimit.Limiter
	APILimiter  *ratelimit.Limiter
	Logger      *logrus.Logger
}

func newRouter(opts routerOptions) *gin.Engine {
	logger := opts.Logger

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestlog.Middleware(logger))
	router.Use(secure.New(secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ContentSecurityPolicy: contentSecurityPolicy,
		ReferrerPolicy:        "no-referrer",
	}))
	router.Use(cors.New(corsConfig(opts.CORSHosts)))
	router.Use(limitBody(maxBodyBytes))

	authMiddleware := auth.AuthMiddleware(opts.Verifier, logger)

	api := router.Group("/api", opts.APILimiter.Middleware())
	authRouter := api.Group("/auth", opts.AuthLimiter.Middleware())
	torneosRouter := api.Group("/torneos", authMiddleware)
	publicRouter := api.Group("/public")

	var sessionService session.Sessions
	if opts.Issuer != nil {
		sessionService = session.NewSessionService(opts.Issuer, logger)
	}
	tournamentService := tournaments.NewTournamentService(opts.Store, opts.Engine, logger)
	teamsService := teams.NewTeamsService(opts.Store, opts.Engine, logger)
	matchesService := matches.NewMatchesService(opts.Store, opts.Engine, logger)
	playoffService := playoff.NewPlayoffService(opts.Store, opts.Engine, logger)
	statsService := stats.NewStatsService(tournamentService)

	session.NewHTTPHandler(session.HTTPOptions{
		Service:      sessionService,
		Router:       authRouter,
		Authenticate: authMiddleware,
		Logger:       logger,
	})

	tournaments.NewHTTPHandler(tournaments.HTTPOptions{
		Service:      tournamentService,
		Router:       torneosRouter,
		PublicRouter: publicRouter,
		Logger:       logger,
	})

	teams.NewHTTPHandler(teams.HTTPOptions{
		Service: teamsService,
		Router:  torneosRouter,
		Logger:  logger,
	})

	matches.NewHTTPHandler(matches.HTTPOptions{
		Service: matchesService,
		Router:  torneosRouter,
		Logger:  logger,
	})

	playoff.NewHTTPHandler(playoff.HTTPOptions{
		Service: playoffService,
		Router:  torneosRouter,
		Logger:  logger,
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service:      statsService,
		Router:       torneosRouter,
		PublicRouter: publicRouter,
		Logger:       logger,
	})

	router.NoRoute(spaFallback(opts.StaticDir))

	return router
}

func corsConfig(hosts []string) cors.Config {
	config := cors.DefaultConfig()
	if len(hosts) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = hosts
		config.AllowCredentials = true
	}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	return config
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// spaFallback serves files from dir and answers unknown paths with the
// single page app's index.html. API paths keep returning JSON 404s.
func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if dir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			apierror.Abort(c, http.StatusNotFound, "not found")
			return
		}
		file := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+path)))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
