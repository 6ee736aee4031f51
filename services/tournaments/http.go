package tournaments

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nvbf/tournament-tracker/pkg/apierror"
	"github.com/nvbf/tournament-tracker/pkg/auth"
	"github.com/nvbf/tournament-tracker/pkg/league"
)

// Router is the interface for a router.
type Router interface {
	GET(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	POST(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	PUT(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	DELETE(relativePath string, handlers ...gin.HandlerFunc) gin.IRoutes
	Use(middleware ...gin.HandlerFunc) gin.IRoutes
	Group(relativePath string, handlers ...gin.HandlerFunc) *gin.RouterGroup
}

// Tournaments is the interface for the tournament service.
type Tournaments interface {
	Create(ctx context.Context, owner string, request CreateRequest) (*league.Tournament, error)
	List(ctx context.Context, owner string, page, limit int) (*ListResponse, error)
	Get(ctx context.Context, id, owner string) (*league.Tournament, error)
	Delete(ctx context.Context, id, owner string) error
	ToggleShare(ctx context.Context, id, owner string) (*ShareResponse, error)
	Public(ctx context.Context, code string) (*league.Tournament, error)
}

// HTTPOptions contains all the options needed for the HTTP handler.
type HTTPOptions struct {

	// The service we provides the HTTP transport for.
	Service Tournaments

	// The router for the owner's tournaments, behind authentication.
	Router Router

	// The router for read-only access through share codes.
	PublicRouter Router

	Logger *logrus.Logger
}

// NewHTTPHandler creates a new HTTP handler.
func NewHTTPHandler(opts HTTPOptions) {
	r := opts.Router
	h := &httpHandler{opts}
	r.POST("", h.createHandler)
	r.GET("", h.listHandler)
	r.GET("/:id", h.getHandler)
	r.DELETE("/:id", h.deleteHandler)
	r.PUT("/:id/share", h.shareHandler)

	if opts.PublicRouter != nil {
		opts.PublicRouter.GET("/:code", h.publicHandler)
	}
}

type httpHandler struct {
	HTTPOptions
}

func (h *httpHandler) createHandler(c *gin.Context) {
	var request CreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		apierror.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Service.Create(c, auth.Owner(c), request)
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *httpHandler) listHandler(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", DefaultPageSize)

	list, err := h.Service.List(c, auth.Owner(c), page, limit)
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *httpHandler) getHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	t, err := h.Service.Get(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *httpHandler) deleteHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	if err := h.Service.Delete(c, id, auth.Owner(c)); err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted"})
}

func (h *httpHandler) shareHandler(c *gin.Context) {
	id, ok := apierror.TournamentID(c)
	if !ok {
		return
	}
	share, err := h.Service.ToggleShare(c, id, auth.Owner(c))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, share)
}

func (h *httpHandler) publicHandler(c *gin.Context) {
	t, err := h.Service.Public(c, c.Param("code"))
	if err != nil {
		apierror.Respond(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}
