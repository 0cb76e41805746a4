// Package api is the HTTP admin boundary of the feed sync service.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/MichalMitros/supplier-feed-sync/internal/categorytree"
	"github.com/MichalMitros/supplier-feed-sync/internal/platform/models"
	"github.com/MichalMitros/supplier-feed-sync/internal/syncer"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const defaultPreviewTTL = 30 * time.Minute

//go:generate mockery --name Syncer --filename syncer.go
//go:generate mockery --name Suppliers --filename suppliers.go
//go:generate mockery --name CategoryEditor --filename category_editor.go
//go:generate mockery --name QuickSyncCommander --filename quick_sync_commander.go

// Syncer runs supplier feed syncs.
type Syncer interface {
	Prepare(ctx context.Context, supplierID string) (*syncer.Preview, error)
	Commit(ctx context.Context, preview *syncer.Preview, selection models.Selection) (*models.Run, error)
	QuickSync(ctx context.Context, supplierID string) (*models.Run, error)
	QuickSyncAll(ctx context.Context, supplierIDs []string) map[string]error
	SyncFeed(ctx context.Context, req syncer.FeedRequest) ([]models.PricedProduct, error)
}

// Suppliers is suppliers storage.
type Suppliers interface {
	CreateSupplier(ctx context.Context, supplier *models.Supplier) (*models.Supplier, error)
	GetSupplier(ctx context.Context, supplierID string) (*models.Supplier, error)
	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
}

// CategoryEditor edits the store category tree.
type CategoryEditor interface {
	Nested(ctx context.Context) ([]categorytree.Node, error)
	Subtree(ctx context.Context, id string) ([]models.StoreCategory, error)
	Reload(ctx context.Context) error
	Create(ctx context.Context, name string) (models.StoreCategory, error)
	Rename(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, id, raw string) error
	Unassign(ctx context.Context, id, raw string) error
	MoveRaw(ctx context.Context, raw, toID string) error
	Relocate(ctx context.Context, id string, parentID *string, index int) error
}

// QuickSyncCommander enqueues quick syncs.
type QuickSyncCommander interface {
	SendQuickSyncCommand(ctx context.Context, supplierID string) error
}

// RequestMetrics records handled requests and exports metrics.
type RequestMetrics interface {
	RecordRequest(method, endpoint string, statusCode int, duration time.Duration)
	Handler() http.Handler
}

// Option is custom configuration of Server.
type Option func(s *Server)

// WithCommander makes quick sync requests asynchronous, sent as commands.
func WithCommander(c QuickSyncCommander) Option {
	return func(s *Server) {
		s.commander = c
	}
}

// WithMetrics sets request metrics and exposes them on /metrics.
func WithMetrics(m RequestMetrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithPreviewTTL sets how long prepared full sync waits for confirmation.
func WithPreviewTTL(ttl time.Duration) Option {
	return func(s *Server) {
		s.previews.ttl = ttl
	}
}

// Server serves the admin API.
type Server struct {
	syncer     Syncer
	suppliers  Suppliers
	categories CategoryEditor
	commander  QuickSyncCommander
	metrics    RequestMetrics
	previews   *previews
	logger     *zerolog.Logger
}

// NewServer returns new Server.
func NewServer(
	syncer Syncer,
	suppliers Suppliers,
	categories CategoryEditor,
	logger *zerolog.Logger,
	ops ...Option,
) *Server {
	s := &Server{
		syncer:     syncer,
		suppliers:  suppliers,
		categories: categories,
		previews:   newPreviews(defaultPreviewTTL),
		logger:     logger,
	}

	for _, op := range ops {
		op(s)
	}

	return s
}

// Router returns gin engine with all API routes.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), s.observe())

	router.GET("/health", s.health)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.POST("/feeds/sync", s.syncFeed)
		v1.POST("/quick-sync", s.quickSyncAll)

		suppliers := v1.Group("/suppliers")
		{
			suppliers.GET("", s.listSuppliers)
			suppliers.POST("", s.createSupplier)
			suppliers.GET("/:id", s.getSupplier)
			suppliers.POST("/:id/sync", s.prepareSync)
			suppliers.POST("/:id/sync/confirm", s.confirmSync)
			suppliers.POST("/:id/quick-sync", s.quickSync)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", s.listCategories)
			categories.POST("", s.createCategory)
			categories.GET("/:id/subtree", s.getSubtree)
			categories.PATCH("/:id", s.renameCategory)
			categories.DELETE("/:id", s.deleteCategory)
			categories.POST("/:id/raw", s.assignRawCategory)
			categories.DELETE("/:id/raw", s.unassignRawCategory)
			categories.POST("/:id/move", s.relocateCategory)
		}

		v1.POST("/raw-categories/move", s.moveRawCategory)
		v1.POST("/category-tree/reload", s.reloadCategories)
	}

	return router
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// observe logs and measures handled requests.
func (s *Server) observe() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		duration := time.Since(started)
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		if s.metrics != nil {
			s.metrics.RecordRequest(c.Request.Method, endpoint, c.Writer.Status(), duration)
		}

		event := s.logger.Debug()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = s.logger.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", endpoint).
			Int("status", c.Writer.Status()).
			Dur("duration", duration).
			Msg("request handled")
	}
}
