package router

import (
	"time"

	"menucatalog/internal/config"
	"menucatalog/internal/handler"
	"menucatalog/internal/middleware"
	"menucatalog/internal/repository"
	"menucatalog/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
// rdb may be nil, in which case rate limiting stays in-process.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	var counter middleware.RateCounter = middleware.NewMemoryCounter()
	if rdb != nil {
		counter = middleware.NewRedisCounter(rdb)
	}

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	if cfg.RateLimitPerMinute > 0 {
		r.Use(middleware.RateLimiter(counter, int64(cfg.RateLimitPerMinute), time.Minute))
	}

	menuItemRepo := repository.NewMenuItemRepository(db, cfg.QueryTimeout())
	menuItemSvc := service.NewMenuItemService(menuItemRepo)
	menuItemsH := handler.NewMenuItemsHandler(menuItemSvc)

	r.GET("/health", handler.Health(db, rdb))

	items := r.Group("/v1/menu-items")
	{
		items.POST("", menuItemsH.Create)
		items.GET("", menuItemsH.List)
		items.GET("/:id", menuItemsH.GetByID)
		items.PATCH("/:id", menuItemsH.Update)
		items.DELETE("/:id", menuItemsH.Delete)
	}

	return r
}
