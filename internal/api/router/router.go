package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hostel-admin/config"
	"hostel-admin/internal/api/handler"
	"hostel-admin/internal/api/middleware"
	"hostel-admin/pkg/jwt"
	"hostel-admin/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil：此时登出不写黑名单、登录不限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.RedirectTrailingSlash = true

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// nil *redis.Client 不能直接赋给接口，否则接口非 nil
	var (
		checker middleware.TokenChecker
		limiter middleware.RateLimiter
	)
	if rdb != nil {
		checker = rdb
		limiter = rdb
	}

	api := r.Group(cfg.Server.APIPrefix)
	{
		// 登录（无需认证，按 IP 限流）
		api.POST("/login/",
			middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginWindow),
			h.Auth.Login)

		// 登出始终要求有效 Token
		api.POST("/logout/", middleware.JWTAuth(jwtMgr, checker, true), h.Auth.Logout)

		authorized := api.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, checker, cfg.Auth.Enforce))
		{
			rooms := authorized.Group("/rooms")
			{
				rooms.GET("/", h.Room.ListRooms)
				rooms.POST("/", h.Room.CreateRoom)
				rooms.GET("/:id/", h.Room.GetRoom)
				rooms.PUT("/:id/", h.Room.ReplaceRoom)
				rooms.PATCH("/:id/", h.Room.UpdateRoom)
				rooms.DELETE("/:id/", h.Room.DeleteRoom)
			}

			students := authorized.Group("/students")
			{
				students.GET("/", h.Student.ListStudents)
				students.POST("/", h.Student.CreateStudent)
				students.GET("/:id/", h.Student.GetStudent)
				students.PUT("/:id/", h.Student.ReplaceStudent)
				students.PATCH("/:id/", h.Student.UpdateStudent)
				students.DELETE("/:id/", h.Student.DeleteStudent)
			}

			feeRecords := authorized.Group("/fee-records")
			{
				feeRecords.GET("/", h.FeeRecord.ListFeeRecords)
				feeRecords.POST("/", h.FeeRecord.CreateFeeRecord)
				feeRecords.GET("/export/", h.FeeRecord.ExportFeeRecords)
				feeRecords.GET("/:id/", h.FeeRecord.GetFeeRecord)
				feeRecords.PUT("/:id/", h.FeeRecord.ReplaceFeeRecord)
				feeRecords.PATCH("/:id/", h.FeeRecord.UpdateFeeRecord)
				feeRecords.DELETE("/:id/", h.FeeRecord.DeleteFeeRecord)
			}

			complaints := authorized.Group("/complaints")
			{
				complaints.GET("/", h.Complaint.ListComplaints)
				complaints.POST("/", h.Complaint.CreateComplaint)
				complaints.GET("/:id/", h.Complaint.GetComplaint)
				complaints.PUT("/:id/", h.Complaint.ReplaceComplaint)
				complaints.PATCH("/:id/", h.Complaint.UpdateComplaint)
				complaints.DELETE("/:id/", h.Complaint.DeleteComplaint)
			}

			// 操作动态只读
			authorized.GET("/activities/", h.Activity.ListActivities)
			authorized.GET("/activities/:id/", h.Activity.GetActivity)

			authorized.POST("/generate-bills/", h.Dashboard.GenerateBills)
			authorized.GET("/dashboard-stats/", h.Dashboard.Stats)
		}
	}

	return r
}
