package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"samaysetu/backend/config"
	"samaysetu/backend/internal/api/handler"
	"samaysetu/backend/internal/api/middleware"
	"samaysetu/backend/internal/model"
	"samaysetu/backend/pkg/jwt"
	"samaysetu/backend/pkg/redis"
)

// Setup builds the gin engine. rdb may be nil; token revocation and rate limiting
// are then disabled.
func Setup(cfg *config.Config, h *handler.Handler, accounts middleware.PrincipalLoader, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	if err := handler.RegisterValidators(); err != nil {
		return nil, err
	}

	var (
		revoked middleware.Revocations
		limiter middleware.Limiter
	)
	if rdb != nil {
		revoked = rdb
		limiter = rdb
	}

	r := gin.New()

	// ── global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticated := middleware.JWTAuth(jwtMgr, accounts, revoked, logger)
	anyRole := middleware.RoleAuth(model.RoleTeacher, model.RoleAdmin)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── auth ──
	auth := r.Group("/auth")
	{
		throttled := auth.Group("", middleware.RateLimit(limiter, cfg.RateLimit.AuthRequests, cfg.RateLimit.AuthWindow))
		throttled.POST("/register", h.Auth.Register)
		throttled.POST("/login", h.Auth.Login)
		throttled.POST("/forgot-password", h.Auth.ForgotPassword)
		throttled.POST("/reset-password", h.Auth.ResetPassword)
		auth.GET("/verify-email", h.Auth.VerifyEmail)

		auth.POST("/logout", authenticated, anyRole, h.Auth.Logout)
		auth.GET("/me", authenticated, anyRole, h.Auth.Me)
	}

	// ── teacher or admin ──
	api := r.Group("/api", authenticated, anyRole)
	{
		api.GET("/teachers/profile", h.Teacher.GetProfile)
		api.PUT("/teachers/profile", h.Teacher.UpdateProfile)

		availability := api.Group("/teachers/availability")
		{
			availability.GET("", h.Availability.List)
			availability.GET("/check", h.Availability.Check)
			availability.GET("/:id", h.Availability.Get)
			availability.POST("", h.Availability.Create)
			availability.PUT("/:id", h.Availability.Update)
			availability.DELETE("/:id", h.Availability.Delete)
		}

		api.GET("/departments", h.Department.List)
		api.GET("/time-slots", h.TimeSlot.List)
		api.GET("/academic-years/current", h.AcademicYear.Current)

		timetable := api.Group("/timetable")
		{
			timetable.POST("/manual", adminOnly, h.Timetable.CreateManual)
			timetable.GET("/division/:id", h.Timetable.ListByDivision)
			timetable.GET("/division/:id/export.xlsx", h.Export.DivisionSpreadsheet)
			timetable.GET("/teacher/:id", h.Timetable.ListByTeacher)
			timetable.GET("/teacher/:id/load", h.Timetable.TeacherLoad)
			timetable.GET("/teacher/:id/export.ics", h.Export.TeacherCalendar)
		}
	}

	// ── admin ──
	admin := r.Group("/admin/api", authenticated, adminOnly)
	{
		crud(admin.Group("/departments"), h.Department.List, h.Department.Get, h.Department.Create, h.Department.Update, h.Department.Delete)
		crud(admin.Group("/academic-years"), h.AcademicYear.List, h.AcademicYear.Get, h.AcademicYear.Create, h.AcademicYear.Update, h.AcademicYear.Delete)
		crud(admin.Group("/rooms"), h.ClassRoom.List, h.ClassRoom.Get, h.ClassRoom.Create, h.ClassRoom.Update, h.ClassRoom.Delete)
		crud(admin.Group("/divisions"), h.Division.List, h.Division.Get, h.Division.Create, h.Division.Update, h.Division.Delete)
		crud(admin.Group("/students"), h.Student.List, h.Student.Get, h.Student.Create, h.Student.Update, h.Student.Delete)
		crud(admin.Group("/time-slots"), h.TimeSlot.List, h.TimeSlot.Get, h.TimeSlot.Create, h.TimeSlot.Update, h.TimeSlot.Delete)

		courses := admin.Group("/courses")
		crud(courses, h.Course.List, h.Course.Get, h.Course.Create, h.Course.Update, h.Course.Delete)
		courses.POST("/:id/teachers/:teacherId", h.Teacher.AssignCourse)
		courses.DELETE("/:id/teachers/:teacherId", h.Teacher.UnassignCourse)

		teachers := admin.Group("/teachers")
		teachers.GET("/pending-approvals", h.Teacher.ListPending)
		crud(teachers, h.Teacher.List, h.Teacher.Get, h.Teacher.Create, h.Teacher.Update, h.Teacher.Delete)
		teachers.PUT("/:id/approve", h.Teacher.Approve)
		teachers.PUT("/:id/reject", h.Teacher.Reject)

		admin.DELETE("/timetable/:id", h.Timetable.Delete)
	}

	return r, nil
}

// crud registers the five standard routes on g.
func crud(g *gin.RouterGroup, list, get, create, update, remove gin.HandlerFunc) {
	g.GET("", list)
	g.GET("/:id", get)
	g.POST("", create)
	g.PUT("/:id", update)
	g.DELETE("/:id", remove)
}
