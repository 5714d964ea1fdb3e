package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Ganapati12/Edulists-sub001/internal/domain/entity"
	"github.com/Ganapati12/Edulists-sub001/internal/handler/http/middleware"
	"github.com/Ganapati12/Edulists-sub001/internal/infrastructure/metrics"
	"github.com/Ganapati12/Edulists-sub001/internal/usecase"
	usecasecontract "github.com/Ganapati12/Edulists-sub001/internal/usecase/contract"
)

type Router struct {
	authHandler      *AuthHandler
	courseHandler    *CourseHandler
	enquiryHandler   *EnquiryHandler
	reviewHandler    *ReviewHandler
	dashboardHandler *DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
}

func NewRouter(
	authUsecase usecasecontract.IAuthUseCase,
	courseUsecase usecasecontract.ICourseUseCase,
	enquiryUsecase usecasecontract.IEnquiryUseCase,
	reviewUsecase usecasecontract.IReviewUseCase,
	dashboardUsecase usecasecontract.IDashboardUseCase,
	jwtService usecase.JWTService,
) *Router {
	return &Router{
		authHandler:      NewAuthHandler(authUsecase),
		courseHandler:    NewCourseHandler(courseUsecase),
		enquiryHandler:   NewEnquiryHandler(enquiryUsecase),
		reviewHandler:    NewReviewHandler(reviewUsecase),
		dashboardHandler: NewDashboardHandler(dashboardUsecase),
		authMiddleware:   middleware.NewAuthMiddleware(jwtService, authUsecase),
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(20, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))

	router.Use(metrics.RequestMetrics())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	authenticate := r.authMiddleware.Authenticate()
	optionalAuth := r.authMiddleware.OptionalAuthenticate()

	auth := api.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.GET("/profile", authenticate, r.authHandler.GetProfile)
		auth.PUT("/profile", authenticate, r.authHandler.UpdateProfile)
		auth.PUT("/change-password", authenticate, r.authHandler.ChangePassword)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", r.courseHandler.ListCourses)
		courses.GET("/institute/:instituteId", r.courseHandler.ListInstituteCourses)
		courses.GET("/:id", r.courseHandler.GetCourse)

		manage := courses.Group("")
		manage.Use(authenticate, middleware.RequireRoles(entity.RoleInstitute, entity.RoleAdmin), middleware.RequireInstituteOwnership())
		{
			manage.POST("", r.courseHandler.CreateCourse)
			manage.PUT("/:id", r.courseHandler.UpdateCourse)
			manage.DELETE("/:id", r.courseHandler.DeleteCourse)
		}
	}

	enquiries := api.Group("/enquiries")
	{
		enquiries.POST("", optionalAuth, r.enquiryHandler.CreateEnquiry)

		manage := enquiries.Group("")
		manage.Use(authenticate, middleware.RequireRoles(entity.RoleInstitute, entity.RoleAdmin))
		{
			manage.GET("", r.enquiryHandler.ListEnquiries)
			manage.GET("/stats", r.enquiryHandler.GetEnquiryStats)
			manage.GET("/:id", r.enquiryHandler.GetEnquiry)
			manage.PUT("/:id/reply", r.enquiryHandler.ReplyEnquiry)
			manage.PUT("/:id/status", r.enquiryHandler.UpdateEnquiryStatus)
			manage.DELETE("/:id", r.enquiryHandler.DeleteEnquiry)
		}
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.ListReviews)
		reviews.GET("/stats", r.reviewHandler.GetReviewStats)

		reviews.POST("", authenticate, middleware.RequireInstituteOwnership(), r.reviewHandler.CreateReview)
		reviews.GET("/:id", authenticate, r.reviewHandler.GetReview)
		reviews.PUT("/:id", authenticate, r.reviewHandler.UpdateReview)
		reviews.DELETE("/:id", authenticate, r.reviewHandler.DeleteReview)
		reviews.PUT("/:id/flag", authenticate, middleware.RequireRoles(entity.RoleInstitute, entity.RoleAdmin), r.reviewHandler.FlagReview)
		reviews.PUT("/:id/approve", authenticate, middleware.RequireRoles(entity.RoleAdmin), r.reviewHandler.ApproveReview)
	}

	dashboard := api.Group("/dashboard")
	dashboard.Use(authenticate)
	{
		dashboard.GET("", r.dashboardHandler.GetOverview)
		dashboard.GET("/stats/institute", middleware.RequireRoles(entity.RoleInstitute, entity.RoleAdmin), r.dashboardHandler.GetInstituteStats)
		dashboard.GET("/stats/platform", middleware.RequireRoles(entity.RoleAdmin), r.dashboardHandler.GetPlatformStats)
	}
}
