package inbound_http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	feed_service "studentoffice-service/internal/application/service/feed"
	menuitem_service "studentoffice-service/internal/application/service/menuitem"
	post_service "studentoffice-service/internal/application/service/post"
	session_service "studentoffice-service/internal/application/service/session"
	studentoffice_service "studentoffice-service/internal/application/service/studentoffice"
	user_service "studentoffice-service/internal/application/service/user"
	vote_service "studentoffice-service/internal/application/service/vote"
	ports "studentoffice-service/internal/domain/ports/output"
	"studentoffice-service/internal/infrastructure/config"
	menuitem_http "studentoffice-service/internal/infrastructure/inbound/http/menuitem"
	"studentoffice-service/internal/infrastructure/inbound/http/middleware"
	post_http "studentoffice-service/internal/infrastructure/inbound/http/post"
	"studentoffice-service/internal/infrastructure/inbound/http/response"
	studentoffice_http "studentoffice-service/internal/infrastructure/inbound/http/studentoffice"
	user_http "studentoffice-service/internal/infrastructure/inbound/http/user"
	vote_http "studentoffice-service/internal/infrastructure/inbound/http/vote"
)

type Services struct {
	Feed          feed_service.Service
	Post          post_service.Service
	Vote          vote_service.Service
	User          user_service.Service
	Session       session_service.Service
	StudentOffice studentoffice_service.Service
	MenuItem      menuitem_service.Service
}

func ginMode(env string) string {
	switch env {
	case "local", "dev":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	// Credentialed requests cannot use a literal "*", so any origin is echoed back.
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && strings.TrimSpace(allowedOrigins[0]) == "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

func NewRouter(
	cfg *config.Config,
	services Services,
	cookie *middleware.SessionCookie,
	validate *validator.Validate,
	log ports.Logger,
	metrics ports.MetricsProvider,
) *gin.Engine {
	gin.SetMode(ginMode(cfg.Env))

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Metrics(metrics))
	r.Use(cors.New(corsConfig(cfg.HTTPServer.AllowedOrigins)))
	r.Use(middleware.Session(cookie, services.Session, log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(c *gin.Context) {
		response.Message(c, http.StatusNotFound, "not found")
	})

	requireUser := middleware.RequireUser()
	requireMember := middleware.RequireMembership()
	requireAdmin := middleware.RequireAdmin()

	users := r.Group("/users")
	users.POST("/register", user_http.NewRegisterHandler(services.User, services.Session, cookie, validate, log).Register)
	users.POST("/login", user_http.NewLoginHandler(services.User, services.Session, cookie, validate, log).Login)
	users.POST("/logout", requireUser, user_http.NewLogoutHandler(services.Session, cookie, log).Logout)
	users.GET("", requireUser, user_http.NewGetUserHandler(services.User, log).GetUser)
	users.PUT("", requireUser, user_http.NewUpdateUserHandler(services.User, validate, log).UpdateUser)
	users.PUT("/password", requireUser, user_http.NewUpdatePasswordHandler(services.User, services.Session, cookie, validate, log).UpdatePassword)
	users.DELETE("", requireUser, user_http.NewDeleteUserHandler(services.User, services.Session, cookie, log).DeleteUser)

	offices := r.Group("/student-offices")
	offices.GET("", studentoffice_http.NewGetStudentOfficesHandler(services.StudentOffice, validate, log).GetStudentOffices)
	offices.POST("", requireUser, studentoffice_http.NewCreateStudentOfficeHandler(services.StudentOffice, validate, log).CreateStudentOffice)
	offices.PUT("", requireAdmin, studentoffice_http.NewUpdateStudentOfficeHandler(services.StudentOffice, validate, log).UpdateStudentOffice)

	posts := r.Group("/posts")
	posts.GET("", requireMember, post_http.NewGetFeedHandler(services.Feed, log).GetFeed)
	posts.POST("", requireAdmin, post_http.NewCreatePostHandler(services.Post, validate, log).CreatePost)
	posts.PUT("/:id", requireAdmin, post_http.NewUpdatePostHandler(services.Post, validate, log).UpdatePost)
	posts.DELETE("/:id", requireAdmin, post_http.NewDeletePostHandler(services.Post, log).DeletePost)

	votes := r.Group("/votes", requireMember)
	votes.POST("", vote_http.NewCastVoteHandler(services.Vote, validate, log).CastVote)
	votes.DELETE("", vote_http.NewRetractVoteHandler(services.Vote, validate, log).RetractVote)

	menuItems := r.Group("/menu-items")
	menuItems.GET("", requireMember, menuitem_http.NewListMenuItemsHandler(services.MenuItem, log).ListMenuItems)
	menuItems.POST("", requireAdmin, menuitem_http.NewCreateMenuItemHandler(services.MenuItem, validate, log).CreateMenuItem)
	menuItems.PUT("/:id", requireAdmin, menuitem_http.NewUpdateMenuItemHandler(services.MenuItem, validate, log).UpdateMenuItem)
	menuItems.DELETE("/:id", requireAdmin, menuitem_http.NewDeleteMenuItemHandler(services.MenuItem, log).DeleteMenuItem)

	return r
}
