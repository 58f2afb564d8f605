package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"trivia-backend/internal/config"
	"trivia-backend/internal/handlers"
	"trivia-backend/internal/middleware"
	"trivia-backend/internal/services"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	router          *gin.Engine
	http            *http.Server
	log             *zap.Logger
	shutdownTimeout time.Duration
}

// New wires services, handlers and middleware. categoryCache may be nil.
func New(cfg *config.Config, db *gorm.DB, categoryCache services.CategoryCache, log *zap.Logger) *Server {
	router := NewRouter(cfg, db, categoryCache, log)
	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:             log,
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.log.Info("shutting down server")
	return s.http.Shutdown(shutdownCtx)
}

func NewRouter(cfg *config.Config, db *gorm.DB, categoryCache services.CategoryCache, log *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)

	categoryService := services.NewCategoryService(db, categoryCache)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, log)
	quizHandler := handlers.NewQuizHandler(quizService, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(log, true, func(c *gin.Context, _ any) {
		handlers.Unprocessable(c)
	}))
	r.Use(otelgin.Middleware(cfg.ServiceName))
	r.Use(middleware.Metrics())
	r.Use(middleware.AccessControlHeaders())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/category/:id/questions", categoryHandler.ListCategoryQuestions)

	r.GET("/questions", questionHandler.ListQuestions)
	r.GET("/questions/export", questionHandler.ExportQuestions)
	r.POST("/questions", questionHandler.PostQuestion)
	r.DELETE("/questions/:id", questionHandler.DeleteQuestion)

	r.POST("/quizzes", quizHandler.PlayQuiz)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
