package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "HealthRiskPredictor/docs"
	"HealthRiskPredictor/internal/auth"
	"HealthRiskPredictor/internal/config"
	"HealthRiskPredictor/internal/handler"
	"HealthRiskPredictor/internal/middleware"
	"HealthRiskPredictor/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// @title           Health Risk Predictor API
// @version         1.0
// @description     폐암 위험도 예측 및 환자 평가 레코드 관리 API
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func setupRouter(store *storage.PatientStore, issuer *auth.Issuer, authHandler *handler.AuthHandler) *gin.Engine {
	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, "Authorization")
	router.Use(cors.New(config))
	router.Use(middleware.RequestID())

	patientHandler := handler.NewPatientHandler(store)

	router.GET("/", patientHandler.Health)
	router.POST("/predict-risk", patientHandler.PredictRisk)
	router.POST("/patients", patientHandler.SavePatient)

	// 로그인 시도는 IP당 초당 1회, 버스트 5회까지만 허용
	loginLimiter := limit.NewRateLimiter(func(c *gin.Context) string {
		return c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Every(time.Second), 5), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts"})
	})
	router.POST("/token", loginLimiter, authHandler.Token)

	protected := router.Group("/").Use(middleware.AuthMiddleware(issuer))
	{
		protected.GET("/patients", patientHandler.ListPatients)
		protected.PUT("/patients/:id", patientHandler.UpdatePatient)
		protected.DELETE("/patients/:id", patientHandler.DeletePatient)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}

func main() {
	// .env 파일이 없어도 무시하고 환경변수로 진행
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("main: ", err)
	}
	defer store.Close()

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.APIUsername, cfg.TokenTTL)
	authHandler, err := handler.NewAuthHandler(cfg, issuer)
	if err != nil {
		log.Fatal("main: failed to init auth handler: ", err)
	}

	router := setupRouter(store, issuer, authHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("main: server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("main: forced to shutdown: ", err)
	}
	log.Println("Server stopped")
}
