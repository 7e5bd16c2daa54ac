package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/api/handlers"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/api/routes"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/config"
	"github.com/yemenhybrid/workshop-go/internal/db"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"github.com/yemenhybrid/workshop-go/internal/realtime"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"github.com/yemenhybrid/workshop-go/internal/storage"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	log := logger.Init()
	defer logger.Sync()

	middleware.Init()

	gormDB, err := db.Open()
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	store, err := storage.NewStore()
	if err != nil {
		log.Fatal("failed to connect to object storage", zap.Error(err))
	}

	repos := repository.NewRepositories(gormDB)

	// The hub needs the chat service for persist-before-broadcast, and
	// the notification service needs the hub for live pushes. Build the
	// hub first with a late-bound store.
	hub := realtime.NewHub(verifyToken, nil, log)
	services := application.New(repos, hub)
	hub.SetStore(services.Chat)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())

	h := handlers.New(services, store, router)
	routes.RegisterRoutes(router, h, hub)

	addr := ":" + config.ServerPort
	log.Info("starting api server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

// verifyToken adapts the JWT middleware's parser to the websocket
// handshake.
func verifyToken(token string) (realtime.Identity, error) {
	claims, err := middleware.ParseToken(token)
	if err != nil {
		return realtime.Identity{}, err
	}
	return realtime.Identity{
		UserID:            claims.UserID,
		Role:              claims.Role,
		PreferredLanguage: claims.PreferredLanguage,
	}, nil
}
