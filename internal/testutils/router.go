package testutils

import (
	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/api/handlers"
	"github.com/yemenhybrid/workshop-go/internal/api/routes"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/realtime"
)

// SetupRouter builds a TestMode router with the full route table.
func SetupRouter(svc *application.Services, hub *realtime.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handlers.New(svc, nil, r)
	routes.RegisterRoutes(r, h, hub)
	return r
}
