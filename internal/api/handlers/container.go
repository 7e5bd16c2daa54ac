package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/storage"
	"github.com/yemenhybrid/workshop-go/pkg/response"
)

type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Catalog      *CatalogHandler
	WorkOrder    *WorkOrderHandler
	Chat         *ChatHandler
	Notification *NotificationHandler
	Report       *ReportHandler
	Router       *gin.Engine
}

func New(svc *application.Services, store *storage.Store, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(svc.User),
		User:         NewUserHandler(svc.User),
		Catalog:      NewCatalogHandler(svc.Catalog),
		WorkOrder:    NewWorkOrderHandler(svc.WorkOrder),
		Chat:         NewChatHandler(svc.Chat, store),
		Notification: NewNotificationHandler(svc.Notification),
		Report:       NewReportHandler(svc.Report),
		Router:       router,
	}
}

// actor pulls the authenticated caller from the JWT claims. A missing
// claim set means the route was wired without auth middleware.
func actor(c *gin.Context) (application.Actor, bool) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Authentication required"})
		return application.Actor{}, false
	}
	return application.Actor{
		ID:                claims.UserID,
		Role:              claims.Role,
		PreferredLanguage: claims.PreferredLanguage,
	}, true
}
