package application

import (
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/repository"
)

// Actor identifies the authenticated caller of a service operation.
type Actor struct {
	ID                string
	Role              user.Role
	PreferredLanguage user.Language
}

// Pusher delivers a server event to every live connection bound to a
// user. The realtime hub implements it; services stay decoupled from
// the websocket layer.
type Pusher interface {
	PushToUser(userID string, event interface{})
}

type Services struct {
	User         *UserService
	Catalog      *CatalogService
	WorkOrder    *WorkOrderService
	Chat         *ChatService
	Notification *NotificationService
	Report       *ReportService
}

func New(repos *repository.Repos, pusher Pusher) *Services {
	notification := NewNotificationService(repos, pusher)
	return &Services{
		User:         NewUserService(repos),
		Catalog:      NewCatalogService(repos),
		WorkOrder:    NewWorkOrderService(repos, notification),
		Chat:         NewChatService(repos),
		Notification: notification,
		Report:       NewReportService(repos),
	}
}
