package application

import (
	"errors"
	"fmt"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/notification"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const relatedEntityWorkOrder = "work_order"

// NotificationService turns lifecycle events into persisted,
// per-recipient notification rows and pushes them to live connections.
// Persistence always happens first; a missing pusher or offline
// recipient only skips the live push.
type NotificationService struct {
	Repos  *repository.Repos
	Pusher Pusher
}

func NewNotificationService(repos *repository.Repos, pusher Pusher) *NotificationService {
	return &NotificationService{Repos: repos, Pusher: pusher}
}

func (s *NotificationService) WorkOrderAssigned(order workorder.WorkOrder, engineer user.User) {
	s.deliver(order, notification.CategoryInfo, workOrderAssignedMessage(order.ID), engineer)
}

func (s *NotificationService) WorkOrderStarted(order workorder.WorkOrder) {
	s.deliverToCustomer(order, notification.CategoryInfo, workOrderStartedMessage(order.ID))
}

// WorkOrderCompleted notifies every admin/supervisor reviewer plus the
// customer.
func (s *NotificationService) WorkOrderCompleted(order workorder.WorkOrder) {
	msg := workOrderCompletedMessage(order.ID)

	reviewers, err := s.Repos.User.ListUsersByRole(user.RoleAdmin, user.RoleSupervisor)
	if err != nil {
		logger.L.Error("list reviewers for completion notification",
			zap.String("work_order_id", order.ID), zap.Error(err))
	} else {
		s.deliver(order, notification.CategorySuccess, msg, reviewers...)
	}
	s.deliverToCustomer(order, notification.CategorySuccess, msg)
}

func (s *NotificationService) WorkOrderDelivered(order workorder.WorkOrder) {
	s.deliverToCustomer(order, notification.CategorySuccess, workOrderDeliveredMessage(order.ID))
}

func (s *NotificationService) deliverToCustomer(order workorder.WorkOrder, category notification.Category, msg localizedMessage) {
	customer, err := s.Repos.User.GetUserByID(order.CustomerID)
	if err != nil {
		logger.L.Error("load customer for notification",
			zap.String("work_order_id", order.ID),
			zap.String("customer_id", order.CustomerID),
			zap.Error(err))
		return
	}
	s.deliver(order, category, msg, customer)
}

// deliver creates one row per recipient, localized to that recipient's
// stored language, then fans out.
func (s *NotificationService) deliver(order workorder.WorkOrder, category notification.Category, msg localizedMessage, recipients ...user.User) {
	entityType := relatedEntityWorkOrder
	for _, recipient := range recipients {
		title, body := msg.For(recipient.PreferredLanguage)
		n := notification.Notification{
			UserID:            recipient.ID,
			Title:             title,
			Message:           body,
			Type:              category,
			RelatedEntityType: &entityType,
			RelatedEntityID:   &order.ID,
		}
		if err := s.Repos.Notification.Create(&n); err != nil {
			logger.L.Error("persist notification",
				zap.String("user_id", recipient.ID),
				zap.String("work_order_id", order.ID),
				zap.Error(err))
			continue
		}
		if s.Pusher != nil {
			s.Pusher.PushToUser(recipient.ID, map[string]interface{}{
				"type":         "new_notification",
				"notification": n,
			})
		}
	}
}

func (s *NotificationService) ListForUser(userID string) ([]notification.Notification, error) {
	return s.Repos.Notification.ListByUser(userID)
}

func (s *NotificationService) MarkRead(userID, id string) error {
	rows, err := s.Repos.Notification.MarkRead(id, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: notification %s", apperr.ErrNotFound, id)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(userID string) error {
	return s.Repos.Notification.MarkAllRead(userID)
}

func (s *NotificationService) Delete(userID, id string) error {
	rows, err := s.Repos.Notification.Delete(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: notification %s", apperr.ErrNotFound, id)
		}
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: notification %s", apperr.ErrNotFound, id)
	}
	return nil
}
