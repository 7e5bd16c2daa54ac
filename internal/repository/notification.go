package repository

import (
	"github.com/yemenhybrid/workshop-go/internal/domain/notification"
	"gorm.io/gorm"
)

type NotificationRepo interface {
	ListByUser(userID string) ([]notification.Notification, error)
	Create(n *notification.Notification) error
	// MarkRead and Delete are scoped to the owning user so one user can
	// never touch another's notifications.
	MarkRead(id, userID string) (int64, error)
	MarkAllRead(userID string) error
	Delete(id, userID string) (int64, error)

	WithTx(tx *gorm.DB) NotificationRepo
}

type DBNotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) *DBNotificationRepo {
	return &DBNotificationRepo{db: db}
}

func (r *DBNotificationRepo) WithTx(tx *gorm.DB) NotificationRepo {
	return &DBNotificationRepo{db: tx}
}

func (r *DBNotificationRepo) ListByUser(userID string) ([]notification.Notification, error) {
	var items []notification.Notification
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *DBNotificationRepo) Create(n *notification.Notification) error {
	return r.db.Create(n).Error
}

func (r *DBNotificationRepo) MarkRead(id, userID string) (int64, error) {
	res := r.db.Model(&notification.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *DBNotificationRepo) MarkAllRead(userID string) error {
	return r.db.Model(&notification.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
}

func (r *DBNotificationRepo) Delete(id, userID string) (int64, error) {
	res := r.db.Delete(&notification.Notification{}, "id = ? AND user_id = ?", id, userID)
	return res.RowsAffected, res.Error
}
