package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category string

const (
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
	CategoryError   Category = "error"
)

// Notification is created only by the notification generator in
// response to a lifecycle event. Title and message are localized to the
// recipient's preferred language at creation time and never re-derived.
type Notification struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID            string    `gorm:"type:uuid;not null;index" json:"userId"`
	Title             string    `gorm:"not null" json:"title"`
	Message           string    `gorm:"type:text;not null" json:"message"`
	Type              Category  `gorm:"size:20;not null;default:'info'" json:"type"`
	RelatedEntityType *string   `gorm:"size:30" json:"relatedEntityType,omitempty"`
	RelatedEntityID   *string   `gorm:"type:uuid" json:"relatedEntityId,omitempty"`
	IsRead            bool      `gorm:"not null;default:false" json:"isRead"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
