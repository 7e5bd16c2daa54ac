package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChannelType string

const (
	ChannelGeneral         ChannelType = "general"
	ChannelTech            ChannelType = "tech"
	ChannelSales           ChannelType = "sales"
	ChannelDirect          ChannelType = "direct"
	ChannelCustomerSupport ChannelType = "customer_support"
)

type Channel struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Type        ChannelType `gorm:"size:30;not null;default:'general'" json:"type"`
	Description *string     `json:"description,omitempty"`
	IsActive    bool        `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
}

func (c *Channel) TableName() string { return "chat_channels" }

func (c *Channel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Message is addressed either to a channel (broadcast) or to a
// recipient (direct). Exactly one of ChannelID/RecipientID is set.
type Message struct {
	ID             string         `gorm:"type:uuid;primaryKey" json:"id"`
	ChannelID      *string        `gorm:"type:uuid;index" json:"channelId,omitempty"`
	SenderID       string         `gorm:"type:uuid;not null;index" json:"senderId"`
	RecipientID    *string        `gorm:"type:uuid;index" json:"recipientId,omitempty"`
	Body           string         `gorm:"type:text;not null" json:"body"`
	AttachmentMeta datatypes.JSON `json:"attachmentMeta,omitempty"`
	IsRead         bool           `gorm:"not null;default:false" json:"isRead"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// CustomerThread tracks the support conversation between a customer and
// an optional assigned sales rep.
type CustomerThread struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	CustomerID    string    `gorm:"type:uuid;not null;index" json:"customerId"`
	SalesRepID    *string   `gorm:"type:uuid" json:"salesRepId,omitempty"`
	Status        string    `gorm:"size:20;not null;default:'open'" json:"status"`
	LastMessageAt time.Time `gorm:"not null;autoCreateTime" json:"lastMessageAt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (t *CustomerThread) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
