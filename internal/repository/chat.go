package repository

import (
	"time"

	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"gorm.io/gorm"
)

type ChatRepo interface {
	ListChannels() ([]chat.Channel, error)
	GetChannelByID(id string) (chat.Channel, error)
	CreateChannel(c *chat.Channel) error

	// ListChannelMessages returns a channel's history ordered by
	// creation time, so pushed and fetched views agree on ordering.
	ListChannelMessages(channelID string) ([]chat.Message, error)
	ListDirectMessages(userA, userB string) ([]chat.Message, error)
	CreateMessage(m *chat.Message) error

	ListThreads() ([]chat.CustomerThread, error)
	GetThreadByCustomer(customerID string) (chat.CustomerThread, error)
	CreateThread(t *chat.CustomerThread) error
	TouchThread(id string, at time.Time) error

	WithTx(tx *gorm.DB) ChatRepo
}

type DBChatRepo struct {
	db *gorm.DB
}

func NewChatRepo(db *gorm.DB) *DBChatRepo {
	return &DBChatRepo{db: db}
}

func (r *DBChatRepo) WithTx(tx *gorm.DB) ChatRepo {
	return &DBChatRepo{db: tx}
}

func (r *DBChatRepo) ListChannels() ([]chat.Channel, error) {
	var channels []chat.Channel
	err := r.db.Where("is_active = true").Order("created_at").Find(&channels).Error
	return channels, err
}

func (r *DBChatRepo) GetChannelByID(id string) (chat.Channel, error) {
	var c chat.Channel
	err := r.db.Where("id = ?", id).First(&c).Error
	return c, err
}

func (r *DBChatRepo) CreateChannel(c *chat.Channel) error {
	return r.db.Create(c).Error
}

func (r *DBChatRepo) ListChannelMessages(channelID string) ([]chat.Message, error) {
	var msgs []chat.Message
	err := r.db.Where("channel_id = ?", channelID).Order("created_at").Find(&msgs).Error
	return msgs, err
}

func (r *DBChatRepo) ListDirectMessages(userA, userB string) ([]chat.Message, error) {
	var msgs []chat.Message
	err := r.db.
		Where("channel_id IS NULL").
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at").
		Find(&msgs).Error
	return msgs, err
}

func (r *DBChatRepo) CreateMessage(m *chat.Message) error {
	return r.db.Create(m).Error
}

func (r *DBChatRepo) ListThreads() ([]chat.CustomerThread, error) {
	var threads []chat.CustomerThread
	err := r.db.Order("last_message_at DESC").Find(&threads).Error
	return threads, err
}

func (r *DBChatRepo) GetThreadByCustomer(customerID string) (chat.CustomerThread, error) {
	var t chat.CustomerThread
	err := r.db.Where("customer_id = ?", customerID).First(&t).Error
	return t, err
}

func (r *DBChatRepo) CreateThread(t *chat.CustomerThread) error {
	return r.db.Create(t).Error
}

func (r *DBChatRepo) TouchThread(id string, at time.Time) error {
	return r.db.Model(&chat.CustomerThread{}).Where("id = ?", id).Update("last_message_at", at).Error
}
