package application

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChatService struct {
	Repos *repository.Repos
}

func NewChatService(repos *repository.Repos) *ChatService {
	return &ChatService{Repos: repos}
}

func (s *ChatService) ListChannels() ([]chat.Channel, error) {
	return s.Repos.Chat.ListChannels()
}

func (s *ChatService) CreateChannel(actor Actor, input chat.CreateChannelInput) (chat.Channel, error) {
	if actor.Role != user.RoleAdmin && actor.Role != user.RoleSupervisor {
		return chat.Channel{}, fmt.Errorf("%w: role %s cannot create channels", apperr.ErrUnauthorized, actor.Role)
	}
	channel := chat.Channel{
		Name:        input.Name,
		Type:        input.Type,
		Description: input.Description,
		IsActive:    true,
	}
	if channel.Type == "" {
		channel.Type = chat.ChannelGeneral
	}
	if err := s.Repos.Chat.CreateChannel(&channel); err != nil {
		return chat.Channel{}, err
	}
	return channel, nil
}

func (s *ChatService) ChannelMessages(channelID string) ([]chat.Message, error) {
	if _, err := s.Repos.Chat.GetChannelByID(channelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: channel %s", apperr.ErrNotFound, channelID)
		}
		return nil, err
	}
	return s.Repos.Chat.ListChannelMessages(channelID)
}

func (s *ChatService) DirectMessages(actorID, otherUserID string) ([]chat.Message, error) {
	return s.Repos.Chat.ListDirectMessages(actorID, otherUserID)
}

// SaveChannelMessage persists a broadcast message. Durability comes
// before any fan-out: callers only hand the returned message to the
// dispatcher after this succeeds.
func (s *ChatService) SaveChannelMessage(senderID, channelID, body string, attachment datatypes.JSON) (chat.Message, error) {
	if strings.TrimSpace(body) == "" {
		return chat.Message{}, fmt.Errorf("%w: message body is required", apperr.ErrValidation)
	}
	channel, err := s.Repos.Chat.GetChannelByID(channelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Message{}, fmt.Errorf("%w: channel %s", apperr.ErrNotFound, channelID)
		}
		return chat.Message{}, err
	}
	if !channel.IsActive {
		return chat.Message{}, fmt.Errorf("%w: channel is closed", apperr.ErrValidation)
	}

	msg := chat.Message{
		ChannelID:      &channel.ID,
		SenderID:       senderID,
		Body:           body,
		AttachmentMeta: attachment,
	}
	if err := s.Repos.Chat.CreateMessage(&msg); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

func (s *ChatService) SaveDirectMessage(senderID, recipientID, body string, attachment datatypes.JSON) (chat.Message, error) {
	if strings.TrimSpace(body) == "" {
		return chat.Message{}, fmt.Errorf("%w: message body is required", apperr.ErrValidation)
	}
	recipient, err := s.Repos.User.GetUserByID(recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.Message{}, fmt.Errorf("%w: recipient %s", apperr.ErrNotFound, recipientID)
		}
		return chat.Message{}, err
	}

	msg := chat.Message{
		SenderID:       senderID,
		RecipientID:    &recipient.ID,
		Body:           body,
		AttachmentMeta: attachment,
	}
	if err := s.Repos.Chat.CreateMessage(&msg); err != nil {
		return chat.Message{}, err
	}

	// A direct exchange bumps the customer side's support thread so
	// ListThreads surfaces active conversations first.
	if recipient.Role == user.RoleCustomer {
		s.touchThread(recipient.ID)
	} else {
		s.touchThread(senderID)
	}
	return msg, nil
}

// touchThread updates the thread's last-activity time. Thread
// bookkeeping never fails message delivery; a sender without a support
// thread is a no-op.
func (s *ChatService) touchThread(customerID string) {
	thread, err := s.Repos.Chat.GetThreadByCustomer(customerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.L.Warn("load thread for activity update",
				zap.String("customer_id", customerID), zap.Error(err))
		}
		return
	}
	if err := s.Repos.Chat.TouchThread(thread.ID, time.Now()); err != nil {
		logger.L.Warn("update thread activity",
			zap.String("thread_id", thread.ID), zap.Error(err))
	}
}

// CreateMessage is the REST entry point; exactly one addressing mode
// must be populated.
func (s *ChatService) CreateMessage(actor Actor, input chat.CreateMessageInput) (chat.Message, error) {
	switch {
	case input.ChannelID != nil && input.RecipientID != nil:
		return chat.Message{}, fmt.Errorf("%w: message cannot address both a channel and a recipient", apperr.ErrValidation)
	case input.ChannelID != nil:
		return s.SaveChannelMessage(actor.ID, *input.ChannelID, input.Body, input.AttachmentMeta)
	case input.RecipientID != nil:
		return s.SaveDirectMessage(actor.ID, *input.RecipientID, input.Body, input.AttachmentMeta)
	default:
		return chat.Message{}, fmt.Errorf("%w: message needs a channel or a recipient", apperr.ErrValidation)
	}
}

func (s *ChatService) ListThreads(actor Actor) ([]chat.CustomerThread, error) {
	if actor.Role == user.RoleCustomer {
		thread, err := s.Repos.Chat.GetThreadByCustomer(actor.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []chat.CustomerThread{}, nil
			}
			return nil, err
		}
		return []chat.CustomerThread{thread}, nil
	}
	return s.Repos.Chat.ListThreads()
}

// GetOrCreateThread returns the customer's support thread, creating it
// on first contact.
func (s *ChatService) GetOrCreateThread(input chat.CreateThreadInput) (chat.CustomerThread, error) {
	thread, err := s.Repos.Chat.GetThreadByCustomer(input.CustomerID)
	if err == nil {
		return thread, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return chat.CustomerThread{}, err
	}

	if _, err := s.Repos.User.GetUserByID(input.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return chat.CustomerThread{}, fmt.Errorf("%w: customer %s", apperr.ErrNotFound, input.CustomerID)
		}
		return chat.CustomerThread{}, err
	}

	thread = chat.CustomerThread{
		CustomerID:    input.CustomerID,
		SalesRepID:    input.SalesRepID,
		Status:        "open",
		LastMessageAt: time.Now(),
	}
	if err := s.Repos.Chat.CreateThread(&thread); err != nil {
		return chat.CustomerThread{}, err
	}
	return thread, nil
}
