package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"github.com/yemenhybrid/workshop-go/internal/repository/mock"
	"gorm.io/gorm"
)

type chatMocks struct {
	chat *mock.MockChatRepo
	user *mock.MockUserRepo
}

func setupChatService(t *testing.T) (*ChatService, chatMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := chatMocks{
		chat: mock.NewMockChatRepo(ctrl),
		user: mock.NewMockUserRepo(ctrl),
	}
	svc := NewChatService(&repository.Repos{Chat: m.chat, User: m.user})
	return svc, m
}

// --------------------- Channels ---------------------

func TestCreateChannel_DefaultsType(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().CreateChannel(gomock.Any()).DoAndReturn(func(ch *chat.Channel) error {
		assert.Equal(t, chat.ChannelGeneral, ch.Type)
		assert.True(t, ch.IsActive)
		return nil
	})

	_, err := svc.CreateChannel(supervisor, chat.CreateChannelInput{Name: "General"})
	assert.NoError(t, err)
}

func TestCreateChannel_RoleDenied(t *testing.T) {
	svc, _ := setupChatService(t)

	_, err := svc.CreateChannel(engineerActor(), chat.CreateChannelInput{Name: "General"})
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

// --------------------- Messages ---------------------

func TestSaveChannelMessage_EmptyBody(t *testing.T) {
	svc, _ := setupChatService(t)

	_, err := svc.SaveChannelMessage("u-1", "ch-1", "   ", nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSaveChannelMessage_ClosedChannel(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetChannelByID("ch-1").Return(chat.Channel{ID: "ch-1", IsActive: false}, nil)

	_, err := svc.SaveChannelMessage("u-1", "ch-1", "hello", nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestSaveChannelMessage_Success(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetChannelByID("ch-1").Return(chat.Channel{ID: "ch-1", IsActive: true}, nil)
	m.chat.EXPECT().CreateMessage(gomock.Any()).DoAndReturn(func(msg *chat.Message) error {
		msg.ID = "msg-1"
		return nil
	})

	msg, err := svc.SaveChannelMessage("u-1", "ch-1", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "msg-1", msg.ID)
	require.NotNil(t, msg.ChannelID)
	assert.Equal(t, "ch-1", *msg.ChannelID)
	assert.Nil(t, msg.RecipientID)
}

func TestCreateMessage_BothAddressingModes(t *testing.T) {
	svc, _ := setupChatService(t)

	channelID, recipientID := "ch-1", "u-2"
	_, err := svc.CreateMessage(Actor{ID: "u-1"}, chat.CreateMessageInput{
		ChannelID:   &channelID,
		RecipientID: &recipientID,
		Body:        "hello",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateMessage_NoAddressingMode(t *testing.T) {
	svc, _ := setupChatService(t)

	_, err := svc.CreateMessage(Actor{ID: "u-1"}, chat.CreateMessageInput{Body: "hello"})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestCreateMessage_DirectToUnknownRecipient(t *testing.T) {
	svc, m := setupChatService(t)

	recipientID := "ghost"
	m.user.EXPECT().GetUserByID("ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, err := svc.CreateMessage(Actor{ID: "u-1"}, chat.CreateMessageInput{
		RecipientID: &recipientID,
		Body:        "hello",
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestSaveDirectMessage_TouchesRecipientCustomerThread(t *testing.T) {
	svc, m := setupChatService(t)

	m.user.EXPECT().GetUserByID(customerID).Return(activeCustomer(), nil)
	m.chat.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{ID: "th-1"}, nil)
	m.chat.EXPECT().TouchThread("th-1", gomock.Any()).Return(nil)

	_, err := svc.SaveDirectMessage("sales-1", customerID, "hello", nil)
	assert.NoError(t, err)
}

func TestSaveDirectMessage_TouchesSenderThreadWhenRecipientIsStaff(t *testing.T) {
	svc, m := setupChatService(t)

	m.user.EXPECT().GetUserByID("sales-1").Return(user.User{ID: "sales-1", Role: user.RoleSales, IsActive: true}, nil)
	m.chat.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{ID: "th-1"}, nil)
	m.chat.EXPECT().TouchThread("th-1", gomock.Any()).Return(nil)

	_, err := svc.SaveDirectMessage(customerID, "sales-1", "hello", nil)
	assert.NoError(t, err)
}

func TestSaveDirectMessage_NoThreadNoTouch(t *testing.T) {
	svc, m := setupChatService(t)

	m.user.EXPECT().GetUserByID("sup-1").Return(user.User{ID: "sup-1", Role: user.RoleSupervisor, IsActive: true}, nil)
	m.chat.EXPECT().CreateMessage(gomock.Any()).Return(nil)
	m.chat.EXPECT().GetThreadByCustomer("sales-1").Return(chat.CustomerThread{}, gorm.ErrRecordNotFound)

	_, err := svc.SaveDirectMessage("sales-1", "sup-1", "hello", nil)
	assert.NoError(t, err)
}

// --------------------- Support threads ---------------------

func TestListThreads_CustomerSeesOwnThreadOnly(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{ID: "th-1", CustomerID: customerID}, nil)

	threads, err := svc.ListThreads(Actor{ID: customerID, Role: user.RoleCustomer})
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "th-1", threads[0].ID)
}

func TestListThreads_CustomerWithoutThread(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{}, gorm.ErrRecordNotFound)

	threads, err := svc.ListThreads(Actor{ID: customerID, Role: user.RoleCustomer})
	require.NoError(t, err)
	assert.Empty(t, threads)
}

func TestGetOrCreateThread_ReturnsExisting(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{ID: "th-1"}, nil)

	thread, err := svc.GetOrCreateThread(chat.CreateThreadInput{CustomerID: customerID})
	require.NoError(t, err)
	assert.Equal(t, "th-1", thread.ID)
}

func TestGetOrCreateThread_CreatesOnFirstContact(t *testing.T) {
	svc, m := setupChatService(t)

	m.chat.EXPECT().GetThreadByCustomer(customerID).Return(chat.CustomerThread{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().GetUserByID(customerID).Return(activeCustomer(), nil)
	m.chat.EXPECT().CreateThread(gomock.Any()).DoAndReturn(func(th *chat.CustomerThread) error {
		assert.Equal(t, "open", th.Status)
		th.ID = "th-1"
		return nil
	})

	thread, err := svc.GetOrCreateThread(chat.CreateThreadInput{CustomerID: customerID})
	require.NoError(t, err)
	assert.Equal(t, "th-1", thread.ID)
}
