package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/domain/notification"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"github.com/yemenhybrid/workshop-go/internal/repository/mock"
)

type recordedPush struct {
	userID string
	event  interface{}
}

// recordingPusher stands in for the websocket hub.
type recordingPusher struct {
	pushes []recordedPush
}

func (p *recordingPusher) PushToUser(userID string, event interface{}) {
	p.pushes = append(p.pushes, recordedPush{userID: userID, event: event})
}

type notificationMocks struct {
	user         *mock.MockUserRepo
	notification *mock.MockNotificationRepo
}

func setupNotificationService(t *testing.T) (*NotificationService, notificationMocks, *recordingPusher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := notificationMocks{
		user:         mock.NewMockUserRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
	}
	pusher := &recordingPusher{}
	svc := NewNotificationService(&repository.Repos{
		User:         m.user,
		Notification: m.notification,
	}, pusher)
	return svc, m, pusher
}

// --------------------- Delivery ---------------------

func TestWorkOrderAssigned_LocalizedToRecipient(t *testing.T) {
	svc, m, pusher := setupNotificationService(t)

	engineer := user.User{ID: "eng-1", Role: user.RoleEngineer, PreferredLanguage: user.LanguageArabic}
	order := workorder.WorkOrder{ID: "11112222-3333-4444-5555-666677778888", CustomerID: "cust-1"}

	var saved notification.Notification
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		saved = *n
		return nil
	})

	svc.WorkOrderAssigned(order, engineer)

	assert.Equal(t, "eng-1", saved.UserID)
	assert.Equal(t, notification.CategoryInfo, saved.Type)
	assert.Equal(t, "تم تعيين أمر عمل جديد", saved.Title)
	require.NotNil(t, saved.RelatedEntityID)
	assert.Equal(t, order.ID, *saved.RelatedEntityID)

	require.Len(t, pusher.pushes, 1)
	assert.Equal(t, "eng-1", pusher.pushes[0].userID)
}

func TestWorkOrderCompleted_OneRowPerRecipient(t *testing.T) {
	svc, m, pusher := setupNotificationService(t)

	order := workorder.WorkOrder{ID: "wo-1", CustomerID: "cust-1"}
	reviewers := []user.User{
		{ID: "adm-1", Role: user.RoleAdmin, PreferredLanguage: user.LanguageEnglish},
		{ID: "sup-1", Role: user.RoleSupervisor, PreferredLanguage: user.LanguageArabic},
	}
	m.user.EXPECT().ListUsersByRole(user.RoleAdmin, user.RoleSupervisor).Return(reviewers, nil)
	m.user.EXPECT().GetUserByID("cust-1").
		Return(user.User{ID: "cust-1", Role: user.RoleCustomer, PreferredLanguage: user.LanguageArabic}, nil)

	var recipients []string
	m.notification.EXPECT().Create(gomock.Any()).DoAndReturn(func(n *notification.Notification) error {
		recipients = append(recipients, n.UserID)
		assert.Equal(t, notification.CategorySuccess, n.Type)
		return nil
	}).Times(3)

	svc.WorkOrderCompleted(order)

	assert.ElementsMatch(t, []string{"adm-1", "sup-1", "cust-1"}, recipients)
	assert.Len(t, pusher.pushes, 3)
}

func TestWorkOrderStarted_PersistFailureSkipsPush(t *testing.T) {
	svc, m, pusher := setupNotificationService(t)

	order := workorder.WorkOrder{ID: "wo-1", CustomerID: "cust-1"}
	m.user.EXPECT().GetUserByID("cust-1").Return(user.User{ID: "cust-1"}, nil)
	m.notification.EXPECT().Create(gomock.Any()).Return(assert.AnError)

	svc.WorkOrderStarted(order)

	assert.Empty(t, pusher.pushes)
}

// --------------------- Inbox ---------------------

func TestMarkRead_OtherUsersNotificationNotFound(t *testing.T) {
	svc, m, _ := setupNotificationService(t)

	m.notification.EXPECT().MarkRead("n-1", "cust-1").Return(int64(0), nil)

	err := svc.MarkRead("cust-1", "n-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMarkRead_Success(t *testing.T) {
	svc, m, _ := setupNotificationService(t)

	m.notification.EXPECT().MarkRead("n-1", "cust-1").Return(int64(1), nil)

	assert.NoError(t, svc.MarkRead("cust-1", "n-1"))
}

func TestDelete_OtherUsersNotificationNotFound(t *testing.T) {
	svc, m, _ := setupNotificationService(t)

	m.notification.EXPECT().Delete("n-1", "cust-1").Return(int64(0), nil)

	err := svc.Delete("cust-1", "n-1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
