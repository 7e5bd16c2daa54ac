package repository_test

import (
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/notification"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"github.com/yemenhybrid/workshop-go/internal/testutils"
	"gorm.io/gorm"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}

	gormDB, cleanup := testutils.SetupPostgresForIntegration()
	testDB = gormDB
	code := m.Run()
	cleanup()
	os.Exit(code)
}

func setupRepos(t *testing.T) *repository.Repos {
	if testDB == nil {
		t.Skip("skipped in short mode")
	}
	return repository.NewRepositories(testDB)
}

func createUser(t *testing.T, repos *repository.Repos, role user.Role) user.User {
	suffix := uuid.NewString()[:8]
	u := user.User{
		FullName: "Test " + suffix,
		Email:    fmt.Sprintf("%s@example.com", suffix),
		Username: "user_" + suffix,
		Role:     role,
		IsActive: true,
	}
	require.NoError(t, repos.User.CreateUser(&u))
	return u
}

func createOrder(t *testing.T, repos *repository.Repos, customerID, openedByID string) workorder.WorkOrder {
	w := workorder.WorkOrder{
		CustomerID:   customerID,
		VehicleIdent: "PLATE-" + uuid.NewString()[:8],
		OpenedByID:   openedByID,
		ServiceID:    uuid.NewString(),
		Status:       workorder.StatusNew,
	}
	require.NoError(t, repos.WorkOrder.CreateWorkOrder(&w))
	return w
}

// --------------------- Users ---------------------

func TestUserRepo_RoundTrip(t *testing.T) {
	repos := setupRepos(t)

	u := createUser(t, repos, user.RoleEngineer)

	got, err := repos.User.GetUserByUsername(u.Username)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = repos.User.GetUserByEmail(u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	require.NoError(t, repos.User.UpdateUserFields(u.ID, map[string]interface{}{
		"preferred_language": user.LanguageArabic,
	}))
	got, err = repos.User.GetUserByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, user.LanguageArabic, got.PreferredLanguage)
}

func TestUserRepo_ListByRoleExcludesInactive(t *testing.T) {
	repos := setupRepos(t)

	active := createUser(t, repos, user.RoleSupervisor)
	inactive := createUser(t, repos, user.RoleSupervisor)
	require.NoError(t, repos.User.DeactivateUser(inactive.ID))

	users, err := repos.User.ListUsersByRole(user.RoleSupervisor)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, u := range users {
		ids[u.ID] = true
	}
	assert.True(t, ids[active.ID])
	assert.False(t, ids[inactive.ID])
}

// --------------------- Work orders ---------------------

func TestWorkOrderRepo_ConditionalUpdate(t *testing.T) {
	repos := setupRepos(t)

	customer := createUser(t, repos, user.RoleCustomer)
	opener := createUser(t, repos, user.RoleSupervisor)
	w := createOrder(t, repos, customer.ID, opener.ID)

	rows, err := repos.WorkOrder.UpdateWorkOrderIf(w.ID, workorder.StatusNew, map[string]interface{}{
		"status": workorder.StatusAssigned,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// The order already left "new"; a second identical update must
	// match nothing.
	rows, err = repos.WorkOrder.UpdateWorkOrderIf(w.ID, workorder.StatusNew, map[string]interface{}{
		"status": workorder.StatusAssigned,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	got, err := repos.WorkOrder.GetWorkOrderByID(w.ID)
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusAssigned, got.Status)
}

func TestWorkOrderRepo_PartsAndTotal(t *testing.T) {
	repos := setupRepos(t)

	customer := createUser(t, repos, user.RoleCustomer)
	w := createOrder(t, repos, customer.ID, customer.ID)

	part := workorder.Part{
		WorkOrderID: w.ID,
		PartID:      uuid.NewString(),
		Qty:         2,
		UnitPrice:   75,
		LineTotal:   150,
	}
	require.NoError(t, repos.WorkOrder.AddPart(&part))
	require.NoError(t, repos.WorkOrder.IncrementTotalCost(w.ID, 150))

	lines, err := repos.WorkOrder.ListParts(w.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 150.0, lines[0].LineTotal)

	got, err := repos.WorkOrder.GetWorkOrderByID(w.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got.TotalCost)
}

func TestWorkOrderRepo_EventsKeepOrder(t *testing.T) {
	repos := setupRepos(t)

	customer := createUser(t, repos, user.RoleCustomer)
	w := createOrder(t, repos, customer.ID, customer.ID)

	for _, et := range []workorder.EventType{workorder.EventCreated, workorder.EventAssigned, workorder.EventStarted} {
		require.NoError(t, repos.WorkOrder.AppendEvent(&workorder.Event{
			WorkOrderID: w.ID,
			EventType:   et,
		}))
	}

	events, err := repos.WorkOrder.ListEvents(w.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, workorder.EventCreated, events[0].EventType)
	assert.Equal(t, workorder.EventAssigned, events[1].EventType)
	assert.Equal(t, workorder.EventStarted, events[2].EventType)
}

func TestWorkOrderRepo_TransactionRollsBack(t *testing.T) {
	repos := setupRepos(t)

	customer := createUser(t, repos, user.RoleCustomer)
	w := createOrder(t, repos, customer.ID, customer.ID)

	err := repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.WorkOrder.UpdateWorkOrderIf(w.ID, workorder.StatusNew, map[string]interface{}{
			"status": workorder.StatusAssigned,
		}); err != nil {
			return err
		}
		return fmt.Errorf("forced failure")
	})
	require.Error(t, err)

	got, err := repos.WorkOrder.GetWorkOrderByID(w.ID)
	require.NoError(t, err)
	assert.Equal(t, workorder.StatusNew, got.Status)
}

// --------------------- Chat ---------------------

func TestChatRepo_ChannelMessagesOrdered(t *testing.T) {
	repos := setupRepos(t)

	sender := createUser(t, repos, user.RoleSales)
	ch := chat.Channel{Name: "test-" + uuid.NewString()[:8], Type: chat.ChannelGeneral, IsActive: true}
	require.NoError(t, repos.Chat.CreateChannel(&ch))

	for i := 0; i < 3; i++ {
		msg := chat.Message{ChannelID: &ch.ID, SenderID: sender.ID, Body: fmt.Sprintf("msg %d", i)}
		require.NoError(t, repos.Chat.CreateMessage(&msg))
		time.Sleep(5 * time.Millisecond)
	}

	msgs, err := repos.Chat.ListChannelMessages(ch.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "msg 0", msgs[0].Body)
	assert.Equal(t, "msg 2", msgs[2].Body)
}

func TestChatRepo_DirectMessagesBothDirections(t *testing.T) {
	repos := setupRepos(t)

	a := createUser(t, repos, user.RoleSales)
	b := createUser(t, repos, user.RoleCustomer)

	m1 := chat.Message{SenderID: a.ID, RecipientID: &b.ID, Body: "hi"}
	require.NoError(t, repos.Chat.CreateMessage(&m1))
	m2 := chat.Message{SenderID: b.ID, RecipientID: &a.ID, Body: "hello"}
	require.NoError(t, repos.Chat.CreateMessage(&m2))

	msgs, err := repos.Chat.ListDirectMessages(a.ID, b.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestChatRepo_TouchThreadBumpsActivity(t *testing.T) {
	repos := setupRepos(t)

	customer := createUser(t, repos, user.RoleCustomer)
	th := chat.CustomerThread{CustomerID: customer.ID, Status: "open", LastMessageAt: time.Now().Add(-time.Hour)}
	require.NoError(t, repos.Chat.CreateThread(&th))

	bumped := time.Now()
	require.NoError(t, repos.Chat.TouchThread(th.ID, bumped))

	got, err := repos.Chat.GetThreadByCustomer(customer.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, bumped, got.LastMessageAt, time.Second)
}

// --------------------- Notifications ---------------------

func TestNotificationRepo_OwnerScoping(t *testing.T) {
	repos := setupRepos(t)

	owner := createUser(t, repos, user.RoleEngineer)
	other := createUser(t, repos, user.RoleEngineer)

	n := notification.Notification{UserID: owner.ID, Title: "t", Message: "m", Type: notification.CategoryInfo}
	require.NoError(t, repos.Notification.Create(&n))

	// Another user cannot mark or delete it.
	rows, err := repos.Notification.MarkRead(n.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = repos.Notification.Delete(n.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = repos.Notification.MarkRead(n.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	list, err := repos.Notification.ListByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsRead)
}
