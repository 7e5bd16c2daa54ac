package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/application"
	"github.com/yemenhybrid/workshop-go/internal/config"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"github.com/yemenhybrid/workshop-go/internal/realtime"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"github.com/yemenhybrid/workshop-go/internal/repository/mock"
	"github.com/yemenhybrid/workshop-go/internal/testutils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type apiMocks struct {
	user         *mock.MockUserRepo
	catalog      *mock.MockCatalogRepo
	workOrder    *mock.MockWorkOrderRepo
	chat         *mock.MockChatRepo
	notification *mock.MockNotificationRepo
}

func setupAPI(t *testing.T) (*gin.Engine, apiMocks) {
	config.JwtSecret = "test-secret"
	middleware.Init()

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := apiMocks{
		user:         mock.NewMockUserRepo(ctrl),
		catalog:      mock.NewMockCatalogRepo(ctrl),
		workOrder:    mock.NewMockWorkOrderRepo(ctrl),
		chat:         mock.NewMockChatRepo(ctrl),
		notification: mock.NewMockNotificationRepo(ctrl),
	}
	repos := &repository.Repos{
		User:         m.user,
		Catalog:      m.catalog,
		WorkOrder:    m.workOrder,
		Chat:         m.chat,
		Notification: m.notification,
	}
	hub := realtime.NewHub(nil, nil, nil)
	svc := application.New(repos, hub)
	return testutils.SetupRouter(svc, hub), m
}

func bearerToken(t *testing.T, u user.User) string {
	token, err := middleware.GenerateToken(u, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, auth string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --------------------- Auth ---------------------

func TestAPI_RequiresToken(t *testing.T) {
	r, _ := setupAPI(t)

	w := doRequest(r, http.MethodGet, "/api/notifications", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_Login(t *testing.T) {
	r, m := setupAPI(t)

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	m.user.EXPECT().GetUserByUsername("ali").Return(user.User{
		ID: "u-1", Username: "ali", IsActive: true, HashedPassword: string(hashed),
		Role: user.RoleCustomer,
	}, nil)

	w := doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "ali",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])
	assert.Equal(t, "u-1", resp["userId"])
}

func TestAPI_LoginBadCredentials(t *testing.T) {
	r, m := setupAPI(t)

	m.user.EXPECT().GetUserByUsername("ali").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().GetUserByEmail("ali").Return(user.User{}, gorm.ErrRecordNotFound)

	w := doRequest(r, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "ali",
		"password": "whatever",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --------------------- Role enforcement ---------------------

func TestAPI_ListUsersStaffOnly(t *testing.T) {
	r, m := setupAPI(t)

	engineer := bearerToken(t, user.User{ID: "eng-1", Role: user.RoleEngineer})
	w := doRequest(r, http.MethodGet, "/api/users", engineer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	m.user.EXPECT().ListUsers().Return([]user.User{{ID: "u-1"}}, nil)
	super := bearerToken(t, user.User{ID: "sup-1", Role: user.RoleSupervisor})
	w = doRequest(r, http.MethodGet, "/api/users", super, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --------------------- Error mapping ---------------------

func TestAPI_WorkOrderNotFoundIs404(t *testing.T) {
	r, m := setupAPI(t)

	m.workOrder.EXPECT().GetWorkOrderByID("missing").Return(workorder.WorkOrder{}, gorm.ErrRecordNotFound)

	super := bearerToken(t, user.User{ID: "sup-1", Role: user.RoleSupervisor})
	w := doRequest(r, http.MethodGet, "/api/work/orders/missing", super, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_StaleTransitionIs409(t *testing.T) {
	r, m := setupAPI(t)

	engID := "eng-1"
	order := workorder.WorkOrder{ID: "wo-1", CustomerID: "cust-1", Status: workorder.StatusAssigned, AssignedEngineerID: &engID}
	m.workOrder.EXPECT().GetWorkOrderByID("wo-1").Return(order, nil)
	m.workOrder.EXPECT().UpdateWorkOrderIf("wo-1", workorder.StatusAssigned, gomock.Any()).Return(int64(0), nil)

	engineer := bearerToken(t, user.User{ID: engID, Role: user.RoleEngineer})
	w := doRequest(r, http.MethodPatch, "/api/work/orders/wo-1/start", engineer, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAPI_ForeignOrderIs403(t *testing.T) {
	r, m := setupAPI(t)

	m.workOrder.EXPECT().GetWorkOrderByID("wo-1").
		Return(workorder.WorkOrder{ID: "wo-1", CustomerID: "cust-1"}, nil)

	stranger := bearerToken(t, user.User{ID: "cust-2", Role: user.RoleCustomer})
	w := doRequest(r, http.MethodGet, "/api/work/orders/wo-1", stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
