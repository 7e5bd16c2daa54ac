package db

import (
	"fmt"

	"github.com/yemenhybrid/workshop-go/internal/config"
	"github.com/yemenhybrid/workshop-go/internal/domain/catalog"
	"github.com/yemenhybrid/workshop-go/internal/domain/chat"
	"github.com/yemenhybrid/workshop-go/internal/domain/notification"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/domain/workorder"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Open() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return gormDB, nil
}

// Migrate creates or updates every table the server owns.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&user.User{},
		&user.PasswordResetToken{},
		&catalog.Service{},
		&catalog.SparePart{},
		&catalog.Specialization{},
		&workorder.WorkOrder{},
		&workorder.Part{},
		&workorder.Event{},
		&chat.Channel{},
		&chat.Message{},
		&chat.CustomerThread{},
		&notification.Notification{},
	)
}
