package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User         UserRepo
	Catalog      CatalogRepo
	WorkOrder    WorkOrderRepo
	Chat         ChatRepo
	Notification NotificationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:         NewUserRepo(db),
		Catalog:      NewCatalogRepo(db),
		WorkOrder:    NewWorkOrderRepo(db),
		Chat:         NewChatRepo(db),
		Notification: NewNotificationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:         r.User.WithTx(tx),
		Catalog:      r.Catalog.WithTx(tx),
		WorkOrder:    r.WorkOrder.WithTx(tx),
		Chat:         r.Chat.WithTx(tx),
		Notification: r.Notification.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn inside a single database transaction. A container
// assembled without a database (mock repos in tests) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
