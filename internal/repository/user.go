package repository

import (
	"time"

	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id string) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	ListUsers() ([]user.User, error)
	ListUsersByRole(roles ...user.Role) ([]user.User, error)
	CreateUser(u *user.User) error
	UpdateUserFields(id string, fields map[string]interface{}) error
	DeactivateUser(id string) error

	CountByRole() (map[user.Role]int64, error)

	CreateResetToken(t *user.PasswordResetToken) error
	GetResetTokenBySelector(selector string) (user.PasswordResetToken, error)
	DeleteResetToken(id string) error

	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	return &DBUserRepo{db: tx}
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("created_at").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByRole(roles ...user.Role) ([]user.User, error) {
	var users []user.User
	err := r.db.Where("role IN ? AND is_active = true", roles).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) UpdateUserFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&user.User{}).Where("id = ?", id).Updates(fields).Error
}

// DeactivateUser soft-deletes: the row stays for foreign keys and audit.
func (r *DBUserRepo) DeactivateUser(id string) error {
	return r.db.Model(&user.User{}).Where("id = ?", id).Update("is_active", false).Error
}

func (r *DBUserRepo) CountByRole() (map[user.Role]int64, error) {
	var rows []struct {
		Role  user.Role
		Count int64
	}
	err := r.db.Model(&user.User{}).
		Select("role, COUNT(*) AS count").
		Where("is_active = true").
		Group("role").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[user.Role]int64, len(rows))
	for _, row := range rows {
		counts[row.Role] = row.Count
	}
	return counts, nil
}

func (r *DBUserRepo) CreateResetToken(t *user.PasswordResetToken) error {
	return r.db.Create(t).Error
}

func (r *DBUserRepo) GetResetTokenBySelector(selector string) (user.PasswordResetToken, error) {
	var t user.PasswordResetToken
	err := r.db.Where("selector = ? AND expires_at > ?", selector, time.Now()).First(&t).Error
	return t, err
}

func (r *DBUserRepo) DeleteResetToken(id string) error {
	return r.db.Delete(&user.PasswordResetToken{}, "id = ?", id).Error
}
