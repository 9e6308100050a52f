package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"vidchat/internal/model"
)

// UserRepository defines persistence operations for credentials.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdatePassword(ctx context.Context, id uint, password, salt string) error
}

type userRepository struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB, timeout time.Duration) UserRepository {
	return &userRepository{db: db, timeout: timeout}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return classify(ctx, r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, classify(ctx, err)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, classify(ctx, err)
	}
	return &user, nil
}

func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, classify(ctx, err)
	}
	return count > 0, nil
}

// UpdatePassword replaces digest and salt together.
func (r *userRepository) UpdatePassword(ctx context.Context, id uint, password, salt string) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"password": password, "salt": salt})
	if res.Error != nil {
		return classify(ctx, res.Error)
	}
	if res.RowsAffected == 0 {
		return classify(ctx, gorm.ErrRecordNotFound)
	}
	return nil
}
