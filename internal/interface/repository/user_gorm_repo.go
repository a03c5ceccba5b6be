package repository

import (
	"context"
	"errors"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormUserRepository implements the UserRepository interface on PostgreSQL
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) repository.UserRepository {
	return &GormUserRepository{
		db: db,
	}
}

// Users GORM model. Role and UserType are legacy role columns read only for canonicalization.
type Users struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountID string    `gorm:"column:account_id;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	ImageURL  string    `gorm:"column:image_url"`
	JoinedAt  time.Time `gorm:"column:joined_at;index"`
	Status    string    `gorm:"column:status"`
	Role      string    `gorm:"column:role"`
	UserType  string    `gorm:"column:user_type"`
}

// TableName overrides the default table name
func (Users) TableName() string {
	return "users"
}

func (u *Users) toEntity() *entity.User {
	return &entity.User{
		ID:        u.ID,
		AccountID: u.AccountID,
		Name:      u.Name,
		Email:     u.Email,
		ImageURL:  u.ImageURL,
		JoinedAt:  u.JoinedAt.UTC(),
		Status:    entity.CanonicalStatus(u.Status, u.Role, u.UserType),
	}
}

// MigrateGorm creates or updates the trip and user tables
func MigrateGorm(db *gorm.DB) error {
	return db.AutoMigrate(&Trips{}, &Users{})
}

// Create inserts a user; the database generates the id
func (r *GormUserRepository) Create(ctx context.Context, user *entity.User) error {
	model := Users{
		AccountID: user.AccountID,
		Name:      user.Name,
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		JoinedAt:  user.JoinedAt,
		Status:    string(user.Status),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	user.ID = model.ID
	return nil
}

// FindByAccountID finds the user linked to an identity-provider account
func (r *GormUserRepository) FindByAccountID(ctx context.Context, accountID string) (*entity.User, error) {
	var model Users
	result := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return model.toEntity(), nil
}

// List returns a page of users, most recently joined first, with the total count
func (r *GormUserRepository) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Users{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("joined_at desc").Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var models []Users
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = models[i].toEntity()
	}
	return users, total, nil
}
