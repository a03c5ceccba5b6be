package repository

import (
	"context"
	"errors"
	"time"

	"tripboard-service/internal/domain/entity"
	"tripboard-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormTripRepository implements the TripRepository interface on PostgreSQL
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GORM trip repository
func NewGormTripRepository(db *gorm.DB) repository.TripRepository {
	return &GormTripRepository{
		db: db,
	}
}

// Trips GORM model for database mapping
type Trips struct {
	ID          string         `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	TripDetail  string         `gorm:"column:trip_detail;type:text;not null"`
	ImageURLs   pq.StringArray `gorm:"column:image_urls;type:text[]"`
	UserID      string         `gorm:"column:user_id;index"`
	PaymentLink string         `gorm:"column:payment_link"`
	CreatedAt   time.Time      `gorm:"column:created_at;index"`
}

// TableName overrides the default table name
func (Trips) TableName() string {
	return "trips"
}

func (t *Trips) toEntity() *entity.TripRecord {
	return &entity.TripRecord{
		ID:          t.ID,
		TripDetail:  t.TripDetail,
		CreatedAt:   t.CreatedAt.UTC(),
		ImageURLs:   []string(t.ImageURLs),
		UserID:      t.UserID,
		PaymentLink: t.PaymentLink,
	}
}

// Create inserts a trip; the database generates the id
func (r *GormTripRepository) Create(ctx context.Context, record *entity.TripRecord) error {
	model := Trips{
		TripDetail:  record.TripDetail,
		ImageURLs:   pq.StringArray(record.ImageURLs),
		UserID:      record.UserID,
		PaymentLink: record.PaymentLink,
		CreatedAt:   record.CreatedAt,
	}
	if model.ImageURLs == nil {
		model.ImageURLs = pq.StringArray{}
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return err
	}
	record.ID = model.ID
	return nil
}

// FindByID finds a trip by id
func (r *GormTripRepository) FindByID(ctx context.Context, id string) (*entity.TripRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	var model Trips
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return model.toEntity(), nil
}

// List returns a page of trips newest first with the total count
func (r *GormTripRepository) List(ctx context.Context, limit, offset int) ([]*entity.TripRecord, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Trips{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("created_at desc").Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var models []Trips
	if err := query.Find(&models).Error; err != nil {
		return nil, 0, err
	}

	records := make([]*entity.TripRecord, len(models))
	for i := range models {
		records[i] = models[i].toEntity()
	}
	return records, total, nil
}

// CountByUserID counts the trips created by a user
func (r *GormTripRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Trips{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
