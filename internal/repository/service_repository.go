package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/walker-cleaning/site-api/internal/apperror"
	"github.com/walker-cleaning/site-api/internal/domain/catalog"
)

// ServiceModel is the GORM model for the services table.
type ServiceModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Images      datatypes.JSON `gorm:"not null;default:'[]'"`
	Icon        string         `gorm:"type:varchar(16)"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ServiceModel) TableName() string { return "services" }

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository.
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// List retrieves all services ordered by id ascending.
func (r *GormServiceRepository) List(ctx context.Context) ([]catalog.Service, error) {
	var models []ServiceModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	services := make([]catalog.Service, len(models))
	for i, m := range models {
		services[i] = toServiceDomain(&m)
	}
	return services, nil
}

// FindByID retrieves a single service.
func (r *GormServiceRepository) FindByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model ServiceModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("service", strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}
	svc := toServiceDomain(&model)
	return &svc, nil
}

// Create persists a new service and fills in the assigned id.
func (r *GormServiceRepository) Create(ctx context.Context, service *catalog.Service) error {
	model := toServiceModel(service)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	service.ID = model.ID
	service.CreatedAt = model.CreatedAt
	service.UpdatedAt = model.UpdatedAt
	return nil
}

// Update replaces the editable fields of an existing service.
func (r *GormServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	result := r.db.WithContext(ctx).
		Model(&ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"title":       service.Title,
			"description": service.Description,
			"images":      encodeImageList(service.Images),
			"icon":        service.Icon,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("service", strconv.FormatUint(uint64(service.ID), 10))
	}
	return nil
}

// Delete removes a service permanently.
func (r *GormServiceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ServiceModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("service", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

// Count returns the number of stored services.
func (r *GormServiceRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ServiceModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}

// --- Conversion Helpers ---

func toServiceModel(s *catalog.Service) *ServiceModel {
	return &ServiceModel{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Images:      encodeImageList(s.Images),
		Icon:        s.Icon,
	}
}

func toServiceDomain(m *ServiceModel) catalog.Service {
	return catalog.Service{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Images:      decodeImageList(m.Images),
		Icon:        m.Icon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// encodeImageList serializes an image reference list to a JSON column value.
// A nil list is stored as an empty array, never NULL.
func encodeImageList(images []string) datatypes.JSON {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

// decodeImageList parses a JSON column into an image reference list,
// returning nil when the column is empty or malformed.
func decodeImageList(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var images []string
	if err := json.Unmarshal(data, &images); err != nil {
		return nil
	}
	if len(images) == 0 {
		return nil
	}
	return images
}
