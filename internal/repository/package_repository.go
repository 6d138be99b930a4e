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

// PackageModel is the GORM model for the packages table.
type PackageModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Includes    datatypes.JSON `gorm:"not null;default:'[]'"`
	Description string         `gorm:"type:text"`
	Images      datatypes.JSON `gorm:"not null;default:'[]'"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (PackageModel) TableName() string { return "packages" }

// GormPackageRepository implements PackageRepository using GORM.
type GormPackageRepository struct {
	db *gorm.DB
}

// NewGormPackageRepository creates a new GormPackageRepository.
func NewGormPackageRepository(db *gorm.DB) *GormPackageRepository {
	return &GormPackageRepository{db: db}
}

// List retrieves all packages ordered by id ascending.
func (r *GormPackageRepository) List(ctx context.Context) ([]catalog.Package, error) {
	var models []PackageModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	packages := make([]catalog.Package, len(models))
	for i, m := range models {
		packages[i] = toPackageDomain(&m)
	}
	return packages, nil
}

// FindByID retrieves a single package.
func (r *GormPackageRepository) FindByID(ctx context.Context, id uint) (*catalog.Package, error) {
	var model PackageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("package", strconv.FormatUint(uint64(id), 10))
		}
		return nil, fmt.Errorf("failed to find package: %w", err)
	}
	pkg := toPackageDomain(&model)
	return &pkg, nil
}

// Create persists a new package and fills in the assigned id.
func (r *GormPackageRepository) Create(ctx context.Context, pkg *catalog.Package) error {
	model := toPackageModel(pkg)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}
	pkg.ID = model.ID
	pkg.CreatedAt = model.CreatedAt
	pkg.UpdatedAt = model.UpdatedAt
	return nil
}

// Update replaces the editable fields of an existing package.
func (r *GormPackageRepository) Update(ctx context.Context, pkg *catalog.Package) error {
	result := r.db.WithContext(ctx).
		Model(&PackageModel{}).
		Where("id = ?", pkg.ID).
		Updates(map[string]interface{}{
			"title":       pkg.Title,
			"includes":    encodeStringList(pkg.Includes),
			"description": pkg.Description,
			"images":      encodeImageList(pkg.Images),
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("package", strconv.FormatUint(uint64(pkg.ID), 10))
	}
	return nil
}

// Delete removes a package permanently.
func (r *GormPackageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&PackageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete package: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("package", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

// Count returns the number of stored packages.
func (r *GormPackageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PackageModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count packages: %w", err)
	}
	return count, nil
}

// --- Conversion Helpers ---

func toPackageModel(p *catalog.Package) *PackageModel {
	return &PackageModel{
		ID:          p.ID,
		Title:       p.Title,
		Includes:    encodeStringList(p.Includes),
		Description: p.Description,
		Images:      encodeImageList(p.Images),
	}
}

func toPackageDomain(m *PackageModel) catalog.Package {
	return catalog.Package{
		ID:          m.ID,
		Title:       m.Title,
		Includes:    decodeStringList(m.Includes),
		Description: m.Description,
		Images:      decodeImageList(m.Images),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func encodeStringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(data)
}

func decodeStringList(data datatypes.JSON) []string {
	if len(data) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
