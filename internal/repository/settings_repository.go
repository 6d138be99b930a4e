package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	settingsDomain "github.com/walker-cleaning/site-api/internal/domain/settings"
)

// SettingsModel is the GORM model for the settings table. The table is a
// singleton: at most one row ever exists, created lazily on first write.
type SettingsModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	LogoImage   string    `gorm:"type:text;not null;default:''"`
	HeaderImage string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (SettingsModel) TableName() string { return "settings" }

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Load retrieves the singleton record. A missing row yields the default
// record and found=false, not an error.
func (r *GormSettingsRepository) Load(ctx context.Context) (settingsDomain.SiteSettings, bool, error) {
	var models []SettingsModel
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(1).Find(&models).Error; err != nil {
		return settingsDomain.Default(), false, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(models) == 0 {
		return settingsDomain.Default(), false, nil
	}

	m := models[0]
	return settingsDomain.SiteSettings{
		LogoImage:    m.LogoImage,
		HeaderImages: settingsDomain.DecodeHeaderImages(m.HeaderImage),
	}, true, nil
}

// SetLogo writes the logo field, inserting the singleton row if absent.
func (r *GormSettingsRepository) SetLogo(ctx context.Context, value string) error {
	return r.upsertField(ctx, "logo_image", value)
}

// SetHeaderImage writes the raw encoded header image field, inserting the
// singleton row if absent.
func (r *GormSettingsRepository) SetHeaderImage(ctx context.Context, encoded string) error {
	return r.upsertField(ctx, "header_image", encoded)
}

// upsertField updates one column of the singleton row, creating the row on
// first write. Concurrent writers race last-writer-wins; the settings record
// carries no version.
func (r *GormSettingsRepository) upsertField(ctx context.Context, column, value string) error {
	var models []SettingsModel
	if err := r.db.WithContext(ctx).Select("id").Order("id ASC").Limit(1).Find(&models).Error; err != nil {
		return fmt.Errorf("failed to look up settings row: %w", err)
	}

	if len(models) == 0 {
		model := SettingsModel{}
		switch column {
		case "logo_image":
			model.LogoImage = value
		case "header_image":
			model.HeaderImage = value
		}
		if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
			return fmt.Errorf("failed to insert settings row: %w", err)
		}
		return nil
	}

	if err := r.db.WithContext(ctx).
		Model(&SettingsModel{}).
		Where("id = ?", models[0].ID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": time.Now().UTC(),
		}).Error; err != nil {
		return fmt.Errorf("failed to update settings row: %w", err)
	}
	return nil
}
