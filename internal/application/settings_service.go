package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	settingsDomain "github.com/walker-cleaning/site-api/internal/domain/settings"
)

// SettingsDTO is the API representation of the site appearance settings.
type SettingsDTO struct {
	LogoImage    string   `json:"logo_image"`
	HeaderImages []string `json:"header_images"`
}

// UpdateSettingsRequest carries the admin settings write. Each field is a
// pointer so an omitted field reads as "leave unchanged" while a present
// empty value reads as "clear".
type UpdateSettingsRequest struct {
	LogoImage    *string   `json:"logo_image"`
	HeaderImages *[]string `json:"header_images"`
}

// SettingsService manages the singleton site settings record.
type SettingsService struct {
	repo   settingsDomain.SettingsRepository
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo settingsDomain.SettingsRepository, logger *zap.Logger) *SettingsService {
	return &SettingsService{repo: repo, logger: logger}
}

// GetSettings returns the current settings. The public site must always
// render, so a store failure degrades to the defaults instead of an error.
func (s *SettingsService) GetSettings(ctx context.Context) SettingsDTO {
	settings, found, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load settings, serving defaults", zap.Error(err))
		settings = settingsDomain.Default()
	} else if !found {
		settings = settingsDomain.Default()
	}
	return toSettingsDTO(settings)
}

// UpdateSettings applies the admin write and returns the resulting settings.
// Each field is updated independently; an omitted field is untouched.
func (s *SettingsService) UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsDTO, error) {
	logoUpdate := settingsDomain.LogoNoChange()
	if req.LogoImage != nil {
		logoUpdate = settingsDomain.SetLogo(*req.LogoImage)
	}
	headerUpdate := settingsDomain.HeaderNoChange()
	if req.HeaderImages != nil {
		headerUpdate = settingsDomain.SetHeader(*req.HeaderImages)
	}

	if err := s.applyLogoUpdate(ctx, logoUpdate); err != nil {
		return nil, err
	}
	if err := s.applyHeaderUpdate(ctx, headerUpdate); err != nil {
		return nil, err
	}

	settings, _, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload settings: %w", err)
	}
	dto := toSettingsDTO(settings)
	return &dto, nil
}

func (s *SettingsService) applyLogoUpdate(ctx context.Context, update settingsDomain.LogoUpdate) error {
	switch update.Kind() {
	case settingsDomain.NoChange:
		return nil
	case settingsDomain.Clear:
		return s.repo.SetLogo(ctx, "")
	case settingsDomain.Set:
		return s.repo.SetLogo(ctx, update.Value())
	}
	return nil
}

func (s *SettingsService) applyHeaderUpdate(ctx context.Context, update settingsDomain.HeaderUpdate) error {
	switch update.Kind() {
	case settingsDomain.NoChange:
		return nil
	case settingsDomain.Clear:
		return s.repo.SetHeaderImage(ctx, "")
	case settingsDomain.Set:
		encoded, err := settingsDomain.EncodeHeaderImages(update.Images())
		if err != nil {
			return fmt.Errorf("failed to encode header images: %w", err)
		}
		return s.repo.SetHeaderImage(ctx, encoded)
	}
	return nil
}

func toSettingsDTO(settings settingsDomain.SiteSettings) SettingsDTO {
	images := settings.HeaderImages
	if images == nil {
		images = []string{}
	}
	return SettingsDTO{
		LogoImage:    settings.LogoImage,
		HeaderImages: images,
	}
}
