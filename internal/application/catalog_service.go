package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/walker-cleaning/site-api/internal/domain/catalog"
)

// ServiceInput is the write payload for a cleaning service.
type ServiceInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Icon        string   `json:"icon"`
}

// PackageInput is the write payload for a cleaning package.
type PackageInput struct {
	Title       string   `json:"title" binding:"required"`
	Includes    []string `json:"includes"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// ServiceDTO is the API representation of a cleaning service.
type ServiceDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Icon        string    `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PackageDTO is the API representation of a cleaning package.
type PackageDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Includes    []string  `json:"includes"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogService manages the cleaning services and packages shown on the
// site, including the first-run default data.
type CatalogService struct {
	services catalog.ServiceRepository
	packages catalog.PackageRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	services catalog.ServiceRepository,
	packages catalog.PackageRepository,
	logger *zap.Logger,
) *CatalogService {
	return &CatalogService{
		services: services,
		packages: packages,
		logger:   logger,
	}
}

// EnsureSeeded inserts the default services and packages on an empty store.
// The two collections are gated independently: wiping only packages reseeds
// only packages. Running against a populated store changes nothing.
func (s *CatalogService) EnsureSeeded(ctx context.Context) error {
	serviceCount, err := s.services.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count services: %w", err)
	}
	if serviceCount == 0 {
		defaults := catalog.DefaultServices()
		for i := range defaults {
			if err := s.services.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("failed to seed service %q: %w", defaults[i].Title, err)
			}
		}
		s.logger.Info("seeded default services", zap.Int("count", len(defaults)))
	}

	packageCount, err := s.packages.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count packages: %w", err)
	}
	if packageCount == 0 {
		defaults := catalog.DefaultPackages()
		for i := range defaults {
			if err := s.packages.Create(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("failed to seed package %q: %w", defaults[i].Title, err)
			}
		}
		s.logger.Info("seeded default packages", zap.Int("count", len(defaults)))
	}

	return nil
}

// ListServices returns all cleaning services in insertion order.
func (s *CatalogService) ListServices(ctx context.Context) ([]ServiceDTO, error) {
	services, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]ServiceDTO, len(services))
	for i, svc := range services {
		dtos[i] = toServiceDTO(svc)
	}
	return dtos, nil
}

// GetService returns a single cleaning service.
func (s *CatalogService) GetService(ctx context.Context, id uint) (*ServiceDTO, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toServiceDTO(*svc)
	return &dto, nil
}

// CreateService stores a new cleaning service (admin).
func (s *CatalogService) CreateService(ctx context.Context, input ServiceInput) (*ServiceDTO, error) {
	svc := catalog.Service{
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Icon:        input.Icon,
	}
	if err := s.services.Create(ctx, &svc); err != nil {
		return nil, err
	}
	dto := toServiceDTO(svc)
	return &dto, nil
}

// UpdateService replaces the editable fields of a cleaning service (admin).
func (s *CatalogService) UpdateService(ctx context.Context, id uint, input ServiceInput) (*ServiceDTO, error) {
	svc := catalog.Service{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Images:      input.Images,
		Icon:        input.Icon,
	}
	if err := s.services.Update(ctx, &svc); err != nil {
		return nil, err
	}
	return s.GetService(ctx, id)
}

// DeleteService removes a cleaning service permanently (admin).
func (s *CatalogService) DeleteService(ctx context.Context, id uint) error {
	return s.services.Delete(ctx, id)
}

// ListPackages returns all cleaning packages in insertion order.
func (s *CatalogService) ListPackages(ctx context.Context) ([]PackageDTO, error) {
	packages, err := s.packages.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]PackageDTO, len(packages))
	for i, pkg := range packages {
		dtos[i] = toPackageDTO(pkg)
	}
	return dtos, nil
}

// GetPackage returns a single cleaning package.
func (s *CatalogService) GetPackage(ctx context.Context, id uint) (*PackageDTO, error) {
	pkg, err := s.packages.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toPackageDTO(*pkg)
	return &dto, nil
}

// CreatePackage stores a new cleaning package (admin).
func (s *CatalogService) CreatePackage(ctx context.Context, input PackageInput) (*PackageDTO, error) {
	pkg := catalog.Package{
		Title:       input.Title,
		Includes:    input.Includes,
		Description: input.Description,
		Images:      input.Images,
	}
	if err := s.packages.Create(ctx, &pkg); err != nil {
		return nil, err
	}
	dto := toPackageDTO(pkg)
	return &dto, nil
}

// UpdatePackage replaces the editable fields of a cleaning package (admin).
func (s *CatalogService) UpdatePackage(ctx context.Context, id uint, input PackageInput) (*PackageDTO, error) {
	pkg := catalog.Package{
		ID:          id,
		Title:       input.Title,
		Includes:    input.Includes,
		Description: input.Description,
		Images:      input.Images,
	}
	if err := s.packages.Update(ctx, &pkg); err != nil {
		return nil, err
	}
	return s.GetPackage(ctx, id)
}

// DeletePackage removes a cleaning package permanently (admin).
func (s *CatalogService) DeletePackage(ctx context.Context, id uint) error {
	return s.packages.Delete(ctx, id)
}

// --- Helpers ---

func toServiceDTO(svc catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:          svc.ID,
		Title:       svc.Title,
		Description: svc.Description,
		Images:      emptyIfNil(svc.Images),
		Icon:        svc.Icon,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

func toPackageDTO(pkg catalog.Package) PackageDTO {
	return PackageDTO{
		ID:          pkg.ID,
		Title:       pkg.Title,
		Includes:    emptyIfNil(pkg.Includes),
		Description: pkg.Description,
		Images:      emptyIfNil(pkg.Images),
		CreatedAt:   pkg.CreatedAt,
		UpdatedAt:   pkg.UpdatedAt,
	}
}

// emptyIfNil keeps list fields as [] rather than null in JSON responses.
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
