package catalog

import "context"

// ServiceRepository defines the persistence contract for services.
type ServiceRepository interface {
	// List retrieves all services ordered by id ascending.
	List(ctx context.Context) ([]Service, error)

	// FindByID retrieves a single service.
	FindByID(ctx context.Context, id uint) (*Service, error)

	// Create persists a new service and fills in the assigned id.
	Create(ctx context.Context, service *Service) error

	// Update replaces the editable fields of an existing service.
	Update(ctx context.Context, service *Service) error

	// Delete removes a service permanently.
	Delete(ctx context.Context, id uint) error

	// Count returns the number of stored services.
	Count(ctx context.Context) (int64, error)
}

// PackageRepository defines the persistence contract for packages.
type PackageRepository interface {
	// List retrieves all packages ordered by id ascending.
	List(ctx context.Context) ([]Package, error)

	// FindByID retrieves a single package.
	FindByID(ctx context.Context, id uint) (*Package, error)

	// Create persists a new package and fills in the assigned id.
	Create(ctx context.Context, pkg *Package) error

	// Update replaces the editable fields of an existing package.
	Update(ctx context.Context, pkg *Package) error

	// Delete removes a package permanently.
	Delete(ctx context.Context, id uint) error

	// Count returns the number of stored packages.
	Count(ctx context.Context) (int64, error)
}
