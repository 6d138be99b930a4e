// Package settings models the site-wide singleton settings record: the logo
// reference and the ordered header image list.
package settings

import "context"

// SiteSettings is the decoded singleton settings record. An empty LogoImage
// means no logo is set; an empty HeaderImages means no header slides.
type SiteSettings struct {
	LogoImage    string
	HeaderImages []string
}

// Default returns the empty-valued settings record served when no row exists
// or the store is unreachable.
func Default() SiteSettings {
	return SiteSettings{}
}

// SettingsRepository defines the persistence contract for the singleton
// record. Writes are insert-if-absent-else-update; the row is never deleted.
type SettingsRepository interface {
	// Load retrieves the singleton record. A missing row is not an error:
	// implementations return the default record and found=false.
	Load(ctx context.Context) (SiteSettings, bool, error)

	// SetLogo writes the logo field. An empty value clears it.
	SetLogo(ctx context.Context, value string) error

	// SetHeaderImage writes the raw encoded header image field.
	SetHeaderImage(ctx context.Context, encoded string) error
}
