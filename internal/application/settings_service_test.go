package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string      { return &s }
func listPtr(v []string) *[]string { return &v }

func TestGetSettings_EmptyStoreServesDefaults(t *testing.T) {
	svc := newTestSettingsService(t, newTestDB(t))

	settings := svc.GetSettings(context.Background())
	assert.Empty(t, settings.LogoImage)
	assert.Empty(t, settings.HeaderImages)
	assert.NotNil(t, settings.HeaderImages, "header list serializes as [], never null")
}

func TestUpdateSettings_SetBothFields(t *testing.T) {
	svc := newTestSettingsService(t, newTestDB(t))

	result, err := svc.UpdateSettings(context.Background(), UpdateSettingsRequest{
		LogoImage:    strPtr("logo.png"),
		HeaderImages: listPtr([]string{"hero-1.jpg", "hero-2.jpg"}),
	})
	require.NoError(t, err)
	assert.Equal(t, "logo.png", result.LogoImage)
	assert.Equal(t, []string{"hero-1.jpg", "hero-2.jpg"}, result.HeaderImages)
}

func TestUpdateSettings_OmittedFieldIsUntouched(t *testing.T) {
	svc := newTestSettingsService(t, newTestDB(t))
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
		LogoImage:    strPtr("logo.png"),
		HeaderImages: listPtr([]string{"hero.jpg"}),
	})
	require.NoError(t, err)

	// Only the logo is in the payload; the header list must survive.
	result, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
		LogoImage: strPtr("logo-v2.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "logo-v2.png", result.LogoImage)
	assert.Equal(t, []string{"hero.jpg"}, result.HeaderImages)
}

func TestUpdateSettings_PresentEmptyFieldClears(t *testing.T) {
	svc := newTestSettingsService(t, newTestDB(t))
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
		LogoImage:    strPtr("logo.png"),
		HeaderImages: listPtr([]string{"hero.jpg"}),
	})
	require.NoError(t, err)

	result, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
		LogoImage:    strPtr(""),
		HeaderImages: listPtr([]string{}),
	})
	require.NoError(t, err)
	assert.Empty(t, result.LogoImage)
	assert.Empty(t, result.HeaderImages)
}

func TestUpdateSettings_EmptyPayloadChangesNothing(t *testing.T) {
	svc := newTestSettingsService(t, newTestDB(t))
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{
		LogoImage: strPtr("logo.png"),
	})
	require.NoError(t, err)

	result, err := svc.UpdateSettings(ctx, UpdateSettingsRequest{})
	require.NoError(t, err)
	assert.Equal(t, "logo.png", result.LogoImage)
}
