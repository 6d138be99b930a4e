package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeaderImages(t *testing.T) {
	encoded, err := EncodeHeaderImages([]string{"a.jpg", "b.jpg"})
	require.NoError(t, err)
	assert.JSONEq(t, `["a.jpg","b.jpg"]`, encoded)

	encoded, err = EncodeHeaderImages(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)
}

func TestDecodeHeaderImages(t *testing.T) {
	assert.Nil(t, DecodeHeaderImages(""))
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, DecodeHeaderImages(`["a.jpg","b.jpg"]`))
	assert.Empty(t, DecodeHeaderImages("[]"))

	// Rows written before the field held a list carry a single bare reference.
	assert.Equal(t, []string{"header.jpg"}, DecodeHeaderImages("header.jpg"))
}

func TestHeaderImages_RoundTrip(t *testing.T) {
	images := []string{"hero-1.jpg", "hero-2.jpg", "hero-3.jpg"}
	encoded, err := EncodeHeaderImages(images)
	require.NoError(t, err)
	assert.Equal(t, images, DecodeHeaderImages(encoded))
}
