package services

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "versioned url",
			url:  "https://res.cloudinary.com/demo/image/upload/v1234567890/products/1700000000000-ab12.jpg",
			want: "products/1700000000000-ab12",
		},
		{
			name: "unversioned url",
			url:  "https://res.cloudinary.com/demo/image/upload/products/1700000000000-ab12.png",
			want: "products/1700000000000-ab12",
		},
		{
			name: "no extension",
			url:  "https://res.cloudinary.com/demo/image/upload/v1/products/key",
			want: "products/key",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
		{
			name: "foreign url",
			url:  "https://example.com/images/photo.jpg",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PublicIDFromURL(tt.url))
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := objectKey("Photo.JPG", "products")

	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.True(t, strings.HasSuffix(key, ".jpg"), "extension must be lowercased")

	rest := strings.TrimSuffix(strings.TrimPrefix(key, "products/"), ".jpg")
	parts := strings.SplitN(rest, "-", 2)
	require.Len(t, parts, 2)

	_, err := strconv.ParseInt(parts[0], 10, 64)
	require.NoError(t, err, "key must start with an epoch-millis timestamp")
	assert.NotEmpty(t, parts[1], "key must carry a random token")
}

func TestObjectKey_NoExtension(t *testing.T) {
	key := objectKey("raw", "uploads")

	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.False(t, strings.Contains(key[len("uploads/"):], "."))
}
