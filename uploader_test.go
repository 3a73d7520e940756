package flog

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadImagePublicURL(t *testing.T) {
	var gotPath atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		_, _ = w.Write([]byte(`{"Key":"food-images/ignored.jpg"}`))
	})
	c := newServerClient(t, handler)

	u := NewUploader(c)
	publicURL, err := u.UploadImage(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)

	path, _ := gotPath.Load().(string)
	require.True(t, strings.HasPrefix(path, "/storage/v1/object/food-images/"), "path = %q", path)
	name := strings.TrimPrefix(path, "/storage/v1/object/food-images/")
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	// The public URL is derived from the generated name, not the echoed key.
	assert.Equal(t, c.BaseURL()+"/storage/v1/object/public/food-images/"+name, publicURL)
}

func TestUploadImageUsesConfiguredBucket(t *testing.T) {
	var gotPath atomic.Value
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		_, _ = w.Write([]byte(`{"Key":"k"}`))
	})
	c := newServerClient(t, handler, WithBucket("staging-images"))

	publicURL, err := NewUploader(c).UploadImage(context.Background(), []byte("jpeg-bytes"))
	require.NoError(t, err)
	path, _ := gotPath.Load().(string)
	assert.True(t, strings.HasPrefix(path, "/storage/v1/object/staging-images/"), "path = %q", path)
	assert.Contains(t, publicURL, "/storage/v1/object/public/staging-images/")
}

func TestUploadImageTooLarge(t *testing.T) {
	var calls int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})
	c := newServerClient(t, handler, WithMaxUploadSize(4))

	_, err := NewUploader(c).UploadImage(context.Background(), []byte("12345"))
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "oversized upload must be rejected locally")
}

func TestUploadImageSurfacesServerError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("storage unavailable"))
	})
	c := newServerClient(t, handler)

	_, err := NewUploader(c).UploadImage(context.Background(), []byte("jpeg-bytes"))
	var upErr *UploadError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, "storage unavailable", upErr.Message)
}
