package checks

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"esl-manager/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const manifestJSON = `{"models":[{"name":"ST-GR16000","width":250,"height":122},{"name":"ST-AL20000","width":296,"height":128}]}`

func manifestBody() io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(manifestJSON)))
}

func TestLoadManifest(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "esl-assets", ManifestObjectName, mock.Anything).
		Return(manifestBody(), nil)

	manifest, err := LoadManifest(context.Background(), mockClient, "esl-assets")

	require.NoError(t, err)
	require.Len(t, manifest.Models, 2)
	assert.Equal(t, "ST-GR16000", manifest.Models[0].Name)
	assert.Equal(t, 250, manifest.Models[0].Width)
	assert.Equal(t, "templates/ST-GR16000.json", manifest.Models[0].TemplateObject())
}

func TestLoadManifest_Malformed(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "esl-assets", ManifestObjectName, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte("{not json"))), nil)

	_, err := LoadManifest(context.Background(), mockClient, "esl-assets")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoadManifest_FetchError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "esl-assets", ManifestObjectName, mock.Anything).
		Return(nil, assert.AnError)

	_, err := LoadManifest(context.Background(), mockClient, "esl-assets")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGetOrLoadManifest_Caches(t *testing.T) {
	bucket := "manifest-cache-test"
	t.Cleanup(func() { InvalidateManifest(bucket) })

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, bucket, ManifestObjectName, mock.Anything).
		Return(manifestBody(), nil).Once()

	first, err := GetOrLoadManifest(context.Background(), mockClient, bucket, time.Minute)
	require.NoError(t, err)

	// Second call is served from the cache, not the bucket
	second, err := GetOrLoadManifest(context.Background(), mockClient, bucket, time.Minute)
	require.NoError(t, err)
	assert.Same(t, first, second)
	mockClient.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestGetOrLoadManifest_ZeroTTLReloads(t *testing.T) {
	bucket := "manifest-nocache-test"
	t.Cleanup(func() { InvalidateManifest(bucket) })

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, bucket, ManifestObjectName, mock.Anything).
		Return(manifestBody(), nil).Once()
	mockClient.On("GetObject", mock.Anything, bucket, ManifestObjectName, mock.Anything).
		Return(manifestBody(), nil).Once()

	_, err := GetOrLoadManifest(context.Background(), mockClient, bucket, 0)
	require.NoError(t, err)
	_, err = GetOrLoadManifest(context.Background(), mockClient, bucket, 0)
	require.NoError(t, err)

	mockClient.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestGetOrLoadManifest_LoadErrorNotCached(t *testing.T) {
	bucket := "manifest-error-test"
	t.Cleanup(func() { InvalidateManifest(bucket) })

	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, bucket, ManifestObjectName, mock.Anything).
		Return(nil, assert.AnError).Once()
	mockClient.On("GetObject", mock.Anything, bucket, ManifestObjectName, mock.Anything).
		Return(manifestBody(), nil).Once()

	_, err := GetOrLoadManifest(context.Background(), mockClient, bucket, time.Minute)
	require.Error(t, err)

	// The failed load left nothing behind; the next call loads again
	manifest, err := GetOrLoadManifest(context.Background(), mockClient, bucket, time.Minute)
	require.NoError(t, err)
	assert.Len(t, manifest.Models, 2)
}
