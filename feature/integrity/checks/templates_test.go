package checks

import (
	"context"
	"testing"

	"esl-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func listChan(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		ch <- minio.ObjectInfo{Key: key}
	}
	close(ch)
	return ch
}

func prefixMatcher(prefix string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == prefix
	})
}

func TestCheckTemplates(t *testing.T) {
	manifest := &Manifest{Models: []LabelModel{
		{Name: "ST-GR16000"},
		{Name: "ST-AL20000"},
	}}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "esl-assets").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "esl-assets", prefixMatcher("templates/")).
		Return(listChan(
			"templates/manifest.json",
			"templates/ST-GR16000.json",
			"templates/OLD-MODEL.json",
			"templates/readme.txt",
		))
	mockClient.On("ListObjects", mock.Anything, "esl-assets", prefixMatcher("previews/")).
		Return(listChan(
			"previews/ST-GR16000/S001.png",
			"previews/RETIRED/S001.png",
		))

	report, err := CheckTemplates(context.Background(), mockClient, "esl-assets", manifest)

	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalModels)
	// The manifest itself and non-json objects do not count as templates
	assert.Equal(t, 2, report.TotalTemplates)
	assert.Equal(t, []string{"ST-AL20000"}, report.MissingTemplates)
	assert.Equal(t, []string{"templates/OLD-MODEL.json"}, report.UnregisteredTemplates)
	assert.Equal(t, []string{"previews/RETIRED/S001.png"}, report.OrphanPreviews)
	assert.NotEmpty(t, report.GeneratedAt)
}

func TestCheckTemplates_AllCovered(t *testing.T) {
	manifest := &Manifest{Models: []LabelModel{{Name: "ST-GR16000"}}}

	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "esl-assets").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "esl-assets", prefixMatcher("templates/")).
		Return(listChan("templates/manifest.json", "templates/ST-GR16000.json"))
	mockClient.On("ListObjects", mock.Anything, "esl-assets", prefixMatcher("previews/")).
		Return(listChan("previews/ST-GR16000/S001.png", "previews/ST-GR16000/S002.png"))

	report, err := CheckTemplates(context.Background(), mockClient, "esl-assets", manifest)

	require.NoError(t, err)
	assert.Empty(t, report.MissingTemplates)
	assert.Empty(t, report.UnregisteredTemplates)
	assert.Empty(t, report.OrphanPreviews)
}

func TestCheckTemplates_BucketMissing(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "esl-assets").Return(false, nil)

	_, err := CheckTemplates(context.Background(), mockClient, "esl-assets", &Manifest{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestCleanOrphanPreviews(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Removes Batch", func(t *testing.T) {
		mockClient := new(mocks.Client)
		errCh := make(chan minio.RemoveObjectError)
		close(errCh)
		mockClient.On("RemoveObjects", mock.Anything, "esl-assets", mock.Anything, mock.Anything).
			Return((<-chan minio.RemoveObjectError)(errCh))

		err := CleanOrphanPreviews(context.Background(), mockClient, "esl-assets", logger,
			[]string{"previews/RETIRED/S001.png", "previews/RETIRED/S002.png"})

		assert.NoError(t, err)
		mockClient.AssertNumberOfCalls(t, "RemoveObjects", 1)
	})

	t.Run("Propagates Removal Failure", func(t *testing.T) {
		mockClient := new(mocks.Client)
		errCh := make(chan minio.RemoveObjectError, 1)
		errCh <- minio.RemoveObjectError{ObjectName: "previews/RETIRED/S001.png", Err: assert.AnError}
		close(errCh)
		mockClient.On("RemoveObjects", mock.Anything, "esl-assets", mock.Anything, mock.Anything).
			Return((<-chan minio.RemoveObjectError)(errCh))

		err := CleanOrphanPreviews(context.Background(), mockClient, "esl-assets", logger,
			[]string{"previews/RETIRED/S001.png"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "RETIRED")
	})

	t.Run("Nothing To Remove", func(t *testing.T) {
		mockClient := new(mocks.Client)

		err := CleanOrphanPreviews(context.Background(), mockClient, "esl-assets", logger, nil)

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
