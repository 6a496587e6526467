package sync_test

import (
	"context"
	"testing"

	"esl-manager/core/drift"
	"esl-manager/core/platform"
	"esl-manager/core/platform/mocks"
	"esl-manager/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateway_FetchRemoteRecords(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("FetchLabels", mock.Anything, "S001").
		Return([]platform.Record{{"articleId": "E-1"}, {"itemId": "E-2"}}, nil)

	gw := sync.NewGateway(mockClient)
	records, err := gw.FetchRemoteRecords(context.Background(), drift.Store{ID: 1, Code: "S001"})

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "E-1", records[0]["articleId"])
	assert.Equal(t, "E-2", records[1]["itemId"])
	mockClient.AssertExpectations(t)
}

func TestGateway_PropagatesFetchError(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("FetchLabels", mock.Anything, "S001").Return(nil, assert.AnError)

	gw := sync.NewGateway(mockClient)
	_, err := gw.FetchRemoteRecords(context.Background(), drift.Store{Code: "S001"})

	assert.ErrorIs(t, err, assert.AnError)
}
