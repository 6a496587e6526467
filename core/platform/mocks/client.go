package mocks

import (
	"context"

	"esl-manager/core/platform"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of platform.Client
type Client struct {
	mock.Mock
}

var _ platform.Client = (*Client)(nil)

func (m *Client) FetchLabels(ctx context.Context, storeCode string) ([]platform.Record, error) {
	args := m.Called(ctx, storeCode)
	if records, ok := args.Get(0).([]platform.Record); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
