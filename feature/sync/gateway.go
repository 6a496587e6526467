package sync

import (
	"context"

	"esl-manager/core/drift"
	"esl-manager/core/platform"
)

// Gateway adapts the vendor platform client to the verification engine's
// gateway contract.
type Gateway struct {
	client platform.Client
}

// NewGateway creates a new platform gateway.
func NewGateway(client platform.Client) *Gateway {
	return &Gateway{client: client}
}

// FetchRemoteRecords returns the store's labels as the vendor platform
// reports them.
func (g *Gateway) FetchRemoteRecords(ctx context.Context, store drift.Store) ([]drift.RemoteRecord, error) {
	records, err := g.client.FetchLabels(ctx, store.Code)
	if err != nil {
		return nil, err
	}

	remote := make([]drift.RemoteRecord, 0, len(records))
	for _, record := range records {
		remote = append(remote, drift.RemoteRecord(record))
	}
	return remote, nil
}
