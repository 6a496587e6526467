package drift

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSubmit_CapsAtLimit(t *testing.T) {
	queue := &fakeQueue{}
	q := NewQueuer(queue, 10, zap.NewNop())

	missing := make([]uint, 50)
	for i := range missing {
		missing[i] = uint(i + 1)
	}

	queued := q.Submit(context.Background(), testStore, EntityLabel, missing)

	assert.Equal(t, 10, queued)
	jobs := queue.all()
	require.Len(t, jobs, 10)
	// The first ids of the batch are taken; the remainder waits for the next run
	assert.Equal(t, uint(1), jobs[0].EntityID)
	assert.Equal(t, uint(10), jobs[9].EntityID)
	for _, job := range jobs {
		assert.Equal(t, testStore.ID, job.StoreID)
		assert.Equal(t, EntityLabel, job.EntityType)
		assert.Equal(t, OriginDrift, job.Origin)
		assert.NotEmpty(t, job.Reason)
	}
}

func TestSubmit_IsolatesFailures(t *testing.T) {
	queue := &fakeQueue{failOn: map[uint]error{2: fmt.Errorf("queue full")}}
	q := NewQueuer(queue, 10, zap.NewNop())

	queued := q.Submit(context.Background(), testStore, EntityLabel, []uint{1, 2, 3})

	// The failed submission is skipped, the rest of the batch still goes through
	assert.Equal(t, 2, queued)
	jobs := queue.all()
	require.Len(t, jobs, 2)
	assert.Equal(t, uint(1), jobs[0].EntityID)
	assert.Equal(t, uint(3), jobs[1].EntityID)
}

func TestSubmit_NothingMissing(t *testing.T) {
	queue := &fakeQueue{}
	q := NewQueuer(queue, 10, zap.NewNop())

	queued := q.Submit(context.Background(), testStore, EntityLabel, nil)

	assert.Equal(t, 0, queued)
	assert.Empty(t, queue.all())
}

func TestNewQueuer_DefaultLimit(t *testing.T) {
	queue := &fakeQueue{}
	q := NewQueuer(queue, 0, zap.NewNop())

	missing := make([]uint, 15)
	for i := range missing {
		missing[i] = uint(i + 1)
	}

	queued := q.Submit(context.Background(), testStore, EntityLabel, missing)
	assert.Equal(t, DefaultResyncLimit, queued)
}
