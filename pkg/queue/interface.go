package queue

import (
	"context"

	"github.com/jingpengwu/boss/pkg/structs"
)

// Ref is a handle to one provisioned queue.
type Ref struct {
	Name string
	URL  string
	ARN  string
}

// Queue provisions the per-job upload & ingest queues and publishes tile
// tasks to them. Create & delete are idempotent by queue name so job setup
// and teardown can be retried.
type Queue interface {
	// EnsureQueue creates the named queue if needed & returns its reference.
	// Safe to call when the queue already exists.
	EnsureQueue(ctx context.Context, name string) (*Ref, error)

	// DeleteQueue removes the named queue. Safe to call when it is already absent.
	DeleteQueue(ctx context.Context, name string) error

	// Publish sends one task message to the given queue. Delivery is
	// at-least-once; publish failures are retried with backoff before
	// being surfaced.
	Publish(ctx context.Context, ref *Ref, task *structs.TileTask) error

	Close() error
}
