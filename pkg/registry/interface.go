package registry

import (
	"context"
)

// Binding is the result of resolving collection / experiment / channel names:
// their stable numeric identifiers plus the channel's base resolution.
type Binding struct {
	CollectionID int64
	ExperimentID int64
	ChannelID    int64

	BaseResolution int
}

// Registry resolves externally supplied resource names. The resource CRUD
// API that populates these tables is a separate service; this is its
// read-side only.
type Registry interface {
	Resolve(ctx context.Context, collection, experiment, channel string) (*Binding, error)
	Close() error
}
