package tilebucket

import (
	"context"
)

// Bucket is the tile blob store collaborator. Upload workers write tiles
// into it out of band; this core only deletes tiles during job teardown and
// scopes credentials to it.
type Bucket interface {
	// DeleteTile removes one tile object. Safe to call when already absent.
	DeleteTile(ctx context.Context, key string) error

	// ARN identifies the bucket for access policies.
	ARN() string
}
