package api

import (
	"github.com/jingpengwu/boss/pkg/credentials"
	"github.com/jingpengwu/boss/pkg/database"
	"github.com/jingpengwu/boss/pkg/queue"
	"github.com/jingpengwu/boss/pkg/registry"
	"github.com/jingpengwu/boss/pkg/tilebucket"
	"github.com/jingpengwu/boss/pkg/tileindex"
)

// Options passed to the ingest API on creation: one options block per
// collaborator, each with its own defaults.
type Options struct {
	Database    *database.Options
	Registry    *registry.Options
	Queue       *queue.Options
	TileIndex   *tileindex.Options
	TileBucket  *tilebucket.Options
	Credentials *credentials.Options
}

func (o *Options) SetDefaults() {
	if o.Database == nil {
		o.Database = &database.Options{}
	}
	if o.Registry == nil {
		o.Registry = &registry.Options{}
	}
	if o.Queue == nil {
		o.Queue = &queue.Options{}
	}
	if o.TileIndex == nil {
		o.TileIndex = &tileindex.Options{}
	}
	if o.TileBucket == nil {
		o.TileBucket = &tilebucket.Options{}
	}
	if o.Credentials == nil {
		o.Credentials = &credentials.Options{}
	}
}
