package api

import (
	"context"

	"github.com/jingpengwu/boss/internal/core"
	"github.com/jingpengwu/boss/pkg/credentials"
	"github.com/jingpengwu/boss/pkg/database"
	"github.com/jingpengwu/boss/pkg/queue"
	"github.com/jingpengwu/boss/pkg/registry"
	"github.com/jingpengwu/boss/pkg/tilebucket"
	"github.com/jingpengwu/boss/pkg/tileindex"
)

// New builds the ingest API on its default backends: job rows in postgres,
// a read-only postgres resource registry, per-job SQS queues, a dynamodb
// tile index, an S3 tile bucket & IAM/STS scoped credentials.
func New(ctx context.Context, opts *Options) (API, error) {
	opts.SetDefaults()

	db, err := database.NewPostgres(opts.Database)
	if err != nil {
		return nil, err
	}
	reg, err := registry.NewPostgres(opts.Registry)
	if err != nil {
		return nil, err
	}
	qu, err := queue.NewSQS(ctx, opts.Queue)
	if err != nil {
		return nil, err
	}
	idx, err := tileindex.NewDynamo(ctx, opts.TileIndex)
	if err != nil {
		return nil, err
	}
	bkt, err := tilebucket.NewS3(ctx, opts.TileBucket)
	if err != nil {
		return nil, err
	}
	creds, err := credentials.NewAWS(ctx, opts.Credentials)
	if err != nil {
		return nil, err
	}

	return core.NewService(db, reg, qu, idx, bkt, creds), nil
}
