package api

import (
	"context"

	"github.com/jingpengwu/boss/pkg/structs"
)

// API represents the functions ingest servers should expose.
type API interface {
	// Implemented in internal/core.Service

	SetupIngest(ctx context.Context, creator string, configData []byte) (*structs.IngestJob, error)
	DeleteIngestJob(ctx context.Context, jobID int64) (int64, error)

	IngestJob(ctx context.Context, jobID int64) (*structs.IngestJob, error)
	IngestJobs(ctx context.Context, q *structs.Query) ([]*structs.IngestJob, error)

	Close() error
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
