package database

import (
	"context"

	"github.com/jingpengwu/boss/pkg/structs"
)

// Database persists ingest job rows. Jobs are soft deleted; their rows are
// retained with status DELETED so re-deletion is idempotent & auditable.
type Database interface {
	// InsertJob persists a new job & assigns its ID.
	InsertJob(ctx context.Context, j *structs.IngestJob) error

	// Job returns one job by ID.
	Job(ctx context.Context, id int64) (*structs.IngestJob, error)

	// Jobs returns jobs matching the given query.
	Jobs(ctx context.Context, q *structs.Query) ([]*structs.IngestJob, error)

	// SetJobQueues records the provisioned queue references, or clears
	// them again (empty values) when provisioning is rolled back.
	SetJobQueues(ctx context.Context, id int64, etag, newTag string, uploadURL, uploadARN, ingestURL, ingestARN string) error

	// SetJobStatus transitions the job, guarded by etag.
	SetJobStatus(ctx context.Context, id int64, etag, newTag string, status structs.Status) error

	Close() error
}
