package core

import (
	"context"
	"fmt"
	"log"

	"github.com/jingpengwu/boss/internal/utils"
	"github.com/jingpengwu/boss/pkg/credentials"
	"github.com/jingpengwu/boss/pkg/database"
	"github.com/jingpengwu/boss/pkg/errors"
	"github.com/jingpengwu/boss/pkg/partition"
	"github.com/jingpengwu/boss/pkg/queue"
	"github.com/jingpengwu/boss/pkg/registry"
	"github.com/jingpengwu/boss/pkg/structs"
	"github.com/jingpengwu/boss/pkg/tilebucket"
	"github.com/jingpengwu/boss/pkg/tileindex"
)

// Service owns the ingest job state machine (CREATED -> ACTIVE -> DELETED)
// and orchestrates the collaborators around it. It holds no per-request
// state; everything an invocation needs is threaded through explicitly so
// concurrent calls cannot interfere.
type Service struct {
	db    database.Database
	reg   registry.Registry
	qu    queue.Queue
	idx   tileindex.Index
	bkt   tilebucket.Bucket
	creds credentials.Provisioner
}

// NewService returns a service over the given collaborators.
func NewService(db database.Database, reg registry.Registry, qu queue.Queue, idx tileindex.Index, bkt tilebucket.Bucket, creds credentials.Provisioner) *Service {
	return &Service{db: db, reg: reg, qu: qu, idx: idx, bkt: bkt, creds: creds}
}

// Close shuts down the service's connections.
func (s *Service) Close() error {
	s.qu.Close()
	s.reg.Close()
	s.db.Close()
	return nil
}

// SetupIngest validates the config, binds it to registry resources, persists
// the job, provisions its queues, publishes one upload task per tile &
// issues job-scoped credentials.
//
// The job row is created before any external provisioning so partial
// failures are attributable to a job id. If provisioning fails after that,
// resources created so far are torn down best effort & the job stays
// CREATED; the returned error carries the original cause.
func (s *Service) SetupIngest(ctx context.Context, creator string, configData []byte) (*structs.IngestJob, error) {
	cfg, err := structs.ParseIngestConfig(configData)
	if err != nil {
		return nil, err
	}

	bind, err := s.reg.Resolve(ctx, cfg.Database.Collection, cfg.Database.Experiment, cfg.Database.Channel)
	if err != nil {
		return nil, err
	}

	job := buildIngestJob(creator, configData, cfg, bind)
	if err := s.db.InsertJob(ctx, job); err != nil {
		return nil, fmt.Errorf("%w persisting ingest job: %w", errors.ErrSystem, err)
	}

	// compensations for everything provisioned from here on, run in
	// reverse on failure
	undo := []func(context.Context) error{}

	proj := job.Project()
	upload, err := s.qu.EnsureQueue(ctx, proj.UploadQueueName())
	if err != nil {
		return nil, s.fail(ctx, job, "creating upload queue", err, undo)
	}
	undo = append(undo, func(c context.Context) error { return s.qu.DeleteQueue(c, upload.Name) })

	ingest, err := s.qu.EnsureQueue(ctx, proj.IngestQueueName())
	if err != nil {
		return nil, s.fail(ctx, job, "creating ingest queue", err, undo)
	}
	undo = append(undo, func(c context.Context) error { return s.qu.DeleteQueue(c, ingest.Name) })

	newTag := utils.NewRandomID()
	if err := s.db.SetJobQueues(ctx, job.ID, job.ETag, newTag, upload.URL, upload.ARN, ingest.URL, ingest.ARN); err != nil {
		return nil, s.fail(ctx, job, "recording queue references", err, undo)
	}
	job.ETag = newTag
	job.UploadQueue, job.UploadQueueARN = upload.URL, upload.ARN
	job.IngestQueue, job.IngestQueueARN = ingest.URL, ingest.ARN
	undo = append(undo, func(c context.Context) error {
		// the queues come back down with the job, so the row must not
		// keep pointing at them
		tag := utils.NewRandomID()
		if err := s.db.SetJobQueues(c, job.ID, job.ETag, tag, "", "", "", ""); err != nil {
			return err
		}
		job.ETag = tag
		job.UploadQueue, job.UploadQueueARN = "", ""
		job.IngestQueue, job.IngestQueueARN = "", ""
		return nil
	})

	if err := s.publishUploadTasks(ctx, job, upload, ingest); err != nil {
		return nil, s.fail(ctx, job, "publishing upload tasks", err, undo)
	}

	policy := credentials.IngestPolicy(upload.ARN, ingest.ARN, s.bkt.ARN())
	if _, err := s.creds.Create(ctx, job.ID, policy); err != nil {
		return nil, s.fail(ctx, job, "creating ingest credentials", err, undo)
	}
	undo = append(undo, func(c context.Context) error { return s.creds.Remove(c, job.ID) })

	newTag = utils.NewRandomID()
	if err := s.db.SetJobStatus(ctx, job.ID, job.ETag, newTag, structs.ACTIVE); err != nil {
		return nil, s.fail(ctx, job, "activating job", err, undo)
	}
	job.ETag = newTag
	job.Status = structs.ACTIVE

	return job, nil
}

// DeleteIngestJob deprovisions the job's queues, purges its outstanding
// tile state, marks it DELETED & revokes its credentials. Deleting an
// already DELETED job is a no-op success.
//
// The DELETED transition happens only after cleanup succeeds, so a
// partially failed teardown never reports the job gone.
func (s *Service) DeleteIngestJob(ctx context.Context, jobID int64) (int64, error) {
	job, err := s.db.Job(ctx, jobID)
	if err != nil {
		return 0, err
	}
	if job.Status == structs.DELETED {
		return jobID, nil
	}

	proj := job.Project()
	if err := s.qu.DeleteQueue(ctx, proj.UploadQueueName()); err != nil {
		return 0, fmt.Errorf("%w deleting upload queue: %w", errors.ErrSystem, err)
	}
	if err := s.qu.DeleteQueue(ctx, proj.IngestQueueName()); err != nil {
		return 0, fmt.Errorf("%w deleting ingest queue: %w", errors.ErrSystem, err)
	}

	if err := s.deleteTiles(ctx, job.ID); err != nil {
		return 0, err
	}

	newTag := utils.NewRandomID()
	if err := s.db.SetJobStatus(ctx, job.ID, job.ETag, newTag, structs.DELETED); err != nil {
		return 0, fmt.Errorf("%w marking job deleted: %w", errors.ErrSystem, err)
	}

	if err := s.creds.Remove(ctx, job.ID); err != nil {
		return 0, fmt.Errorf("%w removing ingest credentials: %w", errors.ErrSystem, err)
	}

	return jobID, nil
}

// IngestJob returns one job by id.
func (s *Service) IngestJob(ctx context.Context, jobID int64) (*structs.IngestJob, error) {
	return s.db.Job(ctx, jobID)
}

// IngestJobs returns jobs matching the given query.
func (s *Service) IngestJobs(ctx context.Context, q *structs.Query) ([]*structs.IngestJob, error) {
	q.Sanitize()
	return s.db.Jobs(ctx, q)
}

// publishUploadTasks walks the job's extent & publishes one task per tile.
// Tiles are streamed off the iterator; the full task list is never held in
// memory.
func (s *Service) publishUploadTasks(ctx context.Context, job *structs.IngestJob, upload, ingest *queue.Ref) error {
	params := partition.Params{
		XStart: job.XStart, XStop: job.XStop,
		YStart: job.YStart, YStop: job.YStop,
		ZStart: job.ZStart, ZStop: job.ZStop,
		TStart: job.TStart, TStop: job.TStop,
		TileSizeX:  job.TileSizeX,
		TileSizeY:  job.TileSizeY,
		Project:    job.Project().IDs(),
		Resolution: job.Resolution,
	}
	log.Println("[core] job", job.ID, "publishing", partition.Count(params), "upload tasks")

	it := partition.NewIterator(params)
	for {
		tile, ok := it.Next()
		if !ok {
			return nil
		}
		err := s.qu.Publish(ctx, upload, &structs.TileTask{
			JobID:          job.ID,
			ChunkKey:       tile.ChunkKey,
			TileKey:        tile.TileKey,
			UploadQueueARN: upload.ARN,
			IngestQueueARN: ingest.ARN,
		})
		if err != nil {
			return err
		}
	}
}

// fail tears down already-provisioned resources in reverse order, best
// effort, then wraps the original cause. The job stays CREATED.
func (s *Service) fail(ctx context.Context, job *structs.IngestJob, step string, cause error, undo []func(context.Context) error) error {
	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](ctx); err != nil {
			log.Println("[core] job", job.ID, "compensating teardown:", err)
		}
	}
	return fmt.Errorf("%w %s: %w", errors.ErrSystem, step, cause)
}

// buildIngestJob maps a validated config & its registry binding onto a new
// CREATED job row.
func buildIngestJob(creator string, raw []byte, cfg *structs.IngestConfig, b *registry.Binding) *structs.IngestJob {
	ext := cfg.IngestJob.Extent
	ts := cfg.IngestJob.TileSize
	return &structs.IngestJob{
		Creator:      creator,
		Collection:   cfg.Database.Collection,
		Experiment:   cfg.Database.Experiment,
		Channel:      cfg.Database.Channel,
		CollectionID: b.CollectionID,
		ExperimentID: b.ExperimentID,
		ChannelID:    b.ChannelID,
		Resolution:   b.BaseResolution,
		Status:       structs.CREATED,
		ETag:         utils.NewRandomID(),
		XStart:       ext.X[0], XStop: ext.X[1],
		YStart: ext.Y[0], YStop: ext.Y[1],
		ZStart: ext.Z[0], ZStop: ext.Z[1],
		TStart: ext.T[0], TStop: ext.T[1],
		TileSizeX:  ts.X,
		TileSizeY:  ts.Y,
		TileSizeZ:  ts.Z,
		TileSizeT:  ts.T,
		ConfigData: raw,
	}
}
