package database

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jingpengwu/boss/pkg/errors"
	"github.com/jingpengwu/boss/pkg/structs"
)

const ingestJobTable = "ingest_job"

// columns in scan order, shared by Job & Jobs
const ingestJobColumns = `id, creator, collection, experiment, channel,
collection_id, experiment_id, channel_id, resolution, status, etag,
x_start, x_stop, y_start, y_stop, z_start, z_stop, t_start, t_stop,
tile_size_x, tile_size_y, tile_size_z, tile_size_t,
upload_queue, upload_queue_arn, ingest_queue, ingest_queue_arn,
config_data, created_at, updated_at`

// Postgres is a job store implementation that uses postgres.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a new Postgres job store.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.SetDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)

	if opts.Migrate {
		if err := runMigrations(opts.URL); err != nil {
			return nil, err
		}
	}

	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the database connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// InsertJob persists a new job row & sets its assigned ID.
func (p *Postgres) InsertJob(ctx context.Context, j *structs.IngestJob) error {
	if j.CreatedAt == 0 {
		j.CreatedAt = timeNow()
		j.UpdatedAt = j.CreatedAt
	}

	qstr := fmt.Sprintf(`INSERT INTO %s (creator, collection, experiment, channel,
	collection_id, experiment_id, channel_id, resolution, status, etag,
	x_start, x_stop, y_start, y_stop, z_start, z_stop, t_start, t_stop,
	tile_size_x, tile_size_y, tile_size_z, tile_size_t, config_data, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
	RETURNING id;`, ingestJobTable)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	return conn.QueryRow(ctx, qstr,
		j.Creator, j.Collection, j.Experiment, j.Channel,
		j.CollectionID, j.ExperimentID, j.ChannelID, j.Resolution, j.Status, j.ETag,
		j.XStart, j.XStop, j.YStart, j.YStop, j.ZStart, j.ZStop, j.TStart, j.TStop,
		j.TileSizeX, j.TileSizeY, j.TileSizeZ, j.TileSizeT, j.ConfigData, j.CreatedAt, j.UpdatedAt,
	).Scan(&j.ID)
}

// Job returns one job by ID.
func (p *Postgres) Job(ctx context.Context, id int64) (*structs.IngestJob, error) {
	qstr := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1;`, ingestJobColumns, ingestJobTable)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	j := structs.IngestJob{}
	err = scanJob(conn.QueryRow(ctx, qstr, id), &j)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w ingest job %d", errors.ErrResourceNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Jobs returns jobs matching the given query.
func (p *Postgres) Jobs(ctx context.Context, q *structs.Query) ([]*structs.IngestJob, error) {
	where, args := toSqlQuery(q)
	args = append(args, q.Limit, q.Offset)

	qstr := fmt.Sprintf(`SELECT %s FROM %s %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d;`,
		ingestJobColumns, ingestJobTable, where, len(args)-1, len(args),
	)

	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, qstr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*structs.IngestJob{}
	for rows.Next() {
		j := structs.IngestJob{}
		if err := scanJob(rows, &j); err != nil {
			return nil, err
		}
		jobs = append(jobs, &j)
	}
	return jobs, rows.Err()
}

// SetJobQueues records the provisioned queue references on the job row.
func (p *Postgres) SetJobQueues(ctx context.Context, id int64, etag, newTag string, uploadURL, uploadARN, ingestURL, ingestARN string) error {
	qstr := fmt.Sprintf(`UPDATE %s SET upload_queue=$1, upload_queue_arn=$2, ingest_queue=$3, ingest_queue_arn=$4,
	etag=$5, updated_at=$6 WHERE id=$7 AND etag=$8;`, ingestJobTable)

	return p.exec(ctx, qstr, uploadURL, uploadARN, ingestURL, ingestARN, newTag, timeNow(), id, etag)
}

// SetJobStatus transitions the job's status, guarded by etag.
func (p *Postgres) SetJobStatus(ctx context.Context, id int64, etag, newTag string, status structs.Status) error {
	qstr := fmt.Sprintf(`UPDATE %s SET status=$1, etag=$2, updated_at=$3 WHERE id=$4 AND etag=$5;`, ingestJobTable)

	return p.exec(ctx, qstr, status, newTag, timeNow(), id, etag)
}

// exec runs an update that must touch exactly one row.
func (p *Postgres) exec(ctx context.Context, qstr string, args ...interface{}) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	info, err := conn.Exec(ctx, qstr, args...)
	if err != nil {
		return err
	}
	if info.RowsAffected() == 0 {
		return errors.ErrETagMismatch
	}
	return nil
}

type row interface {
	Scan(dest ...interface{}) error
}

func scanJob(r row, j *structs.IngestJob) error {
	return r.Scan(
		&j.ID, &j.Creator, &j.Collection, &j.Experiment, &j.Channel,
		&j.CollectionID, &j.ExperimentID, &j.ChannelID, &j.Resolution, &j.Status, &j.ETag,
		&j.XStart, &j.XStop, &j.YStart, &j.YStop, &j.ZStart, &j.ZStop, &j.TStart, &j.TStop,
		&j.TileSizeX, &j.TileSizeY, &j.TileSizeZ, &j.TileSizeT,
		&j.UploadQueue, &j.UploadQueueARN, &j.IngestQueue, &j.IngestQueueARN,
		&j.ConfigData, &j.CreatedAt, &j.UpdatedAt,
	)
}

// toSqlQuery converts query filters into a SQL where clause & args
func toSqlQuery(q *structs.Query) (string, []interface{}) {
	and := []string{}
	args := []interface{}{}

	if len(q.JobIDs) > 0 {
		vals := []string{}
		for _, id := range q.JobIDs {
			args = append(args, id)
			vals = append(vals, fmt.Sprintf("$%d", len(args)))
		}
		and = append(and, fmt.Sprintf("id IN (%s)", strings.Join(vals, ", ")))
	}
	if len(q.Creators) > 0 {
		vals := []string{}
		for _, c := range q.Creators {
			args = append(args, c)
			vals = append(vals, fmt.Sprintf("$%d", len(args)))
		}
		and = append(and, fmt.Sprintf("creator IN (%s)", strings.Join(vals, ", ")))
	}
	if len(q.Statuses) > 0 {
		vals := []string{}
		for _, s := range q.Statuses {
			args = append(args, string(s))
			vals = append(vals, fmt.Sprintf("$%d", len(args)))
		}
		and = append(and, fmt.Sprintf("status IN (%s)", strings.Join(vals, ", ")))
	}

	if len(and) == 0 {
		return "", args
	}
	return fmt.Sprintf("WHERE %s", strings.Join(and, " AND ")), args
}

// timeNow returns the current time in unix seconds
func timeNow() int64 {
	return time.Now().Unix()
}
