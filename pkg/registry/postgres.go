package registry

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jingpengwu/boss/pkg/errors"
)

const (
	defaultPasswordEnvVar = "REGISTRY_PASSWORD"
	defaultUsernameEnvVar = "REGISTRY_USER"
)

// Options are options for the registry connection.
type Options struct {
	// URL encodes how we'll connect to the resource registry database.
	URL string

	// PasswordEnvVar / UsernameEnvVar are substituted into the URL, same
	// scheme as pkg/database.
	PasswordEnvVar string
	UsernameEnvVar string
}

func (o *Options) SetDefaults() {
	if o.PasswordEnvVar == "" {
		o.PasswordEnvVar = defaultPasswordEnvVar
	}
	if o.UsernameEnvVar == "" {
		o.UsernameEnvVar = defaultUsernameEnvVar
	}
}

// Postgres resolves resource names against the registry's postgres tables.
type Postgres struct {
	opts *Options
	pool *pgxpool.Pool
}

// NewPostgres returns a registry backed by postgres.
func NewPostgres(opts *Options) (*Postgres, error) {
	opts.SetDefaults()
	opts.URL = strings.Replace(opts.URL, "$"+opts.UsernameEnvVar, os.Getenv(opts.UsernameEnvVar), 1)
	opts.URL = strings.Replace(opts.URL, "$"+opts.PasswordEnvVar, os.Getenv(opts.PasswordEnvVar), 1)
	pool, err := pgxpool.New(context.Background(), opts.URL)
	return &Postgres{pool: pool, opts: opts}, err
}

// Close shuts down the registry connection.
func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

// Resolve maps names to ids level by level so not-found errors name the
// exact missing resource, the way callers expect.
func (p *Postgres) Resolve(ctx context.Context, collection, experiment, channel string) (*Binding, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	b := &Binding{}

	err = conn.QueryRow(ctx, `SELECT id FROM collection WHERE name=$1;`, collection).Scan(&b.CollectionID)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w collection %s", errors.ErrResourceNotFound, collection)
	}
	if err != nil {
		return nil, err
	}

	err = conn.QueryRow(ctx,
		`SELECT id FROM experiment WHERE name=$1 AND collection_id=$2;`, experiment, b.CollectionID,
	).Scan(&b.ExperimentID)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w experiment %s", errors.ErrResourceNotFound, experiment)
	}
	if err != nil {
		return nil, err
	}

	err = conn.QueryRow(ctx,
		`SELECT id, base_resolution FROM channel WHERE name=$1 AND experiment_id=$2;`, channel, b.ExperimentID,
	).Scan(&b.ChannelID, &b.BaseResolution)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("%w channel %s", errors.ErrResourceNotFound, channel)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}
