package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingpengwu/boss/pkg/errors"
)

func validDoc() string {
	return `{
		"database": {"collection": "col1", "experiment": "exp1", "channel": "chan1"},
		"ingest_job": {
			"extent": {"x": [0, 2048], "y": [0, 2048], "z": [0, 128], "t": [0, 1]},
			"tile_size": {"x": 1024, "y": 1024, "z": 16, "t": 1}
		}
	}`
}

func TestParseIngestConfig(t *testing.T) {
	cfg, err := ParseIngestConfig([]byte(validDoc()))

	require.NoError(t, err)
	assert.Equal(t, "col1", cfg.Database.Collection)
	assert.Equal(t, [2]int64{0, 2048}, cfg.IngestJob.Extent.X)
	assert.Equal(t, [2]int64{0, 128}, cfg.IngestJob.Extent.Z)
	assert.Equal(t, int64(1024), cfg.IngestJob.TileSize.X)
}

func TestParseIngestConfigRejectsBadJson(t *testing.T) {
	_, err := ParseIngestConfig([]byte(`{"database": `))
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		Name   string
		Mutate func(*IngestConfig)
	}{
		{"missing collection", func(c *IngestConfig) { c.Database.Collection = "" }},
		{"missing experiment", func(c *IngestConfig) { c.Database.Experiment = "" }},
		{"missing channel", func(c *IngestConfig) { c.Database.Channel = "" }},
		{"negative x start", func(c *IngestConfig) { c.IngestJob.Extent.X = [2]int64{-1, 10} }},
		{"inverted y range", func(c *IngestConfig) { c.IngestJob.Extent.Y = [2]int64{10, 5} }},
		{"inverted t range", func(c *IngestConfig) { c.IngestJob.Extent.T = [2]int64{2, 1} }},
		{"zero tile x", func(c *IngestConfig) { c.IngestJob.TileSize.X = 0 }},
		{"negative tile z", func(c *IngestConfig) { c.IngestJob.TileSize.Z = -16 }},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			cfg, err := ParseIngestConfig([]byte(validDoc()))
			require.NoError(t, err)

			tt.Mutate(cfg)

			assert.ErrorIs(t, cfg.Validate(), errors.ErrValidation)
		})
	}
}

func TestValidateAllowsEmptyExtent(t *testing.T) {
	cfg, err := ParseIngestConfig([]byte(validDoc()))
	require.NoError(t, err)

	// [n, n) is a legal, empty range
	cfg.IngestJob.Extent.Z = [2]int64{64, 64}
	assert.NoError(t, cfg.Validate())
}

func TestQueueNames(t *testing.T) {
	p := &Project{CollectionID: 1, ExperimentID: 2, ChannelID: 3, Resolution: 0, JobID: 9}

	assert.Equal(t, "ingest-1-2-3-0-9-upload", p.UploadQueueName())
	assert.Equal(t, "ingest-1-2-3-0-9-ingest", p.IngestQueueName())
	assert.Equal(t, []string{"1", "2", "3"}, p.IDs())
}

func TestQuerySanitize(t *testing.T) {
	q := &Query{Limit: -5, Offset: -1, JobIDs: []int64{}}
	q.Sanitize()

	assert.Equal(t, 1000, q.Limit)
	assert.Equal(t, 0, q.Offset)
	assert.Nil(t, q.JobIDs)

	q = &Query{Limit: 99999999}
	q.Sanitize()
	assert.Equal(t, 10000, q.Limit)
}

func TestToStatus(t *testing.T) {
	for _, want := range []Status{CREATED, ACTIVE, DELETED} {
		assert.Equal(t, want, ToStatus(string(want)))
	}
	assert.Equal(t, ACTIVE, ToStatus("active"))
	assert.Equal(t, Status(""), ToStatus("bogus"))
}
