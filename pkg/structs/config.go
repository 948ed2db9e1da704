package structs

import (
	"encoding/json"
	"fmt"

	"github.com/jingpengwu/boss/pkg/errors"
)

// IngestConfig is the validated configuration document an ingest job is
// created from. Extents are half open [start, stop) per axis.
type IngestConfig struct {
	Database struct {
		Collection string `json:"collection"`
		Experiment string `json:"experiment"`
		Channel    string `json:"channel"`
	} `json:"database"`

	IngestJob struct {
		Extent struct {
			X [2]int64 `json:"x"`
			Y [2]int64 `json:"y"`
			Z [2]int64 `json:"z"`
			T [2]int64 `json:"t"`
		} `json:"extent"`

		TileSize struct {
			X int64 `json:"x"`
			Y int64 `json:"y"`
			Z int64 `json:"z"`
			T int64 `json:"t"`
		} `json:"tile_size"`
	} `json:"ingest_job"`
}

// ParseIngestConfig decodes & validates a raw config document.
func ParseIngestConfig(data []byte) (*IngestConfig, error) {
	cfg := &IngestConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w bad config document: %w", errors.ErrValidation, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config document is internally consistent.
func (c *IngestConfig) Validate() error {
	if c.Database.Collection == "" {
		return fmt.Errorf("%w database.collection is required", errors.ErrValidation)
	}
	if c.Database.Experiment == "" {
		return fmt.Errorf("%w database.experiment is required", errors.ErrValidation)
	}
	if c.Database.Channel == "" {
		return fmt.Errorf("%w database.channel is required", errors.ErrValidation)
	}

	ext := c.IngestJob.Extent
	for _, axis := range []struct {
		name string
		rng  [2]int64
	}{
		{"x", ext.X}, {"y", ext.Y}, {"z", ext.Z}, {"t", ext.T},
	} {
		if rng := axis.rng; rng[0] < 0 || rng[0] > rng[1] {
			return fmt.Errorf("%w extent.%s [%d, %d) is not a valid range", errors.ErrValidation, axis.name, rng[0], rng[1])
		}
	}

	ts := c.IngestJob.TileSize
	for _, axis := range []struct {
		name string
		size int64
	}{
		{"x", ts.X}, {"y", ts.Y}, {"z", ts.Z}, {"t", ts.T},
	} {
		if axis.size <= 0 {
			return fmt.Errorf("%w tile_size.%s must be > 0, got %d", errors.ErrValidation, axis.name, axis.size)
		}
	}

	return nil
}
