package tileindex

import (
	"context"
)

// Chunk is one chunk index entry: the tiles uploaded so far under one chunk
// key, owned by one ingest job. The entry is written by the out-of-band
// upload workers; this core only reads & deletes it during job teardown.
type Chunk struct {
	ChunkKey string
	JobID    int64

	// Tiles are the bucket keys of every tile uploaded into this chunk.
	Tiles []string
}

// Index is the tile index collaborator: it groups uploaded tiles by chunk
// key so cleanup can find a job's outstanding state.
type Index interface {
	// Chunks calls each() for every chunk entry owned by the given job,
	// paginating internally. An error returned by each() stops the walk.
	Chunks(ctx context.Context, jobID int64, each func(*Chunk) error) error

	// DeleteChunk removes one chunk entry. Safe to call when already absent.
	DeleteChunk(ctx context.Context, chunkKey string) error
}
