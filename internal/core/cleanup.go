package core

import (
	"context"
	"fmt"
	"log"

	"github.com/hashicorp/go-multierror"

	"github.com/jingpengwu/boss/pkg/errors"
	"github.com/jingpengwu/boss/pkg/tileindex"
)

// deleteTiles purges a job's outstanding upload state: for every chunk index
// entry owned by the job, delete each tracked tile object from the bucket,
// then the chunk entry itself.
//
// A failure on one tile or chunk does not abort the rest; every chunk is
// attempted & failures are reported once, aggregated, at the end. A chunk
// whose tiles could not all be deleted keeps its index entry so a retried
// delete can still find it.
func (s *Service) deleteTiles(ctx context.Context, jobID int64) error {
	var result *multierror.Error

	err := s.idx.Chunks(ctx, jobID, func(c *tileindex.Chunk) error {
		failed := false
		for _, key := range c.Tiles {
			if err := s.bkt.DeleteTile(ctx, key); err != nil {
				result = multierror.Append(result, fmt.Errorf("tile %s: %w", key, err))
				failed = true
			}
		}
		if failed {
			log.Println("[core] job", jobID, "chunk", c.ChunkKey, "kept: tile deletes failed")
			return nil
		}
		if err := s.idx.DeleteChunk(ctx, c.ChunkKey); err != nil {
			result = multierror.Append(result, fmt.Errorf("chunk %s: %w", c.ChunkKey, err))
		}
		return nil
	})
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("listing chunks: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w purging tiles for job %d: %w", errors.ErrSystem, jobID, err)
	}
	return nil
}
