package structs

// TileTask is the message published to the upload queue, one per tile.
// It is never persisted outside the queue; once published it belongs to the
// queue & the out-of-band upload workers. Delivery is at-least-once, so
// consumers must treat tile uploads as idempotent.
type TileTask struct {
	JobID          int64  `json:"job_id"`
	ChunkKey       string `json:"chunk_key"`
	TileKey        string `json:"tile_key"`
	UploadQueueARN string `json:"upload_queue_arn"`
	IngestQueueARN string `json:"ingest_queue_arn"`
}
