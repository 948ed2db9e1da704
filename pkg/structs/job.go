package structs

// IngestJob is the unit of work: one requested extent on one channel, split
// into per-tile upload tasks.
type IngestJob struct {
	// ID is assigned by the database on insert & immutable after.
	ID int64 `json:"id"`

	// Creator is an opaque principal reference; whoever asked for the ingest.
	Creator string `json:"creator"`

	// Names as supplied by the caller.
	Collection string `json:"collection"`
	Experiment string `json:"experiment"`
	Channel    string `json:"channel"`

	// Resolved numeric identifiers from the resource registry.
	CollectionID int64 `json:"collection_id"`
	ExperimentID int64 `json:"experiment_id"`
	ChannelID    int64 `json:"channel_id"`

	// Resolution is the channel's base resolution at bind time.
	Resolution int `json:"resolution"`

	Status Status `json:"status"`

	// ETag is used when updating the job for optimistic locking.
	ETag string `json:"etag"`

	// Extent is half open [start, stop) per axis.
	XStart int64 `json:"x_start"`
	XStop  int64 `json:"x_stop"`
	YStart int64 `json:"y_start"`
	YStop  int64 `json:"y_stop"`
	ZStart int64 `json:"z_start"`
	ZStop  int64 `json:"z_stop"`
	TStart int64 `json:"t_start"`
	TStop  int64 `json:"t_stop"`

	TileSizeX int64 `json:"tile_size_x"`
	TileSizeY int64 `json:"tile_size_y"`
	TileSizeZ int64 `json:"tile_size_z"`
	TileSizeT int64 `json:"tile_size_t"`

	// Provisioned queue references. Set exactly once, during provisioning;
	// empty before & meaningless once the job is DELETED.
	UploadQueue    string `json:"upload_queue"`
	UploadQueueARN string `json:"upload_queue_arn"`
	IngestQueue    string `json:"ingest_queue"`
	IngestQueueARN string `json:"ingest_queue_arn"`

	// ConfigData is the raw config document, retained for audit / replay.
	ConfigData []byte `json:"config_data"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Project returns this job's ingest project identity.
func (j *IngestJob) Project() *Project {
	return &Project{
		Collection:   j.Collection,
		Experiment:   j.Experiment,
		Channel:      j.Channel,
		CollectionID: j.CollectionID,
		ExperimentID: j.ExperimentID,
		ChannelID:    j.ChannelID,
		Resolution:   j.Resolution,
		JobID:        j.ID,
	}
}
