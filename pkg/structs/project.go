package structs

import (
	"fmt"
	"strconv"
)

// Project pins the identity an ingest job operates under: the resolved
// collection / experiment / channel, the resolution & the job itself.
// Queue names & key components are all derived from this.
type Project struct {
	Collection string
	Experiment string
	Channel    string

	CollectionID int64
	ExperimentID int64
	ChannelID    int64

	Resolution int
	JobID      int64
}

// IDs returns the resolved identifiers in key-component order
// (collection, experiment, channel).
func (p *Project) IDs() []string {
	return []string{
		strconv.FormatInt(p.CollectionID, 10),
		strconv.FormatInt(p.ExperimentID, 10),
		strconv.FormatInt(p.ChannelID, 10),
	}
}

// UploadQueueName is the name of this job's upload queue.
// Deterministic so create & delete can be retried by name alone.
func (p *Project) UploadQueueName() string {
	return fmt.Sprintf("ingest-%d-%d-%d-%d-%d-upload", p.CollectionID, p.ExperimentID, p.ChannelID, p.Resolution, p.JobID)
}

// IngestQueueName is the name of this job's ingest queue.
func (p *Project) IngestQueueName() string {
	return fmt.Sprintf("ingest-%d-%d-%d-%d-%d-ingest", p.CollectionID, p.ExperimentID, p.ChannelID, p.Resolution, p.JobID)
}
