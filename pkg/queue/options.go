package queue

import (
	"time"
)

const (
	defaultPublishAttempts = 5
	defaultPublishDelay    = 200 * time.Millisecond
	defaultOpTimeout       = 30 * time.Second
)

// Options are options for the queue provisioner / publisher.
type Options struct {
	// Region is the AWS region queues live in.
	Region string

	// Endpoint overrides the SQS endpoint (eg. localstack). Optional.
	Endpoint string

	// PublishAttempts bounds the retries of one Publish call.
	PublishAttempts uint

	// PublishDelay is the initial backoff between publish attempts.
	PublishDelay time.Duration

	// OpTimeout bounds each remote queue operation.
	OpTimeout time.Duration
}

func (o *Options) SetDefaults() {
	if o.PublishAttempts == 0 {
		o.PublishAttempts = defaultPublishAttempts
	}
	if o.PublishDelay <= 0 {
		o.PublishDelay = defaultPublishDelay
	}
	if o.OpTimeout <= 0 {
		o.OpTimeout = defaultOpTimeout
	}
}
