package credentials

import (
	"context"
	"time"
)

// Credentials are temporary, job-scoped credentials handed to out-of-band
// upload workers. They grant access to the job's own queues & the tile
// bucket and nothing else.
type Credentials struct {
	JobID int64 `json:"job_id"`

	AccessKeyID     string    `json:"access_key_id"`
	SecretAccessKey string    `json:"secret_access_key"`
	SessionToken    string    `json:"session_token"`
	Expiration      time.Time `json:"expiration"`

	PolicyARN string `json:"policy_arn"`
}

// Provisioner creates & removes job-scoped credentials and the access
// policy backing them.
type Provisioner interface {
	// Create issues credentials for the job bound to the given policy
	// document. Safe to retry; an existing policy for the job is reused.
	Create(ctx context.Context, jobID int64, policy string) (*Credentials, error)

	// Remove revokes the job's policy. Safe to call when already absent.
	// Issued session credentials expire on their own.
	Remove(ctx context.Context, jobID int64) error
}
