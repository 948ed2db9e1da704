package structs

import (
	"strings"
)

// Status is the lifecycle state of an ingest job.
//
// Transitions are monotonic: CREATED -> ACTIVE -> DELETED. A job that fails
// during setup stays CREATED; the error returned to the caller carries the
// detail.
type Status string

const (
	// CREATED means the job row is persisted but no external resources exist yet.
	CREATED Status = "CREATED"

	// ACTIVE means queues are provisioned, upload tasks published & credentials issued.
	ACTIVE Status = "ACTIVE"

	// DELETED means queues & outstanding tile state are purged and credentials revoked.
	// The row itself is retained so re-deletion is an idempotent no-op.
	DELETED Status = "DELETED"
)

func ToStatus(s string) Status {
	switch strings.ToUpper(s) {
	case "CREATED":
		return CREATED
	case "ACTIVE":
		return ACTIVE
	case "DELETED":
		return DELETED
	default:
		return ""
	}
}
