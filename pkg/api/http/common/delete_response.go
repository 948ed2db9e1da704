package common

// DeleteResponse is the response from a job delete, specific to HTTP.
type DeleteResponse struct {
	// JobID is the id of the deleted job. Deleting an already deleted
	// job returns the same id again.
	JobID int64 `json:"job_id"`
}
