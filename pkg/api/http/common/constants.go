package common

const (
	// API_INGEST is used to create ingest jobs or list them
	API_INGEST = "/api/v1/ingest"

	// API_INGEST_JOB is used to get or delete one ingest job
	API_INGEST_JOB = "/api/v1/ingest/{id}"

	// HEADER_CREATOR names the principal an ingest job is created for.
	// Expected to be set by whatever auth layer fronts the server.
	HEADER_CREATOR = "X-Ingest-Creator"
)
