package credentials

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngestPolicy(t *testing.T) {
	doc := IngestPolicy(
		"arn:aws:sqs:us-east-1:123:ingest-1-2-3-0-9-upload",
		"arn:aws:sqs:us-east-1:123:ingest-1-2-3-0-9-ingest",
		"arn:aws:s3:::tiles",
	)

	parsed := policyDocument{}
	err := json.Unmarshal([]byte(doc), &parsed)

	assert.Nil(t, err)
	assert.Equal(t, "2012-10-17", parsed.Version)
	assert.Equal(t, 2, len(parsed.Statement))

	queues := parsed.Statement[0]
	assert.Equal(t, "Allow", queues.Effect)
	assert.Contains(t, queues.Action, "sqs:SendMessage")
	assert.Equal(t, []string{
		"arn:aws:sqs:us-east-1:123:ingest-1-2-3-0-9-upload",
		"arn:aws:sqs:us-east-1:123:ingest-1-2-3-0-9-ingest",
	}, queues.Resource)

	bucket := parsed.Statement[1]
	assert.Equal(t, "Allow", bucket.Effect)
	assert.Equal(t, []string{"arn:aws:s3:::tiles/*"}, bucket.Resource)
}

func TestIngestPolicyScopedPerJob(t *testing.T) {
	a := IngestPolicy("arn:a:up", "arn:a:in", "arn:aws:s3:::tiles")
	b := IngestPolicy("arn:b:up", "arn:b:in", "arn:aws:s3:::tiles")

	assert.NotEqual(t, a, b)
	assert.NotContains(t, a, "arn:b:up")
	assert.NotContains(t, b, "arn:a:up")
}
