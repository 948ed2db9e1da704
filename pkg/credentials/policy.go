package credentials

import (
	"encoding/json"
)

type policyStatement struct {
	Sid      string   `json:"Sid,omitempty"`
	Effect   string   `json:"Effect"`
	Action   []string `json:"Action"`
	Resource []string `json:"Resource"`
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

// IngestPolicy builds the access policy document for one ingest job: send /
// receive / delete on the job's own two queues and tile writes to the tile
// bucket. No other job's resources are reachable with it.
func IngestPolicy(uploadQueueARN, ingestQueueARN, bucketARN string) string {
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Sid:    "IngestQueueAccess",
				Effect: "Allow",
				Action: []string{
					"sqs:SendMessage",
					"sqs:ReceiveMessage",
					"sqs:DeleteMessage",
					"sqs:ChangeMessageVisibility",
					"sqs:GetQueueAttributes",
				},
				Resource: []string{uploadQueueARN, ingestQueueARN},
			},
			{
				Sid:    "IngestTileBucketAccess",
				Effect: "Allow",
				Action: []string{
					"s3:PutObject",
					"s3:GetObject",
				},
				Resource: []string{bucketARN + "/*"},
			},
		},
	}

	data, _ := json.Marshal(doc) // static shape, cannot fail
	return string(data)
}
