package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jingpengwu/boss/pkg/structs"
)

// fakeSQS mimics the SQS semantics we rely on: CreateQueue returns the
// existing queue's URL when the name is already taken, GetQueueUrl fails
// with QueueDoesNotExist for unknown names.
type fakeSQS struct {
	queues map[string]string // name -> url

	createCalls int
	sent        map[string][]string // url -> message bodies

	sendErrs []error // popped per SendMessage call, nil = success
}

func newFakeSQS() *fakeSQS {
	return &fakeSQS{queues: map[string]string{}, sent: map[string][]string{}}
}

func (f *fakeSQS) CreateQueue(_ context.Context, in *sqs.CreateQueueInput, _ ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error) {
	f.createCalls++
	name := aws.ToString(in.QueueName)
	url, ok := f.queues[name]
	if !ok {
		url = "http://sqs.test/" + name
		f.queues[name] = url
	}
	return &sqs.CreateQueueOutput{QueueUrl: aws.String(url)}, nil
}

func (f *fakeSQS) GetQueueAttributes(_ context.Context, in *sqs.GetQueueAttributesInput, _ ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	return &sqs.GetQueueAttributesOutput{
		Attributes: map[string]string{
			string(types.QueueAttributeNameQueueArn): "arn:test:" + aws.ToString(in.QueueUrl),
		},
	}, nil
}

func (f *fakeSQS) GetQueueUrl(_ context.Context, in *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	url, ok := f.queues[aws.ToString(in.QueueName)]
	if !ok {
		return nil, &types.QueueDoesNotExist{}
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String(url)}, nil
}

func (f *fakeSQS) DeleteQueue(_ context.Context, in *sqs.DeleteQueueInput, _ ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error) {
	for name, url := range f.queues {
		if url == aws.ToString(in.QueueUrl) {
			delete(f.queues, name)
			return &sqs.DeleteQueueOutput{}, nil
		}
	}
	return nil, &types.QueueDoesNotExist{}
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if len(f.sendErrs) > 0 {
		err := f.sendErrs[0]
		f.sendErrs = f.sendErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	url := aws.ToString(in.QueueUrl)
	f.sent[url] = append(f.sent[url], aws.ToString(in.MessageBody))
	return &sqs.SendMessageOutput{}, nil
}

func newTestSQS(fake *fakeSQS) *SQS {
	opts := &Options{PublishAttempts: 3, PublishDelay: time.Millisecond}
	opts.SetDefaults()
	return &SQS{opts: opts, cli: fake}
}

func TestEnsureQueueIdempotent(t *testing.T) {
	fake := newFakeSQS()
	q := newTestSQS(fake)
	ctx := context.Background()

	first, err := q.EnsureQueue(ctx, "ingest-1-2-3-0-9-upload")
	require.NoError(t, err)

	second, err := q.EnsureQueue(ctx, "ingest-1-2-3-0-9-upload")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEmpty(t, second.URL)
	assert.NotEmpty(t, second.ARN)
	assert.Equal(t, 2, fake.createCalls)
}

func TestDeleteQueueAbsent(t *testing.T) {
	fake := newFakeSQS()
	q := newTestSQS(fake)
	ctx := context.Background()

	// never created, and deleting twice is also fine
	assert.NoError(t, q.DeleteQueue(ctx, "never-created"))

	_, err := q.EnsureQueue(ctx, "once")
	require.NoError(t, err)
	assert.NoError(t, q.DeleteQueue(ctx, "once"))
	assert.NoError(t, q.DeleteQueue(ctx, "once"))
}

func TestPublishRetriesTransientFailure(t *testing.T) {
	fake := newFakeSQS()
	fake.sendErrs = []error{fmt.Errorf("throttled"), fmt.Errorf("throttled"), nil}
	q := newTestSQS(fake)
	ctx := context.Background()

	ref := &Ref{Name: "up", URL: "http://sqs.test/up", ARN: "arn:test:up"}
	task := &structs.TileTask{JobID: 9, ChunkKey: "ck", TileKey: "tk", UploadQueueARN: ref.ARN, IngestQueueARN: "arn:test:in"}

	require.NoError(t, q.Publish(ctx, ref, task))

	require.Len(t, fake.sent[ref.URL], 1)
	got := &structs.TileTask{}
	require.NoError(t, json.Unmarshal([]byte(fake.sent[ref.URL][0]), got))
	assert.Equal(t, task, got)
}

func TestPublishExhaustsAttempts(t *testing.T) {
	last := errors.New("still down")
	fake := newFakeSQS()
	fake.sendErrs = []error{fmt.Errorf("down"), fmt.Errorf("down"), last}
	q := newTestSQS(fake)

	ref := &Ref{Name: "up", URL: "http://sqs.test/up"}
	err := q.Publish(context.Background(), ref, &structs.TileTask{JobID: 9})

	assert.ErrorIs(t, err, last)
	assert.Empty(t, fake.sent[ref.URL])
}
