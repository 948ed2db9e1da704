package queue

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/avast/retry-go"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/jingpengwu/boss/pkg/structs"
)

// sqsClient is the slice of the SQS API we use.
type sqsClient interface {
	CreateQueue(ctx context.Context, in *sqs.CreateQueueInput, optFns ...func(*sqs.Options)) (*sqs.CreateQueueOutput, error)
	GetQueueAttributes(ctx context.Context, in *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error)
	GetQueueUrl(ctx context.Context, in *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	DeleteQueue(ctx context.Context, in *sqs.DeleteQueueInput, optFns ...func(*sqs.Options)) (*sqs.DeleteQueueOutput, error)
	SendMessage(ctx context.Context, in *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQS is a queue implementation on AWS SQS, where each ingest job gets its
// own upload & ingest queues.
type SQS struct {
	opts *Options
	cli  sqsClient
}

// NewSQS returns a queue provisioner / publisher backed by SQS.
func NewSQS(ctx context.Context, opts *Options) (*SQS, error) {
	opts.SetDefaults()

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	cli := sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return &SQS{opts: opts, cli: cli}, nil
}

func (s *SQS) Close() error {
	return nil
}

// EnsureQueue creates the named queue if needed & returns its reference.
// SQS CreateQueue already returns the existing queue's URL when called with
// the same name & attributes, which gives us idempotency for free.
func (s *SQS) EnsureQueue(ctx context.Context, name string) (*Ref, error) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.OpTimeout)
	defer cancel()

	created, err := s.cli.CreateQueue(ctx, &sqs.CreateQueueInput{
		QueueName: aws.String(name),
	})
	if err != nil {
		return nil, err
	}

	attrs, err := s.cli.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       created.QueueUrl,
		AttributeNames: []types.QueueAttributeName{types.QueueAttributeNameQueueArn},
	})
	if err != nil {
		return nil, err
	}

	return &Ref{
		Name: name,
		URL:  aws.ToString(created.QueueUrl),
		ARN:  attrs.Attributes[string(types.QueueAttributeNameQueueArn)],
	}, nil
}

// DeleteQueue removes the named queue; an already-absent queue is not an error.
func (s *SQS) DeleteQueue(ctx context.Context, name string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.OpTimeout)
	defer cancel()

	found, err := s.cli.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(name),
	})
	if isMissingQueue(err) {
		return nil
	}
	if err != nil {
		return err
	}

	_, err = s.cli.DeleteQueue(ctx, &sqs.DeleteQueueInput{
		QueueUrl: found.QueueUrl,
	})
	if isMissingQueue(err) { // raced with another delete
		return nil
	}
	return err
}

// Publish sends one tile task to the given queue with bounded retry & backoff.
func (s *SQS) Publish(ctx context.Context, ref *Ref, task *structs.TileTask) error {
	body, err := json.Marshal(task)
	if err != nil {
		return err
	}

	return retry.Do(
		func() error {
			sctx, cancel := context.WithTimeout(ctx, s.opts.OpTimeout)
			defer cancel()

			_, err := s.cli.SendMessage(sctx, &sqs.SendMessageInput{
				QueueUrl:    aws.String(ref.URL),
				MessageBody: aws.String(string(body)),
			})
			return err
		},
		retry.Attempts(s.opts.PublishAttempts),
		retry.Delay(s.opts.PublishDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}

func isMissingQueue(err error) bool {
	var missing *types.QueueDoesNotExist
	return errors.As(err, &missing)
}
