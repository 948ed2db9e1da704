package tileindex

import (
	"context"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTaskIndex = "task-index"
	defaultOpTimeout = 30 * time.Second
)

// Options are options for the tile index.
type Options struct {
	// Table is the dynamodb table holding chunk entries.
	Table string

	// TaskIndex is the global secondary index keyed by job id.
	// Defaults to "task-index".
	TaskIndex string

	// Region is the AWS region the table lives in.
	Region string

	// Endpoint overrides the dynamodb endpoint (eg. local dynamo). Optional.
	Endpoint string

	// OpTimeout bounds each remote index operation.
	OpTimeout time.Duration
}

func (o *Options) SetDefaults() {
	if o.TaskIndex == "" {
		o.TaskIndex = defaultTaskIndex
	}
	if o.OpTimeout <= 0 {
		o.OpTimeout = defaultOpTimeout
	}
}

// chunkItem is the stored shape of one chunk entry.
type chunkItem struct {
	ChunkKey        string            `dynamodbav:"chunk_key"`
	TaskID          int64             `dynamodbav:"task_id"`
	TileUploadedMap map[string]string `dynamodbav:"tile_uploaded_map"`
}

// dynamoClient is the slice of the dynamodb API we use.
type dynamoClient interface {
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// Dynamo is a tile index reader / deleter on dynamodb.
type Dynamo struct {
	opts *Options
	cli  dynamoClient
}

// NewDynamo returns a tile index backed by dynamodb.
func NewDynamo(ctx context.Context, opts *Options) (*Dynamo, error) {
	opts.SetDefaults()

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	cli := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return &Dynamo{opts: opts, cli: cli}, nil
}

// Chunks walks every chunk entry owned by the given job, one query page at
// a time so arbitrarily large jobs never load their whole index in memory.
func (d *Dynamo) Chunks(ctx context.Context, jobID int64, each func(*Chunk) error) error {
	var startKey map[string]types.AttributeValue

	for {
		qctx, cancel := context.WithTimeout(ctx, d.opts.OpTimeout)
		out, err := d.cli.Query(qctx, &dynamodb.QueryInput{
			TableName:              aws.String(d.opts.Table),
			IndexName:              aws.String(d.opts.TaskIndex),
			KeyConditionExpression: aws.String("task_id = :tid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid": &types.AttributeValueMemberN{Value: strconv.FormatInt(jobID, 10)},
			},
			ExclusiveStartKey: startKey,
		})
		cancel()
		if err != nil {
			return err
		}

		items := []chunkItem{}
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return err
		}

		for _, item := range items {
			c := &Chunk{
				ChunkKey: item.ChunkKey,
				JobID:    item.TaskID,
				Tiles:    make([]string, 0, len(item.TileUploadedMap)),
			}
			for tile := range item.TileUploadedMap {
				c.Tiles = append(c.Tiles, tile)
			}
			if err := each(c); err != nil {
				return err
			}
		}

		if out.LastEvaluatedKey == nil {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// DeleteChunk removes one chunk entry; deleting an absent entry is a no-op.
func (d *Dynamo) DeleteChunk(ctx context.Context, chunkKey string) error {
	ctx, cancel := context.WithTimeout(ctx, d.opts.OpTimeout)
	defer cancel()

	_, err := d.cli.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.opts.Table),
		Key: map[string]types.AttributeValue{
			"chunk_key": &types.AttributeValueMemberS{Value: chunkKey},
		},
	})
	return err
}
