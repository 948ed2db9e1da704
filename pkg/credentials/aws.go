package credentials

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

const (
	defaultDuration  = 12 * time.Hour
	defaultOpTimeout = 30 * time.Second
)

// Options are options for the credentials provisioner.
type Options struct {
	// Region is the AWS region used for STS calls.
	Region string

	// Duration is how long issued session credentials live.
	Duration time.Duration

	// OpTimeout bounds each remote IAM / STS operation.
	OpTimeout time.Duration
}

func (o *Options) SetDefaults() {
	if o.Duration <= 0 {
		o.Duration = defaultDuration
	}
	if o.OpTimeout <= 0 {
		o.OpTimeout = defaultOpTimeout
	}
}

// iamClient is the slice of the IAM API we use.
type iamClient interface {
	CreatePolicy(ctx context.Context, in *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error)
	DeletePolicy(ctx context.Context, in *iam.DeletePolicyInput, optFns ...func(*iam.Options)) (*iam.DeletePolicyOutput, error)
}

// stsClient is the slice of the STS API we use.
type stsClient interface {
	GetFederationToken(ctx context.Context, in *sts.GetFederationTokenInput, optFns ...func(*sts.Options)) (*sts.GetFederationTokenOutput, error)
	GetCallerIdentity(ctx context.Context, in *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AWS provisions job-scoped credentials: an IAM policy named after the job
// plus STS federation-token session credentials bound to that policy.
type AWS struct {
	opts *Options
	iam  iamClient
	sts  stsClient

	lock      sync.Mutex
	accountID string
}

// NewAWS returns a credentials provisioner on IAM + STS.
func NewAWS(ctx context.Context, opts *Options) (*AWS, error) {
	opts.SetDefaults()

	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return &AWS{
		opts: opts,
		iam:  iam.NewFromConfig(cfg),
		sts:  sts.NewFromConfig(cfg),
	}, nil
}

// Create issues session credentials for the job, bound to the given policy.
// The policy is also registered under the job's name so it can be revoked by
// job id alone; recreating it on a setup retry is not an error.
func (a *AWS) Create(ctx context.Context, jobID int64, policy string) (*Credentials, error) {
	ctx, cancel := context.WithTimeout(ctx, a.opts.OpTimeout)
	defer cancel()

	name := policyName(jobID)
	created, err := a.iam.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(name),
		PolicyDocument: aws.String(policy),
		Description:    aws.String(fmt.Sprintf("access scope for ingest job %d", jobID)),
	})

	var policyARN string
	var exists *iamtypes.EntityAlreadyExistsException
	switch {
	case errors.As(err, &exists): // setup retried; reuse the existing policy
		arn, aerr := a.policyARN(ctx, jobID)
		if aerr != nil {
			return nil, aerr
		}
		policyARN = arn
	case err != nil:
		return nil, err
	default:
		policyARN = aws.ToString(created.Policy.Arn)
	}

	token, err := a.sts.GetFederationToken(ctx, &sts.GetFederationTokenInput{
		Name:            aws.String(name),
		Policy:          aws.String(policy),
		DurationSeconds: aws.Int32(int32(a.opts.Duration.Seconds())),
	})
	if err != nil {
		// no credentials were minted, so don't leave the policy behind;
		// a setup retry recreates it
		a.deletePolicy(ctx, policyARN)
		return nil, err
	}

	return &Credentials{
		JobID:           jobID,
		AccessKeyID:     aws.ToString(token.Credentials.AccessKeyId),
		SecretAccessKey: aws.ToString(token.Credentials.SecretAccessKey),
		SessionToken:    aws.ToString(token.Credentials.SessionToken),
		Expiration:      aws.ToTime(token.Credentials.Expiration),
		PolicyARN:       policyARN,
	}, nil
}

// Remove revokes the job's access policy. Session credentials already issued
// expire on their own; removing the policy stops anything new being minted.
func (a *AWS) Remove(ctx context.Context, jobID int64) error {
	ctx, cancel := context.WithTimeout(ctx, a.opts.OpTimeout)
	defer cancel()

	arn, err := a.policyARN(ctx, jobID)
	if err != nil {
		return err
	}
	return a.deletePolicy(ctx, arn)
}

// deletePolicy removes a policy by ARN; an already-absent policy is not an error.
func (a *AWS) deletePolicy(ctx context.Context, arn string) error {
	_, err := a.iam.DeletePolicy(ctx, &iam.DeletePolicyInput{
		PolicyArn: aws.String(arn),
	})

	var missing *iamtypes.NoSuchEntityException
	if errors.As(err, &missing) { // already gone
		return nil
	}
	return err
}

// policyARN builds the ARN of the job's policy from the account id, which is
// fetched once & cached.
func (a *AWS) policyARN(ctx context.Context, jobID int64) (string, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.accountID == "" {
		ident, err := a.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
		if err != nil {
			return "", err
		}
		a.accountID = aws.ToString(ident.Account)
	}
	return fmt.Sprintf("arn:aws:iam::%s:policy/%s", a.accountID, policyName(jobID)), nil
}

func policyName(jobID int64) string {
	return fmt.Sprintf("ingest-%d", jobID)
}
