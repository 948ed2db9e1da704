package credentials

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	ststypes "github.com/aws/aws-sdk-go-v2/service/sts/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIAM struct {
	policies map[string]string // name -> arn

	createErr error
	deleted   []string
}

func newFakeIAM() *fakeIAM {
	return &fakeIAM{policies: map[string]string{}}
}

func (f *fakeIAM) CreatePolicy(_ context.Context, in *iam.CreatePolicyInput, _ ...func(*iam.Options)) (*iam.CreatePolicyOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	name := aws.ToString(in.PolicyName)
	if _, ok := f.policies[name]; ok {
		return nil, &iamtypes.EntityAlreadyExistsException{}
	}
	arn := "arn:aws:iam::123456789012:policy/" + name
	f.policies[name] = arn
	return &iam.CreatePolicyOutput{Policy: &iamtypes.Policy{Arn: aws.String(arn)}}, nil
}

func (f *fakeIAM) DeletePolicy(_ context.Context, in *iam.DeletePolicyInput, _ ...func(*iam.Options)) (*iam.DeletePolicyOutput, error) {
	arn := aws.ToString(in.PolicyArn)
	f.deleted = append(f.deleted, arn)
	for name, have := range f.policies {
		if have == arn {
			delete(f.policies, name)
			return &iam.DeletePolicyOutput{}, nil
		}
	}
	return nil, &iamtypes.NoSuchEntityException{}
}

type fakeSTS struct {
	tokenErrs []error // popped per GetFederationToken call, nil = success
}

func (f *fakeSTS) GetFederationToken(_ context.Context, in *sts.GetFederationTokenInput, _ ...func(*sts.Options)) (*sts.GetFederationTokenOutput, error) {
	if len(f.tokenErrs) > 0 {
		err := f.tokenErrs[0]
		f.tokenErrs = f.tokenErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &sts.GetFederationTokenOutput{
		Credentials: &ststypes.Credentials{
			AccessKeyId:     aws.String("AKIATEST"),
			SecretAccessKey: aws.String("secret"),
			SessionToken:    aws.String("token"),
			Expiration:      aws.Time(time.Now().Add(12 * time.Hour)),
		},
	}, nil
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

func newTestAWS(fi *fakeIAM, fs *fakeSTS) *AWS {
	opts := &Options{}
	opts.SetDefaults()
	return &AWS{opts: opts, iam: fi, sts: fs}
}

func TestCreate(t *testing.T) {
	fi, fs := newFakeIAM(), &fakeSTS{}
	a := newTestAWS(fi, fs)

	creds, err := a.Create(context.Background(), 9, IngestPolicy("arn:up", "arn:in", "arn:aws:s3:::tiles"))

	require.NoError(t, err)
	assert.Equal(t, int64(9), creds.JobID)
	assert.Equal(t, "AKIATEST", creds.AccessKeyID)
	assert.Equal(t, "arn:aws:iam::123456789012:policy/ingest-9", creds.PolicyARN)
	assert.Contains(t, fi.policies, "ingest-9")
}

func TestCreateReusesExistingPolicy(t *testing.T) {
	fi, fs := newFakeIAM(), &fakeSTS{}
	a := newTestAWS(fi, fs)
	ctx := context.Background()
	policy := IngestPolicy("arn:up", "arn:in", "arn:aws:s3:::tiles")

	first, err := a.Create(ctx, 9, policy)
	require.NoError(t, err)

	// a setup retry hits EntityAlreadyExists & must not fail
	second, err := a.Create(ctx, 9, policy)
	require.NoError(t, err)
	assert.Equal(t, first.PolicyARN, second.PolicyARN)
}

func TestCreateRemovesPolicyWhenTokenFails(t *testing.T) {
	tokenErr := errors.New("sts unavailable")
	fi := newFakeIAM()
	fs := &fakeSTS{tokenErrs: []error{tokenErr}}
	a := newTestAWS(fi, fs)

	_, err := a.Create(context.Background(), 9, IngestPolicy("arn:up", "arn:in", "arn:aws:s3:::tiles"))

	assert.ErrorIs(t, err, tokenErr)
	// no credentials were issued, so the policy must not linger
	assert.NotContains(t, fi.policies, "ingest-9")
	assert.Equal(t, []string{"arn:aws:iam::123456789012:policy/ingest-9"}, fi.deleted)
}

func TestRemove(t *testing.T) {
	fi, fs := newFakeIAM(), &fakeSTS{}
	a := newTestAWS(fi, fs)
	ctx := context.Background()

	_, err := a.Create(ctx, 9, IngestPolicy("arn:up", "arn:in", "arn:aws:s3:::tiles"))
	require.NoError(t, err)

	require.NoError(t, a.Remove(ctx, 9))
	assert.NotContains(t, fi.policies, "ingest-9")

	// removing again is a no-op
	require.NoError(t, a.Remove(ctx, 9))
}
