package aws_client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/transferworks/storage-transfer-backend/pkg/config"
	"github.com/transferworks/storage-transfer-backend/pkg/transfer"
)

type AwsClient interface {
	transfer.CredentialResolver

	// VerifyBucket checks that the bucket exists and is reachable with the
	// resolved credentials.
	VerifyBucket(ctx context.Context, bucketName string) error
}

type awsClientImpl struct {
	provider aws.CredentialsProvider
	region   string
}

// NewAwsClient resolves credentials from the configured static key pair,
// falling back to the sdk's default chain (environment, shared config,
// instance role) when none is configured.
func NewAwsClient(ctx context.Context) (AwsClient, error) {
	conf := config.Get().Clients.Aws
	if conf.Key != "" {
		return &awsClientImpl{
			provider: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(conf.Key, conf.Secret, conf.Session)),
			region:   conf.Region,
		}, nil
	}

	defaultConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(conf.Region))
	if err != nil {
		return nil, fmt.Errorf("error loading aws configuration: %w", err)
	}
	return &awsClientImpl{
		provider: defaultConfig.Credentials,
		region:   defaultConfig.Region,
	}, nil
}

func (a *awsClientImpl) GetCredentials(ctx context.Context) (transfer.AwsAccessKey, error) {
	creds, err := a.provider.Retrieve(ctx)
	if err != nil {
		return transfer.AwsAccessKey{}, fmt.Errorf("error retrieving aws credentials: %w", err)
	}
	return transfer.AwsAccessKey{
		AccessKeyId:     creds.AccessKeyID,
		SecretAccessKey: creds.SecretAccessKey,
	}, nil
}

func (a *awsClientImpl) VerifyBucket(ctx context.Context, bucketName string) error {
	client := s3.New(s3.Options{
		Region:      a.region,
		Credentials: a.provider,
	})
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)})
	if err != nil {
		return fmt.Errorf("error verifying bucket %s: %w", bucketName, err)
	}
	return nil
}
