package publisher

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"ordis.dev/itembuilder/internal/app/appconfig"
)

// Publisher uploads the built dataset files to an S3 bucket, gzip-compressed,
// under the configured key prefix. A run without a configured bucket is a
// no-op so local builds stay self-contained.
type Publisher struct {
	conf *appconfig.Config
}

func New(conf *appconfig.Config) *Publisher {
	return &Publisher{conf: conf}
}

func (p *Publisher) Publish(ctx context.Context) error {
	if p.conf.S3Bucket == "" {
		log.Info().Msg("no bucket configured, skipping publish")
		return nil
	}

	defer func(start time.Time) {
		log.Info().Dur("elapsed", time.Since(start)).Msg("publish finished")
	}(time.Now())

	awsConf, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(p.conf.S3Region))
	if err != nil {
		return errors.Wrap(err, "failed to load aws config")
	}
	client := s3.NewFromConfig(awsConf)

	if err := p.assertBucket(ctx, client); err != nil {
		return err
	}

	files, err := p.datasetFiles()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no dataset files found, run build first")
	}

	for _, name := range files {
		if err := p.uploadFile(ctx, client, name); err != nil {
			return errors.Wrapf(err, "failed to upload %s", name)
		}
	}
	return nil
}

func (p *Publisher) assertBucket(ctx context.Context, client *s3.Client) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(p.conf.S3Bucket),
	})
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "NotFound" {
			return errors.Errorf("bucket %s does not exist", p.conf.S3Bucket)
		}
		return errors.Wrap(err, "failed to invoke HeadBucket")
	}
	return nil
}

// datasetFiles lists the JSON outputs of the last build in a stable order.
func (p *Publisher) datasetFiles() ([]string, error) {
	entries, err := os.ReadDir(p.conf.OutputDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read output dir")
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func (p *Publisher) uploadFile(ctx context.Context, client *s3.Client, name string) error {
	body, err := os.ReadFile(filepath.Join(p.conf.OutputDir, name))
	if err != nil {
		return errors.Wrap(err, "failed to read dataset file")
	}

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(body); err != nil {
		return errors.Wrap(err, "failed to compress")
	}
	if err := gw.Close(); err != nil {
		return errors.Wrap(err, "failed to flush gzip stream")
	}

	key := p.conf.S3Prefix + name + ".gz"
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:          aws.String(p.conf.S3Bucket),
		Key:             aws.String(key),
		Body:            bytes.NewReader(buf.Bytes()),
		ContentType:     aws.String("application/json"),
		ContentEncoding: aws.String("gzip"),
	})
	if err != nil {
		return errors.Wrap(err, "failed to invoke PutObject")
	}

	log.Info().Str("key", key).Int("bytes", buf.Len()).Msg("uploaded")
	return nil
}
