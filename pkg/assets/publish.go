package assets

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

// ObjectPutter is the subset of the S3 client used by S3Publisher.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads asset files to an S3 bucket and records their public
// URLs in a Manifest.
//
// Example usage:
//
//	client := assets.NewS3Client("eu-west-1", "")
//	pub := assets.NewS3Publisher(client, "my-bucket", "assets/", "https://cdn.example.com/")
//	err := pub.Publish(ctx, "public", []string{"public/brickrouge.css"}, manifest)
type S3Publisher struct {
	client      ObjectPutter
	bucket      string
	prefix      string
	baseURL     string
	fingerprint bool
	logger      *slog.Logger
}

// NewS3Publisher creates a publisher.
//
// Parameters:
//   - client: S3 client, or anything implementing PutObject
//   - bucket: bucket name
//   - prefix: key prefix for uploaded files (e.g. "assets/")
//   - baseURL: public URL the bucket is served from
func NewS3Publisher(client ObjectPutter, bucket, prefix, baseURL string) *S3Publisher {
	return &S3Publisher{
		client:      client,
		bucket:      bucket,
		prefix:      prefix,
		baseURL:     baseURL,
		fingerprint: true,
		logger:      slog.Default(),
	}
}

// WithFingerprint toggles content hashes in uploaded file names.
func (p *S3Publisher) WithFingerprint(on bool) *S3Publisher {
	p.fingerprint = on
	return p
}

// WithLogger sets the logger used to report uploads.
func (p *S3Publisher) WithLogger(l *slog.Logger) *S3Publisher {
	if l != nil {
		p.logger = l
	}
	return p
}

// Publish uploads files and records source -> URL entries in m. Sources are
// recorded relative to root.
func (p *S3Publisher) Publish(ctx context.Context, root string, files []string, m *Manifest) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return errors.New(errors.CodeAssetPublish).WithDetailf("read %s", file).Wrap(err)
		}

		source := Relative(file, filepath.Clean(root))
		key := p.prefix + source
		if p.fingerprint {
			key = p.prefix + Fingerprint(source, data)
		}

		contentType := mime.TypeByExtension(path.Ext(source))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(p.bucket),
			Key:          aws.String(key),
			Body:         bytes.NewReader(data),
			ContentType:  aws.String(contentType),
			CacheControl: aws.String(p.cacheControl()),
		})
		if err != nil {
			return errors.New(errors.CodeAssetPublish).WithDetailf("upload %s", key).Wrap(err)
		}

		url := joinPrefix(p.baseURL, key)
		m.Set(source, url)
		p.logger.Info("asset published", "source", source, "key", key, "bytes", len(data))
	}
	return nil
}

func (p *S3Publisher) cacheControl() string {
	if p.fingerprint {
		return "public, max-age=31536000, immutable"
	}
	return "public, max-age=300"
}

// Fingerprint inserts the first 8 hex digits of the content hash before the
// extension: "css/brickrouge.css" becomes "css/brickrouge.3f2a91c0.css".
func Fingerprint(source string, data []byte) string {
	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])[:8]
	ext := path.Ext(source)
	return strings.TrimSuffix(source, ext) + "." + hash + ext
}

// Files returns the regular files below root in lexical order. Hidden
// files and directories are skipped.
func Files(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, errors.New(errors.CodeAsset).WithDetailf("list %s", root).Wrap(err)
	}
	return files, nil
}

// NewS3Client creates an S3 client for region. Credentials come from the
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN
// environment variables. A non-empty endpoint selects an S3-compatible
// service with path-style addressing.
func NewS3Client(region, endpoint string) *s3.Client {
	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New(errors.CodeAssetPublish).
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "environment",
	}, nil
}
