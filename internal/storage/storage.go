package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omytic/storefront/internal/config"
)

// keyPrefix is the fixed folder inside the bucket. Remove relies on
// finding "/products/" inside a public URL to recover the object key.
const keyPrefix = "products/"

// Validation failures carry the exact message shown to the admin.
var (
	ErrNotImage = errors.New("Lütfen bir görsel dosyası seçin")
	ErrTooLarge = errors.New("Dosya boyutu 5MB'dan küçük olmalıdır")
)

// ObjectAPI is the slice of the S3 client the bucket needs.
type ObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Bucket uploads and removes product images in one fixed bucket and
// resolves their public URLs.
type Bucket struct {
	api       ObjectAPI
	bucket    string
	publicURL string
	log       *zap.Logger
}

func NewBucket(api ObjectAPI, bucket, publicURL string, log *zap.Logger) *Bucket {
	return &Bucket{
		api:       api,
		bucket:    bucket,
		publicURL: strings.TrimSuffix(publicURL, "/"),
		log:       log,
	}
}

// Validate checks the declared content type and size before any
// network call is made. Size wins over type so an oversized image is
// reported as oversized, not re-checked for its MIME.
func Validate(contentType string, size int64) error {
	if size > config.MaxUploadBytes {
		return ErrTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}
	return nil
}

// NewKey builds a collision-resistant object key from the current
// timestamp, a random token and the original file extension.
func NewKey(filename string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%s%d_%s%s", keyPrefix, time.Now().UnixMilli(), token, filepath.Ext(filename))
}

// Upload puts the object under the fixed bucket and returns its public
// URL. Backend errors are returned verbatim for the admin to see.
func (b *Bucket) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := b.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(b.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
	})
	if err != nil {
		return "", err
	}
	return b.publicURL + "/" + key, nil
}

// KeyFromURL recovers the object key from a public URL. It returns ""
// when the URL does not contain the expected prefix marker.
func KeyFromURL(url string) string {
	idx := strings.Index(url, "/"+keyPrefix)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(keyPrefix)+1:]
	if rest == "" {
		return ""
	}
	return keyPrefix + rest
}

// Remove deletes the object a public URL points at. URLs that do not
// carry the expected prefix are ignored rather than treated as errors.
func (b *Bucket) Remove(ctx context.Context, url string) error {
	key := KeyFromURL(url)
	if key == "" {
		b.log.Debug("skipping removal of unrecognized image url", zap.String("url", url))
		return nil
	}
	_, err := b.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	return err
}
