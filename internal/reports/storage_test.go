package reports

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	b, _ := io.ReadAll(in.Body)
	f.body = string(b)
	return &s3.PutObjectOutput{}, f.err
}

func TestS3StorageStore(t *testing.T) {
	p := &fakePutter{}
	s := &S3Storage{client: p, bucket: "sarthi-reports", region: "ap-south-1"}

	url, err := s.Store(context.Background(), "p1", Upload{FileName: "../cbc.pdf", ContentType: "application/pdf", Data: []byte("pdf-bytes")})
	require.NoError(t, err)

	key := aws.ToString(p.input.Key)
	assert.True(t, strings.HasPrefix(key, "reports/p1/"))
	assert.True(t, strings.HasSuffix(key, "-cbc.pdf"))
	assert.Equal(t, "sarthi-reports", aws.ToString(p.input.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(p.input.ContentType))
	assert.Equal(t, "pdf-bytes", p.body)
	assert.Equal(t, "https://sarthi-reports.s3.ap-south-1.amazonaws.com/"+key, url)
}

func TestS3StorageError(t *testing.T) {
	boom := errors.New("denied")
	s := &S3Storage{client: &fakePutter{err: boom}, bucket: "b"}

	_, err := s.Store(context.Background(), "p1", Upload{FileName: "x.png"})
	assert.ErrorIs(t, err, boom)
}

func TestPlaceholder(t *testing.T) {
	url, err := Placeholder{}.Store(context.Background(), "p1", Upload{})
	require.NoError(t, err)
	assert.Equal(t, PlaceholderURL, url)
}

func TestDecodePayload(t *testing.T) {
	data, ct, err := DecodePayload("data:image/png;base64,aGVsbG8=", "")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "image/png", ct)

	data, ct, err = DecodePayload("aGVsbG8=", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
	assert.Equal(t, "text/plain", ct)

	_, _, err = DecodePayload("data:image/png;base64", "")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	// Data URL tanpa ;base64 ditolak, sama seperti upload foto triage
	_, _, err = DecodePayload("data:text/plain,hello", "")
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, _, err = DecodePayload("%%%", "")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
