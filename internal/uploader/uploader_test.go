package uploader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	puts map[string][]byte
	err  error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	if f.puts == nil {
		f.puts = map[string][]byte{}
	}
	f.puts[*in.Key] = body
	return &s3.PutObjectOutput{}, nil
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func TestS3UploaderUpload(t *testing.T) {
	fake := &fakeS3{}
	up := &S3Uploader{client: fake, bucket: "reports"}
	p := writeTemp(t, "model.xlsx", []byte("workbook-bytes"))

	require.NoError(t, up.Upload(context.Background(), p, "reports/run-1/model.xlsx"))
	assert.True(t, bytes.Equal([]byte("workbook-bytes"), fake.puts["reports/run-1/model.xlsx"]))
}

func TestS3UploaderMissingFile(t *testing.T) {
	up := &S3Uploader{client: &fakeS3{}, bucket: "reports"}
	err := up.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"), "k")
	assert.Error(t, err)
}

func TestUploadReportsKeysUnderRunPrefix(t *testing.T) {
	fake := &fakeS3{}
	up := &S3Uploader{client: fake, bucket: "reports"}
	a := writeTemp(t, "a.xlsx", []byte("a"))
	b := writeTemp(t, "b.csv", []byte("b"))

	require.NoError(t, UploadReports(context.Background(), up, "run-9", []string{a, b}))
	assert.Contains(t, fake.puts, "reports/run-9/a.xlsx")
	assert.Contains(t, fake.puts, "reports/run-9/b.csv")
}

func TestUploadReportsStopsOnError(t *testing.T) {
	fake := &fakeS3{err: errors.New("denied")}
	up := &S3Uploader{client: fake, bucket: "reports"}
	a := writeTemp(t, "a.xlsx", []byte("a"))

	err := UploadReports(context.Background(), up, "run-9", []string{a})
	assert.ErrorContains(t, err, "a.xlsx")
}
