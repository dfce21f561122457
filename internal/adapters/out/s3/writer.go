package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Writer buffers everything written to it and uploads it as one object on
// Close. After Abort nothing is uploaded.
type Writer struct {
	ctx     context.Context
	client  objectPutter
	bucket  string
	key     string
	buffer  bytes.Buffer
	aborted bool
}

func NewWriter(ctx context.Context, client objectPutter, bucket, key string) *Writer {
	return &Writer{ctx: ctx, client: client, bucket: bucket, key: key}
}

func (w *Writer) Write(p []byte) (int, error) {
	if w.aborted {
		return 0, fmt.Errorf("write %s: upload aborted", w.key)
	}
	return w.buffer.Write(p)
}

// Abort drops the buffered bytes. A later Close does not upload.
func (w *Writer) Abort() {
	w.aborted = true
	w.buffer.Reset()
}

func (w *Writer) Close() error {
	if w.aborted {
		return nil
	}
	_, err := w.client.PutObject(w.ctx, &s3.PutObjectInput{
		Bucket:        aws.String(w.bucket),
		Key:           aws.String(w.key),
		Body:          bytes.NewReader(w.buffer.Bytes()),
		ContentLength: aws.Int64(int64(w.buffer.Len())),
	})
	if err != nil {
		return fmt.Errorf("upload %s to bucket %s: %w", w.key, w.bucket, err)
	}
	return nil
}
