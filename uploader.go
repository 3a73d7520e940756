package flog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Uploader stores processed image bytes in the configured storage bucket
// and returns durable public URLs. It shares the client's request layer;
// uploads are never retried.
type Uploader struct {
	client *Client
	bucket string
}

// NewUploader constructs an Uploader over client using the client's
// configured bucket.
func NewUploader(client *Client) *Uploader {
	return &Uploader{client: client, bucket: client.bucket}
}

// UploadImage stores data under a fresh collision-free name and returns
// the public URL. The URL is derived from the generated name rather than
// the server-echoed key, which carries a bucket prefix and has historically
// been unreliable to parse.
func (u *Uploader) UploadImage(ctx context.Context, data []byte) (string, error) {
	if int64(len(data)) > u.client.maxUpload {
		return "", ErrImageTooLarge
	}

	name := uuid.NewString() + ".jpg"
	path := fmt.Sprintf("/storage/v1/object/%s/%s", u.bucket, name)

	if _, err := u.client.rest.Upload(ctx, path, data); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", u.client.rest.BaseURL, u.bucket, name), nil
}
