package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSStorage(ctx context.Context, bucket, prefix string, opts ...option.ClientOption) (*GCSStorage, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return &GCSStorage{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}, nil
}

func (s *GCSStorage) Close() error {
	return s.client.Close()
}

func (s *GCSStorage) objectName(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return s.withPrefix(name), nil
}

// listPrefix keeps a trailing slash so "outlines/" never matches "outlines-old/".
func (s *GCSStorage) listPrefix(prefix string) (string, error) {
	if err := checkPrefix(prefix); err != nil {
		return "", err
	}
	return s.withPrefix(prefix), nil
}

func (s *GCSStorage) withPrefix(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func (s *GCSStorage) artifactName(object string) string {
	if s.prefix == "" {
		return object
	}
	return strings.TrimPrefix(object, s.prefix+"/")
}

func (s *GCSStorage) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	object, err := s.objectName(name)
	if err != nil {
		return "", err
	}
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload of %s: %w", name, err)
	}

	return fmt.Sprintf("gs://%s/%s", s.bucket, object), nil
}

func (s *GCSStorage) Load(ctx context.Context, name string) ([]byte, error) {
	object, err := s.objectName(name)
	if err != nil {
		return nil, err
	}

	r, err := s.client.Bucket(s.bucket).Object(object).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", name, err)
	}
	return data, nil
}

func (s *GCSStorage) List(ctx context.Context, prefix string) ([]string, error) {
	objPrefix, err := s.listPrefix(prefix)
	if err != nil {
		return nil, err
	}
	query := &storage.Query{Prefix: objPrefix}

	var names []string
	it := s.client.Bucket(s.bucket).Objects(ctx, query)
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		names = append(names, s.artifactName(attrs.Name))
	}

	return names, nil
}
