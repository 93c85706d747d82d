// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package blog ingests markdown insight files into normalized posts and
// serves them through a TTL-bounded in-memory snapshot.
package blog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// File is one raw content unit: front matter plus markdown body.
type File struct {
	Name string // base name, used for slug derivation
	Data []byte
}

// Source lists the raw content files of the insights collection.
type Source interface {
	List(ctx context.Context) ([]File, error)
}

// DirSource reads markdown files from a local directory. A missing
// directory yields an empty collection, not an error.
type DirSource struct {
	dir string
}

// NewDirSource creates a filesystem content source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// List returns every .md/.mdx file in the directory in sorted name order.
// A file that cannot be read is skipped with a diagnostic; it never aborts
// the rest of the listing.
func (s *DirSource) List(ctx context.Context) ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir %s: %w", s.dir, err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() || !isContentFile(entry.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			slog.Warn("content file unreadable, skipping", "file", entry.Name(), "error", err)
			continue
		}
		files = append(files, File{Name: entry.Name(), Data: data})
	}
	return files, nil
}

// S3Source reads markdown files from an S3-compatible bucket prefix, for
// deployments that keep content in object storage instead of the image.
type S3Source struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Source creates an S3 content source configured for path-style
// addressing. Returns (nil, nil) if endpoint or credentials are empty,
// allowing the app to start without object storage.
func NewS3Source(endpoint, region, accessKey, secretKey, bucket, prefix string) (*S3Source, error) {
	if endpoint == "" || accessKey == "" || secretKey == "" {
		return nil, nil
	}

	endpoint = strings.TrimRight(endpoint, "/")

	client := s3.New(s3.Options{
		Region:       region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		UsePathStyle: true,
	})

	return &S3Source{client: client, bucket: bucket, prefix: prefix}, nil
}

// List downloads every markdown object under the configured prefix, in
// sorted key order. Individual object failures are skipped.
func (s *S3Source) List(ctx context.Context) ([]File, error) {
	var files []File
	var continuation *string

	for {
		out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(s.prefix),
			ContinuationToken: continuation,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 list %s/%s: %w", s.bucket, s.prefix, err)
		}

		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if !isContentFile(key) {
				continue
			}
			body, err := s.client.GetObject(ctx, &s3.GetObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				slog.Warn("s3 object unreadable, skipping", "key", key, "error", err)
				continue
			}
			data, err := io.ReadAll(body.Body)
			body.Body.Close()
			if err != nil {
				slog.Warn("s3 object read failed, skipping", "key", key, "error", err)
				continue
			}
			files = append(files, File{Name: filepath.Base(key), Data: data})
		}

		if out.NextContinuationToken == nil {
			break
		}
		continuation = out.NextContinuationToken
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}
