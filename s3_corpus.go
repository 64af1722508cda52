package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// S3CorpusAPI is the subset of *s3.Client used to read a corpus.
type S3CorpusAPI interface {
	s3.ListObjectsV2APIClient
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Corpus yields each object under a bucket prefix, downloading it into a
// working directory owned by the run just before it is compared.
type s3Corpus struct {
	client  S3CorpusAPI
	algo    *AlgorithmSpec
	bucket  string
	workDir string
	keys    []string
	next    int
}

// NewS3Corpus lists every object under loc up front, so that an unreadable
// bucket is reported as a *ConfigurationError before any case runs.  Keys
// ending in a slash (directory markers) are skipped.
func NewS3Corpus(ctx context.Context, client S3CorpusAPI, loc S3Location, workDir string, algo *AlgorithmSpec) (CorpusProvider, error) {
	p := &s3Corpus{
		client:  client,
		algo:    algo,
		bucket:  loc.Bucket,
		workDir: workDir,
	}

	params := &s3.ListObjectsV2Input{Bucket: aws.String(loc.Bucket)}
	if loc.Key != "" {
		params.Prefix = aws.String(loc.Key)
	}

	pages := s3.NewListObjectsV2Paginator(client, params)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, configErrorf(s3ErrorCode(err), "cannot list S3 corpus %s", loc)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == "" || strings.HasSuffix(key, "/") {
				continue
			}
			p.keys = append(p.keys, key)
		}
	}

	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create working directory %s: %w", workDir, err)
	}

	return p, nil
}

// s3ErrorCode prefixes err with the S3 error code when one is available.
func s3ErrorCode(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %w", apiErr.ErrorCode(), err)
	}
	return err
}

func (p *s3Corpus) Next(ctx context.Context) (*TestCase, error) {
	if p.next >= len(p.keys) {
		return nil, io.EOF
	}

	idx := p.next
	key := p.keys[idx]
	p.next += 1

	loc := S3Location{Bucket: p.bucket, Key: key}
	log.Printf("Testing the %s", loc)

	// prefix the index so keys sharing a base name do not collide
	name := filepath.Join(p.workDir, fmt.Sprintf("%d-%s", idx, path.Base(key)))

	size, err := p.download(ctx, key, name)
	if err != nil {
		return nil, fmt.Errorf("unable to download %s: %w", loc, s3ErrorCode(err))
	}

	return &TestCase{
		Path:      name,
		Algorithm: p.algo,
		Identity:  "File: " + loc.String(),
		Size:      size,
		teardown:  removeFile(name),
	}, nil
}

// download streams the object body into name.
func (p *s3Corpus) download(ctx context.Context, key, name string) (n int64, err error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return 0, err
	}
	defer out.Body.Close()

	fh, err := os.Create(name)
	if err != nil {
		return 0, err
	}

	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	return copyBuffer(fh, out.Body)
}

func (p *s3Corpus) Close() error {
	if err := os.RemoveAll(p.workDir); err != nil {
		return fmt.Errorf("unable to remove working directory %s: %w", p.workDir, err)
	}
	return nil
}
