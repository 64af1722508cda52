package main

import (
	"bytes"
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3PutAPI is the subset of *s3.Client used to publish a report.
type S3PutAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// uploadReport renders report in format and stores it at loc, letting S3
// verify a SHA256 checksum of the body.  The outcome and counts are attached
// as object metadata.
func uploadReport(ctx context.Context, client S3PutAPI, loc S3Location, report *RunReport, format ReportFormat, verbose bool) error {
	var buf bytes.Buffer
	if err := report.Write(&buf, format); err != nil {
		return err
	}

	outcome := "passed"
	if !report.Passed() {
		outcome = "failed"
	}

	if verbose {
		log.Printf("uploading %s report to %s", format, loc)
	}

	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(loc.Bucket),
		Key:               aws.String(loc.Key),
		Body:              bytes.NewReader(buf.Bytes()),
		ContentLength:     aws.Int64(int64(buf.Len())),
		ContentType:       aws.String(format.MediaType()),
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
		Metadata: map[string]string{
			"algorithm": report.Algorithm,
			"mode":      report.Mode,
			"outcome":   outcome,
		},
	})

	return err
}
