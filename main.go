package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of *s3.Client used by the harness.
type S3API interface {
	S3CorpusAPI
	S3PutAPI
}

// newS3Client loads the AWS configuration, it is only called when an s3
// option was given.
var newS3Client = func(ctx context.Context, opts *Options) (S3API, error) {
	awsCfg, err := config.LoadDefaultConfig(
		ctx, config.WithSharedConfigProfile(opts.Profile))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = !opts.DisablePathStyle
		if opts.Verbose {
			logRequests(o)
		}
	}), nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one harness run and returns the process exit status: 0 when
// every digest matched, 1 on any mismatch, 2 for configuration errors and 3
// when a tool, the filesystem or S3 failed.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := processFlags(args)
	if err != nil {
		log.Print(err)
		return exitCodeFor(err)
	}

	// interrupts kill the in-flight tool; cleanup still runs
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// if profiling or tracing flags were specified, activate them
	if shutdown, err := profilers(opts); err != nil {
		log.Printf("unable to initialize profilers: %s", err)
	} else {
		defer shutdown()
	}

	var client S3API
	if opts.UsesS3() {
		client, err = newS3Client(ctx, opts)
		if err != nil {
			err = configErrorf(err, "unable to load AWS configuration")
			log.Print(err)
			return exitCodeFor(err)
		}
	}

	corpus, err := newCorpus(ctx, opts, client)
	if err != nil {
		log.Print(err)
		return exitCodeFor(err)
	}

	pipeline := &Pipeline{
		Reference: opts.reference(),
		Subject:   NewTool("subject", opts.Subject),
		Verbose:   opts.Verbose,
	}

	if opts.Verbose {
		log.Printf("comparing %s with the %s reference", pipeline.Subject, pipeline.Reference.Name())
	}

	report := NewRunReport(opts.Algorithm.Name, opts.Mode())

	if err := Run(ctx, corpus, pipeline, report); err != nil {
		log.Printf("Some error has occurred: %s", err)
		return exitCodeFor(err)
	}

	if err := report.Write(reportWriter(report, opts.ReportFormat, stdout, stderr), opts.ReportFormat); err != nil {
		log.Printf("unable to write report: %s", err)
	}

	if opts.ReportS3 != nil {
		err := uploadReport(ctx, client, *opts.ReportS3, report, opts.ReportFormat, opts.Verbose)
		if err != nil {
			log.Printf("unable to upload report to %s: %s", opts.ReportS3, s3ErrorCode(err))
		}
	}

	return report.ExitCode()
}

// reportWriter selects the stream for report: a failed text report goes to
// stderr, anything else to stdout.
func reportWriter(report *RunReport, format ReportFormat, stdout, stderr io.Writer) io.Writer {
	if reportFormat(format) == TextReport && !report.Passed() {
		return stderr
	}
	return stdout
}

// newCorpus returns the CorpusProvider for the selected mode.
func newCorpus(ctx context.Context, opts *Options, client S3CorpusAPI) (CorpusProvider, error) {
	switch opts.Mode() {
	case "s3":
		log.Printf("Running tests from %s", opts.S3Corpus)
		return NewS3Corpus(ctx, client, *opts.S3Corpus, opts.WorkDir, opts.Algorithm)
	case "predefined":
		log.Printf("Running predefined tests")
		return NewFixedCorpus(opts.FixedDir, opts.Algorithm, opts.Recursive, opts.Verbose)
	default:
		log.Printf("Running random generated tests")
		return NewGeneratedCorpus(opts.WorkDir, opts.Sizes, opts.Algorithm, opts.Seed)
	}
}
