package main

import (
	"errors"
	"strings"
	"testing"
)

func TestProcessFlags(t *testing.T) {

	required_ok := []string{"-a", "sha256"}

	tests := []struct {
		optional []string
		required []string
		expect   func(opts *Options, err error)
	}{
		{
			expect: func(opts *Options, err error) {
				if !errors.Is(err, errMissingAlgorithm) {
					t.Errorf("expected errMissingAlgorithm, got %v", err)
				}
			},
		},
		{
			required: []string{"-algorithm", "crc32"},
			expect: func(opts *Options, err error) {
				if !errors.Is(err, errUnknownAlgorithm) {
					t.Errorf("expected errUnknownAlgorithm, got %v", err)
				}
			},
		},
		{
			optional: []string{"-pd", "-s3-corpus", "s3://bucket/prefix/"},
			required: required_ok,
			expect: func(opts *Options, err error) {
				if !errors.Is(err, errModeConflict) {
					t.Errorf("expected errModeConflict, got %v", err)
				}
			},
		},
		{
			optional: []string{"-report-s3", "s3://bucket/reports/"},
			required: required_ok,
			expect: func(opts *Options, err error) {
				if !errors.Is(err, errBadS3URL) {
					t.Errorf("expected errBadS3URL, got %v", err)
				}
			},
		},
		{
			optional: []string{"-sizes", "1:0"},
			required: required_ok,
			expect: func(opts *Options, err error) {
				// flag reports Value.Set failures as text
				if exitCodeFor(err) != ExitConfig || !strings.Contains(err.Error(), "-sizes") {
					t.Errorf("expected a -sizes configuration error, got %v", err)
				}
			},
		},
		{
			optional: []string{"-subject", " "},
			required: required_ok,
			expect: func(opts *Options, err error) {
				var cfgErr *ConfigurationError
				if !errors.As(err, &cfgErr) {
					t.Errorf("expected *ConfigurationError, got %v", err)
				}
			},
		},
		{
			optional: []string{"-reference-format", "sfv"},
			required: required_ok,
			expect: func(opts *Options, err error) {
				if exitCodeFor(err) != ExitConfig {
					t.Errorf("expected a configuration error, got %v", err)
				}
			},
		},
		{
			required: append(required_ok, "extra"),
			expect: func(opts *Options, err error) {
				if exitCodeFor(err) != ExitConfig {
					t.Errorf("expected a configuration error, got %v", err)
				}
			},
		},
		{
			required: required_ok,
			expect: func(opts *Options, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if opts.Algorithm != AlgorithmSHA256 {
					t.Errorf("expected sha256, got %s", opts.Algorithm)
				}
				if opts.Mode() != "generated" {
					t.Errorf("expected generated mode, got %s", opts.Mode())
				}
				if opts.Subject != DefaultSubject || opts.WorkDir != DefaultWorkDir {
					t.Errorf("unexpected defaults %s %s", opts.Subject, opts.WorkDir)
				}
				if opts.Sizes.Cases() != DefaultSizeClasses.Cases() {
					t.Errorf("expected %d default cases, got %d",
						DefaultSizeClasses.Cases(), opts.Sizes.Cases())
				}
				if opts.UsesS3() {
					t.Errorf("expected no S3 client to be needed")
				}
				if _, ok := opts.reference().(*commandReference); !ok {
					t.Errorf("expected the command reference, got %T", opts.reference())
				}
			},
		},
		{
			optional: []string{"-pd", "-dir", "fixtures", "-recursive", "-reference", "BUILTIN"},
			required: []string{"-a", "MD5"},
			expect: func(opts *Options, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if opts.Mode() != "predefined" || opts.FixedDir != "fixtures" || !opts.Recursive {
					t.Errorf("unexpected predefined options %#v", opts)
				}
				if opts.Algorithm != AlgorithmMD5 {
					t.Errorf("expected md5, got %s", opts.Algorithm)
				}
				if _, ok := opts.reference().(builtinReference); !ok {
					t.Errorf("expected the builtin reference, got %T", opts.reference())
				}
			},
		},
		{
			optional: []string{
				"-s3-corpus", "s3://bucket/prefix/",
				"-report-s3", "s3://bucket/run.json",
				"-report-format", "json",
				"-reference", "sha256sum",
				"-reference-format", "bsd",
				"-sizes", "0:1,64KiB:3",
				"-seed", "42",
			},
			required: required_ok,
			expect: func(opts *Options, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if opts.Mode() != "s3" || !opts.UsesS3() {
					t.Errorf("expected s3 mode, got %s", opts.Mode())
				}
				if *opts.S3Corpus != (S3Location{Bucket: "bucket", Key: "prefix/"}) {
					t.Errorf("unexpected corpus location %s", opts.S3Corpus)
				}
				if opts.ReportS3.Key != "run.json" {
					t.Errorf("unexpected report location %s", opts.ReportS3)
				}
				if opts.ReportFormat != ReportFormat(JsonReport) {
					t.Errorf("expected json reports, got %s", opts.ReportFormat)
				}
				if opts.Sizes.Cases() != 4 || opts.Seed != 42 {
					t.Errorf("unexpected generation options %s seed %d", opts.Sizes, opts.Seed)
				}
				ref, ok := opts.reference().(*commandReference)
				if !ok {
					t.Fatalf("expected an override reference, got %T", opts.reference())
				}
				if ref.format != BSDFormat || ref.tool == nil || ref.tool.String() != "sha256sum" {
					t.Errorf("unexpected override reference %#v", ref)
				}
			},
		},
	}

	for _, tst := range tests {
		opts, err := processFlags(append(tst.optional, tst.required...))

		tst.expect(opts, err)
	}
}
