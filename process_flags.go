package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// processFlags processes the os.Argv[1:] command line options.  Any problem
// with the invocation is returned as a *ConfigurationError, before anything
// is executed.
func processFlags(args []string) (*Options, error) {
	opts := &Options{
		Sizes: append(SizeClassList{}, DefaultSizeClasses...),
	}

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

	flags.StringVar(&opts.CpuProfile, "cpu-profile", "",
		"optionally specify a cpu profile output path")
	flags.StringVar(&opts.MemProfile, "mem-profile", "",
		"optionally specify a memory profile output path")
	flags.StringVar(&opts.Trace, "trace", "",
		"optionally specify a trace output file path")

	flags.BoolVar(&opts.Verbose, "verbose", false,
		"optionally enable verbose logging to standard error")

	var algorithm string
	flags.StringVar(&algorithm, "a", "",
		"algorithm to test, one of "+strings.Join(AlgorithmNames(), ", "))
	flags.StringVar(&algorithm, "algorithm", "",
		"algorithm to test, one of "+strings.Join(AlgorithmNames(), ", "))

	flags.BoolVar(&opts.Predefined, "pd", false,
		"test the files of -dir instead of generated files")
	flags.BoolVar(&opts.Predefined, "predefined", false,
		"test the files of -dir instead of generated files")

	flags.StringVar(&opts.FixedDir, "dir", DefaultFixedDir,
		"directory of fixtures for -predefined runs")
	flags.BoolVar(&opts.Recursive, "recursive", false,
		"recursively process sub-directories of -dir")

	flags.StringVar(&opts.WorkDir, "work-dir", DefaultWorkDir,
		"directory for generated or downloaded files, removed when the run ends")

	flags.Var(&opts.Sizes, "sizes",
		"size classes to generate as <size>:<repetitions>[,...] (default: 0:1,1:1,...,100MiB:2)")

	flags.Uint64Var(&opts.Seed, "seed", 0,
		"optionally seed generated file content to reproduce a corpus")

	flags.StringVar(&opts.Subject, "subject", DefaultSubject,
		"subject binary, invoked as <subject> <algorithm> <file> (split on whitespace, no quoting)")

	flags.StringVar(&opts.Reference, "reference", "",
		"optionally override the reference command, or 'builtin' to hash in-process\n"+
			"(split on whitespace, no quoting: paths with spaces are not supported)")
	flags.Var(&opts.ReferenceFormat, "reference-format",
		"output format of an overridden -reference: gnu or bsd (default: gnu)")

	var s3Corpus string
	flags.StringVar(&s3Corpus, "s3-corpus", "",
		"optionally test the objects under s3://bucket/prefix")

	flags.Var(&opts.ReportFormat, "report-format",
		"report format: text or json (default: text)")

	var reportS3 string
	flags.StringVar(&reportS3, "report-s3", "",
		"optionally upload the report to s3://bucket/key")

	flags.StringVar(&opts.Profile, "profile", "",
		"optional AWS profile name to use")
	flags.BoolVar(&opts.DisablePathStyle, "disable-path-style", false,
		"disable use of older AWS S3 path-style requests")

	var help bool
	flags.BoolVar(&help, "h", false, "print help and exit")
	flags.BoolVar(&help, "help", false, "print help and exit")

	flags.SetOutput(os.Stderr)
	flags.Usage = func() {}

	if err := flags.Parse(args); err != nil {
		return nil, &ConfigurationError{Err: err}
	}

	if help {
		fmt.Print(godoc_cmd_pkg)
		os.Exit(ExitSuccess)
	}

	// Algorithm
	algo, err := LookupAlgorithm(algorithm)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	opts.Algorithm = algo

	// S3Corpus
	if s3Corpus != "" {
		if opts.Predefined {
			return nil, &ConfigurationError{Err: errModeConflict}
		}

		loc, err := ParseS3Location(s3Corpus, false)
		if err != nil {
			return nil, &ConfigurationError{Msg: "-s3-corpus", Err: err}
		}
		opts.S3Corpus = &loc
	}

	// ReportS3
	if reportS3 != "" {
		loc, err := ParseS3Location(reportS3, true)
		if err != nil {
			return nil, &ConfigurationError{Msg: "-report-s3", Err: err}
		}
		opts.ReportS3 = &loc
	}

	// Subject
	if strings.TrimSpace(opts.Subject) == "" {
		return nil, configErrorf(nil, "-subject must not be empty")
	}

	// WorkDir
	if opts.WorkDir == "" {
		return nil, configErrorf(nil, "-work-dir must not be empty")
	}

	if flags.NArg() != 0 {
		return nil, configErrorf(nil, "unexpected arguments: %s",
			strings.Join(flags.Args(), " "))
	}

	return opts, nil
}

// reference returns the Reference selected by the options.
func (p *Options) reference() Reference {
	switch {
	case p.Reference == "":
		return NewCommandReference()
	case strings.EqualFold(p.Reference, "builtin"):
		return NewBuiltinReference()
	default:
		return NewOverrideReference(p.Reference, p.ReferenceFormat)
	}
}
