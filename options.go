package main

// Default location of the subject binary
const DefaultSubject = "out/zippy"

// Default directory of operator supplied fixtures for -predefined runs
const DefaultFixedDir = "testFiles"

// Default working directory for generated and downloaded files
const DefaultWorkDir = "randomTestFiles"

// Options captures command line flags to configure a run
type Options struct {
	// Optionally specify cpu profiling output file
	CpuProfile string

	// Optionally specify memory profiling output file
	MemProfile string

	// Optionally specify trace output file
	Trace string

	// Optionally enable verbose logging
	Verbose bool

	// Required algorithm, resolved against the supported algorithms table
	Algorithm *AlgorithmSpec

	// Run the fixed corpus in FixedDir instead of generating files
	Predefined bool

	// Directory of fixtures for a -predefined run
	FixedDir string

	// Optionally walk sub-directories of FixedDir
	Recursive bool

	// Working directory for generated or downloaded files, created at the
	// start of a run and removed at the end of it
	WorkDir string

	// Size classes of the generated corpus
	Sizes SizeClassList

	// Optionally seed the generated content, zero means crypto/rand
	Seed uint64

	// Subject binary, invoked as <subject> <algorithm> <file>
	Subject string

	// Optionally override the reference tool command, or "builtin"
	Reference string

	// Output format of an overridden reference tool
	ReferenceFormat DigestFormat

	// Optionally read the fixed corpus from an S3 bucket prefix
	S3Corpus *S3Location

	// Output format of the run report
	ReportFormat ReportFormat

	// Optionally upload the rendered report to S3
	ReportS3 *S3Location

	// Optionally specify a profile name to use from the AWS configuration
	// files
	Profile string

	// Optionally specify that newer virtual-host style paths should be
	// used
	DisablePathStyle bool
}

// Mode names the corpus strategy selected by the options.
func (p *Options) Mode() string {
	switch {
	case p.S3Corpus != nil:
		return "s3"
	case p.Predefined:
		return "predefined"
	default:
		return "generated"
	}
}

// UsesS3 is true when any option requires an s3 client.
func (p *Options) UsesS3() bool {
	return p.S3Corpus != nil || p.ReportS3 != nil
}
