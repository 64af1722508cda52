package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// TestCase is one file to be hashed by both the reference and the subject.
type TestCase struct {
	Path      string
	Algorithm *AlgorithmSpec

	// Identity is how the case is named in the report, e.g. "File: a.txt"
	// or "File size: 5000".
	Identity string

	// Size is the file size in bytes.
	Size int64

	teardown func() error
}

// Teardown releases whatever the corpus created for the case.  It is safe to
// call more than once.
func (p *TestCase) Teardown() error {
	if p.teardown == nil {
		return nil
	}
	f := p.teardown
	p.teardown = nil
	return f()
}

// removeFile returns a teardown function deleting name.
func removeFile(name string) func() error {
	return func() error {
		err := os.Remove(name)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
}

// Verdict is the outcome of comparing the two digests of one TestCase.
type Verdict struct {
	Identity string `json:"identity"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	Expected string `json:"expectedHash"`
	Actual   string `json:"actualHash"`
}

// Match reports whether both tools produced the same digest.
func (p *Verdict) Match() bool {
	return p.Expected == p.Actual
}

// Reference produces the trusted digest of a file.
type Reference interface {
	Name() string
	Digest(ctx context.Context, algo *AlgorithmSpec, path string) (string, error)
}

// commandReference runs an external reference tool and parses its output.
// When tool is nil the AlgorithmSpec command and format are used.
type commandReference struct {
	tool   *Tool
	format DigestFormat
}

// NewCommandReference returns a Reference using each AlgorithmSpec's own OS
// utility.
func NewCommandReference() Reference {
	return &commandReference{}
}

// NewOverrideReference returns a Reference that always runs command and reads
// its output using format.
func NewOverrideReference(command string, format DigestFormat) Reference {
	tool := NewTool("reference", command)
	return &commandReference{tool: &tool, format: format}
}

func (p *commandReference) Name() string {
	if p.tool != nil {
		return p.tool.String()
	}
	return "system"
}

func (p *commandReference) Digest(ctx context.Context, algo *AlgorithmSpec, path string) (string, error) {
	tool := Tool{Name: "reference", Argv: algo.Command}
	parse := algo.Parse
	if p.tool != nil {
		tool = *p.tool
		parse = p.format.Parser()
	}

	out, err := tool.Run(ctx, path)
	if err != nil {
		return "", err
	}

	digest, err := parse(string(out))
	if err != nil {
		return "", &ExecutionError{Tool: tool.String(), ExitCode: 0, Err: err}
	}

	return digest, nil
}

// builtinReference computes the digest in-process with the Go standard
// library, for hosts that lack the OS utilities.
type builtinReference struct{}

func NewBuiltinReference() Reference {
	return builtinReference{}
}

func (builtinReference) Name() string {
	return "builtin"
}

func (builtinReference) Digest(ctx context.Context, algo *AlgorithmSpec, path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", &ExecutionError{Tool: "builtin", ExitCode: -1, Err: err}
	}
	defer fh.Close()

	h := algo.Hasher()
	if _, err := copyBuffer(h, fh); err != nil {
		return "", &ExecutionError{Tool: "builtin", ExitCode: -1, Err: err}
	}

	return HashSum(h.Sum(nil)).Hex(), nil
}

// Pipeline compares the digest of the reference against the digest of the
// subject for one TestCase at a time.
type Pipeline struct {
	Reference Reference
	Subject   Tool
	Verbose   bool
}

// Compare runs the reference, then the subject, and returns the Verdict.  Any
// launch, exit status or parse failure is returned as an *ExecutionError
// naming the tool, algorithm and file; a differing digest is not an error.
func (p *Pipeline) Compare(ctx context.Context, tc *TestCase) (*Verdict, error) {
	expected, err := p.Reference.Digest(ctx, tc.Algorithm, tc.Path)
	if err != nil {
		return nil, annotate(err, tc)
	}

	out, err := p.Subject.Run(ctx, tc.Algorithm.Name, tc.Path)
	if err != nil {
		return nil, annotate(err, tc)
	}

	v := &Verdict{
		Identity: tc.Identity,
		Path:     tc.Path,
		Size:     tc.Size,
		Expected: expected,
		Actual:   strings.TrimSpace(string(out)),
	}

	if p.Verbose {
		if v.Match() {
			log.Printf("match %s %s: %s", tc.Algorithm, tc.Path, v.Actual)
		} else {
			log.Printf("mismatch %s %s: %s expected %s got %s",
				tc.Algorithm, tc.Path, p.Reference.Name(), v.Expected, v.Actual)
		}
	}

	return v, nil
}

// annotate fills in the case context of an *ExecutionError.
func annotate(err error, tc *TestCase) error {
	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		return fmt.Errorf("%s %s: %w", tc.Algorithm, tc.Path, err)
	}
	execErr.Algorithm = tc.Algorithm.Name
	execErr.Path = tc.Path
	return execErr
}
