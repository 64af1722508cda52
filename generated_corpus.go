package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// generatedCorpus materializes the size-class table one file at a time in a
// working directory owned by the run.
type generatedCorpus struct {
	algo    *AlgorithmSpec
	workDir string
	classes SizeClassList
	src     io.Reader

	// position of the next case: classes[class], repetition rep
	class int
	rep   int
}

// NewGeneratedCorpus ensures workDir exists and returns a provider over
// classes.  Close removes workDir and everything in it.
func NewGeneratedCorpus(workDir string, classes SizeClassList, algo *AlgorithmSpec, seed uint64) (CorpusProvider, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("unable to create working directory %s: %w", workDir, err)
	}

	return &generatedCorpus{
		algo:    algo,
		workDir: workDir,
		classes: classes,
		src:     randomSource(seed),
	}, nil
}

func (p *generatedCorpus) Next(ctx context.Context) (*TestCase, error) {
	for p.class < len(p.classes) && p.rep >= p.classes[p.class].Repetitions {
		p.class += 1
		p.rep = 0
	}
	if p.class >= len(p.classes) {
		return nil, io.EOF
	}

	c := p.classes[p.class]
	rep := p.rep
	p.rep += 1

	if rep == 0 {
		log.Printf("Testing of %d bytes files", int64(c.Size))
	}

	name := filepath.Join(p.workDir, fmt.Sprintf("file-%d-%d", int64(c.Size), rep))
	if err := writeRandomFile(name, int64(c.Size), p.src); err != nil {
		return nil, fmt.Errorf("unable to generate %s: %w", name, err)
	}

	return &TestCase{
		Path:      name,
		Algorithm: p.algo,
		Identity:  fmt.Sprintf("File size: %d", int64(c.Size)),
		Size:      int64(c.Size),
		teardown:  removeFile(name),
	}, nil
}

// Close removes the working directory, it is safe to call more than once.
func (p *generatedCorpus) Close() error {
	if err := os.RemoveAll(p.workDir); err != nil {
		return fmt.Errorf("unable to remove working directory %s: %w", p.workDir, err)
	}
	return nil
}
