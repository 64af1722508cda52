package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// fixedCorpus yields every regular file of an operator supplied directory.
// It never creates or removes anything.
type fixedCorpus struct {
	algo  *AlgorithmSpec
	paths []string
	sizes []int64
	next  int
}

// NewFixedCorpus lists dir (and its subdirectories if recursive is set) up
// front so that an unreadable directory is reported before any case runs.
// Files are yielded in lexical order.
func NewFixedCorpus(dir string, algo *AlgorithmSpec, recursive, verbose bool) (CorpusProvider, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, configErrorf(err, "cannot open fixed corpus directory %s", dir)
	}
	if !fi.IsDir() {
		return nil, configErrorf(nil, "fixed corpus %s is not a directory", dir)
	}

	p := &fixedCorpus{algo: algo}

	err = filepath.WalkDir(dir, func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// process the top-level directory; process sub-directories if
		// recursive was set.
		if d.IsDir() {
			if recursive || name == dir {
				return nil
			}
			if verbose {
				log.Printf("skipping directory %s, use -recursive to include it", name)
			}
			return filepath.SkipDir
		}

		dFi, dErr := d.Info()
		if dErr != nil {
			if errors.Is(dErr, fs.ErrNotExist) {
				return nil
			}
			return dErr
		}

		if !dFi.Mode().IsRegular() {
			if verbose {
				log.Printf("skipping %s, not a regular file", name)
			}
			return nil
		}

		p.paths = append(p.paths, name)
		p.sizes = append(p.sizes, dFi.Size())

		return nil
	})
	if err != nil {
		return nil, configErrorf(err, "cannot read fixed corpus directory %s", dir)
	}

	return p, nil
}

func (p *fixedCorpus) Next(ctx context.Context) (*TestCase, error) {
	if p.next >= len(p.paths) {
		return nil, io.EOF
	}

	name, size := p.paths[p.next], p.sizes[p.next]
	p.next += 1

	log.Printf("Testing the %s", name)

	return &TestCase{
		Path:      name,
		Algorithm: p.algo,
		Identity:  "File: " + name,
		Size:      size,
	}, nil
}

func (p *fixedCorpus) Close() error {
	return nil
}
