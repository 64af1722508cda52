package main

import (
	"context"
	"errors"
	"io"
)

// CorpusProvider yields the test cases of one run.  Next returns io.EOF once
// the corpus is exhausted.  Close releases anything the provider created
// (e.g. its working directory) and must be called on every exit path.
type CorpusProvider interface {
	Next(ctx context.Context) (*TestCase, error)
	Close() error
}

// Comparer is satisfied by *Pipeline.
type Comparer interface {
	Compare(ctx context.Context, tc *TestCase) (*Verdict, error)
}

// Run drives every case of corpus through the comparer strictly one at a
// time.  Mismatches are collected into the report and the run continues; any
// other error stops the run.  Each case is torn down before the next one is
// generated, and the corpus is closed before Run returns.
func Run(ctx context.Context, corpus CorpusProvider, cmp Comparer, report *RunReport) (err error) {
	defer func() {
		if cerr := corpus.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tc, err := corpus.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		v, err := cmp.Compare(ctx, tc)
		if terr := tc.Teardown(); terr != nil {
			err = errors.Join(err, terr)
		}
		if err != nil {
			return err
		}

		report.Add(v)
	}
}
