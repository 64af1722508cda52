package main

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
	"os"
)

// randomSource returns the reader random file content is drawn from.  A zero
// seed selects crypto/rand, so content differs on every run; any other seed
// selects a ChaCha8 stream that reproduces the same corpus.
func randomSource(seed uint64) io.Reader {
	if seed == 0 {
		return rand.Reader
	}

	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	return mrand.NewChaCha8(key)
}

// writeRandomFile creates name holding exactly size bytes read from src.  The
// content is streamed, so the file size is not bounded by memory.
func writeRandomFile(name string, size int64, src io.Reader) (err error) {
	fh, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(name)
		}
	}()

	n, err := copyBuffer(fh, io.LimitReader(src, size))
	if err != nil {
		return err
	}

	if n != size {
		return fmt.Errorf("short write to %s: wrote %d of %d bytes", name, n, size)
	}

	return nil
}
