package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"kythe.io/kythe/go/util/datasize"
)

var errBadSizeClass = errors.New(
	"-sizes must be a comma separated list of <size>:<repetitions>, e.g. 0:1,64:10,10MiB:2")

// ByteSize represents an int64 count of bytes, with helper functions to parse
// and produce human readable representations of the size for use via the flag
// module.
type ByteSize int64

// String returns a human readable representation of the number of bytes.
func (p ByteSize) String() string {
	return datasize.Size(p).String()
}

// Set parses a human readable representation of a number of bytes, e.g., 5MiB
// or 5GiB.  A bare integer is a count of bytes.  See
// kythe.io/kythe/go/util/datasize for the recognized formats.
func (p *ByteSize) Set(s string) error {
	s = strings.ReplaceAll(s, " ", "")

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n < 0 {
			return fmt.Errorf("negative size: %s", s)
		}
		*p = ByteSize(n)
		return nil
	}

	size, err := datasize.Parse(s)
	if err != nil {
		return err
	}

	*p = ByteSize(size)

	return nil
}

// SizeClass describes one bucket of the generated corpus: Repetitions files
// of exactly Size random bytes.
type SizeClass struct {
	Size        ByteSize
	Repetitions int
}

const MiB = 1024 * 1024

// DefaultSizeClasses exercises the empty input, single bytes, the 55/56/64
// byte padding thresholds of 64-byte block digests, multi-block inputs and
// multi-megabyte inputs that force streaming reads.
var DefaultSizeClasses = SizeClassList{
	{Size: 0, Repetitions: 1},
	{Size: 1, Repetitions: 1},
	{Size: 2, Repetitions: 10},
	{Size: 10, Repetitions: 10},
	{Size: 54, Repetitions: 10},
	{Size: 55, Repetitions: 10},
	{Size: 56, Repetitions: 10},
	{Size: 60, Repetitions: 10},
	{Size: 64, Repetitions: 10},
	{Size: 128, Repetitions: 10},
	{Size: 1000, Repetitions: 10},
	{Size: 5000, Repetitions: 10},
	{Size: 10 * MiB, Repetitions: 2},
	{Size: 50 * MiB, Repetitions: 2},
	{Size: 100 * MiB, Repetitions: 2},
}

// SizeClassList is an ordered sequence of SizeClass that can be set from a
// flag such as "0:1,55:10,10MiB:2".
type SizeClassList []SizeClass

func (p SizeClassList) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = fmt.Sprintf("%s:%d", c.Size, c.Repetitions)
	}
	return strings.Join(parts, ",")
}

func (p *SizeClassList) Set(s string) error {
	var classes SizeClassList

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		sizeStr, repStr, found := strings.Cut(field, ":")
		if !found {
			repStr = "1"
		}

		var size ByteSize
		if err := size.Set(sizeStr); err != nil {
			return fmt.Errorf("%w: %s: %s", errBadSizeClass, field, err)
		}

		reps, err := strconv.Atoi(strings.TrimSpace(repStr))
		if err != nil || reps < 1 {
			return fmt.Errorf("%w: %s: repetitions must be a positive integer",
				errBadSizeClass, field)
		}

		classes = append(classes, SizeClass{Size: size, Repetitions: reps})
	}

	if len(classes) == 0 {
		return fmt.Errorf("%w: %q", errBadSizeClass, s)
	}

	*p = classes

	return nil
}

// Cases returns the total number of files described by the list.
func (p SizeClassList) Cases() int {
	n := 0
	for _, c := range p {
		n += c.Repetitions
	}
	return n
}
