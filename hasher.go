package main

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"runtime"
	"sort"
	"strings"
)

// Hasher defines a generic function that returns hash.Hash, it is used by the
// builtin reference to compute a digest in-process.
type Hasher func() hash.Hash

// HashSum represents a []byte returned by a call to the hash.Hash interface's
// Sum([]byte) method.
type HashSum []byte

// Hex returns the lowercase hex-encoded representation of the checksum.
func (p HashSum) Hex() string {
	return hex.EncodeToString(p)
}

// String returns the hex-encoded representation of the checksum.
func (p HashSum) String() string {
	return p.Hex()
}

// AlgorithmSpec describes a supported algorithm: the name the subject
// accepts, the OS reference tool that produces a trusted digest for it and how
// to read that tool's output.
type AlgorithmSpec struct {
	Name string

	// Command is the reference tool invocation, the file path is appended
	// as the last argument.
	Command []string

	// Format of the reference tool output, used to select Parse.
	Format DigestFormat

	Hasher Hasher
}

// String returns the name of this algorithm.
func (p *AlgorithmSpec) String() string {
	return p.Name
}

// Parse extracts the digest from raw reference tool output.
func (p *AlgorithmSpec) Parse(output string) (string, error) {
	return p.Format.Parser()(output)
}

// SHA256 algorithm, checked against shasum.
var AlgorithmSHA256 = &AlgorithmSpec{
	Name:    "sha256",
	Command: []string{"shasum", "-a", "256"},
	Format:  GNUFormat,
	Hasher:  sha256.New,
}

// SHA512 algorithm, checked against shasum.
var AlgorithmSHA512 = &AlgorithmSpec{
	Name:    "sha512",
	Command: []string{"shasum", "-a", "512"},
	Format:  GNUFormat,
	Hasher:  sha512.New,
}

// MD5 algorithm, checked against md5(1) on BSD derived systems and md5sum(1)
// everywhere else.
var AlgorithmMD5 = md5Spec(runtime.GOOS)

func md5Spec(goos string) *AlgorithmSpec {
	switch goos {
	case "darwin", "freebsd", "netbsd", "openbsd", "dragonfly":
		return &AlgorithmSpec{
			Name:    "md5",
			Command: []string{"md5"},
			Format:  BSDFormat,
			Hasher:  md5.New,
		}
	default:
		return &AlgorithmSpec{
			Name:    "md5",
			Command: []string{"md5sum"},
			Format:  GNUFormat,
			Hasher:  md5.New,
		}
	}
}

// algorithms is the table of supported algorithms keyed by name.  Support for
// a new algorithm is added here and nowhere else.
var algorithms = map[string]*AlgorithmSpec{
	AlgorithmSHA256.Name: AlgorithmSHA256,
	AlgorithmSHA512.Name: AlgorithmSHA512,
	AlgorithmMD5.Name:    AlgorithmMD5,
}

// LookupAlgorithm returns the AlgorithmSpec registered for name.
func LookupAlgorithm(name string) (*AlgorithmSpec, error) {
	if name == "" {
		return nil, errMissingAlgorithm
	}

	spec, ok := algorithms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)",
			errUnknownAlgorithm, name, strings.Join(AlgorithmNames(), ", "))
	}

	return spec, nil
}

// AlgorithmNames returns the sorted names of the supported algorithms.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
