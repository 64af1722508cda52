package main

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DigestParser extracts the canonical lowercase hexadecimal digest from the
// standard output of a reference tool.
type DigestParser func(output string) (string, error)

// DigestFormat identifies one of the known reference tool output layouts,
// with helper functions for use via the flag module.
type DigestFormat int

const (
	// "<hex>  <file>" as written by shasum, sha256sum, md5sum, ...
	GNUFormat DigestFormat = iota

	// "<ALGO> (<file>) = <hex>" as written by BSD md5, sha256, ...
	BSDFormat
)

func (p DigestFormat) String() string {
	switch p {
	case BSDFormat:
		return "bsd"
	default:
		return "gnu"
	}
}

func (p *DigestFormat) Set(s string) error {
	switch strings.ToLower(s) {
	case "gnu":
		*p = GNUFormat
	case "bsd":
		*p = BSDFormat
	default:
		return fmt.Errorf("valid digest formats: gnu, bsd")
	}

	return nil
}

// Parser returns the DigestParser for the format.
func (p DigestFormat) Parser() DigestParser {
	if p == BSDFormat {
		return ParseBSD
	}
	return ParseGNU
}

// ParseGNU parses "<hex>  <file>" output, or "<hex> *<file>" for tools run
// in binary mode.  GNU tools prefix the line with a backslash when the file
// name had to be escaped, which is dropped.
func ParseGNU(output string) (string, error) {
	line := strings.TrimLeft(output, " \t")

	// the digest never contains a space, the file name may
	i := strings.IndexByte(line, ' ')
	if i < 0 || i+1 >= len(line) || (line[i+1] != ' ' && line[i+1] != '*') {
		return "", &ParseError{Format: GNUFormat, Output: output,
			Reason: "missing '  ' or ' *' delimiter"}
	}

	field := strings.TrimPrefix(line[:i], `\`)

	return canonicalDigest(GNUFormat, output, field)
}

// ParseBSD parses "<ALGO> (<file>) = <hex>" output.  The digest follows the
// last delimiter, the file name may contain one too.
func ParseBSD(output string) (string, error) {
	i := strings.LastIndex(output, " = ")
	if i < 0 {
		return "", &ParseError{Format: BSDFormat, Output: output,
			Reason: "missing ' = ' delimiter"}
	}

	return canonicalDigest(BSDFormat, output, output[i+len(" = "):])
}

// canonicalDigest trims and lowercases field, which must be a non-empty
// hexadecimal string.
func canonicalDigest(format DigestFormat, output, field string) (string, error) {
	digest := strings.ToLower(strings.TrimSpace(field))
	if digest == "" {
		return "", &ParseError{Format: format, Output: output,
			Reason: "empty digest"}
	}

	if _, err := hex.DecodeString(digest); err != nil {
		return "", &ParseError{Format: format, Output: output,
			Reason: "digest is not hexadecimal", Err: err}
	}

	return digest, nil
}
