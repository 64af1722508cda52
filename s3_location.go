package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

var errBadS3URL = errors.New(
	"S3 locations must be of the form s3://bucket/key")

// upper limit on the length of key
var MAX_KEY_BYTES = 1024

// S3Location is a bucket and a key (or key prefix) parsed from an s3:// URL.
type S3Location struct {
	Bucket string
	Key    string
}

func (p S3Location) String() string {
	return "s3://" + p.Bucket + "/" + p.Key
}

// ParseS3Location parses s of the form s3://bucket/key.  The key must be
// valid UTF-8 without control characters and no longer than MAX_KEY_BYTES.
// When requireKey is false the key may be empty, selecting a whole bucket.
func ParseS3Location(s string, requireKey bool) (S3Location, error) {
	u, err := url.Parse(s)
	if err != nil {
		return S3Location{}, fmt.Errorf("%w: %s: %s", errBadS3URL, s, err)
	}

	if u.Scheme != "s3" || u.Host == "" {
		return S3Location{}, fmt.Errorf("%w: %s", errBadS3URL, s)
	}

	loc := S3Location{
		Bucket: u.Host,
		Key:    strings.TrimPrefix(u.Path, "/"),
	}

	if requireKey && (loc.Key == "" || strings.HasSuffix(loc.Key, "/")) {
		return S3Location{}, fmt.Errorf("%w: %s: a key name is required, not a prefix",
			errBadS3URL, s)
	}

	if !utf8.ValidString(loc.Key) {
		return S3Location{}, fmt.Errorf("%w: %s: key is not valid UTF-8", errBadS3URL, s)
	}

	if i := strings.IndexFunc(loc.Key, unicode.IsControl); i >= 0 {
		return S3Location{}, fmt.Errorf("%w: %s: key contains control characters",
			errBadS3URL, s)
	}

	if len(loc.Key) > MAX_KEY_BYTES {
		return S3Location{}, fmt.Errorf("%w: key is %d bytes which exceeds the maximum of %d",
			errBadS3URL, len(loc.Key), MAX_KEY_BYTES)
	}

	return loc, nil
}
