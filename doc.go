/*
zippycheck checks a hashing utility (the subject) against the reference
hashing utilities of the operating system.  Every test file is hashed by both
tools and the two lowercase hexadecimal digests must be identical.

Usage:

	zippycheck -a <algorithm> [options]

The subject is invoked as "<subject> <algorithm> <file>" and must print only
the digest.  The reference tool depends on the algorithm:

	sha256  shasum -a 256 <file>
	sha512  shasum -a 512 <file>
	md5     md5 <file> (BSD systems) or md5sum <file>

-reference replaces the reference tool with another command whose output is
read using -reference-format (gnu: "<hex>  <file>", bsd: "MD5 (<file>) =
<hex>"), or with "builtin" to hash in-process with the Go standard library.
-subject and -reference are split on whitespace without shell quoting, so
neither path may contain spaces; use a symlink or a wrapper script instead.

By default a corpus of random files is generated in -work-dir, one file at a
time, covering the sizes 0, 1, 2, 10, 54, 55, 56, 60, 64, 128, 1000, 5000,
10MiB, 50MiB and 100MiB.  Each file is removed right after it is compared and
-work-dir is removed when the run ends, whatever the outcome.  -sizes
overrides the table, e.g. -sizes 0:1,64:10,10MiB:2, and -seed makes the
content reproducible.

-predefined (or -pd) compares every file of -dir instead, which is never
modified.  -s3-corpus s3://bucket/prefix downloads each object under the
prefix into -work-dir and compares it.

Mismatches are collected and reported at the end of the run in -report-format
(text or json), optionally uploaded with -report-s3 s3://bucket/key.

Exit status:

	0  all digests matched
	1  at least one digest mismatched
	2  invalid invocation or unreadable corpus
	3  a tool failed to run, exited non-zero or printed unexpected output

Options:

	-a, -algorithm <name>
	-pd, -predefined
	-dir <path>               (default: testFiles)
	-recursive
	-work-dir <path>          (default: randomTestFiles)
	-sizes <size>:<n>[,...]
	-seed <n>
	-subject <path>           (default: out/zippy)
	-reference <command|builtin>
	-reference-format <gnu|bsd>
	-s3-corpus <s3://bucket/prefix>
	-report-format <text|json>
	-report-s3 <s3://bucket/key>
	-profile <aws profile>
	-disable-path-style
	-verbose
	-cpu-profile <path>
	-mem-profile <path>
	-trace <path>
*/
package main

// godoc_cmd_pkg is printed by -help.
const godoc_cmd_pkg = `zippycheck -a <algorithm> [options]

Compares the digests printed by "<subject> <algorithm> <file>" with those of
the system reference tools, for a generated corpus (default), the files of
-dir (-predefined) or the objects under -s3-corpus.

Exit status: 0 all matched, 1 mismatch, 2 invalid invocation, 3 tool failure.

-subject and -reference are split on whitespace, paths containing spaces are
not supported.

Run "go doc" for the full list of options.
`
