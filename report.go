package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// reportFormat represents an identifier for a report output format.
type reportFormat int

const (
	// Human readable mismatch blocks
	TextReport reportFormat = iota

	// Fully detailed report using JSON
	JsonReport
)

// ReportFormat represents a reportFormat, with helper functions to parse and
// produce human readable representations of the identifier for use via the
// flag module.
type ReportFormat reportFormat

func (p ReportFormat) String() string {
	switch reportFormat(p) {
	case JsonReport:
		return "json"
	default:
		return "text"
	}
}

func (p *ReportFormat) Set(s string) error {
	switch strings.ToLower(s) {
	case "text":
		*p = ReportFormat(TextReport)
	case "json":
		*p = ReportFormat(JsonReport)
	default:
		return fmt.Errorf("valid report formats: text, json")
	}

	return nil
}

// MediaType returns the IANA media type of a rendered report.
func (p ReportFormat) MediaType() string {
	if reportFormat(p) == JsonReport {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// RunReport accumulates the verdicts of one run.  Only mismatches are kept,
// matches are counted.
type RunReport struct {
	Algorithm  string     `json:"algorithm"`
	Mode       string     `json:"mode"`
	Cases      int        `json:"cases"`
	Mismatches []*Verdict `json:"mismatches"`
}

// NewRunReport returns an empty report for a run of mode using algorithm.
func NewRunReport(algorithm, mode string) *RunReport {
	return &RunReport{
		Algorithm:  algorithm,
		Mode:       mode,
		Mismatches: []*Verdict{},
	}
}

// Add records one verdict.
func (p *RunReport) Add(v *Verdict) {
	p.Cases += 1
	if !v.Match() {
		p.Mismatches = append(p.Mismatches, v)
	}
}

// Passed is true when every recorded case matched.
func (p *RunReport) Passed() bool {
	return len(p.Mismatches) == 0
}

// ExitCode converts the report into the process exit status.
func (p *RunReport) ExitCode() int {
	if p.Passed() {
		return ExitSuccess
	}
	return ExitMismatch
}

// Write renders the report to w in the requested format.
func (p *RunReport) Write(w io.Writer, format ReportFormat) error {
	if reportFormat(format) == JsonReport {
		buf, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		buf = append(buf, '\n')
		_, err = w.Write(buf)
		return err
	}

	if p.Passed() {
		_, err := fmt.Fprintf(w, "All %d tests have passed!\n", p.Cases)
		return err
	}

	if _, err := fmt.Fprintf(w, "Some tests have failed (%d of %d):\n",
		len(p.Mismatches), p.Cases); err != nil {
		return err
	}

	for _, v := range p.Mismatches {
		// the extra spaces after "Actual hash:" align both digests
		_, err := fmt.Fprintf(w, "\n\t%s\n\tExpected hash: %s\n\tActual hash:   %s\n",
			v.Identity, v.Expected, v.Actual)
		if err != nil {
			return err
		}
	}

	return nil
}
