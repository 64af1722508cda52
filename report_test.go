package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestReportPassed(t *testing.T) {
	report := NewRunReport("sha256", "predefined")
	report.Add(&Verdict{Identity: "File: a.txt", Expected: emptySHA256, Actual: emptySHA256})

	var buf bytes.Buffer
	if err := report.Write(&buf, ReportFormat(TextReport)); err != nil {
		t.Fatal(err)
	}

	expect := "All 1 tests have passed!\n"
	if buf.String() != expect {
		t.Errorf("expected [%s] got [%s]", expect, buf.String())
	}
	if report.ExitCode() != ExitSuccess {
		t.Errorf("expected exit code %d got %d", ExitSuccess, report.ExitCode())
	}
}

func TestReportMismatchText(t *testing.T) {
	report := NewRunReport("md5", "generated")
	report.Add(&Verdict{Identity: "File size: 0", Expected: emptyMD5, Actual: emptyMD5})
	report.Add(&Verdict{Identity: "File size: 5000", Expected: "aa", Actual: "ab"})
	report.Add(&Verdict{Identity: "File size: 5000", Expected: "ba", Actual: "bb"})

	var buf bytes.Buffer
	if err := report.Write(&buf, ReportFormat(TextReport)); err != nil {
		t.Fatal(err)
	}

	expect := "Some tests have failed (2 of 3):\n" +
		"\n\tFile size: 5000\n\tExpected hash: aa\n\tActual hash:   ab\n" +
		"\n\tFile size: 5000\n\tExpected hash: ba\n\tActual hash:   bb\n"

	if buf.String() != expect {
		t.Errorf("expected [%s] got [%s]", expect, buf.String())
	}
	if report.ExitCode() != ExitMismatch {
		t.Errorf("expected exit code %d got %d", ExitMismatch, report.ExitCode())
	}
}

func TestReportJSON(t *testing.T) {
	report := NewRunReport("sha256", "generated")
	report.Add(&Verdict{Identity: "File size: 1", Path: "randomTestFiles/file-1-0", Expected: "aa", Actual: "AA"})

	var buf bytes.Buffer
	if err := report.Write(&buf, ReportFormat(JsonReport)); err != nil {
		t.Fatal(err)
	}

	var actual RunReport
	if err := json.Unmarshal(buf.Bytes(), &actual); err != nil {
		t.Fatalf("unable to unmarshal report: %s: %s", err, buf.String())
	}

	if actual.Algorithm != "sha256" || actual.Mode != "generated" || actual.Cases != 1 {
		t.Errorf("unexpected report header %#v", actual)
	}
	if len(actual.Mismatches) != 1 {
		t.Fatalf("expected 1 mismatch got %d", len(actual.Mismatches))
	}
	if *actual.Mismatches[0] != *report.Mismatches[0] {
		t.Errorf("expected %#v got %#v", report.Mismatches[0], actual.Mismatches[0])
	}
}

func TestReportFormatSet(t *testing.T) {
	tests := []struct {
		s     string
		media string
	}{
		{s: "text", media: "text/plain; charset=utf-8"},
		{s: "json", media: "application/json"},
	}

	for _, tst := range tests {
		var f ReportFormat
		if err := f.Set(tst.s); err != nil {
			t.Errorf("unexpected error parsing [%s]: %s", tst.s, err)
		}
		if f.String() != tst.s {
			t.Errorf("expected [%s] got [%s]", tst.s, f)
		}
		if f.MediaType() != tst.media {
			t.Errorf("expected [%s] got [%s]", tst.media, f.MediaType())
		}
	}

	var f ReportFormat
	if err := f.Set("xml"); err == nil {
		t.Errorf("expected an error parsing [xml]")
	}
}
