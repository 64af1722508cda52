package main

import (
	"errors"
	"fmt"
	"testing"
)

func TestByteSizeSet(t *testing.T) {
	conversions := []struct {
		s string
		p int64
	}{
		{
			s: "kB",
			p: 1e3,
		},
		{
			s: "MB",
			p: 1e6,
		},
		{
			s: "KiB",
			p: 1024,
		},
		{
			s: "MiB",
			p: 1024 * 1024,
		},
		{
			s: "GiB",
			p: 1024 * 1024 * 1024,
		},
	}

	for i, c := range conversions {
		for _, f := range []float64{1, 2, 5, 10, 50, 100} {
			input := fmt.Sprintf("%.0f%s", f, c.s)

			expect := f * float64(c.p)

			var actual ByteSize
			if err := actual.Set(input); err != nil {
				t.Errorf("%d test parsing [%s]: %s", i, input, err)
			}

			if int64(expect) != int64(actual) {
				t.Errorf("%d test parsing [%s] expected [%.6f] got [%s]",
					i, input, expect, actual)
			}
		}
	}
}

func TestByteSizeSetPlainCount(t *testing.T) {
	for _, n := range []int64{0, 1, 55, 5000} {
		var actual ByteSize
		if err := actual.Set(fmt.Sprintf("%d", n)); err != nil {
			t.Errorf("unexpected error parsing [%d]: %s", n, err)
		}
		if int64(actual) != n {
			t.Errorf("expected [%d] got [%d]", n, int64(actual))
		}
	}

	var actual ByteSize
	if err := actual.Set("-1"); err == nil {
		t.Errorf("expected an error parsing a negative size")
	}
}

// TestDefaultSizeClasses pins the generated corpus table
func TestDefaultSizeClasses(t *testing.T) {
	expect := []struct {
		size int64
		reps int
	}{
		{0, 1}, {1, 1}, {2, 10}, {10, 10}, {54, 10}, {55, 10}, {56, 10},
		{60, 10}, {64, 10}, {128, 10}, {1000, 10}, {5000, 10},
		{10 * 1024 * 1024, 2}, {50 * 1024 * 1024, 2}, {100 * 1024 * 1024, 2},
	}

	if len(expect) != len(DefaultSizeClasses) {
		t.Fatalf("expected %d size classes, got %d", len(expect), len(DefaultSizeClasses))
	}

	for i, e := range expect {
		c := DefaultSizeClasses[i]
		if int64(c.Size) != e.size || c.Repetitions != e.reps {
			t.Errorf("%d expected %d×%d got %d×%d",
				i, e.size, e.reps, int64(c.Size), c.Repetitions)
		}
	}

	if n := DefaultSizeClasses.Cases(); n != 106 {
		t.Errorf("expected 106 cases, got %d", n)
	}
}

func TestSizeClassListSet(t *testing.T) {
	var classes SizeClassList
	if err := classes.Set("0:1, 64:10,10MiB:2,128"); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expect := SizeClassList{
		{Size: 0, Repetitions: 1},
		{Size: 64, Repetitions: 10},
		{Size: 10 * MiB, Repetitions: 2},
		{Size: 128, Repetitions: 1},
	}

	if len(classes) != len(expect) {
		t.Fatalf("expected %d classes, got %d: %s", len(expect), len(classes), classes)
	}
	for i := range expect {
		if classes[i] != expect[i] {
			t.Errorf("%d expected %#v got %#v", i, expect[i], classes[i])
		}
	}

	// the string form parses back to the same list
	var again SizeClassList
	if err := again.Set(classes.String()); err != nil {
		t.Fatalf("unable to parse [%s]: %s", classes, err)
	}
	for i := range classes {
		if again[i] != classes[i] {
			t.Errorf("%d expected %#v got %#v after parsing [%s]", i, classes[i], again[i], classes)
		}
	}
}

func TestSizeClassListSetErrors(t *testing.T) {
	for _, input := range []string{"", ",", "10:0", "10:-1", "10:x", "-5:1", "abc:1"} {
		var classes SizeClassList
		if err := classes.Set(input); !errors.Is(err, errBadSizeClass) {
			t.Errorf("expected errBadSizeClass parsing [%s], got %v", input, err)
		}
	}
}
