package headers

import (
	"reflect"
	"strings"
	"testing"
)

func TestClassify_NumberedSection(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"1.1 Overview", true},
		{"2.3.1 Timing Diagram", true},
		{"4. Pin Assignment", true},
		{"10.2.3.4 Deep Nesting", true},
		{"1.1 overview", false}, // lowercase after numbering fails this rule (but may match others)
		{"v1.1 Overview", false},
	}
	for _, c := range cases {
		got := Rules[0].Match(c.line)
		if got != c.want {
			t.Errorf("numbered_section(%q): expected %v, got %v", c.line, c.want, got)
		}
	}
}

func TestClassify_AllCaps(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"ABSOLUTE MAXIMUM RATINGS", true},
		{"PIN ASSIGNMENT AND FUNCTIONS", true},
		{"RATINGS", false},       // single word
		{"Absolute Maximum", false}, // not uppercase
		{strings.Repeat("LONG WORD ", 10), false}, // 100 chars, too long
	}
	for _, c := range cases {
		got := Rules[1].Match(c.line)
		if got != c.want {
			t.Errorf("all_caps(%q): expected %v, got %v", c.line, c.want, got)
		}
	}
}

func TestClassify_TitleCase(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"Power Management Unit", true},
		{"Power Management Unit.", false}, // ends with period
		{"Power management unit", false},  // not every word capitalized
		{"Power", false},                  // single word
		{"The BMP280 Sensor", false},      // uppercase run inside a word
	}
	for _, c := range cases {
		got := Rules[2].Match(c.line)
		if got != c.want {
			t.Errorf("title_case(%q): expected %v, got %v", c.line, c.want, got)
		}
	}
}

func TestClassify_Keyword(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"bmp280 registers and their use", true},
		{"electrical characteristics at 25c", true},
		{"nothing relevant here", false},
		{strings.Repeat("x", 75) + " overview", false}, // over 80 chars
	}
	for _, c := range cases {
		got := Rules[3].Match(c.line)
		if got != c.want {
			t.Errorf("keyword(%q): expected %v, got %v", c.line, c.want, got)
		}
	}
}

func TestClassify_AnyRuleSuffices(t *testing.T) {
	// Matches keyword rule only (lowercase, no numbering, not title case).
	name, ok := Classify("memory map and register description")
	if !ok {
		t.Fatal("expected a match")
	}
	if name != "keyword" {
		t.Errorf("expected rule %q, got %q", "keyword", name)
	}

	// Matches the numbered rule first even though "overview" is a keyword.
	name, ok = Classify("1.2 Overview")
	if !ok {
		t.Fatal("expected a match")
	}
	if name != "numbered_section" {
		t.Errorf("expected rule %q, got %q", "numbered_section", name)
	}
}

func TestClassify_EmptyLineNeverMatches(t *testing.T) {
	if _, ok := Classify(""); ok {
		t.Error("empty line must not be a header")
	}
	if _, ok := Classify("   \t  "); ok {
		t.Error("whitespace-only line must not be a header")
	}
}

func TestDetect_OrderAndTrimming(t *testing.T) {
	page := "  1.1 Overview  \nplain body text that matches nothing at all\nGENERAL DESCRIPTION\n\n"
	got := Detect(page)
	want := []string{"1.1 Overview", "GENERAL DESCRIPTION"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDetect_NoHeadersAcrossLines(t *testing.T) {
	// A header split across two lines is not detected.
	page := "1.1\nOverview Of Nothing Much Here Really Quite Plain Words"
	got := Detect(page)
	for _, h := range got {
		if h == "1.1 Overview" {
			t.Errorf("header must not be assembled across line boundaries")
		}
	}
}

func TestDedupe_PreservesFirstSeenOrder(t *testing.T) {
	in := []string{"OVERVIEW", "1.1 Registers", "OVERVIEW", "Timing", "1.1 Registers"}
	got := Dedupe(in)
	want := []string{"OVERVIEW", "1.1 Registers", "Timing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
