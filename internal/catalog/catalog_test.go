package catalog

import (
	"strings"
	"testing"
)

func TestLoad_Default(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	chapters := c.Chapters()
	if len(chapters) == 0 {
		t.Fatal("embedded dataset has no chapters")
	}

	for _, key := range chapters {
		qs := c.Questions(key)
		as := c.Answers(key)
		if len(qs) != len(as) {
			t.Errorf("chapter %q: %d questions vs %d answers", key, len(qs), len(as))
		}
		if len(qs) > MaxPairs {
			t.Errorf("chapter %q: %d pairs, cap is %d", key, len(qs), MaxPairs)
		}
		if c.Summary(key) == "" {
			t.Errorf("chapter %q: empty summary", key)
		}
	}
}

func TestLoad_RepairsMismatchedPairs(t *testing.T) {
	data := `{"chapters":[{"key":"X","summary":"s","questions":["q1","q2","q3"],"answers":["long answer with many distinct words here"]}]}`

	c, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := len(c.Questions("X")); got != 1 {
		t.Errorf("questions after repair = %d, want 1", got)
	}
	if got := len(c.Answers("X")); got != 1 {
		t.Errorf("answers after repair = %d, want 1", got)
	}
}

func TestLoad_RejectsMalformedDataset(t *testing.T) {
	cases := map[string]string{
		"missing chapters": `{}`,
		"missing key":      `{"chapters":[{"summary":"s","questions":[],"answers":[]}]}`,
		"wrong type":       `{"chapters":[{"key":"X","questions":"nope","answers":[]}]}`,
		"not json":         `{{`,
	}
	for name, data := range cases {
		if _, err := Load(strings.NewReader(data)); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}

func TestCatalog_UnknownChapterDefaults(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if got := c.Summary("no such chapter"); got != NoSummary {
		t.Errorf("Summary = %q, want %q", got, NoSummary)
	}
	if got := c.Questions("no such chapter"); len(got) != 0 {
		t.Errorf("Questions = %v, want empty", got)
	}
	if got := c.Pairs("no such chapter"); len(got) != 0 {
		t.Errorf("Pairs = %v, want empty", got)
	}
}

func TestCleanTitle(t *testing.T) {
	cases := []struct{ in, want string }{
		{"3. Relational Databases and SQL", "Relational Databases and SQL"},
		{"3.2 Normal Forms", "Normal Forms"},
		{"Introduction", "Introduction"},
		{"12  Wide Gap", "Wide Gap"},
	}
	for _, c := range cases {
		if got := CleanTitle(c.in); got != c.want {
			t.Errorf("CleanTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCleanAnswer_TrimsQuestionEcho(t *testing.T) {
	got := CleanAnswer(
		"What is a pivot table?",
		"A pivot table is an interactive summary that groups rows of data.",
	)
	if strings.HasPrefix(strings.ToLower(got), "a pivot table") {
		t.Errorf("question echo not trimmed: %q", got)
	}
	if !strings.HasPrefix(got, strings.ToUpper(got[:1])) {
		t.Errorf("answer not capitalized: %q", got)
	}
	if strings.HasSuffix(got, ".") {
		t.Errorf("trailing period not stripped: %q", got)
	}
}

func TestCleanAnswer_ShortRemainderFallsBack(t *testing.T) {
	got := CleanAnswer("What is a primary key?", "A primary key is unique")
	if !strings.HasPrefix(got, "It refers to ") {
		t.Errorf("expected fallback prefix, got %q", got)
	}
}
