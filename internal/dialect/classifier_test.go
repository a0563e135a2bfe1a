package dialect

import "testing"

func detect(content string) Kind {
	return Detect(1, []byte(content))
}

func TestPrimaryCodeStaysPrimary(t *testing.T) {
	samples := []string{
		"",
		"int x = 1;",
		"if (a == b) { return c; }",
		"f((x, y) -> x + y);",
		"for (int i = 0; i < n; i += 1) { total += i; }",
	}
	for _, s := range samples {
		if got := detect(s); got != Primary {
			t.Errorf("%q: expected primary, got %v", s, got)
		}
	}
}

func TestForeignDialectsDetected(t *testing.T) {
	cases := []struct {
		content string
		want    Kind
	}{
		{"def main():\n    pass\n", Python},
		{"# setup\nx = lambda a: a\n", Python},
		{"function main() { return undefined; }\n", JavaScript},
		{"const f = (a) => a === b;\n", JavaScript},
		{"impl Foo { fn bar(&self) {} }\n", Rust},
		{"let mut x = std::cmp::max(1, 2);\n", Rust},
		{"package main\n\nfunc main() { defer close(ch) }\n", Go},
	}
	for _, c := range cases {
		if got := detect(c.content); got != c.want {
			t.Errorf("%q: expected %v, got %v", c.content, c.want, got)
		}
	}
}

func TestWeakHintsDoNotFlip(t *testing.T) {
	// A single low-score word must not reclassify the file.
	samples := []string{
		"self = 1;",
		"int pass = 0;",
	}
	for _, s := range samples {
		if got := detect(s); got != Primary {
			t.Errorf("%q: expected primary despite weak hint, got %v", s, got)
		}
	}
}

func TestClassifierScoresDominantDialect(t *testing.T) {
	ev := CollectEvidence(1, []byte("def f():\n    return lambda x: x\n# comment\n"))
	cls := Classifier{}.Classify(ev)
	if cls.Kind != Python {
		t.Fatalf("expected python, got %v", cls.Kind)
	}
	if cls.Score <= 0 || cls.TotalScore < cls.Score {
		t.Fatalf("inconsistent scores: %+v", cls)
	}
	if cls.Confidence <= 0 || cls.Confidence > 1 {
		t.Fatalf("confidence out of range: %v", cls.Confidence)
	}
}

func TestEmptyEvidenceIsPrimary(t *testing.T) {
	cls := Classifier{}.Classify(NewEvidence())
	if cls.Kind != Primary {
		t.Fatalf("expected primary for empty evidence, got %v", cls.Kind)
	}
}
