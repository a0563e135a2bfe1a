package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"x;",
	"int x = 1;",
	"x = (y);",
	"x = ((a + b));",
	"x >>>= (1L);",
	"if ((a == b)) { return (c); } else { y; }",
	"while (x > 0) { x -= 1; }",
	"do { x *= 2; } while (x < 100);",
	"for (int i = 0; i < n; i += 1) { f(i); }",
	"for (;;) { }",
	"f((x, y) -> x + y);",
	"g((int x) -> { return (x); });",
	"obj.field.method(1, 2.5f, \"s\").next;",
	"// comment\n/* block */ x = (true);\n",
	"s = \"escaped \\\" quote\";",
	"x = a == b && (c != d) || !e;",
	"(((deep)));",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxFuzzInput {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxFuzzInput]...)
}
