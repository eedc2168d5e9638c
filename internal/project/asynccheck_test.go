package project

import (
	"strings"
	"testing"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

func newTestRustParser(t *testing.T) *sitter.Parser {
	t.Helper()
	parser := sitter.NewParser()
	if err := parser.SetLanguage(rustSyntaxLanguage); err != nil {
		t.Fatalf("set language: %v", err)
	}
	t.Cleanup(parser.Close)
	return parser
}

func TestParseAsyncUsageDetectsAsyncFunctions(t *testing.T) {
	parser := newTestRustParser(t)

	usage, ok := parseAsyncUsage(parser, []byte("async fn run() {}\n"))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if !usage.UsesAsync {
		t.Fatal("expected async fn to be detected")
	}
	if usage.UsesTokio {
		t.Fatal("did not expect tokio usage")
	}
}

func TestParseAsyncUsageDetectsAwaitAndBlocks(t *testing.T) {
	parser := newTestRustParser(t)

	src := "fn main() {\n    let fut = async { 1 };\n}\n"
	usage, ok := parseAsyncUsage(parser, []byte(src))
	if !ok || !usage.UsesAsync {
		t.Fatalf("expected async block detection, got %+v", usage)
	}

	src = "async fn outer() {\n    inner().await;\n}\nasync fn inner() {}\n"
	usage, ok = parseAsyncUsage(parser, []byte(src))
	if !ok || !usage.UsesAsync {
		t.Fatalf("expected await detection, got %+v", usage)
	}
}

func TestParseAsyncUsageDetectsTokio(t *testing.T) {
	parser := newTestRustParser(t)

	src := "use tokio::time::sleep;\n\nfn main() {}\n"
	usage, ok := parseAsyncUsage(parser, []byte(src))
	if !ok || !usage.UsesTokio {
		t.Fatalf("expected tokio use detection, got %+v", usage)
	}

	src = "#[tokio::main]\nasync fn main() {}\n"
	usage, ok = parseAsyncUsage(parser, []byte(src))
	if !ok || !usage.UsesTokio || !usage.UsesAsync {
		t.Fatalf("expected tokio attribute detection, got %+v", usage)
	}
}

func TestParseAsyncUsageIgnoresPlainCode(t *testing.T) {
	parser := newTestRustParser(t)

	usage, ok := parseAsyncUsage(parser, []byte("fn main() {\n    println!(\"hi\");\n}\n"))
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if usage.UsesAsync || usage.UsesTokio {
		t.Fatalf("expected no detection for plain code, got %+v", usage)
	}
}

func TestCheckAsyncTaggingReportsMismatches(t *testing.T) {
	root := t.TempDir()
	writeExercise(t, root, "exercises/async/calm.rs", "fn main() {}\n")
	writeExercise(t, root, "exercises/basics/sneaky.rs", "async fn run() {}\n\nfn main() {}\n")
	writeExercise(t, root, "exercises/async/proper.rs", "#[tokio::main]\nasync fn main() {}\n")

	isAsync := PrefixAsyncPredicate("exercises/async")
	var crates []Crate
	for _, p := range []string{
		"exercises/async/calm.rs",
		"exercises/async/proper.rs",
		"exercises/basics/sneaky.rs",
	} {
		c := ClassifyPath(p, "2021", isAsync)
		if c == nil {
			t.Fatalf("expected crate for %s", p)
		}
		crates = append(crates, *c)
	}

	notes := CheckAsyncTagging(root, crates)
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}

	var sawCalm, sawSneaky bool
	for _, note := range notes {
		if strings.Contains(note, "exercises/async/calm.rs") {
			sawCalm = true
		}
		if strings.Contains(note, "exercises/basics/sneaky.rs") {
			sawSneaky = true
		}
		if strings.Contains(note, "exercises/async/proper.rs") {
			t.Fatalf("did not expect a note for proper.rs: %q", note)
		}
	}
	if !sawCalm || !sawSneaky {
		t.Fatalf("expected notes for calm.rs and sneaky.rs, got %v", notes)
	}
}

func TestCheckAsyncTaggingSkipsUnreadableFiles(t *testing.T) {
	root := t.TempDir()

	crates := []Crate{{
		RootModule: "exercises/async/missing.rs",
		Edition:    "2021",
		Deps:       []Dep{{Crate: 0, Name: "tokio"}},
		Cfg:        []string{"test"},
	}}
	if notes := CheckAsyncTagging(root, crates); len(notes) != 0 {
		t.Fatalf("expected unreadable files to be skipped, got %v", notes)
	}
}
