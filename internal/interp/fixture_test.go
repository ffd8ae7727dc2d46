package interp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/lumen/internal/checker"
	"github.com/cwbudde/lumen/internal/lexer"
	"github.com/cwbudde/lumen/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures runs every .lum file under testdata/fixtures through the
// full lex/parse/check/eval pipeline and snapshots the outcome: the
// rendered result value for a program that runs clean, or the error
// kind and message for one that is expected to fail at some stage.
// Fixtures whose name starts with "fail_" are expected to produce an
// error; everything else is expected to run to completion.
func TestFixtures(t *testing.T) {
	matches, err := filepath.Glob("../../testdata/fixtures/*.lum")
	if err != nil {
		t.Fatalf("failed to glob fixtures: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), ".lum")
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read %s: %v", path, err)
			}

			outcome := runFixture(string(source))
			wantError := strings.HasPrefix(name, "fail_")
			if wantError != (outcome.errKind != "") {
				t.Fatalf("%s: expected error=%v, got outcome %+v", name, wantError, outcome)
			}

			snaps.MatchSnapshot(t, name, outcome)
		})
	}
}

type fixtureOutcome struct {
	result  string
	errKind string
	errMsg  string
}

func runFixture(source string) fixtureOutcome {
	p := parser.New(lexer.New(source))
	prog, err := p.ParseProgram()
	if err != nil {
		return fixtureOutcome{errKind: errorKind(err), errMsg: err.Error()}
	}

	c := checker.New()
	if _, err := c.Check(prog); err != nil {
		return fixtureOutcome{errKind: errorKind(err), errMsg: err.Error()}
	}

	ev := New(c.Decls())
	v, err := ev.Eval(prog)
	if err != nil {
		return fixtureOutcome{errKind: errorKind(err), errMsg: err.Error()}
	}

	return fixtureOutcome{result: Render(v, ev.Heap())}
}

func errorKind(err error) string {
	switch e := err.(type) {
	case *lexer.LexError:
		return e.Kind
	case *parser.ParseError:
		return e.Kind
	case *checker.TypeError:
		return e.Kind
	case *RuntimeError:
		return e.Kind
	default:
		return "unknown"
	}
}
