package command

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sandevgo/pluto/internal/core"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want core.Input
	}{
		{"help with target", "  HELP   quit  ", core.Input{Name: "help", Args: []string{"quit"}}},
		{"bare quit", "quit", core.Input{Name: "quit"}},
		{"empty", "", core.Input{Name: ""}},
		{"whitespace only", " \t  ", core.Input{Name: ""}},
		{"unknown with args", "foobar a b", core.Input{Name: "foobar", Args: []string{"a", "b"}}},
		{"runs of spaces", "log    info   hi", core.Input{Name: "log", Args: []string{"info", "hi"}}},
		{"mixed case args", "Log INFO Hello", core.Input{Name: "log", Args: []string{"info", "hello"}}},
		{"order kept", "x 3 1 2", core.Input{Name: "x", Args: []string{"3", "1", "2"}}},
		{"tabs separate", "help\tquit", core.Input{Name: "help", Args: []string{"quit"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParse_Properties(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"a",
		"  A  B  ",
		"help    me     now",
		"\tquit\t",
		"x" + strings.Repeat(" ", 50) + "y",
		"ÄBC déf",
		"a  \t  b",
	}

	for _, raw := range inputs {
		got := Parse(raw)

		fields := strings.Fields(strings.TrimSpace(raw))
		wantName := ""
		if len(fields) > 0 {
			wantName = strings.ToLower(fields[0])
		}
		if got.Name != wantName {
			t.Errorf("Parse(%q).Name = %q, want %q", raw, got.Name, wantName)
		}

		for _, arg := range got.Args {
			if arg == "" {
				t.Errorf("Parse(%q) produced an empty argument: %q", raw, got.Args)
			}
		}

		if diff := cmp.Diff(got, Parse(raw)); diff != "" {
			t.Errorf("Parse(%q) is not deterministic:\n%s", raw, diff)
		}
	}
}
