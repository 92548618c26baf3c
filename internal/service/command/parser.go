package command

import (
	"strings"

	"github.com/sandevgo/pluto/internal/core"
)

// Parse splits a raw operator line into a lowercase command token and its
// arguments. A blank line yields an empty command token. Parse never fails.
func Parse(raw string) core.Input {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return core.Input{Name: "", Args: []string{}}
	}

	args := make([]string, 0, len(fields)-1)
	for _, f := range fields[1:] {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		args = append(args, f)
	}

	return core.Input{Name: fields[0], Args: args}
}
