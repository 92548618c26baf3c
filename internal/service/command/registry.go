package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/pluto/internal/core"
)

var ErrDuplicateCommand = errors.New("command already registered")

// Registry maps command names and aliases to commands. It is filled once at
// startup and only read afterwards.
type Registry struct {
	commands map[string]core.Command
	primary  map[string]core.Command
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]core.Command),
		primary:  make(map[string]core.Command),
	}
}

// Register adds cmd under its name and every alias. Nothing is added when
// any of those keys is already taken.
func (r *Registry) Register(cmd core.Command) error {
	name := strings.ToLower(strings.TrimSpace(cmd.Name()))
	if name == "" {
		return fmt.Errorf("command %T has an empty name", cmd)
	}

	keys := []string{name}
	for _, alias := range cmd.Aliases() {
		keys = append(keys, strings.ToLower(strings.TrimSpace(alias)))
	}

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf("command %q has an empty alias", name)
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q repeated by %q", ErrDuplicateCommand, key, name)
		}
		if existing, ok := r.commands[key]; ok {
			return fmt.Errorf("%w: %q is taken by %q", ErrDuplicateCommand, key, existing.Name())
		}
		seen[key] = struct{}{}
	}

	for _, key := range keys {
		r.commands[key] = cmd
	}
	r.primary[name] = cmd
	return nil
}

func (r *Registry) Lookup(name string) (core.Command, bool) {
	if name == "" {
		return nil, false
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns each command once, sorted by name.
func (r *Registry) List() []core.Command {
	names := make([]string, 0, len(r.primary))
	for name := range r.primary {
		names = append(names, name)
	}
	sort.Strings(names)

	res := make([]core.Command, 0, len(names))
	for _, name := range names {
		res = append(res, r.primary[name])
	}
	return res
}
