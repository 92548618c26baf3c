package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LookupByNameAndAlias(t *testing.T) {
	r := NewRegistry()
	echo := &stubCommand{name: "Echo", aliases: []string{"E", "say"}}
	require.NoError(t, r.Register(echo))

	for _, key := range []string{"echo", "e", "say"} {
		cmd, ok := r.Lookup(key)
		assert.True(t, ok, key)
		assert.Same(t, echo, cmd)
	}

	_, ok := r.Lookup("Echo")
	assert.False(t, ok, "lookups expect lowercase tokens")

	_, ok = r.Lookup("")
	assert.False(t, ok)
}

func TestRegistry_RejectsCollisions(t *testing.T) {
	tests := []struct {
		name string
		cmd  *stubCommand
	}{
		{"same name", &stubCommand{name: "echo"}},
		{"alias hits name", &stubCommand{name: "other", aliases: []string{"echo"}}},
		{"name hits alias", &stubCommand{name: "say"}},
		{"alias repeated", &stubCommand{name: "fresh", aliases: []string{"f", "f"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, r.Register(&stubCommand{name: "echo", aliases: []string{"say"}}))

			err := r.Register(tt.cmd)

			assert.ErrorIs(t, err, ErrDuplicateCommand)
			assert.Len(t, r.List(), 1)
		})
	}
}

func TestRegistry_RejectsEmptyKeys(t *testing.T) {
	r := NewRegistry()

	assert.Error(t, r.Register(&stubCommand{name: "  "}))
	assert.Error(t, r.Register(&stubCommand{name: "ok", aliases: []string{""}}))
	assert.Empty(t, r.List())
}

func TestRegistry_ListIsSortedAndUnique(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "zeta", aliases: []string{"z"}}))
	require.NoError(t, r.Register(&stubCommand{name: "alpha", aliases: []string{"a", "al"}}))

	list := r.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name())
	assert.Equal(t, "zeta", list[1].Name())
}
