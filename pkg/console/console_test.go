package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newPlain(buf *bytes.Buffer) *Console {
	fixed := time.Date(2024, 3, 1, 9, 5, 7, 123000000, time.UTC)
	return New(buf, WithColor(false), WithClock(func() time.Time { return fixed }))
}

func TestConsole_LabeledLines(t *testing.T) {
	var buf bytes.Buffer
	c := newPlain(&buf)

	c.Info("ready")
	c.API("rate limited")
	c.NonCriticalWarn("slow disk")
	c.Custom("net", "connected")
	c.Debug("tick")

	want := []string{
		"[ INFO\t] - ready",
		"[ API\t] - rate limited",
		"[ WARN\t] - slow disk",
		"[ NET\t] - connected",
		"[ DEBUG\t] - 09:05:07 tick",
	}
	assert.Equal(t, want, strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"))
}

func TestConsole_WarningAndErrorNameTheCaller(t *testing.T) {
	var buf bytes.Buffer
	c := newPlain(&buf)

	c.Warning("low memory")
	c.Error("write failed")

	out := buf.String()
	assert.Contains(t, out, "[ WARN\t] - 09:05:07 low memory at TestConsole_WarningAndErrorNameTheCaller\n")
	assert.Contains(t, out, "[ ERROR\t] - 09:05:07 write failed at TestConsole_WarningAndErrorNameTheCaller\n")
}

func TestConsole_CallerSkipsClosuresAndMethodValues(t *testing.T) {
	var buf bytes.Buffer
	c := newPlain(&buf)

	warn := func(msg string) { c.Warning(msg) }
	warn("from closure")
	fail := c.Error
	fail("from method value")

	out := buf.String()
	assert.Contains(t, out, "from closure at TestConsole_CallerSkipsClosuresAndMethodValues\n")
	assert.Contains(t, out, "from method value at TestConsole_CallerSkipsClosuresAndMethodValues\n")
}

func TestIsAnonymous(t *testing.T) {
	for name, want := range map[string]bool{
		"func3":      true,
		"2":          true,
		"Warning-fm": true,
		"Execute":    false,
		"func":       false,
		"funcName":   false,
	} {
		assert.Equal(t, want, isAnonymous(name), name)
	}
}

func TestConsole_WriteHasNoNewline(t *testing.T) {
	var buf bytes.Buffer
	c := newPlain(&buf)

	c.Write("a")
	c.Write("b", Red)
	c.WriteLine("c")

	assert.Equal(t, "abc\n", buf.String())
}

func TestConsole_ColorDisabledLeavesTextUntouched(t *testing.T) {
	var buf bytes.Buffer
	c := newPlain(&buf)

	c.Info("plain", Green)

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPick(t *testing.T) {
	assert.Equal(t, Blue, pick(nil, Blue))
	assert.Equal(t, Red, pick([]Color{Red}, Blue))
	assert.Equal(t, Blue, pick([]Color{""}, Blue))
}
