// Package console writes labeled, colored operator-facing lines.
//
// Every call styles its own text and resets the color when it is done, so no
// terminal color state outlives a single write.
package console

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const clockFormat = "15:04:05"

type Console struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	color    bool
	now      func() time.Time
}

type Option func(*Console)

// WithColor turns styling on or off. Styling is on by default.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		c.color = enabled
	}
}

// WithRenderer sets the renderer used to detect the color profile. It is
// needed when out is a wrapper around the terminal rather than the terminal.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(c *Console) {
		c.renderer = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

func New(out io.Writer, opts ...Option) *Console {
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:   out,
		color: true,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = lipgloss.NewRenderer(out)
	}
	return c
}

// API logs messages coming from an external API.
func (c *Console) API(msg string, color ...Color) {
	c.write(labeled("API", msg), pick(color, Gray), true)
}

// Write writes msg without a trailing newline.
func (c *Console) Write(msg string, color ...Color) {
	c.write(msg, pick(color, ""), false)
}

func (c *Console) WriteLine(msg string, color ...Color) {
	c.write(msg, pick(color, ""), true)
}

// Custom writes msg under an arbitrary label. Labels of up to five
// characters keep the columns aligned with the built-in ones.
func (c *Console) Custom(label, msg string, color ...Color) {
	c.write(labeled(strings.ToUpper(label), msg), pick(color, Gray), true)
}

func (c *Console) Info(msg string, color ...Color) {
	c.write(labeled("INFO", msg), pick(color, Blue), true)
}

func (c *Console) Debug(msg string, color ...Color) {
	c.write(labeled("DEBUG", c.stamp()+" "+msg), pick(color, Magenta), true)
}

// NonCriticalWarn is a warning about something that is probably not a problem.
func (c *Console) NonCriticalWarn(msg string, color ...Color) {
	c.write(labeled("WARN", msg), pick(color, Yellow), true)
}

// Warning is a warning about something that may be causing a fault. The
// name of the calling function is appended.
func (c *Console) Warning(msg string, color ...Color) {
	line := fmt.Sprintf("%s %s at %s", c.stamp(), msg, callerName(2))
	c.write(labeled("WARN", line), pick(color, Yellow), true)
}

// Error logs a handled error. The name of the calling function is appended.
func (c *Console) Error(msg string, color ...Color) {
	line := fmt.Sprintf("%s %s at %s", c.stamp(), msg, callerName(2))
	c.write(labeled("ERROR", line), pick(color, Red), true)
}

func (c *Console) stamp() string {
	return c.now().Format(clockFormat)
}

func (c *Console) write(text string, color Color, newline bool) {
	if c.color && color != "" {
		text = c.renderer.NewStyle().
			Foreground(color.lipgloss()).
			TabWidth(lipgloss.NoTabConversion).
			Render(text)
	}
	if newline {
		text += "\n"
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.out, text)
}

func labeled(label, msg string) string {
	return fmt.Sprintf("[ %s\t] - %s", label, msg)
}

// callerName returns the bare function name skip frames above its caller.
// Closures and method value wrappers are passed over in favor of the
// function that holds them.
func callerName(skip int) string {
	pcs := make([]uintptr, 8)
	n := runtime.Callers(skip+1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if name := shortName(frame.Function); name != "" && !isAnonymous(name) {
			return name
		}
		if !more {
			return "unknown"
		}
	}
}

func shortName(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// isAnonymous reports names like func3, the 2 of func1.2, or Warning-fm.
func isAnonymous(name string) bool {
	if strings.HasSuffix(name, "-fm") {
		return true
	}
	rest := strings.TrimPrefix(name, "func")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
