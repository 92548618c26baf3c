package command

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ResponseFormatter struct {
	title cases.Caser
}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{
		title: cases.Title(language.English),
	}
}

// Summary renders the one-line description of a command, e.g.
// "Quit - Quits the program".
func (f *ResponseFormatter) Summary(name, description string) string {
	return fmt.Sprintf("%s - %s", f.title.String(name), description)
}

// Entry renders a command row of the general listing.
func (f *ResponseFormatter) Entry(name string, aliases []string, description string) string {
	if len(aliases) == 0 {
		return fmt.Sprintf("%-8s %s", name, description)
	}
	return fmt.Sprintf("%-8s %s (aliases: %s)", name, description, strings.Join(aliases, ", "))
}

func (f *ResponseFormatter) Label(label, value string) string {
	return fmt.Sprintf("%-12s › %s", label, value)
}
