package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath string `env:"PLUTO_RUNTIME_PATH" envDefault:".pluto"`

	// Loop
	Prompt      string `env:"PLUTO_PROMPT" envDefault:"> "`
	QuitKeyword string `env:"PLUTO_QUIT_KEYWORD,notEmpty" envDefault:"quit"`
	ExitOnEOF   bool   `env:"PLUTO_EXIT_ON_EOF" envDefault:"false"`

	// Output
	NoColor bool `env:"PLUTO_NO_COLOR" envDefault:"false"`
	Debug   bool `env:"PLUTO_DEBUG" envDefault:"false"`
}

// ParseAppConfig reads the config from the environment and normalizes it.
func ParseAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}

	c.QuitKeyword = strings.ToLower(strings.TrimSpace(c.QuitKeyword))
	if c.QuitKeyword == "" || strings.ContainsFunc(c.QuitKeyword, unicode.IsSpace) {
		return nil, fmt.Errorf("PLUTO_QUIT_KEYWORD must be a single word, got %q", c.QuitKeyword)
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (c AppConfig) GetPrompt() string {
	return c.Prompt
}

func (c AppConfig) GetQuitKeyword() string {
	return c.QuitKeyword
}

func (c AppConfig) IsExitOnEOF() bool {
	return c.ExitOnEOF
}

func (c AppConfig) IsColorEnabled() bool {
	return !c.NoColor
}

func (c AppConfig) IsDebug() bool {
	return c.Debug
}
