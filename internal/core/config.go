package core

type LoopConfig interface {
	GetPrompt() string
	GetQuitKeyword() string
	IsExitOnEOF() bool
}

type AppConfig interface {
	LoopConfig
	GetRuntimePath() string
	GetEnvPath() string
	IsColorEnabled() bool
	IsDebug() bool
}
