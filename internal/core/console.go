package core

import "github.com/sandevgo/pluto/pkg/console"

// Printer is the part of the console the loop and router need.
type Printer interface {
	WriteLine(msg string, color ...console.Color)
	Info(msg string, color ...console.Color)
	NonCriticalWarn(msg string, color ...console.Color)
}

type Console interface {
	Printer
	API(msg string, color ...console.Color)
	Write(msg string, color ...console.Color)
	Custom(label, msg string, color ...console.Color)
	Debug(msg string, color ...console.Color)
	Warning(msg string, color ...console.Color)
	Error(msg string, color ...console.Color)
}
