package config

import (
	"os"
	"strconv"
)

func IsDebug() bool {
	debug, _ := strconv.ParseBool(os.Getenv("PLUTO_DEBUG"))
	return debug
}
