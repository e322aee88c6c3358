// Package util provides small shared helpers: logging of non-fatal errors
// and terminal probing.
package util

import (
	"io"
	"log"

	"github.com/akyairhashvil/sleepbar/internal/config"
)

// ConfigureLogging routes the standard logger to w with the program name as
// prefix and no timestamps.
func ConfigureLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetPrefix(config.AppName + ": ")
	log.SetFlags(0)
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}
