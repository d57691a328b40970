//go:build debug

package dcel

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[dcel DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
