//go:build debug

package fortune

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[fortune DEBUG] ", log.LstdFlags)

func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
