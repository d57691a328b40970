//go:build !debug

package fortune

func logDebugf(format string, v ...interface{}) {}
