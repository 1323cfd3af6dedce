package internal

import (
	"fmt"
	"os"
)

// Set to trace insertions on stderr.
var Debug = false

func debugf(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
