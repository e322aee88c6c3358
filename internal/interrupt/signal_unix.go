//go:build !windows

package interrupt

import (
	"os"
	"syscall"
)

var signals = []os.Signal{syscall.SIGINT}
