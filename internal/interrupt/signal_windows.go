//go:build windows

package interrupt

import "os"

// os.Interrupt is delivered for CTRL_C_EVENT from the console.
var signals = []os.Signal{os.Interrupt}
