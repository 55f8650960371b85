//go:build windows

package rawterm

import (
	"os"
)

// NotifyResize is a no-op on Windows
func NotifyResize(sigChan chan<- os.Signal) {
	// No-op on Windows
}

// StopResize is a no-op on Windows
func StopResize(sigChan chan<- os.Signal) {
	// No-op on Windows
}
