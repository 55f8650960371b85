//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package rawterm

import (
	"os"
	"os/signal"
	"syscall"
)

// NotifyResize relays terminal resize signals to sigChan.
// Call Size again when a signal arrives, sizes are never cached.
func NotifyResize(sigChan chan<- os.Signal) {
	signal.Notify(sigChan, syscall.SIGWINCH)
}

// StopResize stops relaying resize signals to sigChan
func StopResize(sigChan chan<- os.Signal) {
	signal.Stop(sigChan)
}
