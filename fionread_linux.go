package rawterm

import "golang.org/x/sys/unix"

// fionread is the ioctl that reports how many bytes can be read without blocking
const fionread = unix.TIOCINQ
