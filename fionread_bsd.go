//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package rawterm

// fionread is FIONREAD, _IOR('f', 127, int), which x/sys/unix does not export
const fionread = 0x4004667f
