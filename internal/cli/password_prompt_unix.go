//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package cli

import (
	"os"

	"golang.org/x/sys/unix"
)

func withEchoDisabled(stdin *os.File, read func() error) error {
	fd := int(stdin.Fd())
	termios, err := unix.IoctlGetTermios(fd, termiosGet)
	if err != nil {
		return err
	}
	original := *termios
	silent := original
	silent.Lflag &^= unix.ECHO

	if err := unix.IoctlSetTermios(fd, termiosSet, &silent); err != nil {
		return err
	}
	defer func() {
		_ = unix.IoctlSetTermios(fd, termiosSet, &original)
	}()
	return read()
}
