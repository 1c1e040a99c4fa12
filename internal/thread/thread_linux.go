//go:build linux

package thread

import "golang.org/x/sys/unix"

const supported = true

func current() uint64 { return uint64(unix.Gettid()) }
