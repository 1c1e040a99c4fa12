//go:build windows

package thread

import "golang.org/x/sys/windows"

const supported = true

func current() uint64 { return uint64(windows.GetCurrentThreadId()) }
