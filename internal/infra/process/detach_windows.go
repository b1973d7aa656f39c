//go:build windows

package process

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedAttr starts the child without a console and in its own process
// group so Ctrl+C in our console does not reach it.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
