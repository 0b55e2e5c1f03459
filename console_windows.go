//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleTitleW   = modkernel32.NewProc("SetConsoleTitleW")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procSetConsoleCP       = modkernel32.NewProc("SetConsoleCP")
)

// configureConsole switches the console to UTF-8 so the popup frames and
// the summary box render.
func configureConsole() {
	const cpUTF8 = 65001
	_, _, _ = procSetConsoleOutputCP.Call(uintptr(cpUTF8))
	_, _, _ = procSetConsoleCP.Call(uintptr(cpUTF8))
}

func setTerminalTitle(title string) {
	utf16, _ := syscall.UTF16PtrFromString(title)
	procSetConsoleTitleW.Call(uintptr(unsafe.Pointer(utf16)))
}
