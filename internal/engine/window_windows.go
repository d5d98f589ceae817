//go:build windows

package engine

import (
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaCaptionColor         = 35
)

// applyPlatformStyle gives the window a dark caption.
func applyPlatformStyle(win *glfw.Window) {
	hwnd := uintptr(unsafe.Pointer(win.GetWin32Window()))
	if hwnd == 0 {
		return
	}
	var dark int32 = 1
	setWindowAttribute(hwnd, dwmwaUseImmersiveDarkMode, unsafe.Pointer(&dark), unsafe.Sizeof(dark))

	var caption uint32 = 0x00202020
	setWindowAttribute(hwnd, dwmwaCaptionColor, unsafe.Pointer(&caption), unsafe.Sizeof(caption))
}

func setWindowAttribute(hwnd, attr uintptr, value unsafe.Pointer, size uintptr) {
	procDwmSetWindowAttribute.Call(hwnd, attr, uintptr(value), size)
}
