//go:build windows

// Package win implements the platform backends for Windows, where the SAP
// GUI runs as saplogon.exe and is launched through the sapshcut.exe shortcut
// tool. Window enumeration and input injection go through user32 directly;
// no cgo is involved.
package win
