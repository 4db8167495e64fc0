// Package autostart registers the overlay to launch at login.
// Only Windows is supported; other platforms report ErrUnsupported.
package autostart

import "errors"

// ErrUnsupported is returned on platforms without login-item support.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

const appName = "AIJapaneseInput"

// Enable registers execPath to run at login.
func Enable(execPath string) error {
	return enable(execPath)
}

// Disable removes the login entry. Removing an absent entry is not an error.
func Disable() error {
	return disable()
}

// Enabled reports whether a login entry exists.
func Enabled() (bool, error) {
	return enabled()
}
