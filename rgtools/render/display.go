package render

import (
	"github.com/cli/browser"
)

// Displayer shows a rendered page to the user.
type Displayer interface {
	Display(path string) error
}

// Browser opens pages in the default web browser without waiting for it.
type Browser struct{}

// Display opens path in the browser
func (Browser) Display(path string) error {
	return browser.OpenFile(path)
}

// Discard never shows anything.
type Discard struct{}

// Display does nothing
func (Discard) Display(string) error { return nil }
