package picker

import (
	"errors"
	"os"

	"github.com/ncruces/zenity"
)

// Dialog shows the native file selection dialog of the desktop.
type Dialog struct {
	Title string
	Dir   string
	Exts  []string

	// Fallback is used when no dialog can be shown, e.g. without a desktop
	// session. Nil means no fallback.
	Fallback func() (Picker, error)

	selectFile func(options ...zenity.Option) (string, error)
}

// NewDialog creates a dialog rooted at the home directory, falling back to
// the terminal prompt.
func NewDialog(exts ...string) (*Dialog, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Dialog{
		Title: "Select GPS file",
		Dir:   home,
		Exts:  exts,
		Fallback: func() (Picker, error) {
			p, err := NewPrompt(exts...)
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		selectFile: zenity.SelectFile,
	}, nil
}

// Filters returns the dialog filter for the extensions
func (d *Dialog) Filters() zenity.FileFilters {
	patterns := make([]string, len(d.Exts))
	for i, ext := range d.Exts {
		patterns[i] = "*" + ext
	}
	return zenity.FileFilters{{Name: "gps files", Patterns: patterns}}
}

// Pick shows the dialog and blocks until the user chose a file.
func (d *Dialog) Pick() (string, error) {
	path, err := d.selectFile(
		zenity.Title(d.Title),
		zenity.Filename(d.Dir+string(os.PathSeparator)),
		d.Filters(),
	)
	switch {
	case err == nil:
		return path, nil
	case errors.Is(err, zenity.ErrCanceled):
		return "", ErrCancelled
	case d.Fallback == nil:
		return "", err
	}

	p, ferr := d.Fallback()
	if ferr != nil {
		return "", ferr
	}
	return p.Pick()
}
