// Package picker asks the user for the logger file when none was given on
// the command line.
package picker

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// Picker returns the path of the file to analyse.
type Picker interface {
	Pick() (string, error)
}

var (
	// ErrNoTerminal is returned when stdin can't be used to ask the user.
	ErrNoTerminal = errors.New("no file given and stdin is not a terminal")
	// ErrCancelled is returned when the user entered nothing.
	ErrCancelled = errors.New("no file selected")
)

// Prompt lists the matching files of a directory and reads the choice from
// In. The user can type the number of a listed file or any path.
type Prompt struct {
	Dir  string
	Exts []string
	In   io.Reader
	Out  io.Writer
}

// NewPrompt creates a prompt rooted at the home directory, on stdin/stdout.
func NewPrompt(exts ...string) (*Prompt, error) {
	if !terminal.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNoTerminal
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	return &Prompt{
		Dir:  home,
		Exts: exts,
		In:   os.Stdin,
		Out:  os.Stdout,
	}, nil
}

// Candidates returns the files of Dir having one of the extensions.
func (p *Prompt) Candidates() ([]string, error) {
	entries, err := ioutil.ReadDir(p.Dir)
	if err != nil {
		return nil, err
	}

	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		for _, ext := range p.Exts {
			if strings.HasSuffix(e.Name(), ext) {
				files = append(files, e.Name())
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// Pick asks for the file.
func (p *Prompt) Pick() (string, error) {
	files, err := p.Candidates()
	if err != nil {
		return "", err
	}

	fmt.Fprintf(p.Out, "Select GPS file (%s) in %s:\n", strings.Join(p.Exts, ", "), p.Dir)
	for i, f := range files {
		fmt.Fprintf(p.Out, "    (%d) %s\n", i+1, f)
	}
	fmt.Fprint(p.Out, "File number or path: ")

	input := bufio.NewScanner(p.In)
	input.Scan()
	if err := input.Err(); err != nil {
		return "", err
	}
	choice := strings.TrimSpace(input.Text())
	if choice == "" {
		return "", ErrCancelled
	}

	if n, err := strconv.Atoi(choice); err == nil {
		if n < 1 || n > len(files) {
			return "", fmt.Errorf("no file number %d", n)
		}
		return filepath.Join(p.Dir, files[n-1]), nil
	}

	if strings.HasPrefix(choice, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, choice[2:]), nil
	}
	if !filepath.IsAbs(choice) {
		return filepath.Join(p.Dir, choice), nil
	}
	return choice, nil
}
