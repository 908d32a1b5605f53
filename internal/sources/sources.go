// Package sources supplies picker candidates from arguments, files, named
// lists, directory trees and git repositories.
package sources

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.seanlatimer.dev/pick/internal/lists"
	"go.seanlatimer.dev/pick/internal/picker"
)

type Source interface {
	Candidates() ([]string, error)
}

// Collect concatenates the candidates of every source in order, keeping the
// first occurrence of each label.
func Collect(srcs ...Source) ([]string, error) {
	var all []string
	for _, src := range srcs {
		items, err := src.Candidates()
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
	}
	return picker.Dedupe(all), nil
}

// Args is a literal candidate list.
type Args []string

func (a Args) Candidates() ([]string, error) {
	return []string(a), nil
}

// Reader reads one candidate per line.
type Reader struct {
	R io.Reader
}

func (r Reader) Candidates() ([]string, error) {
	return ReadLines(r.R)
}

type File struct {
	Path string
}

func (f File) Candidates() ([]string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open candidates: %w", err)
	}
	defer file.Close()

	items, err := ReadLines(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return items, nil
}

// List reads a named list from the store at Path.
type List struct {
	Path string
	Name string
}

func (l List) Candidates() ([]string, error) {
	list, found, err := lists.FindList(l.Path, l.Name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("list not found: %s", l.Name)
	}
	return list.Items, nil
}

// ReadLines splits r into trimmed non-empty lines. CRLF endings are accepted.
func ReadLines(r io.Reader) ([]string, error) {
	var items []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		items = append(items, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return items, nil
}
