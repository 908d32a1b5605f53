// Package lists stores named candidate lists in a YAML file.
package lists

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"go.seanlatimer.dev/pick/internal/picker"
	"gopkg.in/yaml.v3"
)

// ErrNoItems is returned when a list would be saved without any items.
var ErrNoItems = errors.New("list has no items")

type List struct {
	Name    string   `yaml:"name"`
	Items   []string `yaml:"items"`
	Created string   `yaml:"created"`
	Updated string   `yaml:"updated"`
}

// Store is the on-disk document. List names are unique ignoring case.
type Store struct {
	Lists []List `yaml:"lists"`
}

func (s Store) index(name string) int {
	name = strings.TrimSpace(name)
	return slices.IndexFunc(s.Lists, func(l List) bool {
		return strings.EqualFold(l.Name, name)
	})
}

// Find returns the list called name, ignoring case.
func (s Store) Find(name string) (List, bool) {
	if i := s.index(name); i >= 0 {
		return s.Lists[i], true
	}
	return List{}, false
}

func LoadLists(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return Store{}, fmt.Errorf("read lists: %w", err)
	}

	var store Store
	if err := yaml.Unmarshal(data, &store); err != nil {
		return Store{}, fmt.Errorf("parse lists: %w", err)
	}
	return store, nil
}

func SaveLists(path string, store Store) error {
	data, err := yaml.Marshal(store)
	if err != nil {
		return fmt.Errorf("marshal lists: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write lists: %w", err)
	}
	return nil
}

// modify loads the store at path, applies fn and writes the result back.
// Nothing is written when fn fails.
func modify(path string, fn func(*Store) error) error {
	store, err := LoadLists(path)
	if err != nil {
		return err
	}
	if err := fn(&store); err != nil {
		return err
	}
	return SaveLists(path, store)
}

// cleanItems drops blanks and repeats the same way candidates are collected.
func cleanItems(items []string) ([]string, error) {
	items = picker.Dedupe(items)
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func FindList(path, name string) (List, bool, error) {
	store, err := LoadLists(path)
	if err != nil {
		return List{}, false, err
	}
	list, found := store.Find(name)
	return list, found, nil
}

// CreateList adds a new list and returns it as stored.
func CreateList(path, name string, items []string) (List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return List{}, fmt.Errorf("list name is required")
	}
	items, err := cleanItems(items)
	if err != nil {
		return List{}, fmt.Errorf("create %s: %w", name, err)
	}

	now := timestamp()
	created := List{Name: name, Items: items, Created: now, Updated: now}
	err = modify(path, func(s *Store) error {
		if s.index(name) >= 0 {
			return fmt.Errorf("list already exists: %s", name)
		}
		s.Lists = append(s.Lists, created)
		return nil
	})
	if err != nil {
		return List{}, err
	}
	return created, nil
}

// UpdateList replaces the items of an existing list and returns it as stored.
func UpdateList(path, name string, items []string) (List, error) {
	var updated List
	err := modify(path, func(s *Store) error {
		i := s.index(name)
		if i < 0 {
			return fmt.Errorf("list not found: %s", name)
		}
		cleaned, err := cleanItems(items)
		if err != nil {
			return fmt.Errorf("update %s: %w", s.Lists[i].Name, err)
		}
		s.Lists[i].Items = cleaned
		s.Lists[i].Updated = timestamp()
		updated = s.Lists[i]
		return nil
	})
	return updated, err
}

func DeleteList(path, name string) error {
	return modify(path, func(s *Store) error {
		i := s.index(name)
		if i < 0 {
			return fmt.Errorf("list not found: %s", name)
		}
		s.Lists = slices.Delete(s.Lists, i, i+1)
		return nil
	})
}

func ListLists(path string) ([]List, error) {
	store, err := LoadLists(path)
	if err != nil {
		return nil, err
	}
	return store.Lists, nil
}
