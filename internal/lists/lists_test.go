package lists

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func newStorePath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lists.yaml")
	if err := os.WriteFile(path, []byte("lists: []\n"), 0o644); err != nil {
		t.Fatalf("failed to create lists file: %v", err)
	}
	return path
}

func TestLoadListsMissingFile(t *testing.T) {
	store, err := LoadLists(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadLists() error = %v", err)
	}
	if len(store.Lists) != 0 {
		t.Errorf("LoadLists() = %d lists, want 0", len(store.Lists))
	}
}

func TestLoadListsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.yaml")
	if err := os.WriteFile(path, []byte("lists: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("failed to write lists file: %v", err)
	}

	_, err := LoadLists(path)
	if err == nil {
		t.Fatal("LoadLists() expected error for invalid YAML, got nil")
	}
	if !strings.Contains(err.Error(), "parse lists") {
		t.Errorf("LoadLists() error = %v, want parse lists error", err)
	}
}

func TestListLifecycle(t *testing.T) {
	path := newStorePath(t)

	if _, err := CreateList(path, "Locomotion", []string{"Idle", "Walk", "Run"}); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	list, found, err := FindList(path, "locomotion")
	if err != nil {
		t.Fatalf("FindList() error = %v", err)
	}
	if !found {
		t.Fatal("FindList() should find list case-insensitively")
	}
	if len(list.Items) != 3 || list.Items[1] != "Walk" {
		t.Errorf("FindList() items = %v, want [Idle Walk Run]", list.Items)
	}
	if _, err := time.Parse(time.RFC3339, list.Created); err != nil {
		t.Errorf("FindList() Created = %q, not RFC3339: %v", list.Created, err)
	}

	updated, err := UpdateList(path, "LOCOMOTION", []string{"Sprint"})
	if err != nil {
		t.Fatalf("UpdateList() error = %v", err)
	}
	if updated.Name != "Locomotion" {
		t.Errorf("UpdateList() name = %q, want stored name Locomotion", updated.Name)
	}
	list, _, err = FindList(path, "Locomotion")
	if err != nil {
		t.Fatalf("FindList() error = %v", err)
	}
	if len(list.Items) != 1 || list.Items[0] != "Sprint" {
		t.Errorf("UpdateList() items = %v, want [Sprint]", list.Items)
	}

	all, err := ListLists(path)
	if err != nil {
		t.Fatalf("ListLists() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("ListLists() = %d lists, want 1", len(all))
	}

	if err := DeleteList(path, "locomotion"); err != nil {
		t.Fatalf("DeleteList() error = %v", err)
	}
	if _, found, _ := FindList(path, "Locomotion"); found {
		t.Error("DeleteList() list still present")
	}
}

func TestCreateListErrors(t *testing.T) {
	path := newStorePath(t)

	if _, err := CreateList(path, "  ", []string{"Idle"}); err == nil {
		t.Error("CreateList() expected error for empty name")
	}

	if _, err := CreateList(path, "Clips", []string{"Idle"}); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	_, err := CreateList(path, "clips", []string{"Walk"})
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("CreateList() duplicate error = %v, want already exists", err)
	}
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	path := newStorePath(t)

	if _, err := UpdateList(path, "nope", nil); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("UpdateList() error = %v, want not found", err)
	}
	if err := DeleteList(path, "nope"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("DeleteList() error = %v, want not found", err)
	}
}

func TestSaveListsYAMLFormat(t *testing.T) {
	path := newStorePath(t)

	if _, err := CreateList(path, "Clips", []string{"Idle", "Walk"}); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read lists file: %v", err)
	}

	var raw map[string][]map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("lists file is not valid YAML: %v", err)
	}
	entries := raw["lists"]
	if len(entries) != 1 {
		t.Fatalf("lists file has %d entries, want 1", len(entries))
	}
	if entries[0]["name"] != "Clips" {
		t.Errorf("lists file name = %v, want Clips", entries[0]["name"])
	}
}

func TestListItemsAreCleaned(t *testing.T) {
	path := newStorePath(t)

	created, err := CreateList(path, " Clips ", []string{"Idle", "", "Walk", "Idle", "Run", "Walk"})
	if err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if created.Name != "Clips" {
		t.Errorf("CreateList() name = %q, want trimmed Clips", created.Name)
	}
	if got := strings.Join(created.Items, ","); got != "Idle,Walk,Run" {
		t.Errorf("CreateList() items = %v, want [Idle Walk Run]", created.Items)
	}

	updated, err := UpdateList(path, "clips", []string{"Sprint", "Sprint", "Jump"})
	if err != nil {
		t.Fatalf("UpdateList() error = %v", err)
	}
	if got := strings.Join(updated.Items, ","); got != "Sprint,Jump" {
		t.Errorf("UpdateList() items = %v, want [Sprint Jump]", updated.Items)
	}

	stored, _, err := FindList(path, "Clips")
	if err != nil {
		t.Fatalf("FindList() error = %v", err)
	}
	if got := strings.Join(stored.Items, ","); got != "Sprint,Jump" {
		t.Errorf("stored items = %v, want [Sprint Jump]", stored.Items)
	}
}

func TestListWithoutItemsIsRejected(t *testing.T) {
	path := newStorePath(t)

	if _, err := CreateList(path, "Empty", []string{"", ""}); !errors.Is(err, ErrNoItems) {
		t.Errorf("CreateList() error = %v, want ErrNoItems", err)
	}
	if _, found, _ := FindList(path, "Empty"); found {
		t.Error("CreateList() saved a list without items")
	}

	if _, err := CreateList(path, "Clips", []string{"Idle"}); err != nil {
		t.Fatalf("CreateList() error = %v", err)
	}
	if _, err := UpdateList(path, "Clips", nil); !errors.Is(err, ErrNoItems) {
		t.Errorf("UpdateList() error = %v, want ErrNoItems", err)
	}
	list, _, _ := FindList(path, "Clips")
	if len(list.Items) != 1 || list.Items[0] != "Idle" {
		t.Errorf("UpdateList() changed items on failure: %v", list.Items)
	}
}

func TestStoreFind(t *testing.T) {
	store := Store{Lists: []List{{Name: "Locomotion"}, {Name: "Combat"}}}

	if list, ok := store.Find(" combat "); !ok || list.Name != "Combat" {
		t.Errorf("Find() = %v, %v, want Combat", list, ok)
	}
	if _, ok := store.Find("Swim"); ok {
		t.Error("Find() found a missing list")
	}
}
