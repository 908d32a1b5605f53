// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SetConfigHome points the XDG config dir at a fresh temp dir for the test.
func SetConfigHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	original := xdg.ConfigHome
	xdg.ConfigHome = tmpDir
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Cleanup(func() {
		xdg.ConfigHome = original
	})
	return tmpDir
}

// WriteLines writes one candidate per line into dir/name and returns the path.
func WriteLines(t *testing.T, dir, name string, lines []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CreateTree creates empty files at the given slash-separated paths under a
// temp dir and returns the root.
func CreateTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root
}

// CreateTestRepo initializes a git repository with one commit on master and
// the given extra branches and lightweight tags pointing at it.
func CreateTestRepo(t *testing.T, branches, tags []string) (string, error) {
	t.Helper()
	repoPath := t.TempDir()

	repo, err := git.PlainInit(repoPath, false)
	if err != nil {
		return "", fmt.Errorf("failed to init git repo: %w", err)
	}

	testFile := filepath.Join(repoPath, "clips.txt")
	if err := os.WriteFile(testFile, []byte("Idle\nWalk\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write test file: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	if _, err := wt.Add("clips.txt"); err != nil {
		return "", fmt.Errorf("failed to add file: %w", err)
	}

	hash, err := wt.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Unix(1700000000, 0).UTC(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	for _, name := range branches {
		ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), hash)
		if err := repo.Storer.SetReference(ref); err != nil {
			return "", fmt.Errorf("failed to create branch %s: %w", name, err)
		}
	}
	for _, name := range tags {
		if _, err := repo.CreateTag(name, hash, nil); err != nil {
			return "", fmt.Errorf("failed to create tag %s: %w", name, err)
		}
	}

	return repoPath, nil
}

// CheckCommandOutput verifies that command output contains expected strings.
func CheckCommandOutput(output string, expected ...string) error {
	for _, exp := range expected {
		if !strings.Contains(output, exp) {
			return fmt.Errorf("output does not contain expected string: %q", exp)
		}
	}
	return nil
}
