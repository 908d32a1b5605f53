package cli

import (
	"testing"

	"go.seanlatimer.dev/pick/testutil"
)

func TestFilterCommand(t *testing.T) {
	testutil.SetConfigHome(t)

	tests := []struct {
		name     string
		stdin    string
		args     []string
		want     string
		wantCode int
	}{
		{
			name: "substring matches in order",
			args: []string{"filter", "Wa", "Idle", "Walk", "WalkFast", "Run"},
			want: "Walk\nWalkFast\n",
		},
		{
			name: "case insensitive",
			args: []string{"filter", "RUN", "Idle", "Walk", "WalkFast", "Run"},
			want: "Run\n",
		},
		{
			name: "empty query keeps all",
			args: []string{"filter", "", "Idle", "Walk"},
			want: "Idle\nWalk\n",
		},
		{
			name: "first match only",
			args: []string{"filter", "--first", "wa", "Idle", "Walk", "WalkFast"},
			want: "Walk\n",
		},
		{
			name: "fuzzy mode",
			args: []string{"filter", "--match", "fuzzy", "wf", "Idle", "Walk", "WalkFast"},
			want: "WalkFast\n",
		},
		{
			name:  "piped stdin",
			stdin: "Idle\nWalk\nRun\n",
			args:  []string{"filter", "l"},
			want:  "Idle\nWalk\n",
		},
		{
			name:     "no match",
			args:     []string{"filter", "xyz", "Idle", "Walk", "WalkFast", "Run"},
			wantCode: exitNoMatch,
		},
		{
			name:     "no match with first",
			args:     []string{"filter", "--first", "xyz", "Idle"},
			wantCode: exitNoMatch,
		},
		{
			name:     "no candidates",
			args:     []string{"filter", "wa"},
			wantCode: exitNoCandidates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runRoot(t, tt.stdin, tt.args...)
			if tt.wantCode != 0 {
				if code := exitCode(t, err); code != tt.wantCode {
					t.Errorf("filter exit code = %d, want %d", code, tt.wantCode)
				}
				if stdout != "" {
					t.Errorf("filter stdout = %q, want empty", stdout)
				}
				return
			}
			if err != nil {
				t.Fatalf("filter error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("filter stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestFilterCommandFromFile(t *testing.T) {
	testutil.SetConfigHome(t)
	file := testutil.WriteLines(t, t.TempDir(), "clips.txt", []string{"Idle", "Walk", "Run"})

	stdout, _, err := runRoot(t, "", "filter", "-f", file, "un")
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}
	if stdout != "Run\n" {
		t.Errorf("filter stdout = %q, want %q", stdout, "Run\n")
	}
}

func TestFilterCommandWalk(t *testing.T) {
	testutil.SetConfigHome(t)
	root := testutil.CreateTree(t, "clips/Walk.anim", "clips/Run.anim", "README.md")

	stdout, _, err := runRoot(t, "", "filter", "--walk", root, "--suffix", ".anim", "run")
	if err != nil {
		t.Fatalf("filter error = %v", err)
	}
	if stdout != "clips/Run.anim\n" {
		t.Errorf("filter stdout = %q, want %q", stdout, "clips/Run.anim\n")
	}
}

func TestFilterCommandRequiresQuery(t *testing.T) {
	testutil.SetConfigHome(t)

	if _, _, err := runRoot(t, "", "filter"); err == nil {
		t.Error("filter command expected error for missing query, got nil")
	}
}
