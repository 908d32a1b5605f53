package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"go.seanlatimer.dev/pick/internal/config"
	"go.seanlatimer.dev/pick/internal/picker"
	"go.seanlatimer.dev/pick/testutil"
)

func TestConfigSetPersists(t *testing.T) {
	testutil.SetConfigHome(t)

	stdout, _, err := runRoot(t, "", "config", "set", "match", "fuzzy")
	if err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if err := testutil.CheckCommandOutput(stdout, "Set match = fuzzy"); err != nil {
		t.Error(err)
	}
	if _, _, err := runRoot(t, "", "config", "set", "height", "4"); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Match != "fuzzy" || cfg.Height != 4 {
		t.Errorf("saved config = %+v, want match fuzzy and height 4", cfg)
	}

	call := stubPicker(t, "Walk", nil)
	if _, _, err := runRoot(t, "", "Idle", "Walk"); err != nil {
		t.Fatalf("pick error = %v", err)
	}
	if call.opts.Match != picker.MatchFuzzy || call.opts.Height != 4 {
		t.Errorf("picker options = %+v, want saved settings", call.opts)
	}
}

func TestConfigSetWithConfigFlag(t *testing.T) {
	testutil.SetConfigHome(t)
	path := filepath.Join(t.TempDir(), "pick.json")

	if _, _, err := runRoot(t, "", "--config", path, "config", "set", "title", "Clips"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	cfg, err := config.LoadConfigFrom(path)
	if err != nil {
		t.Fatalf("LoadConfigFrom() error = %v", err)
	}
	if cfg.Title != "Clips" {
		t.Errorf("saved title = %q, want Clips", cfg.Title)
	}

	stdout, _, err := runRoot(t, "", "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path error = %v", err)
	}
	if strings.TrimSpace(stdout) != path {
		t.Errorf("config path = %q, want %q", stdout, path)
	}

	stdout, _, err = runRoot(t, "", "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(stdout, `"title": "Clips"`) {
		t.Errorf("config show = %q, want saved title", stdout)
	}
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "unknown match mode", args: []string{"config", "set", "match", "regex"}, want: "unknown match mode"},
		{name: "unknown key", args: []string{"config", "set", "colour", "red"}, want: "unknown config key"},
		{name: "bad height", args: []string{"config", "set", "height", "tall"}, want: "invalid height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.SetConfigHome(t)

			_, _, err := runRoot(t, "", tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("config set error = %v, want %q", err, tt.want)
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg != (config.Config{}) {
				t.Errorf("config after rejected set = %+v, want unchanged", cfg)
			}
		})
	}
}
