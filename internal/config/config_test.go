package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	tui "github.com/grindlemire/hooktui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func withHome(t *testing.T, home string) {
	t.Helper()
	orig := osUserHomeDir
	osUserHomeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { osUserHomeDir = orig })
}

func TestLoad(t *testing.T) {
	type tc struct {
		user      string
		explicit  string
		emptyFile bool // write explicit even when it is empty
		want      Config
		wantErr   string
	}

	tests := map[string]tc{
		"defaults when nothing exists": {
			want: Default(),
		},
		"explicit file overrides defaults": {
			explicit: "fullscreen: true\ntick: 250ms\nexit_key: esc\n",
			want: func() Config {
				c := Default()
				c.Fullscreen = true
				c.Tick = Duration(250 * time.Millisecond)
				c.ExitKey = "esc"
				return c
			}(),
		},
		"explicit file overrides user file": {
			user:     "mouse: true\nfullscreen: true\ntheme:\n  accent: red\n",
			explicit: "fullscreen: false\n",
			want: func() Config {
				c := Default()
				c.Mouse = true
				c.Theme.Accent = "red"
				return c
			}(),
		},
		"empty explicit file keeps user values": {
			user:      "poll_timeout: 20ms\n",
			emptyFile: true,
			want: func() Config {
				c := Default()
				c.PollTimeout = Duration(20 * time.Millisecond)
				return c
			}(),
		},
		"unknown field": {
			explicit: "fulscreen: true\n",
			wantErr:  "field fulscreen not found",
		},
		"bad duration": {
			explicit: "tick: soon\n",
			wantErr:  "invalid duration",
		},
		"negative tick": {
			explicit: "tick: -1s\n",
			wantErr:  "tick must not be negative",
		},
		"bad exit key": {
			explicit: "exit_key: ctrl+1\n",
			wantErr:  "exit_key",
		},
		"bad theme color": {
			user:    "theme:\n  border: chartreuse-ish\n",
			wantErr: "theme.border",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			home := t.TempDir()
			withHome(t, home)
			if tt.user != "" {
				writeFile(t, home, filepath.Join(userConfigDir, configFileName), tt.user)
			}
			path := ""
			if tt.explicit != "" || tt.emptyFile {
				path = writeFile(t, t.TempDir(), "hooktui.yaml", tt.explicit)
			}

			got, err := Load(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	withHome(t, t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_NoHomeDir(t *testing.T) {
	orig := osUserHomeDir
	osUserHomeDir = func() (string, error) { return "", errors.New("no home") }
	t.Cleanup(func() { osUserHomeDir = orig })

	got, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestParseExitKey(t *testing.T) {
	type tc struct {
		in      string
		want    tui.KeyPattern
		wantOK  bool
		wantErr bool
	}

	tests := map[string]tc{
		"empty is ctrl+c": {in: "", want: tui.KeyPattern{Rune: 'c', Mod: tui.ModCtrl}, wantOK: true},
		"ctrl+q":          {in: "Ctrl+Q", want: tui.KeyPattern{Rune: 'q', Mod: tui.ModCtrl}, wantOK: true},
		"esc":             {in: "esc", want: tui.KeyPattern{Key: tui.KeyEscape}, wantOK: true},
		"escape":          {in: " escape ", want: tui.KeyPattern{Key: tui.KeyEscape}, wantOK: true},
		"none":            {in: "none"},
		"digit":           {in: "ctrl+1", wantErr: true},
		"word":            {in: "quit", wantErr: true},
		"two letters":     {in: "ctrl+ab", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok, err := ParseExitKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptions(t *testing.T) {
	type tc struct {
		cfg     Config
		wantLen int
	}

	full := Default()
	full.Fullscreen = true
	full.Mouse = true
	full.NoTrim = true
	full.Tick = Duration(time.Second)
	full.PollTimeout = Duration(10 * time.Millisecond)

	noExit := Default()
	noExit.ExitKey = "none"

	tests := map[string]tc{
		"defaults only set the exit key": {cfg: Default(), wantLen: 1},
		"every field":                    {cfg: full, wantLen: 6},
		"no exit key":                    {cfg: noExit, wantLen: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts := tt.cfg.Options()
			assert.Len(t, opts, tt.wantLen)

			app, err := tui.NewApp(func(*tui.RenderContext) *tui.Element { return nil }, opts...)
			require.NoError(t, err)
			assert.NotNil(t, app)
		})
	}
}

func TestColor(t *testing.T) {
	assert.True(t, Color("cyan").Equal(tui.Cyan))
	assert.True(t, Color("not-a-color").IsDefault())
	assert.True(t, Color("").IsDefault())
}
