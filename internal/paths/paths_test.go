package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPlatform replaces the home and user-config lookups for one test.
func stubPlatform(t *testing.T, home, userConfig string, err error) {
	t.Helper()
	orig := platformDir
	platformDir.homeDir = func() (string, error) { return home, err }
	platformDir.userConfigDir = func() (string, error) { return userConfig, err }
	t.Cleanup(func() { platformDir = orig })
}

func TestDefaultConfigDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Run("XDG_CONFIG_HOME wins", func(t *testing.T) {
			stubPlatform(t, "/home/sammy", "", nil)
			t.Setenv("XDG_CONFIG_HOME", "/xdg")
			got, err := DefaultConfigDir()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/xdg", "registrar"), got)
		})
		t.Run("home fallback", func(t *testing.T) {
			stubPlatform(t, "/home/sammy", "", nil)
			t.Setenv("XDG_CONFIG_HOME", "")
			got, err := DefaultConfigDir()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/home/sammy", ".config", "registrar"), got)
		})
	} else {
		t.Run("user config dir", func(t *testing.T) {
			stubPlatform(t, "", "/Users/sammy/Library/Application Support", nil)
			got, err := DefaultConfigDir()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join("/Users/sammy/Library/Application Support", "registrar"), got)
		})
	}

	t.Run("lookup failure", func(t *testing.T) {
		stubPlatform(t, "", "", errors.New("no home"))
		t.Setenv("XDG_CONFIG_HOME", "")
		_, err := DefaultConfigDir()
		assert.Error(t, err)
	})
}

func TestResolveConfigDir(t *testing.T) {
	stubPlatform(t, "/home/sammy", "/home/sammy/.config", nil)
	t.Setenv("XDG_CONFIG_HOME", "")
	def, err := DefaultConfigDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		flag string
		env  string
		want string
	}{
		{name: "flag beats env", flag: "/flag/config", env: "/env/config", want: "/flag/config"},
		{name: "env when no flag", env: "/env/config", want: "/env/config"},
		{name: "platform default", want: def},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.env)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name   string
		flag   string
		config string
		env    string
		want   string
	}{
		{name: "flag beats config and env", flag: "/flag/data", config: "/config/data", env: "/env/data", want: "/flag/data"},
		{name: "config.yaml beats env", config: "/config/data", env: "/env/data", want: "/config/data"},
		{name: "env alone", env: "/env/data", want: "/env/data"},
		{name: "working directory default", want: filepath.Join(cwd, DefaultDataDirName)},
		{name: "relative flag made absolute", flag: "rel/data", want: filepath.Join(cwd, "rel", "data")},
		{name: "relative config made absolute", config: "rel/config", want: filepath.Join(cwd, "rel", "config")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.env)
			got, err := ResolveDataDir(tt.flag, tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveConfigDirRelative(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	t.Setenv(EnvConfigDir, "rel/env")
	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, "rel", "env"), got)
}
