package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetString(ConfigVariant), "computer")
	is.Equal(c.GetInt(ConfigTUICellWidth), 6)
	is.Equal(c.GetInt(ConfigAutoplayThreads), 4)
	is.True(!c.GetBool(ConfigDebug))
	is.Equal(len(c.Args()), 0)
}

func TestFlagsStopAtCommand(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	c := &Config{}
	is.NoErr(c.Load([]string{"--variant", "classic", "--debug", "autoplay", "-games", "10"}))
	is.Equal(c.GetString(ConfigVariant), "classic")
	is.True(c.GetBool(ConfigDebug))
	is.Equal(c.Args(), []string{"autoplay", "-games", "10"})
}

func TestEnvAndPrecedence(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("FOURLINE_AUTOPLAY_GAMES", "7")
	t.Setenv("FOURLINE_VARIANT", "compact")

	c := &Config{}
	is.NoErr(c.Load([]string{"--variant", "classic"}))
	is.Equal(c.GetInt(ConfigAutoplayGames), 7)
	// a flag beats the environment
	is.Equal(c.GetString(ConfigVariant), "classic")
}

func TestConfigFileAndDotEnv(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	t.Chdir(dir)
	is.NoErr(os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("tui-cell-height: 5\nvariant: compact\n"), 0o644))
	is.NoErr(os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FOURLINE_TUI_CELL_WIDTH=9\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FOURLINE_TUI_CELL_WIDTH") })

	c := &Config{}
	is.NoErr(c.Load(nil))
	is.Equal(c.GetInt(ConfigTUICellHeight), 5)
	is.Equal(c.GetString(ConfigVariant), "compact")
	is.Equal(c.GetInt(ConfigTUICellWidth), 9)
}

func TestBadFlag(t *testing.T) {
	is := is.New(t)
	t.Chdir(t.TempDir())
	c := &Config{}
	is.True(c.Load([]string{"--no-such-flag"}) != nil)
}
