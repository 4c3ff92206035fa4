package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug                = "debug"
	ConfigVariant              = "variant"
	ConfigReadlineHistory      = "readline-history"
	ConfigAutoplayGames        = "autoplay-games"
	ConfigAutoplayThreads      = "autoplay-threads"
	ConfigAutoplayOpeningPlies = "autoplay-opening-plies"
	ConfigTUICellWidth         = "tui-cell-width"
	ConfigTUICellHeight        = "tui-cell-height"
	ConfigLogFile              = "log-file"
)

// Config is a thin wrapper around a viper instance. Values are looked up,
// highest precedence first, in command-line flags, FOURLINE_ environment
// variables, an optional config.yaml, an optional .env file, and the
// defaults below.
type Config struct {
	*viper.Viper
	flags *pflag.FlagSet
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigVariant, "computer")
	c.SetDefault(ConfigReadlineHistory, filepath.Join(os.TempDir(), "fourline-readline.tmp"))
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayThreads, 4)
	c.SetDefault(ConfigAutoplayOpeningPlies, 2)
	c.SetDefault(ConfigTUICellWidth, 6)
	c.SetDefault(ConfigTUICellHeight, 3)
	c.SetDefault(ConfigLogFile, filepath.Join(os.TempDir(), "fourline.log"))
}

// Load reads configuration from all sources. args are the command-line
// arguments without the program name; any left over after flag parsing
// are available from Args.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	// A missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	c.SetEnvPrefix("fourline")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	fs := pflag.NewFlagSet("fourline", pflag.ContinueOnError)
	// Stop at the first positional argument; the rest is a shell command
	// with its own options.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigVariant, "computer", "game variant: classic, compact or computer")
	fs.String(ConfigReadlineHistory, "", "path of the shell history file")
	fs.Int(ConfigAutoplayGames, 100, "games per autoplay run")
	fs.Int(ConfigAutoplayThreads, 4, "autoplay worker goroutines")
	fs.Int(ConfigAutoplayOpeningPlies, 2, "random plies at the start of each autoplay game")
	fs.Int(ConfigTUICellWidth, 6, "width of a board cell in the terminal UI")
	fs.Int(ConfigTUICellHeight, 3, "height of a board cell in the terminal UI")
	fs.String(ConfigLogFile, "", "log file for the terminal UI")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Only flags the user actually set override lower layers.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if err := c.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	c.flags = fs
	return bindErr
}

// Args returns the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	if c.flags == nil {
		return nil
	}
	return c.flags.Args()
}
