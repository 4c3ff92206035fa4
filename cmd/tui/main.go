package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fourline/fourline/config"
	"github.com/fourline/fourline/tui"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	// The screen belongs to the program; logs go to a file.
	logfile, err := os.OpenFile(cfg.GetString(config.ConfigLogFile),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Printf("Could not open log file :(\n%v\n", err)
		os.Exit(1)
	}
	defer logfile.Close()

	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: logfile, TimeFormat: time.RFC3339, NoColor: true}).
		Level(level).With().Timestamp().Logger()

	p := tea.NewProgram(tui.InitialModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("tui-exited")
		fmt.Printf("Could not start program :(\n%v\n", err)
		os.Exit(1)
	}
}
