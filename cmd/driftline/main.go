package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftline/config"
	"github.com/lixenwraith/driftline/course"
	"github.com/lixenwraith/driftline/logging"
)

var CLI struct {
	Config  string `help:"Config file, or directory holding driftline.yaml." default:"." type:"path"`
	Course  string `help:"Built-in course id or path to a course YAML file."`
	Debug   bool   `help:"Write debug logs to the log directory."`
	Mute    bool   `help:"Disable audio cues."`
	Courses bool   `help:"List built-in courses and exit."`
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	kong.Parse(&CLI,
		kong.Name("driftline"),
		kong.Description("a top-down terminal drift racer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Courses {
		for _, id := range course.BuiltinIDs() {
			fmt.Println(id)
		}
		return
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fatal("config: %v", err)
	}
	if CLI.Course != "" {
		cfg.Course = CLI.Course
	}
	if CLI.Debug {
		cfg.Debug = true
	}
	if CLI.Mute {
		cfg.Audio.Enabled = false
	}

	logger, closer, err := logging.Setup(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if err != nil {
		fatal("logging: %v", err)
	}
	defer closer.Close()
	if used := config.ConfigFileUsed(); used != "" {
		logger.Info().Str("file", used).Msg("config loaded")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal("failed to initialize screen: %v", err)
	}

	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("stack", string(debug.Stack())).Msg("crashed")
			handleCrash(screen, r)
		}
	}()

	game, err := NewGame(cfg, screen, logger)
	if err != nil {
		screen.Fini()
		fatal("failed to start: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := game.Run(ctx)
	game.Close()
	screen.Fini()

	if runErr != nil {
		logger.Error().Err(runErr).Msg("game loop failed")
		fatal("%v", runErr)
	}
	logger.Info().Msg("bye")
}
