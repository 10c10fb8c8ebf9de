package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"grid-snake/internal/app"
	"grid-snake/internal/loop"
	"grid-snake/internal/term"
	"grid-snake/pkg/snake"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := cfg.Game()
	if ok, err := term.Fits(os.Stdout, game.Size); err == nil && !ok {
		log.Printf("terminal is smaller than a %dx%d board; the frame will wrap", game.Size, game.Size)
	}

	screen, err := term.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer screen.Close()

	cmds := make(chan loop.Command)
	go func() {
		if err := term.ReadCommands(os.Stdin, cmds); err != nil {
			log.Printf("read input: %v", err)
		}
	}()

	opts := loop.Options{
		Interval: cfg.Interval,
		Commands: cmds,
		Draw: func(st snake.State, paused bool) {
			screen.Draw(term.Frame(st, paused))
		},
	}
	for seed := game.Seed; ; seed = 0 {
		game.Seed = seed
		engine, err := snake.New(game)
		if err != nil {
			return err
		}
		err = loop.Run(ctx, engine, opts)
		switch {
		case errors.Is(err, loop.ErrRestart):
			continue
		case errors.Is(err, context.Canceled):
			return nil
		}
		return err
	}
}
