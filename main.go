package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/duopong/audio"
	"github.com/lguibr/duopong/frontend/terminal"
	"github.com/lguibr/duopong/frontend/window"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/server"
	"github.com/lguibr/duopong/utils"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

type options struct {
	frontend string
	mute     bool
	spectate string
	seed     int64
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("duopong", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.frontend, "frontend", frontendWindow, "frontend to play in: window or terminal")
	fs.BoolVar(&opts.mute, "mute", false, "disable sound effects")
	fs.StringVar(&opts.spectate, "spectate", "", "serve a read-only spectator feed on this address, e.g. :3001")
	fs.Int64Var(&opts.seed, "seed", 0, "seed for ball resets (0 picks one from the clock)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch opts.frontend {
	case frontendWindow, frontendTerminal:
	default:
		return options{}, fmt.Errorf("unknown frontend %q", opts.frontend)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func run(ctx context.Context, opts options) error {
	state := game.NewGameState(utils.DefaultConfig(), newRand(opts.seed))

	var sounds game.EventSink
	if !opts.mute {
		soundManager := audio.NewSoundManager()
		if err := soundManager.Initialize(); err != nil {
			log.Printf("Audio: running muted: %v", err)
		} else {
			defer soundManager.Cleanup()
			sounds = soundManager
		}
	}

	var feed game.SnapshotSink
	if opts.spectate != "" {
		hub := server.NewHub()
		feed = hub
		feedCtx, stopFeed := context.WithCancel(ctx)
		defer stopFeed()
		go func() {
			if err := server.New(hub).ListenAndServe(feedCtx, opts.spectate); err != nil {
				log.Printf("Server: spectator feed stopped: %v", err)
			}
		}()
	}

	session := game.NewSession(state, sounds, feed)

	switch opts.frontend {
	case frontendTerminal:
		screen, err := terminal.Open()
		if err != nil {
			return err
		}
		defer screen.Fini()
		return terminal.Run(ctx, session, screen)
	default:
		return window.Run(ctx, session)
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "duopong: %v\n", err)
		os.Exit(1)
	}
}
