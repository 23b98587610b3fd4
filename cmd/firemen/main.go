package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/firemen/constants"
	"github.com/lixenwraith/firemen/core"
	"github.com/lixenwraith/firemen/engine"
	"github.com/lixenwraith/firemen/input"
	"github.com/lixenwraith/firemen/inspect"
	"github.com/lixenwraith/firemen/render"
	"github.com/lixenwraith/firemen/statsview"
	"github.com/lixenwraith/firemen/status"
)

var (
	debugFlag     = flag.Bool("debug", false, "Write a debug log to logs/firemen.log")
	rateFlag      = flag.Int("rate", constants.TicksPerSecond, "Base tick rate in Hz")
	holdFirstFlag = flag.Duration("hold-first", constants.DefaultFirstHoldWindow, "How long the first event of a key press counts as held (exceed the terminal autorepeat delay)")
	holdFlag      = flag.Duration("hold", constants.DefaultRepeatHoldWindow, "How long each autorepeat event counts as held")
	muteFlag      = flag.Bool("mute", false, "Start with sound muted (toggle with m)")
	recordFlag    = flag.String("record", "", "Record game audio to a WAV file")
	musicFlag     = flag.String("music", "", "Loop an MP3 file as background music")
	statsviewFlag = flag.Bool("statsview", false, "Serve runtime statistics on "+statsview.Address)
	dumpFlag      = flag.String("dumpstate", "", "Write a Graphviz dump of the final session to a file")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
)

// gameOverLinger is how long the final screen stays up without a key press
const gameOverLinger = 3 * time.Second

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(*colorModeFlag)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetResetHook(screen.Fini)
	defer screen.Fini()

	reg := status.NewRegistry()

	sound := setupAudio(*muteFlag, *recordFlag, *musicFlag)
	var player engine.AudioPlayer
	if sound != nil {
		player = sound
		defer sound.Cleanup()
	}

	if *statsviewFlag {
		stats := statsview.Launch(statsview.DefaultConfig(), log.Writer())
		defer stats.Stop()
	}

	board := input.NewBoard(core.NewMonotonicTimeProvider(), input.HoldWindows{
		First:  *holdFirstFlag,
		Repeat: *holdFlag,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keyPressed := make(chan struct{}, 1)
	core.Go(func() {
		pollEvents(screen, func(ev *tcell.EventKey) {
			switch {
			case ev.Key() == tcell.KeyCtrlC:
				cancel()
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'm' && sound != nil:
				log.Printf("audio: muted=%v", sound.ToggleMute())
			default:
				board.HandleKey(ev)
			}
			select {
			case keyPressed <- struct{}{}:
			default:
			}
		})
	})

	game := engine.NewGame(engine.Config{
		Renderer: render.NewTerminalRenderer(screen),
		Buttons:  board.Buttons(),
		Keypad:   board.Keypad(),
		Audio:    player,
		Status:   reg,
		TickRate: *rateFlag,
	})

	runErr := game.Run(ctx)
	log.Printf("status: %s", reg.Summary())

	if *dumpFlag != "" {
		if err := inspect.DumpStateFile(*dumpFlag, game.State()); err != nil {
			log.Printf("%v", err)
		}
	}

	switch {
	case runErr == nil:
		// Leave GAME OVER up until a key or the linger timeout
		drainSignal(keyPressed)
		select {
		case <-keyPressed:
		case <-ctx.Done():
		case <-time.After(gameOverLinger):
		}
	case errors.Is(runErr, context.Canceled):
		log.Printf("engine: stopped by user")
	default:
		log.Printf("engine: %v", runErr)
	}
}

// pollEvents forwards key events until the screen is finalized
func pollEvents(screen tcell.Screen, onKey func(*tcell.EventKey)) {
	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			onKey(ev)
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// applyColorMode steers tcell's color detection before the screen is created
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor", "true", "24bit":
		os.Setenv("COLORTERM", "truecolor")
	}
}

func drainSignal(ch <-chan struct{}) {
	select {
	case <-ch:
	default:
	}
}
