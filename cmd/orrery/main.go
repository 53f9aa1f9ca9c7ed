package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/engine"
)

var (
	debugFlag     = flag.Bool("debug", false, "Enable file logging under logs/")
	muteFlag      = flag.Bool("mute", false, "Disable the half-orbit chime")
	markersFlag   = flag.Bool("markers", false, "Mark each body's projected center")
	timeScaleFlag = flag.Float64("timescale", 1.0, "Simulated seconds per wall-clock second (try 50000 for a visible orbit)")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing, so the trace
	// is readable after the alternate screen is torn down
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nORRERY CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	audioEngine := audio.NewDisabled()
	if !*muteFlag {
		if eng, err := audio.NewEngine(); err == nil {
			audioEngine = eng
		} else {
			// Non-fatal, the simulation runs without sound
			logf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer audioEngine.Close()

	game := engine.NewGame(screen, engine.Options{
		Markers:   *markersFlag,
		TimeScale: *timeScaleFlag,
		Audio:     audioEngine,
	})
	game.Run()
}
