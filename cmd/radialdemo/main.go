// Package main is an interactive terminal demo of the radial dial.
// Drag with the mouse, scroll the wheel, or use the arrow keys; Shift
// snaps pointer drags to block ticks and Ctrl to unit ticks. Press q
// or Escape to quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dialware/radial"
	"github.com/dialware/radial/config"
	"github.com/dialware/radial/event"
	"github.com/dialware/radial/input"
	"github.com/dialware/radial/render"
	"github.com/dialware/radial/script"
	"github.com/dialware/radial/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dial, err := cfg.Slider()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: building dial: %v\n", err)
		return 1
	}

	if cfg.FormatScript != "" {
		formatter, err := script.LoadFormatter(cfg.FormatScript)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer formatter.Close()
		dial.SetFormatter(formatter)
	}

	terminal, err := term.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: creating terminal: %v\n", err)
		return 1
	}
	if err := terminal.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: initializing terminal: %v\n", err)
		return 1
	}
	defer terminal.Shutdown()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		terminal.PostEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	}()

	return loop(terminal, dial, cfg)
}

func loop(terminal *term.Terminal, dial *radial.Slider, cfg config.Config) int {
	controller := input.NewController(dial, dial.Dispatcher(), cfg.Controller())
	translator := term.NewTranslator()
	renderer := render.NewRenderer(render.DefaultTheme())

	width, height := terminal.Size()
	controller.SetBounds(width, height)

	// Repeat ticks mutate the dial off the event loop; waking the loop
	// with an interrupt keeps the screen current.
	dial.OnRedraw(func() {
		terminal.PostEvent(tcell.NewEventInterrupt(nil))
	})
	dial.OnChange(func(event.ChangeEvent) {
		terminal.Beep()
	})

	dial.SetFocused(true)
	redraw(terminal, renderer, dial, width, height)

	for {
		ev := terminal.PollEvent()
		if ev == nil {
			return 0
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			width, height = e.Size()
			controller.SetBounds(width, height)

		case *tcell.EventKey:
			if isQuit(e) {
				controller.Reset()
				return 0
			}
			translator.Feed(controller, ev)

		default:
			translator.Feed(controller, ev)
		}

		redraw(terminal, renderer, dial, width, height)
	}
}

func redraw(terminal *term.Terminal, renderer *render.Renderer, dial *radial.Slider, width, height int) {
	terminal.Clear()
	renderer.Draw(terminal, dial, render.Rect{Width: width, Height: height})
	terminal.Show()
}

func isQuit(e *tcell.EventKey) bool {
	if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
		return true
	}
	return e.Key() == tcell.KeyRune && e.Rune() == 'q'
}

func loadConfig(opts options) (config.Config, error) {
	loader := config.NewLoader(opts.configPath)
	cfg, err := loader.Load()
	if err != nil {
		return cfg, err
	}
	cfg, err = config.ApplyEnv(cfg)
	if err != nil {
		return cfg, err
	}

	if opts.value != nil {
		cfg.Value = *opts.value
	}
	if opts.axis {
		cfg.ShowAxis = true
	}
	if opts.script != "" {
		cfg.FormatScript = opts.script
	}

	return cfg, cfg.Validate()
}

type options struct {
	configPath string
	script     string
	value      *float64
	axis       bool
}

func parseFlags() options {
	var opts options
	var value float64
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "radial.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "radial.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.script, "format-script", "", "Lua script defining format(value)")
	flag.BoolVar(&opts.axis, "axis", false, "Show the axis lines")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "radialdemo - interactive radial dial\n\n")
		fmt.Fprintf(os.Stderr, "Usage: radialdemo [options] [value]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  mouse drag          Set the value; Shift/Ctrl snap to ticks\n")
		fmt.Fprintf(os.Stderr, "  wheel               Step by the unit increment\n")
		fmt.Fprintf(os.Stderr, "  arrows              Left/Right unit step, Up/Down block step\n")
		fmt.Fprintf(os.Stderr, "  q, Escape           Quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("radialdemo %s (%s)\n", version, commit)
		os.Exit(0)
	}

	if flag.NArg() > 0 {
		if _, err := fmt.Sscanf(flag.Arg(0), "%g", &value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid value %q\n", flag.Arg(0))
			os.Exit(1)
		}
		opts.value = &value
	}

	return opts
}
