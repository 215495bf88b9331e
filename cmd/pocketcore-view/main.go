// Command pocketcore-view opens an SDL2 window and presents the stub
// framebuffer from internal/display. It exists purely so that package has a
// real, exercised caller; it never touches internal/cpu or internal/mmu.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pocketcore/internal/config"
	"pocketcore/internal/display"
)

func main() {
	configPath := flag.String("config", "", "path to an optional TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pocketcore-view: loading config: %v\n", err)
		os.Exit(1)
	}

	view, err := display.NewView(cfg.DisplayScale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pocketcore-view: %v\n", err)
		os.Exit(1)
	}
	defer view.Close()

	fb := display.New()

	for {
		if view.PollQuit() {
			return
		}
		if err := view.Present(fb); err != nil {
			fmt.Fprintf(os.Stderr, "pocketcore-view: %v\n", err)
			os.Exit(1)
		}
		time.Sleep(16 * time.Millisecond)
	}
}
