package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"pocketcore/internal/config"
	"pocketcore/internal/cpu"
	"pocketcore/internal/mmu"
	"pocketcore/internal/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to an optional TOML config file")
	trace := flag.Bool("trace", false, "force trace-level logging")
	maxSteps := flag.Int("steps", 0, "run at most N instructions headlessly (0 = until a fatal error)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pocketcore [-config path] [-trace] [-steps N] <rom-path>")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pocketcore: loading config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyEnv()
	if *trace {
		cfg.LogLevel = "trace"
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		if os.IsPermission(err) {
			fmt.Fprintf(os.Stderr, "pocketcore: permission denied reading %s: %v\n", romPath, err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "pocketcore: reading ROM: %v\n", err)
		os.Exit(1)
	}

	log := telemetry.NewLogger(10000)
	log.SetLevel(telemetry.ParseLevel(cfg.LogLevel))

	bus := mmu.NewBus()
	core := cpu.New(bus, log)
	if err := core.ReadROM(rom); err != nil {
		fmt.Fprintf(os.Stderr, "pocketcore: loading ROM: %v\n", err)
		os.Exit(1)
	}

	if err := run(core, log, *maxSteps); err != nil {
		log.Write(os.Stderr)
		fmt.Fprintf(os.Stderr, "pocketcore: %v\n", err)
		os.Exit(1)
	}
}

// run drives the step loop. Between instructions it consults stdin for the
// interactive driver contract: a literal "d\n" line triggers a status dump
// instead of a step; anything else (including EOF, when nothing is piped)
// requests one instruction step.
func run(core *cpu.CPU, log *telemetry.Logger, maxSteps int) error {
	scanner := bufio.NewScanner(os.Stdin)
	headless := !isTerminal(os.Stdin)

	for i := 0; maxSteps == 0 || i < maxSteps; i++ {
		dump := false
		if !headless && scanner.Scan() {
			dump = scanner.Text() == "d"
		}

		if dump {
			core.DumpStatus()
			continue
		}

		if _, err := core.Step(); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
