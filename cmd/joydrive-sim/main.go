package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/calvinmclean/joydrive/drive"
	"github.com/calvinmclean/joydrive/sim"
)

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run starts the simulator and returns the error of a one-shot command
func run() error {
	var configPath string
	var verbose, memory bool
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.BoolVar(&verbose, "verbose", false, "Log every drive operation")
	flag.BoolVar(&memory, "memory", false, "Use an in-memory EEPROM that is discarded on exit")
	flag.Parse()

	cfg, err := sim.LoadConfig(configPath)
	if err != nil {
		panic(err)
	}
	cfg.Verbose = cfg.Verbose || verbose
	cfg.Memory = cfg.Memory || memory

	var storage drive.Storage
	if cfg.Memory {
		storage = drive.NewMemoryStorage(3)
	} else {
		s, err := sim.OpenStorage(cfg.DBPath)
		if err != nil {
			panic(err)
		}
		defer s.Close()
		storage = s
	}

	board := sim.NewBoard(cfg.EstopIn, cfg.SelectIn)
	s := sim.NewSimulator(board, storage, cfg.Verbose)

	// commands given on the command line are run once instead of starting the shell
	if flag.NArg() > 0 {
		err := s.Exec(flag.Arg(0), flag.Args()[1:]...)
		if err != nil {
			return err
		}
		fmt.Println(s.Summary())
		return nil
	}

	shell := sim.NewShell(s)
	shell.Println(s.Summary())
	shell.Run()
	return nil
}
