package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lixenwraith/gridsight/config"
)

var (
	configFlag = flag.String("config", "", "Config file (default: gridsight.toml, then built-in)")
	mapFlag    = flag.String("map", "", "Map file overriding the config, '#' wall '.' floor '@' viewer")
	seedFlag   = flag.Int64("seed", 0, "Maze seed overriding the config")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadAuto(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *mapFlag != "" {
		cfg.Board.Map = *mapFlag
	}
	if *seedFlag != 0 {
		cfg.Board.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *debugFlag {
		cfg.Log.Debug = true
	}

	if logFile := setupLogging(cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	sandbox, err := NewSandbox(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	crashScreen = sandbox.screen
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()

	sandbox.run()
	sandbox.cleanup()
}
