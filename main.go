package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toxichemicals/GO/holy-candle/config"
	"github.com/toxichemicals/GO/holy-candle/core"
	"github.com/toxichemicals/GO/holy-candle/logger"
	"github.com/toxichemicals/GO/holy-candle/scene"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (built-in defaults when empty)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := logger.New(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(*configPath, log); err != nil {
		log.Error("candle scene failed", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

// run owns the window and the scene; both are released before it returns.
func run(configPath string, log *zap.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	c := core.NewCore(cfg.Window, log)
	if err := c.Init(); err != nil {
		return fmt.Errorf("core library initialization failed: %w", err)
	}
	defer c.Shutdown()

	s, err := scene.New(core.NewDevice(), cfg, log)
	if err != nil {
		return err
	}
	defer s.Release()

	c.SetInputHandler(s.Input)

	log.Info("starting main loop")
	s.Run(c)
	log.Info("shutting down")
	return nil
}
