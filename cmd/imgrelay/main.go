package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"kgeyst.com/imgrelay/pkg/common"
	"kgeyst.com/imgrelay/pkg/imgrelay/api"
)

const defaultConfigPath = "config.yaml"

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to the config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()
	if err := mainImpl(*configPath, *debug); err != nil {
		os.Exit(1)
	}
}

func mainImpl(configPath string, debug bool) error {
	config, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load the config: %s\n", err)
		return err
	}
	logLevel := config.GetStringOrDefault(api.ConfigKeyLogLevel, "info")
	if debug || config.GetBoolOrDefault(api.ConfigKeyDebug, false) {
		logLevel = "debug"
	}
	logger := common.NewFileLogger(config.GetStringOrDefault(api.ConfigKeyLogPath, "log.txt"), logLevel)
	imgrelay, err := api.NewAPI(config, logger)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = imgrelay.Run(ctx)
	if err != nil {
		logger.LogError(err.Error())
		return err
	}
	return nil
}

// A missing config.yaml is fine as long as everything comes from the environment; an explicitly given file
// must exist.
func loadConfig(configPath string) (*common.Config, error) {
	config, err := common.LoadConfig(configPath)
	if errors.Is(err, fs.ErrNotExist) && configPath == defaultConfigPath {
		return common.NewConfig(nil), nil
	}
	return config, err
}
