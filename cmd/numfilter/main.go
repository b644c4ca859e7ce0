package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thisisjab/numfilter/config"
)

func main() {
	cfgPath := flag.String("config", "./.config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.ReadFile(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	filters, logger, err := cfg.Parse()
	if err != nil {
		if logger != nil {
			logger.Error("cannot parse config file", "error", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, fmt.Errorf("cannot parse config file: %w", err))
		os.Exit(1)
	}

	for _, f := range filters.Strings() {
		fmt.Println(f)
	}

	logger.Info("rendered filters.", "count", filters.Len())
}
