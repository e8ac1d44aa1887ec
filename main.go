package main

import (
	"fmt"
	"os"

	"qrtable/base"
	"qrtable/config"
	"qrtable/logger"
	"qrtable/qr"
)

func main() {
	cfg, err := config.Get(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Debug, TimeZone: cfg.TimeZone}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Log.Sync()

	if cfg.File != "" {
		logger.Log.Debugf("using config file %s", cfg.File)
	}

	table, err := qr.NewECTable(base.EC_BLOCK_TABLE, qr.Options{
		Format: qr.Format(cfg.Format),
		Wrap:   cfg.Wrap,
	})
	if err != nil {
		logger.Log.Fatal(err)
	}

	if err := table.PrintArray(os.Stdout); err != nil {
		logger.Log.Fatal(err)
	}
}
