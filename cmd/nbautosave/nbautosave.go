package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/studio1767/nbsync/internal/autosave"
	"github.com/studio1767/nbsync/internal/config"
	"github.com/studio1767/nbsync/internal/logging"
	"github.com/studio1767/nbsync/internal/metrics"
)

func main() {
	// process the command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-c config-file] [-k kind] [-metrics file] <path>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	config_file := flag.String("c", "", "yaml config file; settings also come from the environment")
	kind := flag.String("k", autosave.KindNotebook, "kind of the saved content")
	metrics_file := flag.String("metrics", "", "write metrics to this textfile")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: incorrect arguments provided\n")
		flag.Usage()
		os.Exit(1)
	}

	path := flag.Arg(0)

	cfg, err := config.Load(*config_file)
	if err != nil {
		log.Fatal(err)
	}

	if err := logging.Init(cfg.Log); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	saver, err := autosave.NewSaver(cfg)
	if err != nil {
		log.Fatal(err)
	}

	err = saver.PostSave(context.Background(), *kind, path)

	if *metrics_file != "" {
		if merr := metrics.WriteTextfile(*metrics_file); merr != nil {
			logging.Warn("failed to write metrics", logging.Err(merr))
		}
	}

	if err != nil {
		logging.Sync()
		log.Fatal(err)
	}
}
