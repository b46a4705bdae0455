package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"

	"github.com/studio1767/nbsync/internal/logging"
	"github.com/studio1767/nbsync/internal/manifest"
	"github.com/studio1767/nbsync/internal/metrics"
	"github.com/studio1767/nbsync/internal/store"
)

func main() {
	// process the command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-p aws-profile] [-b bucket] [-e endpoint] [-d depth] [-l level] [-metrics file] <dataset-root>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	profile := flag.String("p", "", "aws profile for credentials and configuration")
	bucket := flag.String("b", "", "s3 bucket holding the dataset; local filesystem if not set")
	endpoint := flag.String("e", "", "s3 compatible endpoint url")
	depth := flag.Int("d", manifest.DefaultMaxDepth, "maximum directory depth to list")
	level := flag.String("l", "info", "log level")
	metrics_file := flag.String("metrics", "", "write metrics to this textfile")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: incorrect arguments provided\n")
		flag.Usage()
		os.Exit(1)
	}

	root := flag.Arg(0)

	if err := logging.Init(logging.Config{Level: *level}); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, store.S3Config{
		Profile:   *profile,
		Bucket:    *bucket,
		Endpoint:  *endpoint,
		PathStyle: *endpoint != "",
	})
	if err != nil {
		log.Fatal(err)
	}

	result, err := manifest.Export(ctx, st, root, manifest.ExportOptions{MaxDepth: *depth})
	if err != nil {
		log.Fatal(err)
	}

	if *metrics_file != "" {
		if err := metrics.WriteTextfile(*metrics_file); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Println()
	fmt.Printf("Export Summary\n")
	fmt.Printf("      dataset: %s\n", root)
	fmt.Printf("     manifest: %s\n", result.Path)
	fmt.Printf("      entries: %d\n", result.Entries)
	if result.Truncated > 0 {
		fmt.Printf("    truncated: %d directories below depth %d\n", result.Truncated, *depth)
	}
	fmt.Printf("         size: %s\n", humanize.Bytes(uint64(result.Bytes)))
	fmt.Println()
}
