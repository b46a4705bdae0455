package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"

	"github.com/studio1767/nbsync/internal/frame"
	"github.com/studio1767/nbsync/internal/logging"
	"github.com/studio1767/nbsync/internal/manifest"
	"github.com/studio1767/nbsync/internal/metrics"
	"github.com/studio1767/nbsync/internal/store"
)

func main() {
	// process the command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-p aws-profile] [-b bucket] [-e endpoint] [-m max-bytes] [-c] [-l level] [-metrics file] <dataset-root> <destination>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	profile := flag.String("p", "", "aws profile for credentials and configuration")
	bucket := flag.String("b", "", "s3 bucket holding the dataset; local filesystem if not set")
	endpoint := flag.String("e", "", "s3 compatible endpoint url")
	max_bytes := flag.Int64("m", manifest.DefaultMaxBytes, "maximum manifest size in bytes")
	count := flag.Bool("c", false, "count the rows of the rebuilt dataset (local only)")
	level := flag.String("l", "info", "log level")
	metrics_file := flag.String("metrics", "", "write metrics to this textfile")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: incorrect arguments provided\n")
		flag.Usage()
		os.Exit(1)
	}

	root := flag.Arg(0)
	dest := flag.Arg(1)

	if *count && *bucket != "" {
		log.Fatal("counting rows is only supported on the local filesystem")
	}

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

	result, err := manifest.Reconcile(ctx, st, root, dest, manifest.ReconcileOptions{MaxBytes: *max_bytes})

	// write what we have even if the reconcile stopped part way
	if *metrics_file != "" {
		if merr := metrics.WriteTextfile(*metrics_file); merr != nil {
			log.Print(merr)
		}
	}

	if err != nil {
		var malformed *manifest.ErrMalformedLine
		if errors.As(err, &malformed) && result != nil {
			fmt.Printf("Stopped after %d of the manifest lines\n", result.Lines)
		}
		log.Fatal(err)
	}

	for _, partition := range result.Partitions {
		fmt.Printf("- partition: %s\n", partition)
	}

	fmt.Println()
	fmt.Printf("Import Summary\n")
	fmt.Printf("     manifest: %s\n", result.Manifest)
	fmt.Printf("  destination: %s\n", result.Destination)
	fmt.Printf("        lines: %d\n", result.Lines)
	fmt.Printf("   partitions: %d (%d created)\n", len(result.Partitions), result.DirsCreated)
	fmt.Printf("       copied: %d (%s bytes)\n", result.FilesCopied, humanize.Comma(result.BytesCopied))
	fmt.Printf("      skipped: %d\n", result.FilesSkipped)

	if *count {
		f, err := frame.Open(ctx, result.Destination)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		rows, err := f.Count(ctx)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("         rows: %s\n", humanize.Comma(rows))
	}
	fmt.Println()
}
