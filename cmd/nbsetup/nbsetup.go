package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/studio1767/nbsync/internal/config"
	"github.com/studio1767/nbsync/internal/jupyter"
)

func main() {
	// process the command line
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-o output-file]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}

	output := flag.String("o", "", "write the server config here instead of stdout")
	flag.Parse()

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: incorrect arguments provided\n")
		flag.Usage()
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, "Initializing Jupyter.")

	sc, err := jupyter.Build(config.LoadServer())
	if err != nil {
		var nopass *jupyter.ErrNoPassword
		if errors.As(err, &nopass) {
			fmt.Fprintln(os.Stderr, "Password must be provided.")
			os.Exit(jupyter.ExitNoPassword)
		}
		log.Fatal(err)
	}

	if *output == "" {
		err = sc.Write(os.Stdout)
	} else {
		err = sc.WriteFile(*output)
	}
	if err != nil {
		log.Fatal(err)
	}
}
