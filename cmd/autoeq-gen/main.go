package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/autoeq-catalog/internal/catalog"
	"github.com/handiism/autoeq-catalog/internal/config"
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to JSON config file")
		sourcesFlag = flag.String("sources", "", "Path to YAML source-table override")
		outputFlag  = flag.String("output", "", "Write catalog to file instead of stdout")
		verboseFlag = flag.Bool("verbose", false, "Show per-source progress on stderr")
	)

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "AutoEQ Catalog Generator - Build a headphone EQ catalog from an AutoEQ checkout")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  autoeq-gen [options] <path to AutoEQ results>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Example:")
		fmt.Fprintln(os.Stderr, "  git clone --depth 1 https://github.com/jaakkopasanen/AutoEq.git /tmp/autoeq")
		fmt.Fprintln(os.Stderr, "  autoeq-gen /tmp/autoeq/results > autoeq_database.json")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	root := flag.Arg(0)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if *sourcesFlag != "" {
		sources, err := config.LoadSources(*sourcesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading source table: %v\n", err)
			os.Exit(1)
		}
		settings.Sources = sources
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "Interrupted, cancelling...")
		cancel()
	}()

	// Progress goes to stderr so stdout stays a clean JSON stream.
	builder := catalog.NewBuilder(settings, func(event catalog.ProgressEvent) {
		if !*verboseFlag {
			return
		}
		fmt.Fprintln(os.Stderr, event.Message)
	})

	cat, err := builder.Build(ctx, root)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outputFlag != "" {
		f, err := os.Create(*outputFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outputFlag, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := cat.WriteJSON(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Generated %d entries\n", cat.EntryCount)
}
