package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	pollInterval        = 5 * time.Second
)

// Config holds the command line options
type Config struct {
	TemporalHost string
	Namespace    string
	WorkflowID   string
	RunID        string
	Wait         bool
	QueryTimeout time.Duration
	PageSize     int
	OutputFile   string
}

func main() {
	cfg := parseFlags()

	if cfg.WorkflowID == "" {
		fmt.Println("Error: workflow-id is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Enrichment run: %s\n", cfg.WorkflowID)

	var stats *RunStats
	for {
		stats, err = collectRunStats(ctx, c, cfg)
		if err != nil {
			fmt.Printf("Error collecting run statistics: %v\n", err)
			os.Exit(1)
		}

		if !cfg.Wait || stats.Complete() {
			break
		}

		fmt.Printf("  %s, %d/%d batch workflows closed, waiting...\n",
			formatStatus(stats.Status), stats.ClosedChildren(), len(stats.Children))

		select {
		case <-ctx.Done():
			fmt.Println(strings.Repeat("=", 60))
			fmt.Println("INTERRUPTED - PARTIAL RESULTS")
			printRunStats(os.Stdout, stats)
			return
		case <-time.After(pollInterval):
		}
	}

	printRunStats(os.Stdout, stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.StringVar(&cfg.WorkflowID, "workflow-id", "", "Enrichment workflow ID, e.g. enrich-pending-api-<uuid> (required)")
	flag.StringVar(&cfg.RunID, "run-id", "", "Specific run ID (optional)")
	flag.BoolVar(&cfg.Wait, "wait", false, "Poll until the run and its batch workflows are closed")
	flag.IntVar(&cfg.PageSize, "page-size", 100, "Page size for Temporal queries (max: 1000)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")

	var queryTimeoutSeconds int
	flag.IntVar(&queryTimeoutSeconds, "query-timeout", 30, "Timeout for each Temporal query in seconds")

	flag.Parse()

	cfg.QueryTimeout = time.Duration(queryTimeoutSeconds) * time.Second
	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 100
	}

	return cfg
}
