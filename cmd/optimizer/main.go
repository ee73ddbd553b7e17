// Command optimizer runs the timetable optimizer from the command line, or
// serves it over HTTP, by delegating to internal/optimizer.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timetable-optimizer/internal/exporter"
	"timetable-optimizer/internal/ingest"
	"timetable-optimizer/internal/optimizer"
	"timetable-optimizer/internal/server"
	"timetable-optimizer/pkg/backoff"
	"timetable-optimizer/pkg/config"
	"timetable-optimizer/pkg/logger"
)

var (
	inFile  string
	outFile string
	seed    int64
	useSeed bool
	quick   bool
	addr    string

	retryTarget string
)

func main() {
	root := &cobra.Command{
		Use:   "optimizer",
		Short: "University timetable optimizer",
		Long:  "Computes weekly class timetables with a (1+1) evolutionary strategy and simulated annealing.",
	}

	cmdRun := &cobra.Command{
		Use:   "run",
		Short: "optimize a timetable read from a JSON file",
		RunE:  runOptimize,
	}
	cmdRun.Flags().StringVar(&inFile, "in", "", "input JSON file (required)")
	cmdRun.Flags().StringVar(&outFile, "out", "", "output JSON file (default: stdout)")
	cmdRun.Flags().Int64Var(&seed, "seed", 0, "deterministic RNG seed")
	cmdRun.Flags().BoolVar(&useSeed, "use-seed", false, "pin the RNG to --seed for a reproducible run")
	cmdRun.Flags().BoolVar(&quick, "quick", false, "shrink evolutionary/annealing iteration counts for a fast smoke run")
	_ = cmdRun.MarkFlagRequired("in")
	root.AddCommand(cmdRun)

	cmdServe := &cobra.Command{
		Use:   "serve",
		Short: "serve the optimizer over HTTP",
		RunE:  runServe,
	}
	cmdServe.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	root.AddCommand(cmdServe)

	cmdRetry := &cobra.Command{
		Use:   "retry",
		Short: "re-POST a timetable file to a remote optimizer server, retrying with capped backoff",
		RunE:  runRetry,
	}
	cmdRetry.Flags().StringVar(&inFile, "in", "", "input JSON file (required)")
	cmdRetry.Flags().StringVar(&retryTarget, "target", "", "remote optimizer server base URL (required)")
	_ = cmdRetry.MarkFlagRequired("in")
	_ = cmdRetry.MarkFlagRequired("target")
	root.AddCommand(cmdRetry)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	data, err := ingest.FromPayload(raw)
	if err != nil {
		return fmt.Errorf("hydrate input: %w", err)
	}

	var opts []optimizer.Option
	if useSeed {
		opts = append(opts, optimizer.WithSeed(seed))
	}
	if quick {
		opts = append(opts,
			optimizer.WithEvolveParams(optimizer.EvolveParams{Runs: 1, StagnationLimit: 20}),
			optimizer.WithAnnealParams(optimizer.AnnealParams{Iterations: 100}),
		)
	}

	result, stats, err := optimizer.Optimize(data, opts...)
	if err != nil {
		return err
	}

	log.Printf("hard constraints satisfied: %v (cost %d)", result.Statistics.HardConstraintsSatisfied, result.Statistics.HardConstraintsCost)
	log.Printf("annealing: accepted %d, rejected %d, group cost %.4f -> %.4f",
		stats.AnnealAccepted, stats.AnnealRejected, stats.GroupCostBefore, stats.GroupCostAfter)

	if outFile != "" {
		return exporter.ExportResultToJSON(result, outFile)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	listenAddr := addr
	if listenAddr == ":8080" && cfg.Port != 0 {
		listenAddr = ""
	}
	return server.Run(cfg, zapLogger, listenAddr)
}

// runRetry posts the input file to target's /optimize-timetable endpoint,
// using pkg/backoff's capped exponential policy between attempts.
func runRetry(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(inFile)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	policy := backoff.Default()
	url := retryTarget + "/optimize-timetable"

	return backoff.Retry(policy, sleepFor, func(attempt int) error {
		resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
		if err != nil {
			log.Printf("attempt %d: %v", attempt, err)
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 500 {
			log.Printf("attempt %d: server returned %s", attempt, resp.Status)
			return fmt.Errorf("server returned %s", resp.Status)
		}
		log.Printf("attempt %d: %s", attempt, resp.Status)
		return nil
	})
}

func sleepFor(d time.Duration) bool {
	time.Sleep(d)
	return true
}
