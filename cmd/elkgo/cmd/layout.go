package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mark/elkgo/pkg/elk"
	"github.com/mark/elkgo/pkg/elkgraph"
)

var (
	layoutOutput    string
	layoutAlgorithm string
	layoutDirection string
	layoutWatch     bool
	layoutLogging   bool
	layoutTiming    bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout <graph.json>",
	Short: "Compute a geometric layout for a graph description file",
	Long: `Read a graph description as JSON (from a file, or "-" for stdin),
compute node/edge/port/label geometry, and write the result as JSON
(to a file via --output, or stdout by default).

Examples:
  elkgo layout graph.json -o laid-out.json
  cat graph.json | elkgo layout - > laid-out.json
  elkgo layout graph.json --algorithm stress --direction RIGHT
  elkgo layout graph.json -o laid-out.json --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVarP(&layoutOutput, "output", "o", "", "output file path (default: stdout)")
	layoutCmd.Flags().StringVarP(&layoutAlgorithm, "algorithm", "a", "", "set elk.algorithm as a per-call option (a container's own setting still wins)")
	layoutCmd.Flags().StringVarP(&layoutDirection, "direction", "d", "", "set elk.direction as a per-call option (a container's own setting still wins)")
	layoutCmd.Flags().BoolVarP(&layoutWatch, "watch", "w", false, "watch the input file and re-layout on changes")
	layoutCmd.Flags().BoolVar(&layoutLogging, "logging", false, "attach a logging trace to the output graph")
	layoutCmd.Flags().BoolVar(&layoutTiming, "timing", false, "measure and attach execution time to the output graph")
}

type layoutConfig struct {
	inputFile     string
	outPath       string
	layoutOptions map[string]interface{}
}

func resolveLayoutConfig(inputFile string) *layoutConfig {
	opts := map[string]interface{}{}
	if layoutAlgorithm != "" {
		opts["elk.algorithm"] = layoutAlgorithm
	}
	if layoutDirection != "" {
		opts["elk.direction"] = layoutDirection
	}
	return &layoutConfig{
		inputFile:     inputFile,
		outPath:       layoutOutput,
		layoutOptions: opts,
	}
}

func doLayout(cfg *layoutConfig) error {
	var data []byte
	var err error
	if cfg.inputFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(cfg.inputFile)
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	graph, err := elkgraph.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to parse graph: %w", err)
	}

	driver := elk.New()
	ctx := context.Background()
	result, err := driver.Layout(ctx, graph, cfg.layoutOptions, layoutLogging, layoutTiming)
	if err != nil {
		return fmt.Errorf("layout failed: %w", err)
	}

	output, err := elkgraph.Encode(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if cfg.outPath == "" {
		_, err = os.Stdout.Write(append(output, '\n'))
		return err
	}
	return os.WriteFile(cfg.outPath, output, 0644)
}

func runLayout(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	cfg := resolveLayoutConfig(inputFile)

	if !layoutWatch {
		return doLayout(cfg)
	}

	if inputFile == "-" {
		return fmt.Errorf("--watch is not supported when reading from stdin")
	}
	return runWatchMode(cfg)
}

func runWatchMode(cfg *layoutConfig) error {
	absPath, err := filepath.Abs(cfg.inputFile)
	if err != nil {
		return fmt.Errorf("failed to resolve input path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(absPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)...\n", cfg.inputFile)
	if err := doLayout(cfg); err != nil {
		fmt.Printf("[%s] Error: %v\n", formatTime(), err)
	} else {
		fmt.Printf("[%s] Laid out %s\n", formatTime(), cfg.inputFile)
	}

	var debounceTimer *time.Timer
	const debounceDelay = 100 * time.Millisecond
	baseName := filepath.Base(absPath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := doLayout(cfg); err != nil {
					fmt.Printf("[%s] Error: %v\n", formatTime(), err)
				} else {
					fmt.Printf("[%s] Laid out %s\n", formatTime(), cfg.inputFile)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("[%s] Watch error: %v\n", formatTime(), err)

		case <-sigChan:
			fmt.Printf("\nStopping watch mode.\n")
			return nil
		}
	}
}

func formatTime() string {
	return time.Now().Format("15:04:05")
}
