// Command asmctl wires together config, assembler, apiserver and inspector:
// it either runs the REST assembler as a foreground service, or loads a
// previously assembled program into the terminal inspector.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/logicalclocks/rondb-sub003/apiserver"
	"github.com/logicalclocks/rondb-sub003/config"
	"github.com/logicalclocks/rondb-sub003/inspector"
	"github.com/logicalclocks/rondb-sub003/isa"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// programFile is the on-disk shape an already-assembled program is loaded
// from for -inspect: the words apiserver.AssembleResponse returns, plus the
// label/subroutine tables an Assembler can report via Labels()/Subs().
type programFile struct {
	Words  []uint32         `json:"words"`
	Labels map[string]int   `json:"labels,omitempty"`
	Subs   map[string]int   `json:"subs,omitempty"`
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		showHelp    = flag.Bool("help", false, "Show help information")
		configPath  = flag.String("config", "", "Path to config.toml (default: platform config dir)")
		serve       = flag.Bool("serve", false, "Start the REST assembler service")
		listenAddr  = flag.String("listen", "", "Override the configured server listen address")
		inspectFile = flag.String("inspect", "", "Load an assembled program (JSON) and open the TUI inspector")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("asmctl %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || (!*serve && *inspectFile == "") {
		printHelp()
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asmctl: %v\n", err)
		os.Exit(1)
	}
	if *listenAddr != "" {
		cfg.Server.ListenAddr = *listenAddr
	}

	if *serve {
		runServer(cfg)
		return
	}

	if err := runInspector(cfg, *inspectFile); err != nil {
		fmt.Fprintf(os.Stderr, "asmctl: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func runServer(cfg *config.Config) {
	server := apiserver.NewServer(cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var shutdownOnce sync.Once
	performShutdown := func() {
		shutdownOnce.Do(func() {
			fmt.Println("\nShutting down apiserver...")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("apiserver stopped")
			os.Exit(0)
		})
	}

	go func() {
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "apiserver error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	performShutdown()
}

func runInspector(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied program file path
	if err != nil {
		return fmt.Errorf("reading program file: %w", err)
	}
	var pf programFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing program file: %w", err)
	}

	words := make([]isa.Word, len(pf.Words))
	copy(words, pf.Words)

	labels, err := toUintKeys(pf.Labels)
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	subs, err := toUintKeys(pf.Subs)
	if err != nil {
		return fmt.Errorf("subs: %w", err)
	}

	app := inspector.New(cfg, words, labels, subs)
	return app.Run()
}

func toUintKeys(in map[string]int) (map[uint32]int, error) {
	out := make(map[uint32]int, len(in))
	for k, v := range in {
		var n uint32
		if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", k, err)
		}
		out[n] = v
	}
	return out, nil
}

func printHelp() {
	fmt.Println("asmctl - interpreted-code assembler service and inspector")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  asmctl -serve [-config path] [-listen addr]")
	fmt.Println("  asmctl -inspect program.json [-config path]")
	fmt.Println()
	flag.PrintDefaults()
}
