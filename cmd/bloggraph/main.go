package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/hanpama/bloggraph/internal/eventbus"
	"github.com/hanpama/bloggraph/internal/otel"
	"github.com/hanpama/bloggraph/internal/registry"
	"github.com/hanpama/bloggraph/internal/server"
	"github.com/hanpama/bloggraph/internal/store"
)

const rootUsage = `bloggraph — graph query server over a blog dataset

USAGE:
  bloggraph <command> [flags]

COMMANDS:
  serve            Run the HTTP server (REST + graph query endpoint)
  dump-seed        Print the built-in seed dataset as JSON
  help             Show help for any command
`

const serveUsage = `serve FLAGS:
  -server.addr <addr>          HTTP listen address (default: :4000)
  -server.pretty               Pretty-print JSON responses
  -server.timeout <duration>   Per-request timeout, e.g. 10s (default: 10s)
  -server.max-body <bytes>     Request body size limit (default: 1048576; 0 = unlimited)
  -server.cors-origin <origin> Allowed CORS origin. Repeatable; use * for any
  -data.file <file>            Load the dataset from a JSON file instead of the seed
  -otel.endpoint <addr>        OTLP collector endpoint
  -otel.service <name>         OpenTelemetry service name (default: bloggraph)
`

const dumpSeedUsage = `dump-seed FLAGS:
  -out <file>   Write the dataset to a file (default: stdout)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "serve":
		return cmdServe(cmdArgs)
	case "dump-seed":
		return cmdDumpSeed(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	case "dump-seed":
		fmt.Print(dumpSeedUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

type stringListFlag []string

func (s *stringListFlag) String() string { return "" }

func (s *stringListFlag) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func cmdServe(args []string) error {
	addr := ":4000"
	pretty := false
	timeout := 10 * time.Second
	maxBody := int64(1 << 20)
	dataFile := ""
	otelEndpoint := ""
	otelService := "bloggraph"
	var corsOrigins stringListFlag

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&addr, "server.addr", addr, "HTTP listen address")
	fs.BoolVar(&pretty, "server.pretty", pretty, "Pretty-print JSON responses")
	fs.DurationVar(&timeout, "server.timeout", timeout, "Per-request timeout")
	fs.Int64Var(&maxBody, "server.max-body", maxBody, "Request body size limit")
	fs.Var(&corsOrigins, "server.cors-origin", "Allowed CORS origin")
	fs.StringVar(&dataFile, "data.file", dataFile, "Dataset JSON file")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}

	st, err := loadStore(dataFile)
	if err != nil {
		return err
	}
	reg := registry.New(st)

	eventbus.Use(eventbus.New())
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	var sopts []server.Option
	if pretty {
		sopts = append(sopts, server.WithPretty())
	}
	if timeout > 0 {
		sopts = append(sopts, server.WithTimeout(timeout))
	}
	if maxBody > 0 {
		sopts = append(sopts, server.WithMaxBodyBytes(maxBody))
	}
	if len(corsOrigins) > 0 {
		sopts = append(sopts, server.WithCORS(corsOrigins...))
	}
	srv := server.New(reg, st, sopts...)

	log.Printf("bloggraph listening on %s", addr)
	log.Printf("graph query endpoint available at http://localhost%s/graphql", addr)
	return http.ListenAndServe(addr, srv)
}

func loadStore(dataFile string) (*store.Store, error) {
	if dataFile == "" {
		return store.Seed(), nil
	}
	f, err := os.Open(dataFile)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	st, err := store.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load dataset %s: %w", dataFile, err)
	}
	return st, nil
}

func cmdDumpSeed(args []string) error {
	outFile := ""
	fs := flag.NewFlagSet("dump-seed", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&outFile, "out", outFile, "Write the dataset to a file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, dumpSeedUsage)
		return err
	}

	data, err := json.MarshalIndent(store.SeedDataset(), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if outFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0644)
}
