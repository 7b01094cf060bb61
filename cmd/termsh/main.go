package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/viant/termsh"
	"github.com/viant/termsh/console"
	"github.com/viant/termsh/gateway"
)

var (
	configURL = flag.String("config", "", "configuration document URL (YAML)")
	mode      = flag.String("mode", "", "front end: console or web (default console, env TERMSH_MODE)")
	host      = flag.String("host", "", "web server host override")
	port      = flag.Int("port", 0, "web server port override")
	workdir   = flag.String("workdir", "", "initial working directory override")
	traceFile = flag.String("trace", "", "write traces to a file; 'stdout' writes to standard output")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	options := []termsh.Option{termsh.WithConfig(config)}
	if *traceFile != "" {
		output := *traceFile
		if output == "stdout" {
			output = ""
		}
		options = append(options, termsh.WithTracing("termsh", "0.1.0", output))
	}
	service := termsh.New(options...)

	switch resolveMode() {
	case "web":
		return runWeb(ctx, service)
	case "console":
		return runConsole(ctx, service)
	default:
		return fmt.Errorf("unknown mode %q (expected console or web)", resolveMode())
	}
}

func loadConfig(ctx context.Context) (*termsh.Config, error) {
	config := termsh.DefaultConfig()
	if *configURL != "" {
		loaded, err := termsh.LoadConfig(ctx, *configURL)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if *workdir != "" {
		config.Workdir = *workdir
	}
	if *host != "" {
		config.Server.Host = *host
	}
	if *port != 0 {
		config.Server.Port = *port
	}
	return config, config.Validate()
}

func resolveMode() string {
	if *mode != "" {
		return *mode
	}
	if env := os.Getenv("TERMSH_MODE"); env != "" {
		return env
	}
	return "console"
}

func runConsole(ctx context.Context, service *termsh.Service) error {
	terminal, err := service.NewTerminal()
	if err != nil {
		return err
	}
	defer terminal.Close()

	repl, err := console.New(terminal, service.Config().Console.HistoryFile)
	if err != nil {
		return err
	}
	return repl.Run(ctx)
}

func runWeb(ctx context.Context, service *termsh.Service) error {
	server := gateway.New(service)

	errs := make(chan error, 1)
	go func() {
		errs <- server.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-signals:
		log.Printf("received %v, shutting down", sig)
		return server.Shutdown(ctx)
	}
}
