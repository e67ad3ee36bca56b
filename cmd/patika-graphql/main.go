// patika-graphql serves an in-memory GraphQL event API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/feyzullahyildiz/patika-graphql/internal/seed"
	"github.com/feyzullahyildiz/patika-graphql/internal/store"
	"github.com/feyzullahyildiz/patika-graphql/pkg/config"
	"github.com/feyzullahyildiz/patika-graphql/pkg/graphql"
	"github.com/feyzullahyildiz/patika-graphql/pkg/logging"
	"github.com/feyzullahyildiz/patika-graphql/pkg/resolver"
)

// Build-time variables set via ldflags.
var version = "dev"

// shutdownTimeout is the maximum time to wait for graceful shutdown.
const shutdownTimeout = 30 * time.Second

type serveFlags struct {
	addr            string
	path            string
	configFile      string
	seedFile        string
	logLevel        string
	logFormat       string
	noIntrospection bool
	noPlayground    bool
}

var flagVals serveFlags

var rootCmd = &cobra.Command{
	Use:     "patika-graphql",
	Short:   "In-memory GraphQL API for users, events, locations and participants",
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the GraphQL server (default command)",
	Example: `  # Start with defaults on :4000
  patika-graphql serve

  # Custom address and seed dataset
  patika-graphql serve --addr :8080 --seed seed.yaml

  # Load settings from a config file
  patika-graphql serve --config config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().StringVar(&flagVals.addr, "addr", ":4000", "listen address")
		cmd.Flags().StringVar(&flagVals.path, "path", "/graphql", "GraphQL endpoint path")
		cmd.Flags().StringVar(&flagVals.configFile, "config", "", "config file (YAML or JSON)")
		cmd.Flags().StringVar(&flagVals.seedFile, "seed", "", "seed dataset file (YAML or JSON)")
		cmd.Flags().StringVar(&flagVals.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
		cmd.Flags().StringVar(&flagVals.logFormat, "log-format", "text", "log format (text, json)")
		cmd.Flags().BoolVar(&flagVals.noIntrospection, "no-introspection", false, "disable schema introspection")
		cmd.Flags().BoolVar(&flagVals.noPlayground, "no-playground", false, "disable the GraphiQL page")
	}
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the config file (if any) with command-line flags.
// Flags that were set explicitly win over file values.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if flagVals.configFile != "" {
		var err error
		cfg, err = config.LoadFromFile(flagVals.configFile)
		if err != nil {
			return cfg, err
		}
	}

	if cmd.Flags().Changed("addr") {
		cfg.Addr = flagVals.addr
	}
	if cmd.Flags().Changed("path") {
		cfg.Path = flagVals.path
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = flagVals.seedFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagVals.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flagVals.logFormat
	}
	if flagVals.noIntrospection {
		cfg.Introspection = false
	}
	if flagVals.noPlayground {
		cfg.Playground = false
	}

	return cfg, cfg.Validate()
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
	})

	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	st := store.New(data)
	res := resolver.New(st)
	executor := graphql.NewExecutor(graphql.MustSchema(), res, graphql.Options{
		Introspection: cfg.Introspection,
	})
	handler := graphql.NewHandler(executor, graphql.HandlerOptions{
		Playground: cfg.Playground,
		Logger:     logger,
	})

	mux := http.NewServeMux()
	mux.Handle(cfg.Path, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			"addr", cfg.Addr,
			"path", cfg.Path,
			"users", st.Users.Count(),
			"events", st.Events.Count(),
			"locations", st.Locations.Count(),
			"participants", st.Participants.Count(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
