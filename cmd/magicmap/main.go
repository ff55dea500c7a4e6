// Command magicmap loads a theme-park map and serves route queries over it.
//
// Usage:
//
//	magicmap [-config file] [-env file] [mode]
//
// Modes:
//
//	nav      interactive navigation on stdin/stdout (default)
//	serve    JSON HTTP API on http_addr
//	verify   check that every attraction reaches every other one
//	dot      print the map as Graphviz DOT; -from/-to highlight a route
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/config"
	"github.com/katalvlaran/magicmap/connectivity"
	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/loader"
	"github.com/katalvlaran/magicmap/logger"
	"github.com/katalvlaran/magicmap/navigator"
	"github.com/katalvlaran/magicmap/render"
	"github.com/katalvlaran/magicmap/routing"
	"github.com/katalvlaran/magicmap/server"
)

var errDisconnected = errors.New("park map is not fully connected")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "magicmap:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("magicmap", flag.ContinueOnError)
	cfgFile := fs.String("config", "", "config file (yaml, json or toml)")
	envFile := fs.String("env", ".env", "dotenv file")
	from := fs.Int64("from", 0, "dot: route start")
	to := fs.Int64("to", 0, "dot: route end")
	accessible := fs.Bool("accessible", false, "dot: highlight the accessible route")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := []config.Option{config.WithEnvFile(*envFile)}
	if *cfgFile != "" {
		opts = append(opts, config.WithFile(*cfgFile))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logger())
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	g, err := loader.LoadFiles(cfg.NodesFile, cfg.EdgesFile, loader.WithLogger(log))
	if err != nil {
		return err
	}
	routeOpts, err := cfg.RoutingOptions()
	if err != nil {
		return err
	}
	routeOpts = append(routeOpts, routing.WithLogger(log))

	switch mode := fs.Arg(0); mode {
	case "", "nav":
		return navigator.New(g, os.Stdin, os.Stdout,
			navigator.WithLogger(log),
			navigator.WithRoutingOptions(routeOpts...),
		).Run()

	case "serve":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.ListenAndServe(ctx, cfg.HTTPAddr, server.NewHandler(g, log, routeOpts...))

	case "verify":
		return verify(g, log)

	case "dot":
		var dotOpts []render.Option
		if flagSet(fs, "from") || flagSet(fs, "to") {
			path, err := routePath(g, *from, *to, *accessible, routeOpts)
			if err != nil {
				return err
			}
			dotOpts = append(dotOpts, render.WithWeights(), render.WithRoute(path))
		}
		return render.WriteDOT(os.Stdout, g, dotOpts...)

	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})

	return set
}

func verify(g *core.Graph, log *zap.Logger) error {
	from, to, broken := connectivity.FirstUnreachable(g)
	if broken {
		log.Warn("unreachable pair", zap.Int64("from", from), zap.Int64("to", to))
		fmt.Printf("Not every attraction is reachable: no path from %d to %d.\n", from, to)
		return errDisconnected
	}
	fmt.Println("Every attraction is reachable from every other attraction.")

	return nil
}

func routePath(g *core.Graph, from, to int64, accessible bool, opts []routing.Option) ([]int64, error) {
	find := routing.FindShortestPath
	if accessible {
		find = routing.FindShortestPathAccessible
	}
	r, err := find(g, from, to, opts...)
	if err != nil {
		return nil, err
	}
	if !r.Found {
		return nil, r.Err()
	}

	return r.Path(), nil
}
