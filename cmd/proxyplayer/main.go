// Command proxyplayer decodes a media file in one pipeline and plays its
// video and audio from two other pipelines linked through proxysink and
// proxysrc, with a window to play, pause and seek each of them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/tinyzimmer/go-gst/gst"
	"golang.org/x/sync/errgroup"

	"github.com/basheuft/proxyplayer"
	"github.com/basheuft/proxyplayer/internal/config"
	"github.com/basheuft/proxyplayer/internal/dotfile"
	"github.com/basheuft/proxyplayer/internal/position"
	"github.com/basheuft/proxyplayer/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Println("Need 1 parameter")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.Logging.Level)

	if err := run(flag.Arg(0), cfg); err != nil {
		slog.Error("proxyplayer failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	if os.Getenv("DEBUG") != "" {
		l = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

func run(file string, cfg *config.Config) error {
	uri, err := config.ResolveInput(file)
	if err != nil {
		return err
	}

	dotDir, err := dotfile.Setup(cfg.Dot.Dir)
	if err != nil {
		return err
	}
	slog.Info("dot graphs enabled", dotfile.EnvDir, dotDir)

	gst.Init(nil)

	graph, err := proxyplayer.CreateGraph(uri, proxyplayer.Sinks{
		Video: cfg.Sinks.Video,
		Audio: cfg.Sinks.Audio,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := graph.Stop(); err != nil {
			slog.Error("stopping graph", "error", err)
		}
	}()

	pipes := graph.Pipes()
	ctrls := make([]ui.Controller, len(pipes))
	sources := make([]position.Source, len(pipes))
	for i, p := range pipes {
		ctrls[i] = p
		sources[i] = p
	}

	a := app.New()
	panel := ui.NewPanel(ctrls)
	w := ui.NewWindow(a, cfg.Window.Title, fyne.NewSize(cfg.Window.Width, cfg.Window.Height), panel)

	if err := graph.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	for _, p := range pipes {
		g.Go(func() error {
			return proxyplayer.WatchBus(ctx, p)
		})
	}

	dotWindow := position.Window{From: cfg.Dot.From, To: cfg.Dot.To}
	poller := &position.Poller{
		Interval: cfg.Poll.Interval,
		Sources:  sources,
		OnReport: func(r position.Report) {
			slog.Info(fmt.Sprintf("Position[%s]: %s", r.Name, position.Format(r.Position, r.Valid)))
			if !r.Valid {
				return
			}
			fyne.Do(func() {
				panel.SetPosition(r.Index, r.Position, r.Duration)
			})
			if dotWindow.Contains(r.Position) {
				path := pipes[r.Index].DumpDot(dotDir)
				slog.Info("dot graph written", "pipeline", r.Name, "file", path)
			}
		},
	}
	g.Go(func() error {
		return poller.Run(ctx)
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			slog.Info("received signal, shutting down", "signal", sig)
			fyne.Do(a.Quit)
		case <-ctx.Done():
		}
	}()

	w.ShowAndRun()

	cancel()
	return g.Wait()
}
