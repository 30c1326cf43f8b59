package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/slideshow"
	ahttp "github.com/aretw0/slideshow/internal/adapters/http"
	"github.com/aretw0/slideshow/internal/presentation/tui"
	"github.com/aretw0/slideshow/pkg/deck"
	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/aretw0/slideshow/pkg/observability"
	"github.com/aretw0/slideshow/pkg/ports"
	"github.com/aretw0/slideshow/pkg/runner"
	"github.com/aretw0/slideshow/pkg/terminal"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsShutdownTimeout = 2 * time.Second

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	DeckPath      string
	Demo          bool
	Debug         bool
	ClearOnError  bool
	NoBanner      bool
	Plain         bool // force the Ascii profile
	Interruptible bool
	Quiet         bool // no system messages
	MarkdownStyle string
	Width         int
	MetricsAddr   string // serve /metrics and /status when set

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	// Sleeper defaults to clock.Default.
	Sleeper ports.Sleeper
}

// Execute runs a deck file, or the built-in demo, on the terminal.
func Execute(opts RunOptions) error {
	in, out := opts.Stdin, opts.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	logger := createLogger(opts.Debug)

	var termOpts []terminal.Option
	if opts.Plain {
		termOpts = append(termOpts, terminal.WithProfile(termenv.Ascii))
	}
	term := terminal.New(in, out, termOpts...)
	logger.Debug("Terminal Ready", "tty", term.IsTTY(), "profile", term.Profile())

	wait := domain.WaitForInteraction{Interruptible: opts.Interruptible}
	slides, err := loadSlides(opts, term, wait)
	if err != nil {
		return err
	}
	if !opts.NoBanner {
		slides = append([]runner.Slide{bannerSlide(term)}, slides...)
	}

	presenterOpts := []slideshow.Option{
		slideshow.WithTerminal(term),
		slideshow.WithLogger(logger),
		slideshow.WithClearOnError(opts.ClearOnError),
		slideshow.WithInterruptible(opts.Interruptible),
	}
	var hooks runner.Hooks
	if opts.Debug {
		hooks = createDebugHooks(logger)
	}
	if opts.MetricsAddr != "" {
		metrics, stop, err := startMetrics(opts.MetricsAddr, logger)
		if err != nil {
			return err
		}
		defer stop()
		hooks = metrics.Hooks(hooks)
	}
	presenterOpts = append(presenterOpts, slideshow.WithHooks(hooks))
	if opts.Sleeper != nil {
		presenterOpts = append(presenterOpts, slideshow.WithSleeper(opts.Sleeper))
	}
	p := slideshow.New(presenterOpts...)

	sc := NewSignalContext(context.Background())
	defer sc.Cancel()

	done := make(chan error, 1)
	go func() {
		done <- p.Present(sc, slides...)
	}()

	select {
	case err = <-done:
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	case <-sc.Done():
		// The rendering goroutine may still hold the output buffer or be
		// blocked on a read, so only the device is restored here.
		err = sc.Err()
		if rerr := term.RestoreDevice(); rerr != nil {
			logger.Debug("terminal restore failed", "err", rerr)
		}
	}

	logCompletion(out, len(slides), err, opts.Quiet, sc.Signal())
	return handleExecutionError(err)
}

func loadSlides(opts RunOptions, term *terminal.Terminal, wait domain.WaitForInteraction) ([]runner.Slide, error) {
	if opts.Demo || opts.DeckPath == "" {
		return DemoSlides(term, wait), nil
	}

	d, err := deck.Load(opts.DeckPath)
	if err != nil {
		return nil, err
	}

	style := opts.MarkdownStyle
	if style == "" && (opts.Plain || !term.IsTTY()) {
		style = "notty"
	}
	render, err := tui.NewRenderer(style, opts.Width)
	if err != nil {
		return nil, err
	}

	slides, err := d.Build(
		deck.WithProfile(term.Profile()),
		deck.WithMarkdownRenderer(render),
		deck.WithInteraction(wait),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.DeckPath, err)
	}
	return slides, nil
}

// startMetrics serves presentation metrics on addr until stop is called.
func startMetrics(addr string, logger *slog.Logger) (*observability.Metrics, func(), error) {
	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	srv, err := ahttp.Start(addr, ahttp.NewHandler(metrics, reg), logger)
	if err != nil {
		return nil, nil, err
	}
	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Debug("metrics server shutdown failed", "err", err)
		}
	}
	return metrics, stop, nil
}

func bannerSlide(term *terminal.Terminal) runner.Slide {
	var b strings.Builder
	tui.PrintBanner(&b, term.Profile(), strings.TrimSpace(slideshow.Version))
	return runner.Slide{
		terminal.Print(b.String()),
		terminal.Println(term.Style().Faint().Styled("  Press Enter to begin.")),
	}
}
