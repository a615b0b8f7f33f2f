package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"github.com/umputun/newspager/pkg/config"
	"github.com/umputun/newspager/pkg/content"
	"github.com/umputun/newspager/pkg/llm"
	"github.com/umputun/newspager/pkg/notifier"
	"github.com/umputun/newspager/pkg/scheduler"
	"github.com/umputun/newspager/pkg/scrape"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"config.yml" description:"config file"`
	Once   bool   `long:"once" description:"run a single round and exit"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	// pick up .env if present, real environment wins
	_ = godotenv.Load()

	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug, opts.NoColor)

	lgr.Printf("[INFO] starting newspager version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		lgr.Printf("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		lgr.Printf("[ERROR] newspager failed: %v", err)
		os.Exit(1)
	}

	lgr.Printf("[INFO] shutdown complete")
}

// run loads the config, wires the pipeline and drives the scheduler until the
// context is canceled
func run(ctx context.Context, opts Opts) error {
	conf, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("load config %s: %w", opts.Config, err)
	}

	// an unknown provider must stop the process before the first run
	provider, err := conf.LLM.ActiveProvider()
	if err != nil {
		return fmt.Errorf("resolve llm provider: %w", err)
	}
	lgr.Printf("[INFO] llm provider %s, model %s", provider.Name, provider.Model)

	// repeat log setup with credentials masked
	var secrets []string
	if conf.SMS.AuthToken != "" {
		secrets = append(secrets, conf.SMS.AuthToken)
	}
	if provider.APIKey != "" {
		secrets = append(secrets, provider.APIKey)
	}
	setupLog(opts.Debug, opts.NoColor, secrets...)

	lister := makeLister(conf)

	var enricher scheduler.Enricher
	if conf.Enrich.Enabled {
		extractor := content.NewHTTPExtractor(conf.Enrich.Timeout, conf.Scrape.UserAgent)
		enricher = content.NewEnricher(extractor, conf.Scrape.URL, conf.Enrich.Top, conf.Enrich.MaxConcurrent)
		lgr.Printf("[INFO] article enrichment on for top %d stories", conf.Enrich.Top)
	}

	digester := llm.NewDigester(provider, conf.LLM, conf.Scrape.URL)
	texter := notifier.NewSMS(conf.SMS)

	sched := scheduler.NewScheduler(lister, enricher, digester, texter, conf.Schedule.Interval)

	if opts.Once {
		report := sched.RunOnce(ctx)
		if report.Err != nil {
			return fmt.Errorf("run failed: %w", report.Err)
		}
		if report.SendErr != nil {
			return fmt.Errorf("digest made but not delivered: %w", report.SendErr)
		}
		return nil
	}

	sched.Run(ctx)
	return nil
}

// makeLister picks the story source for the configured scrape mode
func makeLister(conf *config.Config) scheduler.Lister {
	if conf.Scrape.Mode == "feed" {
		lgr.Printf("[INFO] reading %s via feed mirror", conf.Scrape.FeedURL)
		return scrape.NewFeedPage(conf.Scrape.FeedURL, conf.Scrape.Timeout, conf.Scrape.UserAgent)
	}

	lgr.Printf("[INFO] rendering %s in headless browser", conf.Scrape.URL)
	renderer := scrape.NewChromeRenderer(conf.Scrape.Timeout, conf.Scrape.UserAgent)
	return scrape.NewFrontPage(renderer, conf.Scrape.URL)
}

func setupLog(dbg, noColor bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	if !noColor {
		colorizer := lgr.Mapper{
			ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
			WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
			InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
			DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
			CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
			TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
		}
		logOpts = append(logOpts, lgr.Map(colorizer))
	}

	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
