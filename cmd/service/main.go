package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/egandro/chartkit/pkg/config"
	"github.com/egandro/chartkit/pkg/logger"
	"github.com/egandro/chartkit/pkg/service"
)

const shutdownTimeout = 5 * time.Second

// overrides holds command line values that win over the config file.
type overrides struct {
	host     string
	port     int
	insecure bool
	logFile  string
	logLevel string
	locale   string
	currency string
	contrast float64
}

func (o overrides) apply(cfg *config.Config) {
	if o.host != "" {
		cfg.ServiceHost = o.host
	}
	if o.port != 0 {
		cfg.ServicePort = o.port
	}
	if o.insecure {
		cfg.InsecureAllowRemote = true
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}
	if o.currency != "" {
		cfg.Currency = o.currency
	}
	if o.contrast != 0 {
		cfg.ContrastTarget = o.contrast
	}
}

func openLog(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// logSink owns the log file so SIGHUP can swap it after rotation.
type logSink struct {
	path  string
	level slog.Level
	file  *os.File
}

// install points the default logger at the sink's file, or at fallback when
// the sink has no file.
func (l *logSink) install(fallback io.Writer) {
	var out io.Writer = fallback
	if l.file != nil {
		out = l.file
	}
	slog.SetDefault(slog.New(&logger.SimpleHandler{Output: out, Level: l.level}))
}

// reopen replaces the file with a fresh handle on the same path. A sink
// writing to stdout has nothing to reopen.
func (l *logSink) reopen() error {
	if l.file == nil {
		return nil
	}
	f, err := openLog(l.path)
	if err != nil {
		return err
	}
	_ = l.file.Close()
	l.file = f
	l.install(nil)
	return nil
}

func serviceDefaults(cfg *config.Config) service.Defaults {
	return service.Defaults{
		Locale:         cfg.Locale,
		Currency:       cfg.Currency,
		ContrastTarget: cfg.ContrastTarget,
	}
}

// waitForSignals rotates the log on SIGHUP and returns on the first
// SIGINT or SIGTERM.
func waitForSignals(sigs <-chan os.Signal, sink *logSink) {
	for sig := range sigs {
		switch sig {
		case syscall.SIGHUP:
			if err := sink.reopen(); err != nil {
				slog.Error("Failed to rotate log", "error", err)
				continue
			}
			slog.Log(context.Background(), logger.LevelNotice, "Log file rotated", "path", sink.path)
		case syscall.SIGINT, syscall.SIGTERM:
			return
		}
	}
}

func main() {
	var o overrides
	configFile := flag.String("config", config.ConstantConfigFilename, "Path to config file")
	flag.StringVar(&o.host, "host", "", "HTTP service host")
	flag.IntVar(&o.port, "port", 0, "HTTP service port")
	flag.BoolVar(&o.insecure, "insecure-allow-remote", false, "Allow binding to non-localhost addresses")
	flag.StringVar(&o.logFile, "log-file", "", "Path to log file")
	flag.StringVar(&o.logLevel, "log-level", "", "Log level (debug, info, notice, warn, error)")
	flag.StringVar(&o.locale, "locale", "", "Default locale for number formatting")
	flag.StringVar(&o.currency, "currency", "", "Default ISO 4217 currency code")
	flag.Float64Var(&o.contrast, "contrast-target", 0, "Default WCAG contrast target")
	toStdout := flag.Bool("stdout", false, "Log to stdout")
	flag.Parse()

	cfg := config.Load(*configFile)
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v, defaulting to INFO\n", err)
	}
	sink := &logSink{path: cfg.LogFile, level: level}
	if !*toStdout {
		if sink.file, err = openLog(cfg.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file %s: %v. Logging to stdout.\n", cfg.LogFile, err)
		}
	}
	sink.install(os.Stdout)

	s := service.New(cfg.ServiceHost, cfg.ServicePort, serviceDefaults(cfg))
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("Service failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	waitForSignals(sigChan, sink)

	slog.Info("Shutting down service...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
