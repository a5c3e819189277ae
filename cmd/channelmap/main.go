package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/openpore/channelmap/internal/cache"
	"github.com/openpore/channelmap/internal/config"
	"github.com/openpore/channelmap/internal/export"
	"github.com/openpore/channelmap/internal/logging"
	"github.com/openpore/channelmap/internal/metrics"
	"github.com/openpore/channelmap/internal/runinfo"
	"github.com/openpore/channelmap/internal/sequencer"
	"github.com/openpore/channelmap/internal/util"
	"github.com/openpore/channelmap/internal/watcher"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("[main] channelmap %s (%s)", export.Version, export.GitSHA)

	settings := config.MustLoad()

	var (
		document    string
		numChannels int
		outDir      string
		formats     string
		watch       bool
		interval    time.Duration
		metricsAddr string
		cacheName   string
		cacheDSN    string
		notifyHost  string
		notifyPort  int
		logFormat   string
		logLevel    string
	)

	flag.StringVar(&document, "document", "", "Experiment document (TOML or YAML; local path or bucket URL)")
	flag.IntVar(&numChannels, "channels", 512, "Total channels on the flowcell (126, 512 or 3000)")
	flag.StringVar(&outDir, "out", settings.Export.Dir, "Directory for run-info exports")
	flag.StringVar(&formats, "formats", settings.Export.Formats, "Comma-separated export formats: csv,parquet")
	flag.BoolVar(&watch, "watch", false, "Keep running and rebuild when the document changes")
	flag.DurationVar(&interval, "interval", settings.Watch.Interval, "Document poll interval in watch mode")
	flag.StringVar(&metricsAddr, "metrics", settings.Watch.MetricsAddr, "Prometheus listen address in watch mode (empty disables)")
	flag.StringVar(&cacheName, "cache", settings.Cache.Backend, "Target cache backend: memory or sqlite")
	flag.StringVar(&cacheDSN, "cache-dsn", settings.Cache.DSN, "Target cache DSN (sqlite file path)")
	flag.StringVar(&notifyHost, "notify-host", settings.Sequencer.Host, "Sequencer host for user messages (empty disables)")
	flag.IntVar(&notifyPort, "notify-port", settings.Sequencer.Port, "Sequencer control port")
	flag.StringVar(&logFormat, "log-format", settings.Log.Format, "Log format: text or json")
	flag.StringVar(&logLevel, "log-level", settings.Log.Level, "Log level: debug, info, warn, error")
	flag.Parse()

	if document == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	logging.Setup(logging.Config{Format: logFormat, Level: logLevel})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Graceful shutdown handler
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		log.Printf("[shutdown] received signal: %v", sig)
		cancel()
	}()

	targetCache, err := cache.New(cacheName, cacheDSN)
	if err != nil {
		log.Fatalf("[main] failed to create target cache: %v", err)
	}
	defer targetCache.Close()

	writer, err := export.NewWriter(outDir)
	if err != nil {
		log.Fatalf("[main] failed to create export writer: %v", err)
	}

	var device *sequencer.Client
	if notifyHost != "" {
		device = sequencer.NewClient(notifyHost, notifyPort)
	}

	builder := runinfo.NewBuilder(targetCache)
	onUpdate := makeUpdateHandler(document, numChannels, formats, writer, device)

	if !watch {
		exp, err := config.Load(ctx, document)
		if err != nil {
			log.Fatalf("[main] failed to load experiment document: %v", err)
		}
		info, conds, reference, err := builder.Build(ctx, exp, numChannels)
		if err != nil {
			log.Fatalf("[main] failed to build run info: %v", err)
		}
		onUpdate(ctx, info, conds, reference)
		log.Println("[main] channelmap finished")
		return
	}

	metrics.Init("channelmap")
	if metricsAddr != "" {
		go func() {
			log.Printf("[metrics] listening on %s", metricsAddr)
			if err := metrics.StartServer(metricsAddr); err != nil {
				log.Printf("[metrics] server stopped: %v", err)
			}
		}()
	}

	w := watcher.New(document, numChannels, interval, builder, onUpdate)
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("[main] watcher failed: %v", err)
	}
	log.Println("[main] channelmap stopped cleanly")
}

// makeUpdateHandler returns the callback run after every successful
// build: export the table, then tell the device.
func makeUpdateHandler(document string, numChannels int, formats string, writer *export.Writer, device *sequencer.Client) watcher.UpdateFunc {
	return func(ctx context.Context, info runinfo.RunInfo, conds []runinfo.Condition, reference string) {
		logger := logging.ExperimentLogger(document, numChannels, len(conds))
		logger.Info("run info ready", "channels", len(info), "reference", reference)

		rows := export.Rows(info, conds)
		manifest := export.NewManifest(numChannels, conds, reference)

		for _, format := range strings.Split(formats, ",") {
			var err error
			switch strings.TrimSpace(format) {
			case "csv":
				err = writer.WriteCSV("run_info.csv", rows, manifest)
			case "parquet":
				err = writer.WriteParquet("run_info.parquet", rows, manifest)
			case "":
				continue
			default:
				logger.Warn("unknown export format", "format", format)
				continue
			}
			if err != nil {
				logger.Error("export failed", "format", format, "error", err)
				if m := metrics.Get(); m != nil {
					m.IncExportErrors(document)
				}
			}
		}
		if err := writer.WriteManifest(manifest); err != nil {
			logger.Error("manifest write failed", "error", err)
		}

		if device != nil {
			names := make([]string, len(conds))
			for i, c := range conds {
				names[i] = c.Name
			}
			msg := fmt.Sprintf("channelmap: %d channels assigned across conditions %s",
				len(info), util.NiceJoin(names, ", ", "and"))
			if err := device.SendUserMessage(ctx, sequencer.SeverityInfo, msg); err != nil {
				logger.Warn("device message failed", "error", err)
				if m := metrics.Get(); m != nil {
					m.IncSequencerErrors(document)
				}
			}
		}
	}
}
