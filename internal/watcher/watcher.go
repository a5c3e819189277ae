// Package watcher re-reads the experiment document during a run and
// rebuilds run info when it changes, so condition updates take effect
// without restarting the analysis process.
package watcher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/openpore/channelmap/internal/config"
	"github.com/openpore/channelmap/internal/fetch"
	"github.com/openpore/channelmap/internal/metrics"
	"github.com/openpore/channelmap/internal/runinfo"
)

// UpdateFunc receives the result of a successful rebuild.
type UpdateFunc func(ctx context.Context, info runinfo.RunInfo, conds []runinfo.Condition, reference string)

// Watcher polls an experiment document and rebuilds run info on change.
type Watcher struct {
	Document    string
	NumChannels int
	Interval    time.Duration
	Builder     *runinfo.Builder
	OnUpdate    UpdateFunc

	log      *slog.Logger
	lastHash string
}

// New returns a watcher for the given document. builder may carry a
// target cache; onUpdate may be nil.
func New(document string, numChannels int, interval time.Duration, builder *runinfo.Builder, onUpdate UpdateFunc) *Watcher {
	return &Watcher{
		Document:    document,
		NumChannels: numChannels,
		Interval:    interval,
		Builder:     builder,
		OnUpdate:    onUpdate,
		log:         slog.With("component", "watcher"),
	}
}

// Run polls until the context is cancelled. The first rebuild happens
// immediately; subsequent rebuilds only run when the document content
// changes. Rebuild failures are logged and polling continues with the
// previous mapping in effect.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.poll(ctx); err != nil {
		w.log.Error("initial rebuild failed", "document", w.Document, "error", err)
	}

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.poll(ctx); err != nil {
				w.log.Error("rebuild failed", "document", w.Document, "error", err)
			}
		}
	}
}

// poll re-reads the document and rebuilds when its content hash moved.
func (w *Watcher) poll(ctx context.Context) error {
	data, err := fetch.ReadAll(ctx, w.Document)
	if err != nil {
		return err
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])
	if hash == w.lastHash {
		return nil
	}

	start := time.Now()
	raw, err := config.Decode(w.Document, data)
	if err != nil {
		w.countFailure()
		return err
	}
	exp, err := config.FromMap(raw)
	if err != nil {
		w.countFailure()
		return err
	}

	info, conds, reference, err := w.Builder.Build(ctx, exp, w.NumChannels)
	if err != nil {
		w.countFailure()
		return err
	}

	w.lastHash = hash
	w.log.Info("experiment document applied",
		"document", w.Document,
		"channels", len(info),
		"conditions", len(conds),
		"elapsed", time.Since(start))

	if m := metrics.Get(); m != nil {
		m.IncRebuilds(w.Document)
		m.ObserveRebuildDuration(w.Document, time.Since(start).Seconds())
		m.SetMapping(w.Document, len(info), len(conds))
	}

	if w.OnUpdate != nil {
		w.OnUpdate(ctx, info, conds, reference)
	}
	return nil
}

func (w *Watcher) countFailure() {
	if m := metrics.Get(); m != nil {
		m.IncRebuildsFailed(w.Document)
	}
}
