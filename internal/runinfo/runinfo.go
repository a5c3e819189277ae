// Package runinfo combines a flowcell partition with an experiment
// document to produce the channel to condition lookup used by live
// analysis.
package runinfo

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/openpore/channelmap/internal/cache"
	"github.com/openpore/channelmap/internal/config"
	"github.com/openpore/channelmap/internal/flowcell"
	"github.com/openpore/channelmap/internal/targets"
)

// Condition is one experimental rule, assigned to a block of channels.
// Targets is the set of contig names referenced by Coords; the raw
// descriptor strings from the document are not retained. Extra carries
// every other configuration field verbatim.
type Condition struct {
	Name    string
	Targets map[string]struct{}
	Coords  targets.Map
	Extra   map[string]any
}

// RunInfo maps a channel number to an index into the ordered condition
// list.
type RunInfo map[int]int

// Builder resolves experiment documents into run info. The zero value is
// usable; Cache, when set, avoids re-parsing file-backed target lists
// across rebuilds.
type Builder struct {
	Cache cache.TargetCache
	log   *slog.Logger
}

// NewBuilder returns a Builder using the given target cache (may be nil).
func NewBuilder(c cache.TargetCache) *Builder {
	return &Builder{
		Cache: c,
		log:   slog.With("component", "runinfo"),
	}
}

// Build produces the channel lookup, the ordered condition records and
// the shared reference for an experiment on a flowcell with numChannels
// channels.
//
// Condition names are taken in ascending order, or shuffled when the
// document sets maintain_order = false. The flowcell is split into one
// block per condition along the document's axis, and the i-th block is
// paired with the i-th ordered condition. Block order along the axis is
// never reconciled with condition naming; the pairing is positional.
func (b *Builder) Build(ctx context.Context, exp *config.Experiment, numChannels int) (RunInfo, []Condition, string, error) {
	names := exp.Names()
	if !exp.MaintainOrder {
		shuffle(names, exp.Seed)
	}

	groups, err := flowcell.Split(numChannels, len(names), exp.Axis)
	if err != nil {
		return nil, nil, "", fmt.Errorf("partition flowcell: %w", err)
	}

	conditions := make([]Condition, 0, len(names))
	for _, name := range names {
		spec := exp.Conditions[name]
		coords, err := b.resolveTargets(ctx, spec)
		if err != nil {
			return nil, nil, "", fmt.Errorf("condition %q: %w", name, err)
		}
		conditions = append(conditions, Condition{
			Name:    name,
			Targets: coords.Contigs(),
			Coords:  coords,
			Extra:   spec.Fields,
		})
	}

	info := make(RunInfo, numChannels)
	for pos, group := range groups {
		for _, ch := range group {
			if ch == 0 {
				continue // unoccupied cell, not a channel
			}
			info[ch] = pos
		}
	}

	if b.log != nil {
		b.log.Info("run info built",
			"channels", len(info),
			"conditions", len(conditions),
			"axis", exp.Axis)
	}
	return info, conditions, exp.Reference, nil
}

// resolveTargets parses a condition's targets, consulting the cache for
// file-backed target lists.
func (b *Builder) resolveTargets(ctx context.Context, spec config.ConditionSpec) (targets.Map, error) {
	key, cacheable := spec.Targets.(string)
	if cacheable && b.Cache != nil {
		if m, ok, err := b.Cache.Get(ctx, key); err == nil && ok {
			return m, nil
		} else if err != nil && b.log != nil {
			b.log.Warn("target cache read failed", "key", key, "error", err)
		}
	}

	m, err := targets.Resolve(ctx, spec.Targets)
	if err != nil {
		return nil, err
	}

	if cacheable && b.Cache != nil {
		if err := b.Cache.Put(ctx, key, m); err != nil && b.log != nil {
			b.log.Warn("target cache write failed", "key", key, "error", err)
		}
	}
	return m, nil
}

// Build is a convenience wrapper using no target cache.
func Build(ctx context.Context, exp *config.Experiment, numChannels int) (RunInfo, []Condition, string, error) {
	return NewBuilder(nil).Build(ctx, exp, numChannels)
}

func shuffle(names []string, seed *int64) {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	rand.New(rand.NewSource(s)).Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})
}
