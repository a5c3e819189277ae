// Package targets parses target region descriptors into per-strand,
// per-contig coordinate intervals and answers position membership
// queries against them.
package targets

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrBadDescriptor is returned when a descriptor line cannot be parsed.
var ErrBadDescriptor = errors.New("malformed target descriptor")

// Interval is a coordinate range on a contig. Either bound may be +Inf,
// and the bounds are not required to be ordered.
type Interval struct {
	Start float64
	End   float64
}

// WholeContig matches every position on a contig.
var WholeContig = Interval{0, math.Inf(1)}

// Between reports whether pos lies within the interval, inclusive of both
// bounds. Unordered and infinite bounds are handled symmetrically.
func Between(pos float64, iv Interval) bool {
	return math.Min(iv.Start, iv.End) <= pos && pos <= math.Max(iv.Start, iv.End)
}

// MarshalJSON encodes the interval as a two-element array, with infinite
// bounds written as the string "inf" (JSON has no Inf literal).
func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{encodeBound(iv.Start), encodeBound(iv.End)})
}

// UnmarshalJSON decodes the array form produced by MarshalJSON.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var raw [2]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	start, err := decodeBound(raw[0])
	if err != nil {
		return err
	}
	end, err := decodeBound(raw[1])
	if err != nil {
		return err
	}
	iv.Start, iv.End = start, end
	return nil
}

func encodeBound(v float64) any {
	if math.IsInf(v, 1) {
		return "inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return v
}

func decodeBound(v any) (float64, error) {
	switch b := v.(type) {
	case float64:
		return b, nil
	case string:
		switch b {
		case "inf":
			return math.Inf(1), nil
		case "-inf":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("invalid interval bound %v", v)
}

// Map holds parsed target regions: strand ("+" or "-") to contig name to
// an ordered list of intervals.
type Map map[string]map[string][]Interval

// Contigs returns the set of contig names referenced on any strand.
func (m Map) Contigs() map[string]struct{} {
	set := make(map[string]struct{})
	for _, contigs := range m {
		for name := range contigs {
			set[name] = struct{}{}
		}
	}
	return set
}

// add appends an interval for a contig on one strand.
func (m Map) add(strand, contig string, iv Interval) {
	contigs, ok := m[strand]
	if !ok {
		contigs = make(map[string][]Interval)
		m[strand] = contigs
	}
	contigs[contig] = append(contigs[contig], iv)
}

// Parse converts descriptor lines of the form contig[,start,end[,strand]]
// into a target map. A bare contig matches everywhere on both strands.
// When coordinates are present, the final token is the strand symbol and
// the remaining numeric tokens are taken as consecutive (start, end)
// pairs, all appended to that strand's list for the contig. Descriptors
// for the same contig and strand accumulate.
func Parse(descriptors []string) (Map, error) {
	m := make(Map)
	for _, line := range descriptors {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		contig := fields[0]
		coords := fields[1:]

		if len(coords) == 0 {
			for _, strand := range []string{"+", "-"} {
				m.add(strand, contig, WholeContig)
			}
			continue
		}

		strand := coords[len(coords)-1]
		coords = coords[:len(coords)-1]
		if len(coords) == 0 || len(coords)%2 != 0 {
			return nil, fmt.Errorf("%w: %q has %d coordinate tokens", ErrBadDescriptor, line, len(coords))
		}

		for i := 0; i < len(coords); i += 2 {
			start, err := strconv.ParseFloat(coords[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadDescriptor, line, err)
			}
			end, err := strconv.ParseFloat(coords[i+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadDescriptor, line, err)
			}
			m.add(strand, contig, Interval{start, end})
		}
	}
	return m, nil
}
