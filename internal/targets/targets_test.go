package targets

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestParseSingleDescriptor(t *testing.T) {
	m, err := Parse([]string{"chr1,10,20,+"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	plus := m["+"]["chr1"]
	if len(plus) != 1 || plus[0] != (Interval{10, 20}) {
		t.Errorf("chr1 + strand = %v, want [(10, 20)]", plus)
	}
	if _, ok := m["-"]; ok {
		t.Errorf("unexpected '-' strand entry: %v", m["-"])
	}
}

func TestParseBareContig(t *testing.T) {
	m, err := Parse([]string{"chr1"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, strand := range []string{"+", "-"} {
		ivs := m[strand]["chr1"]
		if len(ivs) != 1 {
			t.Fatalf("strand %s has %d intervals, want 1", strand, len(ivs))
		}
		if ivs[0].Start != 0 || !math.IsInf(ivs[0].End, 1) {
			t.Errorf("strand %s interval = %v, want (0, +Inf)", strand, ivs[0])
		}
	}
}

func TestParseAccumulates(t *testing.T) {
	m, err := Parse([]string{
		"chr1,10,20,+",
		"chr1,50,60,+",
		"chr2,5,15,-",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := len(m["+"]["chr1"]); got != 2 {
		t.Errorf("chr1 + strand has %d intervals, want 2", got)
	}
	if got := len(m["-"]["chr2"]); got != 1 {
		t.Errorf("chr2 - strand has %d intervals, want 1", got)
	}
}

func TestParseMultiplePairs(t *testing.T) {
	m, err := Parse([]string{"chr1,10,20,100,200,+"})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ivs := m["+"]["chr1"]
	if len(ivs) != 2 || ivs[0] != (Interval{10, 20}) || ivs[1] != (Interval{100, 200}) {
		t.Errorf("intervals = %v, want [(10, 20) (100, 200)]", ivs)
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []string{
		"chr1,ten,20,+",
		"chr1,10,xx,-",
		"chr1,10,+", // odd coordinate count
		"chr1,10,20,30,+",
	}
	for _, line := range tests {
		if _, err := Parse([]string{line}); !errors.Is(err, ErrBadDescriptor) {
			t.Errorf("Parse(%q) error = %v, want ErrBadDescriptor", line, err)
		}
	}
}

func TestContigs(t *testing.T) {
	m, _ := Parse([]string{"chr1,10,20,+", "chr2", "chr1,30,40,-"})
	set := m.Contigs()
	if len(set) != 2 {
		t.Fatalf("Contigs() = %v, want chr1 and chr2", set)
	}
	for _, want := range []string{"chr1", "chr2"} {
		if _, ok := set[want]; !ok {
			t.Errorf("Contigs() missing %s", want)
		}
	}
}

func TestBetween(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		pos  float64
		iv   Interval
		want bool
	}{
		{500, Interval{0, inf}, true},
		{5, Interval{10, 100}, false},
		{-1, Interval{0, inf}, false},
		{10, Interval{10, 100}, true},
		{100, Interval{10, 100}, true},
		{50, Interval{100, 10}, true}, // unordered bounds
	}

	for _, tt := range tests {
		if got := Between(tt.pos, tt.iv); got != tt.want {
			t.Errorf("Between(%v, %v) = %v, want %v", tt.pos, tt.iv, got, tt.want)
		}
	}
}

func TestIntervalJSONRoundTrip(t *testing.T) {
	ivs := []Interval{{10, 20}, {0, math.Inf(1)}}
	data, err := json.Marshal(ivs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back []Interval
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0] != ivs[0] {
		t.Errorf("finite interval round-trip = %v, want %v", back[0], ivs[0])
	}
	if back[1].Start != 0 || !math.IsInf(back[1].End, 1) {
		t.Errorf("infinite interval round-trip = %v", back[1])
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.csv")
	content := "chr1,10,20,+\nchr2\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m["+"]["chr1"]) != 1 || len(m["+"]["chr2"]) != 1 || len(m["-"]["chr2"]) != 1 {
		t.Errorf("unexpected map from file: %v", m)
	}
}

func TestLoadFromGzipFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "targets.csv.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("chr1,10,20,+\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	m, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m["+"]["chr1"]) != 1 {
		t.Errorf("unexpected map from gzip file: %v", m)
	}
}

// A string that is not a file is treated as a bare descriptor.
func TestLoadBareDescriptor(t *testing.T) {
	m, err := Load(context.Background(), "chr9")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m["+"]["chr9"]) != 1 || len(m["-"]["chr9"]) != 1 {
		t.Errorf("unexpected map from bare descriptor: %v", m)
	}
}
