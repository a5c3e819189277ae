package flowcell

import (
	"errors"
	"testing"
)

func TestCoordsPromethION(t *testing.T) {
	tests := []struct {
		channel  int
		col, row int
	}{
		{1, 0, 0},
		{10, 9, 0},
		{11, 0, 1},
		{250, 9, 24},    // last channel of block 0
		{251, 10, 0},    // first channel of block 1
		{3000, 119, 24}, // last channel of block 11
	}

	for _, tt := range tests {
		col, row, err := Coords(tt.channel, SizePromethION)
		if err != nil {
			t.Errorf("Coords(%d, 3000) failed: %v", tt.channel, err)
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("Coords(%d, 3000) = (%d, %d), want (%d, %d)", tt.channel, col, row, tt.col, tt.row)
		}
	}
}

func TestCoordsErrors(t *testing.T) {
	if _, _, err := Coords(0, SizeMinION); !errors.Is(err, ErrChannelOutOfRange) {
		t.Errorf("Coords(0, 512) error = %v, want ErrChannelOutOfRange", err)
	}
	if _, _, err := Coords(513, SizeMinION); !errors.Is(err, ErrChannelOutOfRange) {
		t.Errorf("Coords(513, 512) error = %v, want ErrChannelOutOfRange", err)
	}
	if _, _, err := Coords(1, 128); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("Coords(1, 128) error = %v, want ErrUnknownSize", err)
	}
}

// Every valid channel must map to a distinct coordinate.
func TestCoordsInjective(t *testing.T) {
	for _, size := range []int{SizeFlongle, SizeMinION, SizePromethION} {
		seen := make(map[[2]int]int, size)
		for ch := 1; ch <= size; ch++ {
			col, row, err := Coords(ch, size)
			if err != nil {
				t.Fatalf("Coords(%d, %d) failed: %v", ch, size, err)
			}
			if prev, ok := seen[[2]int{col, row}]; ok {
				t.Fatalf("size %d: channels %d and %d share cell (%d, %d)", size, prev, ch, col, row)
			}
			seen[[2]int{col, row}] = ch
		}
	}
}

func TestGridShapes(t *testing.T) {
	tests := []struct {
		size       int
		rows, cols int
	}{
		{SizeFlongle, 10, 13},
		{SizeMinION, 16, 32},
		{SizePromethION, 25, 120},
	}

	for _, tt := range tests {
		g, err := Grid(tt.size)
		if err != nil {
			t.Fatalf("Grid(%d) failed: %v", tt.size, err)
		}
		if len(g) != tt.rows || len(g[0]) != tt.cols {
			t.Errorf("Grid(%d) shape = (%d, %d), want (%d, %d)", tt.size, len(g), len(g[0]), tt.rows, tt.cols)
		}
	}
}

func TestGridOrientation(t *testing.T) {
	// Rows are reversed: channel 1 sits at raw (col 31, row 0), which lands
	// in the last output row after reversal.
	g, err := Grid(SizeMinION)
	if err != nil {
		t.Fatal(err)
	}
	if got := g[15][31]; got != 1 {
		t.Errorf("Grid(512)[15][31] = %d, want 1", got)
	}

	// Flongle's top-right corner cell is unoccupied.
	f, err := Grid(SizeFlongle)
	if err != nil {
		t.Fatal(err)
	}
	if got := f[9][12]; got != 0 {
		t.Errorf("Grid(126)[9][12] = %d, want 0 (blank cell)", got)
	}
}

func TestGridUnknownSize(t *testing.T) {
	for _, size := range []int{128, 0, -3000} {
		if _, err := Grid(size); !errors.Is(err, ErrUnknownSize) {
			t.Errorf("Grid(%d) error = %v, want ErrUnknownSize", size, err)
		}
	}
}

func TestGridReturnsCopy(t *testing.T) {
	a, _ := Grid(SizeMinION)
	a[0][0] = -1
	b, _ := Grid(SizeMinION)
	if b[0][0] == -1 {
		t.Error("mutating a returned grid leaked into the cache")
	}
}

func TestSplitColumns(t *testing.T) {
	groups, err := Split(SizeMinION, 4, 1)
	if err != nil {
		t.Fatalf("Split(512, 4, 1) failed: %v", err)
	}
	if len(groups) != 4 {
		t.Fatalf("Split(512, 4, 1) returned %d groups, want 4", len(groups))
	}
	for i, g := range groups {
		if len(g) != 128 {
			t.Errorf("group %d has %d channels, want 128", i, len(g))
		}
	}
	assertCoversAllChannels(t, groups, SizeMinION)
}

func TestSplitRows(t *testing.T) {
	groups, err := Split(SizeMinION, 2, 0)
	if err != nil {
		t.Fatalf("Split(512, 2, 0) failed: %v", err)
	}
	if len(groups) != 2 || len(groups[0]) != 256 || len(groups[1]) != 256 {
		t.Fatalf("Split(512, 2, 0) group sizes wrong: %d groups", len(groups))
	}
	assertCoversAllChannels(t, groups, SizeMinION)
}

func TestSplitErrors(t *testing.T) {
	if _, err := Split(SizeMinION, 5, 1); !errors.Is(err, ErrUnevenSplit) {
		t.Errorf("Split(512, 5, 1) error = %v, want ErrUnevenSplit", err)
	}
	if _, err := Split(SizeMinION, 0, 1); !errors.Is(err, ErrInvalidSplit) {
		t.Errorf("Split(512, 0, 1) error = %v, want ErrInvalidSplit", err)
	}
	if _, err := Split(SizeMinION, -3, 1); !errors.Is(err, ErrInvalidSplit) {
		t.Errorf("Split(512, -3, 1) error = %v, want ErrInvalidSplit", err)
	}
	if _, err := Split(SizeMinION, 4, 2); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Split(512, 4, 2) error = %v, want ErrInvalidAxis", err)
	}
	if _, err := Split(100, 2, 1); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("Split(100, 2, 1) error = %v, want ErrUnknownSize", err)
	}
	if _, err := Split(0, 1, 1); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("Split(0, 1, 1) error = %v, want ErrUnknownSize", err)
	}
	if _, err := Split(-512, 1, 0); !errors.Is(err, ErrUnknownSize) {
		t.Errorf("Split(-512, 1, 0) error = %v, want ErrUnknownSize", err)
	}
}

// The Flongle grid is 13 columns wide, so the column axis only splits into
// 1 or 13 blocks.
func TestSplitFlongleColumns(t *testing.T) {
	if _, err := Split(SizeFlongle, 2, 1); !errors.Is(err, ErrUnevenSplit) {
		t.Errorf("Split(126, 2, 1) error = %v, want ErrUnevenSplit", err)
	}
	groups, err := Split(SizeFlongle, 13, 1)
	if err != nil {
		t.Fatalf("Split(126, 13, 1) failed: %v", err)
	}
	// Blank cells stay in their group as zero placeholders.
	zeros := 0
	for _, g := range groups {
		for _, ch := range g {
			if ch == 0 {
				zeros++
			}
		}
	}
	if zeros != 4 {
		t.Errorf("Flongle split carries %d zero placeholders, want 4", zeros)
	}
}

func TestOddEven(t *testing.T) {
	for _, size := range []int{SizeFlongle, SizeMinION} {
		groups := OddEven(size)
		if len(groups) != 2 {
			t.Fatalf("OddEven(%d) returned %d groups, want 2", size, len(groups))
		}
		for _, ch := range groups[0] {
			if ch%2 != 1 {
				t.Fatalf("OddEven(%d): even channel %d in odd group", size, ch)
			}
		}
		for _, ch := range groups[1] {
			if ch%2 != 0 {
				t.Fatalf("OddEven(%d): odd channel %d in even group", size, ch)
			}
		}
		assertCoversAllChannels(t, groups, size)
	}
}

// assertCoversAllChannels checks that the union of all non-zero group
// members is exactly {1..size} with no duplicates.
func assertCoversAllChannels(t *testing.T, groups [][]int, size int) {
	t.Helper()
	seen := make(map[int]bool, size)
	for _, g := range groups {
		for _, ch := range g {
			if ch == 0 {
				continue
			}
			if seen[ch] {
				t.Fatalf("channel %d appears in more than one group", ch)
			}
			seen[ch] = true
		}
	}
	if len(seen) != size {
		t.Fatalf("groups cover %d channels, want %d", len(seen), size)
	}
}
