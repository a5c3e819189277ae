// Package flowcell maps physical nanopore flowcell channels onto their
// 2-D grid coordinates and partitions the grid into equally sized
// channel groups for per-condition assignment.
package flowcell

import (
	"errors"
	"fmt"
	"sync"
)

// Recognized flowcell sizes.
const (
	SizeFlongle    = 126
	SizeMinION     = 512
	SizePromethION = 3000
)

var (
	// ErrChannelOutOfRange is returned when a channel is not in [1, size].
	ErrChannelOutOfRange = errors.New("channel cannot be below 0 or above flowcell size")

	// ErrUnknownSize is returned for a flowcell size other than 126, 512 or 3000.
	ErrUnknownSize = errors.New("flowcell size is not recognised")

	// ErrInvalidSplit is returned when a split count is not a positive integer.
	ErrInvalidSplit = errors.New("split must be a positive integer")

	// ErrUnevenSplit is returned when the grid dimension is not divisible by split.
	ErrUnevenSplit = errors.New("the flowcell cannot be split evenly")

	// ErrInvalidAxis is returned for an axis other than 0 (rows) or 1 (columns).
	ErrInvalidAxis = errors.New("axis must be 0 or 1")
)

// Coords returns the (column, row) grid coordinate of a physical channel.
//
// PromethION (3000) coordinates are computed: channels are laid out in 12
// blocks of 250, each block filling 25 rows by 10 columns in row-major
// order, with each block occupying its own band of 10 columns. Flongle
// (126) and MinION (512) coordinates come from fixed vendor layout tables.
func Coords(channel, size int) (col, row int, err error) {
	if channel <= 0 || channel > size {
		return 0, 0, fmt.Errorf("%w: channel %d, flowcell size %d", ErrChannelOutOfRange, channel, size)
	}

	switch size {
	case SizePromethION:
		block := (channel - 1) / 250
		remainder := (channel - 1) % 250
		row = remainder / 10
		col = remainder%10 + block*10
		return col, row, nil
	case SizeFlongle:
		c := flongleLayout[channel-1]
		return c[0], c[1], nil
	case SizeMinION:
		c := minionLayout[channel-1]
		return c[0], c[1], nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnknownSize, size)
	}
}

// grid caching: layouts are fixed per size, so the grid is only ever
// built once for each recognized size.
var (
	gridMu    sync.Mutex
	gridCache = map[int][][]int{}
)

// Grid returns the 2-D channel layout for a flowcell size. Cell values are
// channel numbers; 0 marks an unoccupied cell in non-rectangular layouts.
// Row 0 of the result is the physically bottom row (rows are stored
// reversed relative to the raw coordinate computation).
//
// The caller receives a fresh copy and may mutate it freely.
func Grid(size int) ([][]int, error) {
	g, err := grid(size)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(g))
	for i, row := range g {
		out[i] = append([]int(nil), row...)
	}
	return out, nil
}

// grid returns the shared cached grid. Callers must not mutate it.
func grid(size int) ([][]int, error) {
	gridMu.Lock()
	defer gridMu.Unlock()

	if g, ok := gridCache[size]; ok {
		return g, nil
	}

	g, err := buildGrid(size)
	if err != nil {
		return nil, err
	}
	gridCache[size] = g
	return g, nil
}

func buildGrid(size int) ([][]int, error) {
	// A non-positive size would skip the channel loop entirely and
	// never hit the size check in Coords.
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, size)
	}

	maxCol, maxRow := 0, 0
	cols := make([]int, size)
	rows := make([]int, size)
	for ch := 1; ch <= size; ch++ {
		col, row, err := Coords(ch, size)
		if err != nil {
			return nil, err
		}
		cols[ch-1], rows[ch-1] = col, row
		if col > maxCol {
			maxCol = col
		}
		if row > maxRow {
			maxRow = row
		}
	}

	g := make([][]int, maxRow+1)
	for i := range g {
		g[i] = make([]int, maxCol+1)
	}
	for ch := 1; ch <= size; ch++ {
		g[rows[ch-1]][cols[ch-1]] += ch
	}

	// Reverse the row order so that row 0 is the physically bottom row.
	for i, j := 0, len(g)-1; i < j; i, j = i+1, j-1 {
		g[i], g[j] = g[j], g[i]
	}
	return g, nil
}

// Split divides the flowcell grid into split equally sized contiguous
// blocks along the given axis (0 = rows, 1 = columns) and flattens each
// block into one ordered group of channel numbers. Unoccupied cells are
// retained as zero placeholders inside their group.
func Split(size, split, axis int) ([][]int, error) {
	if split <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSplit, split)
	}
	if axis != 0 && axis != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAxis, axis)
	}

	g, err := grid(size)
	if err != nil {
		return nil, err
	}

	nRows, nCols := len(g), len(g[0])

	if axis == 0 {
		if nRows%split != 0 {
			return nil, fmt.Errorf("%w: %d rows into %d blocks", ErrUnevenSplit, nRows, split)
		}
		height := nRows / split
		groups := make([][]int, split)
		for b := 0; b < split; b++ {
			group := make([]int, 0, height*nCols)
			for r := b * height; r < (b+1)*height; r++ {
				group = append(group, g[r]...)
			}
			groups[b] = group
		}
		return groups, nil
	}

	if nCols%split != 0 {
		return nil, fmt.Errorf("%w: %d columns into %d blocks", ErrUnevenSplit, nCols, split)
	}
	width := nCols / split
	groups := make([][]int, split)
	for b := 0; b < split; b++ {
		group := make([]int, 0, nRows*width)
		for r := 0; r < nRows; r++ {
			group = append(group, g[r][b*width:(b+1)*width]...)
		}
		groups[b] = group
	}
	return groups, nil
}

// OddEven returns two groups: all odd channel numbers and all even channel
// numbers, each in ascending order. Group sizes differ by one when size is
// odd.
func OddEven(size int) [][]int {
	odd := make([]int, 0, (size+1)/2)
	even := make([]int, 0, size/2)
	for ch := 1; ch <= size; ch++ {
		if ch%2 == 1 {
			odd = append(odd, ch)
		} else {
			even = append(even, ch)
		}
	}
	return [][]int{odd, even}
}
