// Package export writes the channel to condition table and its manifest
// for downstream analysis tooling.
package export

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/openpore/channelmap/internal/runinfo"
)

// Version information (set via ldflags).
var (
	Version = "v0.1.0"
	GitSHA  = "unknown"
)

// Row is one channel assignment in the exported table.
type Row struct {
	Channel   int64  `parquet:"channel" json:"channel"`
	Condition string `parquet:"condition" json:"condition"`
	Index     int64  `parquet:"condition_index" json:"condition_index"`
}

// Rows flattens run info into export rows ordered by channel number.
func Rows(info runinfo.RunInfo, conds []runinfo.Condition) []Row {
	rows := make([]Row, 0, len(info))
	for ch, idx := range info {
		name := ""
		if idx >= 0 && idx < len(conds) {
			name = conds[idx].Name
		}
		rows = append(rows, Row{Channel: int64(ch), Condition: name, Index: int64(idx)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Channel < rows[j].Channel })
	return rows
}

// FileInfo describes one written table file.
type FileInfo struct {
	File     string `json:"file"`
	Checksum string `json:"checksum"`
	RowCount int64  `json:"row_count"`
	ByteSize int64  `json:"byte_size"`
}

// Manifest describes an exported run-info directory.
type Manifest struct {
	FlowcellSize int                 `json:"flowcell_size"`
	Conditions   []string            `json:"conditions"`
	Reference    string              `json:"reference"`
	Files        map[string]FileInfo `json:"files"`
	Producer     ProducerInfo        `json:"producer"`
	CreatedAt    time.Time           `json:"created_at"`
}

// ProducerInfo identifies the software that produced the export.
type ProducerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	GitSHA  string `json:"git_sha,omitempty"`
}

// NewManifest returns a manifest seeded with producer info and no files.
func NewManifest(size int, conds []runinfo.Condition, reference string) *Manifest {
	names := make([]string, len(conds))
	for i, c := range conds {
		names[i] = c.Name
	}
	return &Manifest{
		FlowcellSize: size,
		Conditions:   names,
		Reference:    reference,
		Files:        make(map[string]FileInfo),
		Producer: ProducerInfo{
			Name:    "channelmap",
			Version: Version,
			GitSHA:  GitSHA,
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Writer writes export artifacts into a directory.
type Writer struct {
	dir string
}

// NewWriter creates the export directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create export directory %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// WriteManifest writes _manifest.json atomically.
func (w *Writer) WriteManifest(m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	return w.writeAtomic("_manifest.json", data)
}

// writeAtomic writes data under the export dir using temp file + rename.
func (w *Writer) writeAtomic(name string, data []byte) error {
	path := filepath.Join(w.dir, name)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("write temp file %s: %w", tempPath, err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename %s to %s: %w", tempPath, path, err)
	}
	return nil
}

func checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return "sha256:" + hex.EncodeToString(sum[:])
}
