package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/parquet-go/parquet-go"
)

// WriteCSV writes the run-info table as CSV and records it in the
// manifest.
func (w *Writer) WriteCSV(name string, rows []Row, m *Manifest) error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	if err := cw.Write([]string{"channel", "condition", "condition_index"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.Channel, 10),
			r.Condition,
			strconv.FormatInt(r.Index, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return w.commit(name, buf.Bytes(), int64(len(rows)), m)
}

// WriteParquet writes the run-info table as parquet and records it in
// the manifest.
func (w *Writer) WriteParquet(name string, rows []Row, m *Manifest) error {
	var buf bytes.Buffer
	pw := parquet.NewGenericWriter[Row](&buf)

	if _, err := pw.Write(rows); err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}

	return w.commit(name, buf.Bytes(), int64(len(rows)), m)
}

// commit writes the file atomically and adds its checksum entry to the
// manifest.
func (w *Writer) commit(name string, data []byte, rowCount int64, m *Manifest) error {
	if err := w.writeAtomic(name, data); err != nil {
		return err
	}
	m.Files[name] = FileInfo{
		File:     name,
		Checksum: checksum(data),
		RowCount: rowCount,
		ByteSize: int64(len(data)),
	}
	return nil
}
