// Package dataset provides streaming access to the tabular bibliographic
// datasets the toolkit reads and writes, plus the YAML column profile that
// names the relevant columns for a given dataset.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row is one data row with access to values by column name.
type Row struct {
	// Index is the 1-based data row number, excluding the header.
	Index  int
	fields []string
	index  map[string]int
}

// Get returns the value of the named column, or "" when the column does
// not exist or the row is short.
func (r Row) Get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

// Fields returns the raw field slice in header order.
func (r Row) Fields() []string {
	return r.fields
}

// Reader streams rows from a CSV dataset. The header row is consumed at
// construction time; real-world exports get lenient parsing (lazy quotes,
// variable field counts).
type Reader struct {
	csv    *csv.Reader
	header []string
	index  map[string]int
	row    int
	closer io.Closer
}

// Open opens a CSV dataset file for streaming.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	r, err := NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader wraps an io.Reader containing CSV data with a header row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		if _, ok := index[col]; !ok {
			index[col] = i
		}
	}
	return &Reader{csv: cr, header: header, index: index}, nil
}

// Header returns the dataset's header row.
func (r *Reader) Header() []string {
	return r.header
}

// HasColumn reports whether the dataset carries the named column.
func (r *Reader) HasColumn(column string) bool {
	_, ok := r.index[column]
	return ok
}

// Read returns the next data row, or io.EOF after the last one.
func (r *Reader) Read() (Row, error) {
	fields, err := r.csv.Read()
	if err != nil {
		return Row{}, err
	}
	r.row++
	return Row{Index: r.row, fields: fields, index: r.index}, nil
}

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// Writer writes a CSV table with a fixed header.
type Writer struct {
	csv    *csv.Writer
	closer io.Closer
}

// Create creates (or truncates) a CSV file and writes the header row.
func Create(path string, header []string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	w, err := NewWriter(f, header)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	w.closer = f
	return w, nil
}

// NewWriter wraps an io.Writer and writes the header row immediately.
func NewWriter(w io.Writer, header []string) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Writer{csv: cw}, nil
}

// Write appends one data row.
func (w *Writer) Write(fields []string) error {
	return w.csv.Write(fields)
}

// Close flushes buffered rows and closes the underlying file, reporting
// any deferred write error.
func (w *Writer) Close() error {
	w.csv.Flush()
	err := w.csv.Error()
	if w.closer != nil {
		if cerr := w.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
