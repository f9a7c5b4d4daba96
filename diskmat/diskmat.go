package diskmat

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"golang.org/x/sys/unix"
)

// Sentinel errors; branch with errors.Is.
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("diskmat: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("diskmat: index out of range")

	// ErrSizeMismatch indicates an existing file whose size does not match
	// rows*cols float64 cells.
	ErrSizeMismatch = errors.New("diskmat: file size does not match shape")

	// ErrClosed is returned by any access after Close.
	ErrClosed = errors.New("diskmat: matrix is closed")
)

// elemSize is the on-disk size of one cell (float64, little-endian).
const elemSize = 8

// Matrix is a row-major float64 matrix backed by a memory-mapped file.
type Matrix struct {
	f             *os.File
	data          []byte
	rows, cols    int
	path          string
	deleteOnClose bool
	closed        bool
}

// Option configures Create/Open behavior.
type Option func(*Matrix)

// WithDeleteOnClose makes Close remove the backing file after unmapping.
func WithDeleteOnClose() Option {
	return func(m *Matrix) {
		m.deleteOnClose = true
	}
}

// Create creates (or truncates) path as a rows×cols zero matrix and maps it.
//
// Complexity: O(1) beyond the OS file/page work; cells are lazily faulted.
func Create(path string, rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("diskmat: Create(%d,%d): %w", rows, cols, ErrBadShape)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("diskmat: create %q: %w", path, err)
	}
	size := int64(rows) * int64(cols) * elemSize
	if err = f.Truncate(size); err != nil {
		f.Close()
		return nil, fmt.Errorf("diskmat: truncate %q to %d bytes: %w", path, size, err)
	}

	return mapFile(f, path, rows, cols, opts...)
}

// Open maps an existing matrix file created with the same shape.
func Open(path string, rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("diskmat: Open(%d,%d): %w", rows, cols, ErrBadShape)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("diskmat: open %q: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("diskmat: stat %q: %w", path, err)
	}
	if want := int64(rows) * int64(cols) * elemSize; st.Size() != want {
		f.Close()
		return nil, fmt.Errorf("diskmat: %q holds %d bytes, shape needs %d: %w",
			path, st.Size(), want, ErrSizeMismatch)
	}

	return mapFile(f, path, rows, cols, opts...)
}

// mapFile finishes construction; it owns f on error.
func mapFile(f *os.File, path string, rows, cols int, opts ...Option) (*Matrix, error) {
	size := rows * cols * elemSize
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("diskmat: mmap %q: %w", path, err)
	}

	m := &Matrix{f: f, data: data, rows: rows, cols: cols, path: path}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Path returns the backing file path.
func (m *Matrix) Path() string { return m.path }

// offsetOf computes the byte offset for (row, col) or returns ErrOutOfRange.
func (m *Matrix) offsetOf(row, col int) (int, error) {
	if m.closed {
		return 0, ErrClosed
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("diskmat: (%d,%d) outside %dx%d: %w", row, col, m.rows, m.cols, ErrOutOfRange)
	}
	return (row*m.cols + col) * elemSize, nil
}

// At retrieves the element at (row, col).
func (m *Matrix) At(row, col int) (float64, error) {
	off, err := m.offsetOf(row, col)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(m.data[off:])), nil
}

// Set assigns value v at (row, col).
func (m *Matrix) Set(row, col int, v float64) error {
	off, err := m.offsetOf(row, col)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(m.data[off:], math.Float64bits(v))
	return nil
}

// SetRow copies vals into row; len(vals) must equal Cols.
func (m *Matrix) SetRow(row int, vals []float64) error {
	if len(vals) != m.cols {
		return fmt.Errorf("diskmat: SetRow(%d): %d values for %d columns: %w",
			row, len(vals), m.cols, ErrOutOfRange)
	}
	off, err := m.offsetOf(row, 0)
	if err != nil {
		return err
	}
	for i, v := range vals {
		binary.LittleEndian.PutUint64(m.data[off+i*elemSize:], math.Float64bits(v))
	}
	return nil
}

// Row reads the whole row into a fresh slice.
func (m *Matrix) Row(row int) ([]float64, error) {
	off, err := m.offsetOf(row, 0)
	if err != nil {
		return nil, err
	}
	out := make([]float64, m.cols)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(m.data[off+i*elemSize:]))
	}
	return out, nil
}

// Sync flushes dirty pages to the backing file.
func (m *Matrix) Sync() error {
	if m.closed {
		return ErrClosed
	}
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("diskmat: msync %q: %w", m.path, err)
	}
	return nil
}

// Close unmaps the file, closes it and, if WithDeleteOnClose was given,
// removes it. Close is idempotent.
func (m *Matrix) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var first error
	if err := unix.Munmap(m.data); err != nil {
		first = fmt.Errorf("diskmat: munmap %q: %w", m.path, err)
	}
	m.data = nil
	if err := m.f.Close(); err != nil && first == nil {
		first = fmt.Errorf("diskmat: close %q: %w", m.path, err)
	}
	if m.deleteOnClose {
		if err := os.Remove(m.path); err != nil && first == nil {
			first = fmt.Errorf("diskmat: remove %q: %w", m.path, err)
		}
	}
	return first
}
