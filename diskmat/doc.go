// Package diskmat provides a file-backed, memory-mapped dense matrix of
// float64 values.
//
// A Matrix is a row-major grid stored directly in a file and accessed
// through a memory mapping, so matrices larger than RAM stay usable and
// a computed distance table can be handed to another process by path.
//
//	m, err := diskmat.Create("costs.mat", rows, cols)
//	defer m.Close()
//	m.Set(r, c, v)
//	v, err := m.At(r, c)
//	m.Sync()
//
// Create truncates the backing file to the exact size; Open maps an
// existing file and rejects size mismatches. WithDeleteOnClose makes
// Close remove the backing file, for scratch matrices in tests and
// benchmarks.
//
// All element access is bounds-checked and returns sentinel errors;
// concurrent writers need external synchronization.
package diskmat
