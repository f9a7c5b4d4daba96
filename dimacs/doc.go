// Package dimacs reads and writes weighted graphs in the 9th DIMACS
// Implementation Challenge shortest-paths text format:
//
//	c <comment>
//	p sp <vertices> <arcs>
//	a <from> <to> <weight>
//
// ReadGraph builds an undirected weighted core.Graph: road exporters emit
// both arc directions, so the reader merges (u,v) and (v,u) into a single
// undirected edge and keeps the first weight seen. Vertex IDs are the
// integer tokens verbatim.
//
// WriteGraph emits the same format, assigning 1-based indices to vertices
// in sorted ID order and recording the mapping in leading comment lines,
// one "c <index> <id>" per vertex.
//
// TotalWeight sums each undirected edge exactly once — the "total road
// length" consumer for map-derived graphs.
package dimacs
