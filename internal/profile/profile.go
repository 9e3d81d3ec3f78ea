// Package profile records a heap profile of a run. It is compiled in only
// with the heapprofile build tag; without it Start does nothing.
package profile

// FileName is the profile written into the output directory.
const FileName = "heap.pprof"

// Stats summarises allocation over a profiled run.
type Stats struct {
	TotalAlloc uint64
	Mallocs    uint64
	HeapInUse  uint64
}
