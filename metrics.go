package array

// SizeInUse returns the number of bytes currently bumped out of the arena,
// including padding introduced by alignment.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks the arena has allocated.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total size in bytes of all chunks.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of bytes in use to total capacity, 0 when
// the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// ChunkSize returns the chunk size the arena grows by.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Stats returns a snapshot of arena usage.
func (a *Arena) Stats() ArenaStats {
	return ArenaStats{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaStats is a point-in-time snapshot of an arena's memory usage.
type ArenaStats struct {
	SizeInUse   int     // bytes currently bumped out
	Capacity    int     // total bytes across all chunks
	NumChunks   int     // number of chunks
	ChunkSize   int     // growth increment
	Utilization float64 // SizeInUse / Capacity, 0.0-1.0
}
