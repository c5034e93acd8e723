package labelcell

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting persistence metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSnapshotWrite is called after each snapshot is finished.
	// cells is the number of cells written, bytes the encoded size.
	RecordSnapshotWrite(cells int, bytes int64, duration time.Duration, err error)

	// RecordSnapshotRead is called after a snapshot reader reaches the footer
	// or fails.
	RecordSnapshotRead(cells int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSnapshotWrite(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSnapshotRead(int, time.Duration, error)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteCells      atomic.Int64
	WriteBytes      atomic.Int64
	WriteTotalNanos atomic.Int64
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	ReadCells       atomic.Int64
	ReadTotalNanos  atomic.Int64
}

// RecordSnapshotWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotWrite(cells int, bytes int64, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteCells.Add(int64(cells))
	b.WriteBytes.Add(bytes)
}

// RecordSnapshotRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshotRead(cells int, duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
		return
	}
	b.ReadCells.Add(int64(cells))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		WriteCount:    b.WriteCount.Load(),
		WriteErrors:   b.WriteErrors.Load(),
		WriteCells:    b.WriteCells.Load(),
		WriteBytes:    b.WriteBytes.Load(),
		WriteAvgNanos: avgNanos(b.WriteTotalNanos.Load(), b.WriteCount.Load()),
		ReadCount:     b.ReadCount.Load(),
		ReadErrors:    b.ReadErrors.Load(),
		ReadCells:     b.ReadCells.Load(),
		ReadAvgNanos:  avgNanos(b.ReadTotalNanos.Load(), b.ReadCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	WriteCount    int64
	WriteErrors   int64
	WriteCells    int64
	WriteBytes    int64
	WriteAvgNanos int64
	ReadCount     int64
	ReadErrors    int64
	ReadCells     int64
	ReadAvgNanos  int64
}
