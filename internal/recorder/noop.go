package recorder

import "MacdRadar/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *model.ScanReport, _ model.DispatchResult) error { return nil }
func (n *NoopRecorder) Close() error                                                { return nil }
