package recorder

import "MacdRadar/internal/model"

// Recorder persists scan history for later analysis.
type Recorder interface {
	RecordScan(report *model.ScanReport, dispatch model.DispatchResult) error
	Close() error
}
