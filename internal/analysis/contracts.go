package analysis

import (
	"context"
	"errors"
)

// Fields is the structured result of analysing one label document.
type Fields struct {
	ModelName         string `json:"model_name"`
	Voltage           string `json:"voltage"`
	TypBattCapacityWh string `json:"typ_batt_capacity_wh"`
	TypCapacityMAh    string `json:"typ_capacity_mah"`
	RatedCapacityMAh  string `json:"rated_capacity_mah"`
	RatedEnergyWh     string `json:"rated_energy_wh"`
}

// FileMetadata carries submission context into the analyser.
type FileMetadata struct {
	Filename   string
	JobID      string
	Parameters map[string]any
}

// FileAnalyzer is the per-file execution contract of the external analysis
// pipeline. Implementations classify their own failures as recoverable or
// fatal; the worker only consumes the classification.
type FileAnalyzer interface {
	AnalyzeFile(ctx context.Context, path string, meta FileMetadata) (Fields, error)
}

// RecoverableError marks a transient failure worth retrying.
type RecoverableError struct {
	Reason string
	Err    error
}

func (e *RecoverableError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *RecoverableError) Unwrap() error { return e.Err }

// FatalError marks a failure where retrying the same file cannot help.
type FatalError struct {
	Reason string
	Err    error
}

func (e *FatalError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *FatalError) Unwrap() error { return e.Err }

// Recoverable reports whether err carries the transient classification.
func Recoverable(err error) bool {
	var r *RecoverableError
	return errors.As(err, &r)
}
