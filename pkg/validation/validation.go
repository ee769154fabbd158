// Package validation collects structural findings about a building snapshot.
package validation

import "fmt"

// Level indicates which family of checks produced the issue.
type Level string

const (
	LevelStructure    Level = "structure"
	LevelConnectivity Level = "connectivity"
	LevelGeometry     Level = "geometry"
)

// Severity indicates how critical an issue is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single validation finding.
type Issue struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	BuildingID  string   `json:"building_id"`
	FloorID     string   `json:"floor_id,omitempty"`
	Path        string   `json:"path,omitempty"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output.
type Report struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Info     []Issue `json:"info"`
	Summary  string  `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Issue{},
		Warnings: []Issue{},
		Info:     []Issue{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error and marks the report invalid.
func (r *Report) AddError(issue Issue) {
	issue.Severity = SeverityError
	r.Errors = append(r.Errors, issue)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning.
func (r *Report) AddWarning(issue Issue) {
	issue.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, issue)
	r.updateSummary()
}

// AddInfo adds an informational issue.
func (r *Report) AddInfo(issue Issue) {
	issue.Severity = SeverityInfo
	r.Info = append(r.Info, issue)
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Issues returns errors, then warnings, then info in one list.
func (r *Report) Issues() []Issue {
	out := make([]Issue, 0, len(r.Errors)+len(r.Warnings)+len(r.Info))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return append(out, r.Info...)
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
