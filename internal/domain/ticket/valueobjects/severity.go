package valueobjects

import (
	"fmt"
	"strings"
)

// Severity is the urgency label chosen by the submitter at creation.
// The set is open-ended: the well-known labels below are what the
// standard frontend offers, but any non-blank label is accepted.
type Severity string

const (
	SeverityLow    Severity = "baixa"
	SeverityMedium Severity = "media"
	SeverityHigh   Severity = "alta"
)

func (s Severity) String() string {
	return string(s)
}

func (s Severity) IsValid() bool {
	return strings.TrimSpace(string(s)) != ""
}

func NewSeverity(s string) (Severity, error) {
	sev := Severity(s)
	if !sev.IsValid() {
		return "", fmt.Errorf("severity is required")
	}
	return sev, nil
}
