// File: severity_test.go
// Title: Severity Tests
// Description: Tests for severity names, alerting and the code mapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial severity tests

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityLow.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("low and medium severities should not alert")
	}
	if !SeverityHigh.ShouldAlert() || !SeverityCritical.ShouldAlert() {
		t.Error("high and critical severities should alert")
	}
	if SeverityCritical.Level() != 3 {
		t.Errorf("SeverityCritical.Level() = %d, want 3", SeverityCritical.Level())
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeExparSyntax, SeverityLow},
		{CodeExparDisambiguation, SeverityLow},
		{CodeExparLiteral, SeverityLow},
		{CodeExparValidation, SeverityLow},
		{CodeInputTooLong, SeverityLow},
		{CodeExparStructural, SeverityHigh},
		{CodeInternal, SeverityHigh},
		{CodeInvalidConfig, SeverityMedium},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
