// File: error_test.go
// Title: Error Tests
// Description: Tests for error construction, wrapping, code lookup through
//              chains and JSON output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial error tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "empty expression"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %s, want the calling test", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("unknown SI prefix %q", "Q")
	if err.Error() != `unknown SI prefix "Q"` {
		t.Errorf("Error() = %q", err.Error())
	}
	if trace := err.StackTrace(); len(trace) == 0 || !strings.Contains(trace[0].Function, "TestNewf") {
		t.Errorf("stack trace does not start at the caller: %v", trace)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		wantSev  Severity
		wantCode Code
	}{
		{
			name:     "syntax error is low",
			err:      New("x").WithCode(CodeExparSyntax),
			wantSev:  SeverityLow,
			wantCode: CodeExparSyntax,
		},
		{
			name:     "structural error is high",
			err:      New("x").WithCode(CodeExparStructural),
			wantSev:  SeverityHigh,
			wantCode: CodeExparStructural,
		},
		{
			name:     "explicit severity wins",
			err:      New("x").WithSeverity(SeverityCritical).WithCode(CodeExparSyntax),
			wantSev:  SeverityCritical,
			wantCode: CodeExparSyntax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Severity() != tt.wantSev {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.wantSev)
			}
			if tt.err.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.wantCode)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("illegal character '#'"),
			wantMsg:  "expression rejected: illegal character '#'",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error",
			err:      New("no binary operator matches").WithCode(CodeExparDisambiguation),
			wantMsg:  "expression rejected: no binary operator matches",
			wantCode: CodeExparDisambiguation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, "expression rejected")
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap(nil) = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsMetadata(t *testing.T) {
	inner := New("scope never closed").
		WithCode(CodeExparStructural).
		WithDetail("production", "value_scope").
		WithCorrelationID("abc")

	outer := Wrap(inner, "lowering failed")

	if outer.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityHigh)
	}
	if outer.CorrelationID() != "abc" {
		t.Errorf("CorrelationID() = %q, want %q", outer.CorrelationID(), "abc")
	}
	if outer.Details()["production"] != "value_scope" {
		t.Errorf("Details() = %v, want inherited production", outer.Details())
	}
	if outer.Message() != "lowering failed" {
		t.Errorf("Message() = %q", outer.Message())
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = New("root").WithCode(CodeExparSyntax)
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if depth := chainDepth(err); depth > MaxErrorChainDepth {
		t.Errorf("chain depth = %d, want at most %d", depth, MaxErrorChainDepth)
	}
	if !strings.Contains(err.Error(), "chain truncated") {
		t.Errorf("Error() = %q, want truncation marker", err.Error())
	}
	if GetCode(err) != CodeExparSyntax {
		t.Errorf("GetCode() = %v, want code kept across truncation", GetCode(err))
	}
}

func TestCodeLookupThroughForeignWrapping(t *testing.T) {
	base := New("literal out of range").WithCode(CodeExparLiteral)
	err := fmt.Errorf("parsing %q: %w", "1e999", base)

	if !HasCode(err, CodeExparLiteral) {
		t.Error("HasCode() should see through fmt.Errorf wrapping")
	}
	if GetCode(err) != CodeExparLiteral {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeExparLiteral)
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityLow)
	}

	plain := errors.New("plain")
	if HasCode(plain, CodeExparLiteral) || GetCode(plain) != CodeUnknown || GetSeverity(plain) != SeverityMedium {
		t.Error("plain errors should report the defaults")
	}
}

func TestHasCodeInnerCode(t *testing.T) {
	inner := New("disambiguation").WithCode(CodeExparDisambiguation)
	outer := Wrap(inner, "engine").WithCode(CodeInternal)

	if !HasCode(outer, CodeExparDisambiguation) {
		t.Error("HasCode() should find codes further down the chain")
	}
	if GetCode(outer) != CodeInternal {
		t.Errorf("GetCode() = %v, want the outermost code", GetCode(outer))
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("strconv.ParseFloat: value out of range")
	err := Wrap(Wrap(root, "literal"), "lowering")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	alone := New("alone")
	if alone.RootCause() != alone {
		t.Error("RootCause() of an error without cause should be the error itself")
	}
}

func TestString(t *testing.T) {
	err := New("unexpected token").
		WithCode(CodeExparSyntax).
		WithOperation("parse").
		WithDetails(map[string]interface{}{"line": 1, "column": 4})

	s := err.String()
	for _, want := range []string{
		"Error: unexpected token",
		"Code: EXPAR_SYNTAX",
		"Severity: low",
		"Operation: parse",
		"Details: {column=4, line=1}",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "expression rejected").
		WithCode(CodeExparValidation).
		WithCorrelationID("id-1").
		WithDetail("input", "1+")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("json.Marshal() error = %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", uErr)
	}

	want := map[string]string{
		"message":        "expression rejected",
		"code":           "EXPAR_VALIDATION",
		"severity":       "low",
		"correlation_id": "id-1",
		"cause":          "cause",
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
	if _, ok := decoded["stack_trace"]; !ok {
		t.Error("stack_trace missing from JSON output")
	}
}

func TestDetailsIsCopy(t *testing.T) {
	err := New("x").WithDetail("k", "v")
	d := err.Details()
	d["k"] = "changed"
	if err.Details()["k"] != "v" {
		t.Error("Details() must return a copy")
	}
}
