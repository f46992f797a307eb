// File: render_test.go
// Title: AST Render Format Tests
// Description: Tests for format name resolution and rendering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial render tests

package expar

import (
	"strings"
	"testing"

	mdwerror "github.com/msto63/expar/foundation/core/error"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"", FormatSymbolic, false},
		{"symbolic", FormatSymbolic, false},
		{" Debug ", FormatDebug, false},
		{"TREE", FormatTree, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if tt.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
					t.Errorf("expected code %s, got %s", mdwerror.CodeInvalidInput, mdwerror.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestFormatNext(t *testing.T) {
	if got := FormatSymbolic.Next(); got != FormatDebug {
		t.Errorf("symbolic.Next() = %q", got)
	}
	if got := FormatTree.Next(); got != FormatSymbolic {
		t.Errorf("tree.Next() = %q", got)
	}
	if got := Format("bogus").Next(); got != FormatSymbolic {
		t.Errorf("bogus.Next() = %q", got)
	}
}

func TestRender(t *testing.T) {
	engine := newTestEngine(t, Options{})
	root, err := engine.Parse("1+x")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := Render(root, FormatSymbolic); got != "1+x" {
		t.Errorf("symbolic = %q", got)
	}
	if got := Render(root, FormatDebug); got == "1+x" || got == "" {
		t.Errorf("debug rendering should differ from symbolic, got %q", got)
	}
	tree := Render(root, FormatTree)
	if strings.HasSuffix(tree, "\n") {
		t.Errorf("tree rendering should not end in a newline: %q", tree)
	}
	if len(strings.Split(tree, "\n")) < 3 {
		t.Errorf("tree rendering should span several lines: %q", tree)
	}
}
