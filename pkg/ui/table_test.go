package ui

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]TableColumn{
		{Header: "Artist", Width: 10, Align: "left"},
		{Header: "Assets", Width: 6, Align: "right"},
	})
	table.AddRow([]string{"Alice", "12"})
	table.AddRow([]string{"Bob", "3"})

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, separator, two rows.
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Artist") || !strings.Contains(lines[0], "Assets") {
		t.Errorf("header = %q", lines[0])
	}
	// Right alignment pads on the left.
	if !strings.Contains(lines[2], "    12") {
		t.Errorf("row = %q, want right-aligned count", lines[2])
	}
}

func TestTableWidensForLongCells(t *testing.T) {
	table := NewTable([]TableColumn{{Header: "A", Width: 2, Align: "left"}})
	table.AddRow([]string{"a very long cell value"})

	out := table.Render()
	if !strings.Contains(out, "a very long cell value") {
		t.Errorf("long cell truncated:\n%s", out)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this one is too long", 10, "this one …"},
		{"héllo wörld", 6, "héllo…"},
		{"anything", 1, "anything"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
