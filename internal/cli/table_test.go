package cli

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestNewTable(t *testing.T) {
	table := NewTable("Token", "Hex")

	if len(table.headers) != 2 {
		t.Errorf("Expected 2 headers, got %d", len(table.headers))
	}
	if table.gap != 2 {
		t.Errorf("Expected gap of 2, got %d", table.gap)
	}
	if table.Len() != 0 {
		t.Errorf("Expected no rows, got %d", table.Len())
	}
}

func TestTableAddRowNormalisesLength(t *testing.T) {
	table := NewTable("Token", "Hex")

	table.AddRow("gray.50", "#FAFAFA")
	table.AddRow("gray.100")
	table.AddRow("gray.200", "#E7E8E9", "extra")

	if table.Len() != 3 {
		t.Fatalf("Expected 3 rows, got %d", table.Len())
	}
	for i, row := range table.rows {
		if len(row) != 2 {
			t.Errorf("row %d has %d cells, want 2", i, len(row))
		}
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected padded cell to be empty, got %q", table.rows[1][1])
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable("Token", "Hex")
	table.AddRow("gray.50", "#FAFAFA")
	table.AddRow("accent.default", "#3B82F6")

	want := "" +
		"Token           Hex\n" +
		"--------------  -------\n" +
		"gray.50         #FAFAFA\n" +
		"accent.default  #3B82F6\n"

	if got := table.Render(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestTableRenderRightAlign(t *testing.T) {
	table := NewTable("Check", "Ratio")
	table.SetAlign(1, AlignRight)
	table.AddRow("muted", "1.6:1")
	table.AddRow("dark", "16.2:1")

	lines := strings.Split(table.Render(), "\n")
	if lines[2] != "muted   1.6:1" {
		t.Errorf("unexpected aligned row %q", lines[2])
	}
	if lines[3] != "dark   16.2:1" {
		t.Errorf("unexpected aligned row %q", lines[3])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable().Render(); got != "" {
		t.Errorf("Expected empty string for table without headers, got %q", got)
	}
}

func TestTableRenderNoRows(t *testing.T) {
	got := NewTable("Name", "Seed").Render()
	if got != "Name  Seed\n----  ----\n" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestTableRenderStyledCells(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.TrueColor)
	styled := r.NewStyle().Background(lipgloss.Color("#3B82F6")).Render("  ")

	table := NewTable("Swatch", "Hex")
	table.AddRow(styled, "#3B82F6")

	lines := strings.Split(table.Render(), "\n")
	if !strings.Contains(lines[2], "\x1b[") {
		t.Fatalf("expected ANSI sequence in row, got %q", lines[2])
	}
	if got := lipgloss.Width(lines[2]); got != lipgloss.Width(lines[1]) {
		t.Errorf("styled row width %d, separator width %d", got, lipgloss.Width(lines[1]))
	}
}

func TestTableWrapping(t *testing.T) {
	table := NewTable("ID", "Message")
	table.SetMaxWidth(1, 12)
	table.AddRow("text-muted-on-bg", "Muted text on background fails")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header, separator and 4 wrapped lines, got %d:\n%s", len(lines), table.Render())
	}
	if !strings.HasPrefix(lines[3], strings.Repeat(" ", len("text-muted-on-bg"))) {
		t.Errorf("continuation line should leave first column blank: %q", lines[3])
	}
}

func TestTableWriteTo(t *testing.T) {
	table := NewTable("A")
	table.AddRow("x")

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if int(n) != buf.Len() || buf.String() != table.Render() {
		t.Errorf("WriteTo wrote %d bytes %q", n, buf.String())
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		align Align
		want  string
	}{
		{"test", 8, AlignLeft, "test    "},
		{"test", 8, AlignRight, "    test"},
		{"hello", 5, AlignLeft, "hello"},
		{"world", 3, AlignLeft, "world"},
		{"", 3, AlignLeft, "   "},
		{"→", 3, AlignLeft, "→  "},
	}

	for _, tt := range tests {
		if got := pad(tt.input, tt.width, tt.align); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "no limit", text: "hello world", width: 0, want: []string{"hello world"}},
		{name: "fits", text: "hello", width: 10, want: []string{"hello"}},
		{name: "word boundary", text: "hello world foo", width: 11, want: []string{"hello world", "foo"}},
		{name: "long word", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
		{name: "long word exact", text: "abcdefgh x", width: 4, want: []string{"abcd", "efgh", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
