package main

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/peri/internal/catalog"
	"github.com/vovakirdan/peri/internal/config"
	"github.com/vovakirdan/peri/internal/palette"
	"github.com/vovakirdan/peri/internal/periodic"
	"github.com/vovakirdan/peri/internal/registry"
)

func TestLookupElement(t *testing.T) {
	c := catalog.MustDefault()

	tests := []struct {
		arg    string
		symbol string
		ok     bool
	}{
		{"Fe", "Fe", true},
		{"og", "Og", true},
		{"26", "Fe", true},
		{" 118 ", "Og", true},
		{"0", "", false},
		{"119", "", false},
		{"Xx", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			e, ok := lookupElement(c, tt.arg)
			if ok != tt.ok {
				t.Fatalf("lookupElement(%q) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
			if ok && e.Symbol != tt.symbol {
				t.Errorf("lookupElement(%q) = %s, want %s", tt.arg, e.Symbol, tt.symbol)
			}
		})
	}
}

func TestWriteElement(t *testing.T) {
	c := catalog.MustDefault()

	tests := []struct {
		symbol string
		want   []string
	}{
		{"Fe", []string{"26 - Fe", "Iron", "Group 8, Period 4", "Metal: yes", "Type:", "ansi(4)"}},
		{"He", []string{"Electronegativity: n/a", "Metal: no"}},
		{"La", []string{"Lanthanide", "Period 6, f-block"}},
		{"Rf", []string{"Transactinide", "Group 4, Period 7"}},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			i, ok := c.IndexOfSymbol(tt.symbol)
			if !ok {
				t.Fatalf("no %s", tt.symbol)
			}
			e, _ := c.At(i)

			var buf bytes.Buffer
			writeElement(&buf, e)
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	c := catalog.MustDefault()

	var buf bytes.Buffer
	writeList(&buf, c.InCategory(catalog.CategoryHalogen))
	out := buf.String()

	for _, sym := range []string{"F ", "Cl", "Br", "I ", "At"} {
		if !strings.Contains(out, sym) {
			t.Errorf("list missing %q", sym)
		}
	}
	if !strings.Contains(out, "5 elements.") {
		t.Errorf("missing count:\n%s", out)
	}

	buf.Reset()
	writeList(&buf, nil)
	if strings.TrimSpace(buf.String()) != "No elements." {
		t.Errorf("empty list = %q", buf.String())
	}
}

func TestWriteModes(t *testing.T) {
	var buf bytes.Buffer
	writeModes(&buf, registry.List())
	out := buf.String()

	for _, want := range []string{"electronegativity", "none", "type", "Electronegativity"} {
		if !strings.Contains(out, want) {
			t.Errorf("modes missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTable(t *testing.T) {
	c := catalog.MustDefault()
	state := periodic.State{Selection: periodic.Selected(25), Mode: palette.ModeType}

	var buf bytes.Buffer
	writeTable(&buf, c, state, periodic.DefaultRenderOptions(), 80, 40, false)
	out := buf.String()

	// 80x40 gives scale 4, so the table is 22 rows tall.
	if lines := strings.Count(out, "\n"); lines != 22 {
		t.Errorf("printed %d lines, want 22", lines)
	}
	for _, want := range []string{"Fe", "Og", "Lu", "Lr", "26 - Fe", "Coloring: Type"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestWriteTableFitsActinides(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, catalog.MustDefault(), periodic.State{}, periodic.DefaultRenderOptions(), 120, 30, false)
	out := buf.String()

	// 120x30 would allow scale 6, but the actinides would end at row 33.
	if lines := strings.Count(out, "\n"); lines != 27 {
		t.Errorf("printed %d lines, want 27", lines)
	}
	for _, want := range []string{"Ac", "Th", "Lr"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q", want)
		}
	}
}

func TestWriteTableTooSmall(t *testing.T) {
	var buf bytes.Buffer
	writeTable(&buf, catalog.MustDefault(), periodic.State{}, periodic.DefaultRenderOptions(), 30, 8, false)
	if !strings.Contains(buf.String(), "Window too small") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestResolveMode(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Display.ColoringMode = "type"

	tests := []struct {
		flag    string
		want    palette.Mode
		wantErr bool
	}{
		{"", palette.ModeType, false},
		{"e", palette.ModeElectronegativity, false},
		{"none", palette.ModeNone, false},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := resolveMode(tt.flag, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("mode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPropertySeries(t *testing.T) {
	elements := catalog.MustDefault().All()

	data, _, err := propertySeries(elements, "electronegativity")
	if err != nil {
		t.Fatalf("propertySeries() error: %v", err)
	}
	if len(data) != catalog.Size {
		t.Fatalf("len = %d", len(data))
	}
	if data[0] < 2.19 || data[0] > 2.21 {
		t.Errorf("H = %v, want 2.20", data[0])
	}
	if !math.IsNaN(data[1]) {
		t.Errorf("He = %v, want a gap", data[1])
	}

	mass, _, err := propertySeries(elements, "mass")
	if err != nil || mass[25] < 55.8 || mass[25] > 55.9 {
		t.Errorf("Fe mass = %v, err = %v", mass[25], err)
	}

	if _, _, err := propertySeries(elements, "color"); err == nil {
		t.Error("expected an error for an unknown property")
	}
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	writeChart(&buf, []float64{1, 2, 3, 2, 1}, "test caption", 5, 0)
	out := buf.String()
	if !strings.Contains(out, "test caption") {
		t.Errorf("chart missing caption:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 5 {
		t.Errorf("chart has %d lines", lines)
	}
}
