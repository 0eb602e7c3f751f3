package catalog

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed elements.csv
var elementsCSV []byte

// Catalog integrity errors.
var (
	// ErrMalformed indicates a row with a missing or unparseable field.
	ErrMalformed = errors.New("catalog: malformed record")

	// ErrCount indicates the data does not hold exactly Size elements.
	ErrCount = errors.New("catalog: wrong number of elements")
)

// ParseError wraps a row-level failure with its location.
type ParseError struct {
	Line  int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("catalog: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("catalog: line %d: field %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Column layout of the data file.
var header = []string{
	"number", "name", "symbol", "mass", "period", "group", "metal", "category", "electronegativity",
}

const (
	colNumber = iota
	colName
	colSymbol
	colMass
	colPeriod
	colGroup
	colMetal
	colCategory
	colElectronegativity
)

// f-block ranges. Their rows are moved below the main table so the whole
// table becomes one rectangular grid.
const (
	lanthanumNumber  = 57
	lutetiumNumber   = 71
	actiniumNumber   = 89
	lawrenciumNumber = 103

	lanthanidePeriod = 8
	actinidePeriod   = 9
	fBlockFirstGroup = 4
)

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded data file.
// The file is parsed once; later calls return the same catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(bytes.NewReader(elementsCSV))
	})
	return defaultCatalog, defaultErr
}

// MustDefault is like Default but panics if the embedded data is corrupt.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from a CSV file on disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: cannot open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// Parse reads a header line followed by exactly Size rows in ascending
// atomic number order.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrCount)
		}
		return nil, &ParseError{Line: csvLine(err), Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(head[i]), name) {
			return nil, &ParseError{Line: 1, Field: name,
				Err: fmt.Errorf("%w: header column %d is %q", ErrMalformed, i+1, head[i])}
		}
	}

	elements := make([]Element, 0, Size)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: csvLine(err), Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}
		line, _ := cr.FieldPos(0)
		if len(elements) == Size {
			return nil, fmt.Errorf("%w: more than %d rows", ErrCount, Size)
		}

		e, err := parseRecord(record, len(elements)+1)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}
			return nil, err
		}
		elements = append(elements, e)
	}

	if len(elements) != Size {
		return nil, fmt.Errorf("%w: got %d rows, want %d", ErrCount, len(elements), Size)
	}

	return New(elements)
}

// parseRecord converts one CSV row. want is the atomic number the row must
// carry; rows out of order are rejected.
func parseRecord(record []string, want int) (Element, error) {
	field := func(col int) string {
		return strings.TrimSpace(record[col])
	}
	fail := func(col int, format string, args ...any) error {
		return &ParseError{Field: header[col], Err: fmt.Errorf("%w: "+format, append([]any{ErrMalformed}, args...)...)}
	}

	number, err := strconv.ParseUint(field(colNumber), 10, 8)
	if err != nil {
		return Element{}, fail(colNumber, "%q is not an atomic number", field(colNumber))
	}
	if int(number) != want {
		return Element{}, fail(colNumber, "expected %d, got %d", want, number)
	}

	e := Element{
		Number: uint8(number),
		Name:   field(colName),
		Symbol: field(colSymbol),
	}
	if e.Name == "" {
		return Element{}, fail(colName, "empty name")
	}
	if e.Symbol == "" {
		return Element{}, fail(colSymbol, "empty symbol")
	}

	mass, err := strconv.ParseFloat(field(colMass), 32)
	if err != nil || mass <= 0 {
		return Element{}, fail(colMass, "%q is not a positive mass", field(colMass))
	}
	e.Mass = float32(mass)

	switch strings.ToLower(field(colMetal)) {
	case "yes":
		e.Metal = true
	case "no":
		e.Metal = false
	default:
		return Element{}, fail(colMetal, "%q is neither yes nor no", field(colMetal))
	}

	cat, ok := ParseCategory(field(colCategory))
	if !ok {
		return Element{}, fail(colCategory, "unknown category %q", field(colCategory))
	}
	e.Category = cat

	if raw := field(colElectronegativity); raw != "" {
		en, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return Element{}, fail(colElectronegativity, "%q is not a number", raw)
		}
		e.Electronegativity = Electronegativity{Value: float32(en), Valid: true}
	}

	switch {
	case e.Number >= lanthanumNumber && e.Number <= lutetiumNumber:
		e.Period = lanthanidePeriod
		e.Group = uint16(e.Number-lanthanumNumber) + fBlockFirstGroup
	case e.Number >= actiniumNumber && e.Number <= lawrenciumNumber:
		e.Period = actinidePeriod
		e.Group = uint16(e.Number-actiniumNumber) + fBlockFirstGroup
	default:
		period, err := strconv.ParseUint(field(colPeriod), 10, 16)
		if err != nil || period < 1 || period >= lanthanidePeriod {
			return Element{}, fail(colPeriod, "%q is not a period in 1..7", field(colPeriod))
		}
		group, err := strconv.ParseUint(field(colGroup), 10, 16)
		if err != nil || group < 1 || group > 18 {
			return Element{}, fail(colGroup, "%q is not a group in 1..18", field(colGroup))
		}
		e.Period = uint16(period)
		e.Group = uint16(group)
	}

	return e, nil
}

// csvLine extracts the line number from an encoding/csv error.
func csvLine(err error) int {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return csvErr.Line
	}
	return 0
}
