package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoIdentity is returned by ReadCSV when the header lacks the country code column.
var ErrNoIdentity = errors.New("table: header has no " + ColCode + " column")

const utf8BOM = "\ufeff"

// WriteOptions controls how WriteCSV lays out a file.
type WriteOptions struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter rune

	// Norm writes the "<Indicator>_Norm" columns after the raw columns.
	Norm bool
}

// Header returns the column names WriteCSV emits for t.
func Header(t *Table, norm bool) []string {
	cols := []string{ColName, ColCode, ColRegion}
	cols = append(cols, t.Indicators...)
	if norm {
		for _, ind := range t.Indicators {
			cols = append(cols, NormColumn(ind))
		}
	}
	return cols
}

// WriteCSV writes t as a delimited table. Missing values become empty cells.
func WriteCSV(w io.Writer, t *Table, opts WriteOptions) error {
	cw := csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.Comma = opts.Delimiter
	}

	if err := cw.Write(Header(t, opts.Norm)); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}

	for _, r := range t.Rows {
		rec := []string{r.Name, r.Code, r.Region}
		for _, ind := range t.Indicators {
			rec = append(rec, formatCell(r.Values, ind))
		}
		if opts.Norm {
			for _, ind := range t.Indicators {
				rec = append(rec, formatCell(r.Norm, ind))
			}
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("table: write row %q: %w", r.Code, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("table: flush: %w", err)
	}
	return nil
}

// ReadCSV parses a file written by WriteCSV. Columns other than the identity
// columns are raw indicators unless they end in NormSuffix. The Region column
// is optional; rows read without it have an empty Region.
func ReadCSV(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("table: read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	nameIdx, codeIdx, regionIdx := -1, -1, -1
	rawIdx := map[string]int{}
	normIdx := map[string]int{}
	var normOrder []string
	t := &Table{}
	for i, col := range header {
		col = strings.TrimSpace(col)
		switch col {
		case ColName:
			nameIdx = i
		case ColCode:
			codeIdx = i
		case ColRegion:
			regionIdx = i
		default:
			if ind, ok := IsNormColumn(col); ok {
				normIdx[ind] = i
				normOrder = append(normOrder, ind)
				continue
			}
			rawIdx[col] = i
			t.Indicators = append(t.Indicators, col)
		}
	}
	if codeIdx < 0 {
		return nil, ErrNoIdentity
	}
	// A normalized column without its raw column is still an indicator.
	for _, ind := range normOrder {
		if _, ok := rawIdx[ind]; !ok {
			t.Indicators = append(t.Indicators, ind)
		}
	}

	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("table: line %d: %w", line, err)
		}

		row := Row{
			Code:   field(rec, codeIdx),
			Name:   field(rec, nameIdx),
			Region: field(rec, regionIdx),
			Values: make(map[string]float64, len(rawIdx)),
		}
		for ind, i := range rawIdx {
			if err := parseCell(row.Values, ind, field(rec, i)); err != nil {
				return nil, fmt.Errorf("table: line %d column %q: %w", line, ind, err)
			}
		}
		if len(normIdx) > 0 {
			row.Norm = make(map[string]float64, len(normIdx))
			for ind, i := range normIdx {
				if err := parseCell(row.Norm, ind, field(rec, i)); err != nil {
					return nil, fmt.Errorf("table: line %d column %q: %w", line, NormColumn(ind), err)
				}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseCell(dst map[string]float64, key, s string) error {
	v, ok, err := ParseValue(s)
	if err != nil || !ok {
		return err
	}
	dst[key] = v
	return nil
}

func formatCell(m map[string]float64, key string) string {
	v, ok := m[key]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
