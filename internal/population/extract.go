package population

import (
	"bytes"
	"iter"
	"popdash/pkg/domain"
	"popdash/pkg/serrors"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-faster/errors"
)

// Column identifies one of the table columns the pipeline reads.
type Column int

const (
	ColumnCountry Column = iota
	ColumnPopulation
	ColumnMigrants
	ColumnWorldShare
	ColumnUrbanPct

	numColumns
)

// Columns maps every required column to its header label on the page.
type Columns struct {
	Country    string
	Population string
	Migrants   string
	WorldShare string
	UrbanPct   string
}

// DefaultColumns returns the header labels of the population-by-country table.
func DefaultColumns() Columns {
	return Columns{
		Country:    "Country (or dependency)",
		Population: "Population (2020)",
		Migrants:   "Migrants (net)",
		WorldShare: "World Share",
		UrbanPct:   "Urban Pop %",
	}
}

func (c Columns) labels() [numColumns]string {
	return [numColumns]string{
		ColumnCountry:    c.Country,
		ColumnPopulation: c.Population,
		ColumnMigrants:   c.Migrants,
		ColumnWorldShare: c.WorldShare,
		ColumnUrbanPct:   c.UrbanPct,
	}
}

// Table is a located statistics table with its required columns resolved.
type Table struct {
	// Header holds the trimmed header labels in page order.
	Header []string

	positions [numColumns]int
	rows      *goquery.Selection
}

// Len returns the number of data rows, i.e. all rows but the header row.
func (t *Table) Len() int { return t.rows.Length() }

// Rows lazily yields the data rows in page order. Cells are read from the
// document only when the sequence is iterated.
func (t *Table) Rows() iter.Seq[domain.RawRow] {
	return func(yield func(domain.RawRow) bool) {
		for i := range t.rows.Length() {
			if !yield(domain.RawRow{Index: i, Cells: cellTexts(t.rows.Eq(i))}) {
				return
			}
		}
	}
}

// Cell returns the text of column c in row, or "" when the row is short.
func (t *Table) Cell(row domain.RawRow, c Column) string {
	pos := t.positions[c]
	if pos >= len(row.Cells) {
		return ""
	}

	return row.Cells[pos]
}

// Extract parses markup, finds the table whose id is tableID and resolves the
// required columns by header label. Header labels are compared ignoring case
// and whitespace, so "Population<br>(2020)" matches "Population (2020)".
//
// It fails with a serrors.ErrParse kind when the document cannot be parsed,
// the table is absent, or a required column is missing.
func Extract(markup []byte, tableID string, columns Columns) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, errors.Wrap(err, "read markup"), "could not parse document")
	}

	table := doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		id, _ := s.Attr("id")

		return id == tableID
	}).First()
	if table.Length() == 0 {
		return nil, serrors.With(serrors.ErrParse, "table %q not found", tableID)
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return nil, serrors.With(serrors.ErrParse, "table %q has no header row", tableID)
	}

	header := cellTexts(trs.First())
	positions, err := resolve(header, columns)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrParse, err, "table %q does not have the expected columns", tableID)
	}

	return &Table{
		Header:    header,
		positions: positions,
		rows:      trs.Slice(1, goquery.ToEnd),
	}, nil
}

func resolve(header []string, columns Columns) ([numColumns]int, error) {
	index := make(map[string]int, len(header))
	for i, label := range header {
		key := canonicalLabel(label)
		if _, ok := index[key]; !ok {
			index[key] = i
		}
	}

	var (
		positions [numColumns]int
		missing   []string
	)
	for c, label := range columns.labels() {
		pos, ok := index[canonicalLabel(label)]
		if !ok {
			missing = append(missing, label)

			continue
		}
		positions[c] = pos
	}
	if len(missing) > 0 {
		return positions, errors.Errorf("missing columns %q", missing)
	}

	return positions, nil
}

func cellTexts(row *goquery.Selection) []string {
	cells := row.Find("th, td")
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		out = append(out, strings.TrimSpace(cell.Text()))
	})

	return out
}

func canonicalLabel(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
