package docfill

import (
	"strings"

	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

// Block is a paragraph or a table, the unit of document structure handed to
// the presentation layer.
type Block interface {
	isBlock()
}

// ParagraphStyle carries the light style metadata the renderer needs.
type ParagraphStyle struct {
	Name         string
	IsHeading    bool
	HeadingLevel int // 1 or 2 when detectable, 0 otherwise
	IsBold       bool
	IsCentered   bool
}

// ParagraphBlock is a paragraph with its placeholder occurrences.
type ParagraphBlock struct {
	Index        int
	Text         string
	IsEmpty      bool
	Style        ParagraphStyle
	Placeholders []string
}

func (ParagraphBlock) isBlock() {}

// CellBlock is a single table cell with its placeholder occurrences.
type CellBlock struct {
	Text         string
	Placeholders []string
	Row          int
	Col          int
}

// RowBlock is an ordered row of cells.
type RowBlock struct {
	Cells []CellBlock
}

// TableBlock is a table with its full row and cell structure.
type TableBlock struct {
	Index int
	Rows  []RowBlock
}

func (TableBlock) isBlock() {}

// HasPlaceholders reports whether the paragraph contains any placeholder.
func (p ParagraphBlock) HasPlaceholders() bool {
	return len(p.Placeholders) > 0
}

// HasPlaceholders reports whether the cell contains any placeholder.
func (c CellBlock) HasPlaceholders() bool {
	return len(c.Placeholders) > 0
}

func styleOf(p *ooxml.Paragraph) ParagraphStyle {
	style := ParagraphStyle{Name: p.StyleID()}

	name := strings.ToLower(style.Name)
	if strings.Contains(name, "heading") {
		style.IsHeading = true
		// Style identifiers spell the level with or without a space
		// ("Heading 1" vs "Heading1").
		compact := strings.ReplaceAll(name, " ", "")
		switch {
		case strings.Contains(compact, "heading1"):
			style.HeadingLevel = 1
		case strings.Contains(compact, "heading2"):
			style.HeadingLevel = 2
		}
	}

	runs := p.Runs()
	if len(runs) > 0 {
		bold := 0
		for _, r := range runs {
			if r.Bold() {
				bold++
			}
		}
		// Strict majority of runs bold marks the paragraph bold.
		style.IsBold = bold*2 > len(runs)
	}

	if p.Properties != nil && p.Properties.Justification == "center" {
		style.IsCentered = true
	}

	return style
}

// modelBuilder assembles the ordered block list during a document walk.
type modelBuilder struct {
	blocks  []Block
	current *TableBlock
}

func (m *modelBuilder) visitParagraph(index int, p *ooxml.Paragraph) {
	text := p.Text()
	m.blocks = append(m.blocks, ParagraphBlock{
		Index:        index,
		Text:         text,
		IsEmpty:      strings.TrimSpace(text) == "",
		Style:        styleOf(p),
		Placeholders: FindPlaceholders(text),
	})
}

func (m *modelBuilder) beginTable(index int, t *ooxml.Table) {
	m.flush()
	m.current = &TableBlock{Index: index}
}

func (m *modelBuilder) visitCell(tableIndex, rowIndex, colIndex int, cell *ooxml.TableCell) {
	for len(m.current.Rows) <= rowIndex {
		m.current.Rows = append(m.current.Rows, RowBlock{})
	}
	text := cell.Text()
	row := &m.current.Rows[rowIndex]
	row.Cells = append(row.Cells, CellBlock{
		Text:         text,
		Placeholders: FindPlaceholders(text),
		Row:          rowIndex,
		Col:          colIndex,
	})
}

func (m *modelBuilder) flush() {
	if m.current != nil {
		m.blocks = append(m.blocks, *m.current)
		m.current = nil
	}
}

func (m *modelBuilder) result() []Block {
	m.flush()
	return m.blocks
}
