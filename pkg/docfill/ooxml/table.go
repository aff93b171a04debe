package ooxml

import (
	"encoding/xml"
	"strings"
)

// TableChild is any element that can appear inside a table.
type TableChild interface {
	isTableChild()
	write(b *strings.Builder)
}

// RowChild is any element that can appear inside a table row.
type RowChild interface {
	isRowChild()
	write(b *strings.Builder)
}

// CellChild is any element that can appear inside a table cell.
type CellChild interface {
	isCellChild()
	write(b *strings.Builder)
}

// Table represents a w:tbl element. Properties and the grid are kept as raw
// children so column widths and borders survive a rewrite untouched.
type Table struct {
	Children []TableChild
}

func (t *Table) isBodyElement() {}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, c := range t.Children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *Table) parse(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.StartElement:
			if tt.Name.Local == "tr" {
				row := &TableRow{}
				if err := row.parse(d, tt); err != nil {
					return err
				}
				t.Children = append(t.Children, row)
				continue
			}
			raw, err := captureRaw(d, tt)
			if err != nil {
				return err
			}
			t.Children = append(t.Children, raw)
		case xml.EndElement:
			if tt.Name.Local == "tbl" {
				return nil
			}
		}
	}
}

func (t *Table) write(b *strings.Builder) {
	b.WriteString("<w:tbl>")
	for _, c := range t.Children {
		c.write(b)
	}
	b.WriteString("</w:tbl>")
}

// TableRow represents a w:tr element.
type TableRow struct {
	Children []RowChild
}

func (r *TableRow) isTableChild() {}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, c := range r.Children {
		if cell, ok := c.(*TableCell); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

func (r *TableRow) parse(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.StartElement:
			if tt.Name.Local == "tc" {
				cell := &TableCell{}
				if err := cell.parse(d, tt); err != nil {
					return err
				}
				r.Children = append(r.Children, cell)
				continue
			}
			raw, err := captureRaw(d, tt)
			if err != nil {
				return err
			}
			r.Children = append(r.Children, raw)
		case xml.EndElement:
			if tt.Name.Local == "tr" {
				return nil
			}
		}
	}
}

func (r *TableRow) write(b *strings.Builder) {
	b.WriteString("<w:tr>")
	for _, c := range r.Children {
		c.write(b)
	}
	b.WriteString("</w:tr>")
}

// TableCell represents a w:tc element. Nested tables inside the cell are
// preserved as raw markup but are not part of the cell's text.
type TableCell struct {
	Children []CellChild
}

func (c *TableCell) isRowChild() {}

// Paragraphs returns the cell's direct paragraphs in order.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, ch := range c.Children {
		if p, ok := ch.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Text returns the cell's paragraph texts joined by newlines.
func (c *TableCell) Text() string {
	paras := c.Paragraphs()
	parts := make([]string, len(paras))
	for i, p := range paras {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// SetText replaces the cell's content with a single paragraph holding text.
// Cell properties (w:tcPr) are kept so widths and shading survive.
func (c *TableCell) SetText(text string) {
	var kept []CellChild
	for _, ch := range c.Children {
		if raw, ok := ch.(*RawElement); ok && raw.Name.Local == "tcPr" {
			kept = append(kept, raw)
		}
	}
	para := &Paragraph{}
	if first := c.Paragraphs(); len(first) > 0 {
		para.Properties = first[0].Properties
		para.Children = first[0].Children
	}
	para.SetText(text)
	c.Children = append(kept, para)
}

func (c *TableCell) parse(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.StartElement:
			if tt.Name.Local == "p" {
				para := &Paragraph{}
				if err := para.parse(d, tt); err != nil {
					return err
				}
				c.Children = append(c.Children, para)
				continue
			}
			raw, err := captureRaw(d, tt)
			if err != nil {
				return err
			}
			c.Children = append(c.Children, raw)
		case xml.EndElement:
			if tt.Name.Local == "tc" {
				return nil
			}
		}
	}
}

func (c *TableCell) write(b *strings.Builder) {
	b.WriteString("<w:tc>")
	for _, ch := range c.Children {
		ch.write(b)
	}
	b.WriteString("</w:tc>")
}
