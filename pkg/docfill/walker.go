package docfill

import (
	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

// documentVisitor receives the document's text units during a walk.
type documentVisitor interface {
	visitParagraph(index int, p *ooxml.Paragraph)
	beginTable(index int, t *ooxml.Table)
	visitCell(tableIndex, rowIndex, colIndex int, cell *ooxml.TableCell)
}

// walkDocument traverses the document body in canonical order: every
// paragraph in document order, then every top-level table row-major and
// column-major. All visitors see the identical traversal in a single pass,
// which is what keeps the placeholder list and the structural model
// consistent with each other. Nested tables inside cells are not descended;
// their content is not part of the cell's flattened text either.
func walkDocument(doc *ooxml.Document, visitors ...documentVisitor) {
	for i, p := range doc.Paragraphs() {
		for _, v := range visitors {
			v.visitParagraph(i, p)
		}
	}
	for ti, t := range doc.Tables() {
		for _, v := range visitors {
			v.beginTable(ti, t)
		}
		for ri, row := range t.Rows() {
			for ci, cell := range row.Cells() {
				for _, v := range visitors {
					v.visitCell(ti, ri, ci, cell)
				}
			}
		}
	}
}
