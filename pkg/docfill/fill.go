package docfill

import (
	"strings"

	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

// FillMap maps placeholder literals (the full "{{name}}" form) to their
// replacement values.
type FillMap map[string]string

// fillText substitutes placeholders in a single text unit. Each placeholder
// occurrence is located by the scanner pattern and spliced out exactly once;
// replacement values are never re-scanned, so a value containing another
// placeholder's literal is not rewritten by later keys. Occurrences without
// a mapped value are left untouched.
func fillText(text string, values FillMap) (string, bool) {
	if !strings.Contains(text, "{{") {
		return text, false
	}
	out := placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		if value, ok := values[match]; ok {
			return value
		}
		return match
	})
	return out, out != text
}

// filler rewrites text units during a document walk. Units whose text does
// not change are left alone so their run-level formatting survives.
type filler struct {
	values FillMap
}

func (f *filler) visitParagraph(index int, p *ooxml.Paragraph) {
	if text, changed := fillText(p.Text(), f.values); changed {
		p.SetText(text)
	}
}

func (f *filler) beginTable(index int, t *ooxml.Table) {}

func (f *filler) visitCell(tableIndex, rowIndex, colIndex int, cell *ooxml.TableCell) {
	if text, changed := fillText(cell.Text(), f.values); changed {
		cell.SetText(text)
	}
}
