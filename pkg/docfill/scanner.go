package docfill

import (
	"regexp"

	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

// placeholderPattern matches {{name}} tokens. The body is one or more
// non-'}' characters, so the match always ends at the first closing pair;
// nesting and escaping are not supported.
var placeholderPattern = regexp.MustCompile(`\{\{[^}]+\}\}`)

// FindPlaceholders returns every placeholder literal in text in order of
// appearance, duplicates included.
func FindPlaceholders(text string) []string {
	return placeholderPattern.FindAllString(text, -1)
}

// placeholderScanner aggregates placeholders across text units, keeping the
// first-seen order and dropping duplicates.
type placeholderScanner struct {
	seen    map[string]struct{}
	ordered []string
}

func newPlaceholderScanner() *placeholderScanner {
	return &placeholderScanner{seen: make(map[string]struct{})}
}

func (s *placeholderScanner) scan(text string) {
	for _, ph := range FindPlaceholders(text) {
		if _, ok := s.seen[ph]; ok {
			continue
		}
		s.seen[ph] = struct{}{}
		s.ordered = append(s.ordered, ph)
	}
}

func (s *placeholderScanner) visitParagraph(index int, p *ooxml.Paragraph) {
	s.scan(p.Text())
}

func (s *placeholderScanner) beginTable(index int, t *ooxml.Table) {}

func (s *placeholderScanner) visitCell(tableIndex, rowIndex, colIndex int, cell *ooxml.TableCell) {
	s.scan(cell.Text())
}
