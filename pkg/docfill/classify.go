package docfill

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DocumentType is a coarse content classification used to pick the fallback
// section keyword table.
type DocumentType string

const (
	TypeRealEstate DocumentType = "real_estate"
	TypeLabor      DocumentType = "labor"
	TypeRental     DocumentType = "rental"
	TypeServices   DocumentType = "services"
	TypeGeneric    DocumentType = "generic"
)

// Label returns a human-readable name for the document type.
func (t DocumentType) Label() string {
	switch t {
	case TypeRealEstate:
		return "Real Estate Contract"
	case TypeLabor:
		return "Labor Contract"
	case TypeRental:
		return "Rental Agreement"
	case TypeServices:
		return "Service Contract"
	default:
		return "Generic Document"
	}
}

// normalizeText lower-cases s after NFC normalization. Document text can
// carry decomposed accents while the keyword tables are precomposed
// ("imóvel", "cláusula"), so matching happens on the normalized form.
func normalizeText(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Classifier assigns a DocumentType from leading document text.
type Classifier struct {
	keywords      *KeywordConfig
	maxParagraphs int
}

// NewClassifier creates a classifier over the given taxonomy. maxParagraphs
// bounds how much leading text is inspected.
func NewClassifier(keywords *KeywordConfig, maxParagraphs int) *Classifier {
	return &Classifier{keywords: keywords, maxParagraphs: maxParagraphs}
}

// Classify inspects the leading paragraphs and returns the first type group,
// in taxonomy order, with any keyword present. The order is a deliberate
// fixed tie-break: a document matching several groups resolves to the
// earliest one. No match means generic.
func (c *Classifier) Classify(paragraphs []string) DocumentType {
	limit := len(paragraphs)
	if c.maxParagraphs > 0 && limit > c.maxParagraphs {
		limit = c.maxParagraphs
	}

	var b strings.Builder
	for _, p := range paragraphs[:limit] {
		b.WriteString(normalizeText(p))
		b.WriteString(" ")
	}
	content := b.String()

	for _, group := range c.keywords.Types {
		if containsAny(content, group.Keywords) {
			return group.Type
		}
	}
	return TypeGeneric
}
