package docfill

import (
	"bytes"
	"log/slog"
	"slices"

	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

const (
	// OutputFilename is the fixed download name for filled documents.
	OutputFilename = "filled_template.docx"
	// ContentType identifies the DOCX container format.
	ContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Template is a prepared DOCX template: the loaded document plus the derived
// placeholder list, structural model, type classification and sections.
// A Template is read-only after preparation; Fill operates on a fresh copy
// of the source bytes, so the same template can be filled repeatedly.
type Template struct {
	source       []byte
	document     *ooxml.Document
	placeholders []string
	blocks       []Block
	docType      DocumentType
	sections     []Section
	config       *Config
	logger       *slog.Logger
}

// Placeholders returns the unique placeholder literals in first-seen
// traversal order.
func (t *Template) Placeholders() []string {
	return slices.Clone(t.placeholders)
}

// HasPlaceholders reports whether the template contains any placeholder.
// A template without placeholders is a valid state, not an error; callers
// should present it distinctly from success-with-fields.
func (t *Template) HasPlaceholders() bool {
	return len(t.placeholders) > 0
}

// Blocks returns the document's structural model in traversal order.
func (t *Template) Blocks() []Block {
	return slices.Clone(t.blocks)
}

// Type returns the document's classified type.
func (t *Template) Type() DocumentType {
	return t.docType
}

// Sections returns the placeholder grouping. The sections partition the
// placeholder list.
func (t *Template) Sections() []Section {
	return slices.Clone(t.sections)
}

// MissingValues returns the placeholders values has no entry for, in
// placeholder order. Callers enforcing totality should treat a non-empty
// result as a user-input error before invoking Fill.
func (t *Template) MissingValues(values FillMap) []string {
	var missing []string
	for _, ph := range t.placeholders {
		if _, ok := values[ph]; !ok {
			missing = append(missing, ph)
		}
	}
	return missing
}

// Fill produces a filled copy of the template as DOCX bytes. Every
// placeholder occurrence in paragraphs and table cells is replaced by its
// mapped value. Placeholders missing from values are left in place unless
// strict fill is configured, in which case an IncompleteFillError is
// returned. The template itself is never mutated.
func (t *Template) Fill(values FillMap) ([]byte, error) {
	if t.config.StrictFill {
		if missing := t.MissingValues(values); len(missing) > 0 {
			return nil, &IncompleteFillError{Missing: missing}
		}
	}

	// Parse a fresh document from the source bytes so repeated fills never
	// accumulate edits.
	reader, err := NewDocxReader(bytes.NewReader(t.source), int64(len(t.source)))
	if err != nil {
		return nil, NewDocumentError("reload", "", err)
	}
	docXML, err := reader.DocumentXML()
	if err != nil {
		return nil, NewDocumentError("reload", documentPart, err)
	}
	doc, err := ooxml.Parse(bytes.NewReader(docXML))
	if err != nil {
		return nil, NewDocumentError("reload", documentPart, err)
	}

	walkDocument(doc, &filler{values: values})

	filledXML, err := doc.Marshal()
	if err != nil {
		return nil, NewDocumentError("serialize", documentPart, err)
	}
	out, err := rewriteDocx(t.source, filledXML)
	if err != nil {
		return nil, NewDocumentError("write", "", err)
	}

	t.logger.Debug("template filled",
		"placeholders", len(t.placeholders),
		"values", len(values),
		"bytes", len(out))
	return out, nil
}
