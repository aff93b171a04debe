package ooxml

import (
	"encoding/xml"
	"strings"
)

// ParagraphChild is any element that can appear inside a paragraph.
type ParagraphChild interface {
	isParagraphChild()
	write(b *strings.Builder)
}

// Paragraph represents a w:p element.
type Paragraph struct {
	Properties *ParagraphProperties
	Children   []ParagraphChild
}

func (p *Paragraph) isBodyElement() {}
func (p *Paragraph) isCellChild()   {}

// Runs returns the paragraph's runs in document order. Runs nested inside
// hyperlinks or other unmodeled containers are not included, matching the
// flattened-text contract of the document model.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// SetText replaces the paragraph's entire content with a single run holding
// text. Paragraph properties are kept; the run properties of the first
// existing run carry over so the dominant formatting survives.
func (p *Paragraph) SetText(text string) {
	var props *RunProperties
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			props = r.Properties
			break
		}
	}
	run := &Run{Properties: props}
	if text != "" {
		run.Children = []RunChild{&RunText{Value: text}}
	}
	p.Children = []ParagraphChild{run}
}

// StyleID returns the paragraph style identifier, or "" when unset.
func (p *Paragraph) StyleID() string {
	if p.Properties == nil {
		return ""
	}
	return p.Properties.StyleID
}

func (p *Paragraph) parse(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				props, err := parseParagraphProperties(d, t)
				if err != nil {
					return err
				}
				p.Properties = props
			case "r":
				run := &Run{}
				if err := run.parse(d, t); err != nil {
					return err
				}
				p.Children = append(p.Children, run)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				p.Children = append(p.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return nil
			}
		}
	}
}

func (p *Paragraph) write(b *strings.Builder) {
	b.WriteString("<w:p>")
	if p.Properties != nil {
		p.Properties.write(b)
	}
	for _, c := range p.Children {
		c.write(b)
	}
	b.WriteString("</w:p>")
}

// ParagraphProperties keeps the w:pPr subtree verbatim and exposes the two
// values the structural model cares about.
type ParagraphProperties struct {
	StyleID       string // w:pStyle val
	Justification string // w:jc val
	raw           string
}

func parseParagraphProperties(d *xml.Decoder, start xml.StartElement) (*ParagraphProperties, error) {
	props := &ParagraphProperties{}
	inner, err := captureInner(d, start, func(se xml.StartElement) {
		switch se.Name.Local {
		case "pStyle":
			props.StyleID = attrValue(se.Attr, "val")
		case "jc":
			props.Justification = attrValue(se.Attr, "val")
		}
	})
	if err != nil {
		return nil, err
	}
	props.raw = inner
	return props, nil
}

func (p *ParagraphProperties) write(b *strings.Builder) {
	if p.raw == "" {
		b.WriteString("<w:pPr/>")
		return
	}
	b.WriteString("<w:pPr>")
	b.WriteString(p.raw)
	b.WriteString("</w:pPr>")
}
