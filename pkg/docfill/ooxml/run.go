package ooxml

import (
	"encoding/xml"
	"strings"
)

// RunChild is any element that can appear inside a run.
type RunChild interface {
	isRunChild()
	write(b *strings.Builder)
}

// Run represents a w:r element.
type Run struct {
	Properties *RunProperties
	Children   []RunChild
}

func (r *Run) isParagraphChild() {}

// Text returns the concatenated text content of the run.
func (r *Run) Text() string {
	var b strings.Builder
	for _, c := range r.Children {
		if t, ok := c.(*RunText); ok {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}

// Bold reports whether the run carries bold formatting.
func (r *Run) Bold() bool {
	return r.Properties != nil && r.Properties.Bold
}

func (r *Run) parse(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				props, err := parseRunProperties(d, t)
				if err != nil {
					return err
				}
				r.Properties = props
			case "t":
				text, err := parseRunText(d, t)
				if err != nil {
					return err
				}
				r.Children = append(r.Children, text)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				r.Children = append(r.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return nil
			}
		}
	}
}

func (r *Run) write(b *strings.Builder) {
	b.WriteString("<w:r>")
	if r.Properties != nil {
		r.Properties.write(b)
	}
	for _, c := range r.Children {
		c.write(b)
	}
	b.WriteString("</w:r>")
}

// RunText represents a w:t element.
type RunText struct {
	Value string
}

func (t *RunText) isRunChild() {}

func parseRunText(d *xml.Decoder, start xml.StartElement) (*RunText, error) {
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch tt := tok.(type) {
		case xml.CharData:
			b.Write(tt)
		case xml.EndElement:
			if tt.Name.Local == "t" {
				return &RunText{Value: b.String()}, nil
			}
		}
	}
}

func (t *RunText) write(b *strings.Builder) {
	// xml:space="preserve" keeps Word from trimming significant whitespace
	// around substituted values.
	if t.Value != strings.TrimSpace(t.Value) {
		b.WriteString(`<w:t xml:space="preserve">`)
	} else {
		b.WriteString("<w:t>")
	}
	b.WriteString(escapeText(t.Value))
	b.WriteString("</w:t>")
}

// RunProperties keeps the w:rPr subtree verbatim and exposes the bold flag.
type RunProperties struct {
	Bold bool
	raw  string
}

func parseRunProperties(d *xml.Decoder, start xml.StartElement) (*RunProperties, error) {
	props := &RunProperties{}
	inner, err := captureInner(d, start, func(se xml.StartElement) {
		if se.Name.Local == "b" {
			switch attrValue(se.Attr, "val") {
			case "0", "false", "none":
				props.Bold = false
			default:
				props.Bold = true
			}
		}
	})
	if err != nil {
		return nil, err
	}
	props.raw = inner
	return props, nil
}

func (p *RunProperties) write(b *strings.Builder) {
	if p.raw == "" {
		b.WriteString("<w:rPr/>")
		return
	}
	b.WriteString("<w:rPr>")
	b.WriteString(p.raw)
	b.WriteString("</w:rPr>")
}
