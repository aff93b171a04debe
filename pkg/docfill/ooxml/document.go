package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\r\n"

// BodyElement is any element that can appear in the document body.
type BodyElement interface {
	isBodyElement()
	write(b *strings.Builder)
}

// Document represents the w:document root of word/document.xml.
// Attrs preserves the root element's namespace declarations.
type Document struct {
	Attrs []xml.Attr
	Body  *Body
}

// Body holds the document body elements in document order. Section
// properties and any other unmodeled trailing elements are kept as raw
// entries in the same slice, so order is preserved on write.
type Body struct {
	Elements []BodyElement
}

// Paragraphs returns the body's top-level paragraphs in document order.
// Paragraphs inside table cells are reached through the cells themselves.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range d.Body.Elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the body's top-level tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Body.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// Parse reads a word/document.xml stream into a Document.
func Parse(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)
	doc := &Document{Body: &Body{}}
	sawDocument := false
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "document":
			doc.Attrs = se.Attr
			sawDocument = true
		case "body":
			if err := doc.Body.parse(d); err != nil {
				return nil, fmt.Errorf("failed to parse document body: %w", err)
			}
		default:
			if err := d.Skip(); err != nil {
				return nil, fmt.Errorf("failed to parse document: %w", err)
			}
		}
	}
	if !sawDocument {
		return nil, fmt.Errorf("not a WordprocessingML document: missing w:document root")
	}
	return doc, nil
}

func (b *Body) parse(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para := &Paragraph{}
				if err := para.parse(d, t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, para)
			case "tbl":
				table := &Table{}
				if err := table.parse(d, t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, table)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return err
				}
				b.Elements = append(b.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return nil
			}
		}
	}
}

// Marshal serializes the document back to word/document.xml bytes with the
// original root attributes.
func (d *Document) Marshal() ([]byte, error) {
	if d.Body == nil {
		return nil, fmt.Errorf("cannot marshal document without a body")
	}
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString("<w:document")
	writeAttrs(&b, d.Attrs)
	b.WriteString("><w:body>")
	for _, el := range d.Body.Elements {
		el.write(&b)
	}
	b.WriteString("</w:body></w:document>")
	return []byte(b.String()), nil
}
