package ooxml

import (
	"encoding/xml"
	"strings"
)

// namespacePrefixes maps the namespace URIs seen in Word documents to their
// conventional prefixes. Go's XML decoder resolves prefixes to URIs, so the
// mapping is needed to write elements back the way Word expects them.
var namespacePrefixes = map[string]string{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main":           "w",
	"http://schemas.openxmlformats.org/officeDocument/2006/relationships":    "r",
	"http://schemas.openxmlformats.org/officeDocument/2006/math":             "m",
	"http://www.w3.org/XML/1998/namespace":                                   "xml",
	"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
	"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
	"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":            "mc",
	"http://schemas.microsoft.com/office/word/2010/wordml":                   "w14",
	"http://schemas.microsoft.com/office/word/2012/wordml":                   "w15",
	"http://schemas.microsoft.com/office/word/2018/wordml":                   "w16",
	"http://schemas.microsoft.com/office/word/2016/wordml/cid":               "w16cid",
	"http://schemas.microsoft.com/office/word/2015/wordml/symex":             "w16se",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":      "wps",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas":     "wpc",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":      "wpg",
	"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":        "wpi",
	"urn:schemas-microsoft-com:vml":                                          "v",
	"urn:schemas-microsoft-com:office:office":                                "o",
	"urn:schemas-microsoft-com:office:word":                                  "w10",
	"http://schemas.microsoft.com/office/word/2006/wordml":                   "wne",
}

func prefixForURI(uri string) string {
	if p, ok := namespacePrefixes[uri]; ok {
		return p
	}
	// Unknown namespace: fall back to the URI so the problem is visible in
	// the output instead of silently producing an unprefixed element.
	return uri
}

func elemName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return prefixForURI(n.Space) + ":" + n.Local
}

func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	default:
		return prefixForURI(n.Space) + ":" + n.Local
	}
}

func escapeText(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func writeAttrs(b *strings.Builder, attrs []xml.Attr) {
	for _, a := range attrs {
		b.WriteString(" ")
		b.WriteString(attrName(a.Name))
		b.WriteString(`="`)
		b.WriteString(escapeText(a.Value))
		b.WriteString(`"`)
	}
}

// RawElement preserves an element subtree the model does not interpret.
// Inner holds the already-serialized children, prefixed and escaped.
type RawElement struct {
	Name  xml.Name
	Attrs []xml.Attr
	Inner string
}

func (r *RawElement) isBodyElement()    {}
func (r *RawElement) isParagraphChild() {}
func (r *RawElement) isRunChild()       {}
func (r *RawElement) isTableChild()     {}
func (r *RawElement) isRowChild()       {}
func (r *RawElement) isCellChild()      {}

func (r *RawElement) write(b *strings.Builder) {
	name := elemName(r.Name)
	b.WriteString("<")
	b.WriteString(name)
	writeAttrs(b, r.Attrs)
	if r.Inner == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	b.WriteString(r.Inner)
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

// captureInner serializes everything up to the end tag matching start.
// The observe callback, when non-nil, sees every nested start element so
// callers can pick out values (style IDs, bold flags) in the same pass.
func captureInner(d *xml.Decoder, start xml.StartElement, observe func(xml.StartElement)) (string, error) {
	var b strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if observe != nil {
				observe(t)
			}
			b.WriteString("<")
			b.WriteString(elemName(t.Name))
			writeAttrs(&b, t.Attr)
			b.WriteString(">")
		case xml.EndElement:
			depth--
			if depth > 0 {
				b.WriteString("</")
				b.WriteString(elemName(t.Name))
				b.WriteString(">")
			}
		case xml.CharData:
			b.WriteString(escapeText(string(t)))
		}
	}
	return b.String(), nil
}

// captureRaw reads the element opened by start into a RawElement.
func captureRaw(d *xml.Decoder, start xml.StartElement) (*RawElement, error) {
	inner, err := captureInner(d, start, nil)
	if err != nil {
		return nil, err
	}
	return &RawElement{Name: start.Name, Attrs: start.Attr, Inner: inner}, nil
}

func attrValue(attrs []xml.Attr, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
