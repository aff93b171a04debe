package ooxml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`

func parseBody(t *testing.T, bodyXML string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(testHeader + "<w:body>" + bodyXML + "</w:body></w:document>"))
	require.NoError(t, err)
	return doc
}

func TestParseRejectsNonWordprocessingML(t *testing.T) {
	_, err := Parse(strings.NewReader(`<?xml version="1.0"?><root><child/></root>`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing w:document root")
}

func TestParseRejectsMalformedXML(t *testing.T) {
	_, err := Parse(strings.NewReader(testHeader + "<w:body><w:p>"))
	require.Error(t, err)
}

func TestParseDocument(t *testing.T) {
	doc := parseBody(t,
		`<w:p><w:r><w:t>first</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>second</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`)

	paras := doc.Paragraphs()
	require.Len(t, paras, 2)
	require.Equal(t, "first", paras[0].Text())
	require.Equal(t, "second", paras[1].Text())

	tables := doc.Tables()
	require.Len(t, tables, 1)
	require.Equal(t, "cell", tables[0].Rows()[0].Cells()[0].Text())

	// Paragraphs, table and sectPr all live in the element list.
	require.Len(t, doc.Body.Elements, 4)
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := parseBody(t,
		`<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Title</w:t></w:r></w:p>`+
			`<w:tbl><w:tblPr><w:tblW w:w="0" w:type="auto"/></w:tblPr>`+
			`<w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`)

	out, err := doc.Marshal()
	require.NoError(t, err)

	reparsed, err := Parse(strings.NewReader(string(out)))
	require.NoError(t, err)
	require.Equal(t, "Title", reparsed.Paragraphs()[0].Text())
	require.Equal(t, "Heading1", reparsed.Paragraphs()[0].StyleID())
	require.Equal(t, "cell", reparsed.Tables()[0].Rows()[0].Cells()[0].Text())

	xml := string(out)
	require.True(t, strings.HasPrefix(xml, `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`))
	require.Contains(t, xml, `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`)
	require.Contains(t, xml, `w:w="11906"`)
	require.Contains(t, xml, "w:sectPr")
	require.Contains(t, xml, "w:tblPr")
}

func TestMarshalPreservesBodyOrder(t *testing.T) {
	doc := parseBody(t,
		`<w:p><w:r><w:t>before</w:t></w:r></w:p>`+
			`<w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl>`+
			`<w:p><w:r><w:t>after</w:t></w:r></w:p>`)

	out, err := doc.Marshal()
	require.NoError(t, err)

	xml := string(out)
	require.Less(t, strings.Index(xml, "before"), strings.Index(xml, "<w:tbl>"))
	require.Less(t, strings.Index(xml, "<w:tbl>"), strings.Index(xml, "after"))
}

func TestMarshalWithoutBody(t *testing.T) {
	doc := &Document{}
	_, err := doc.Marshal()
	require.Error(t, err)
}

func TestUnknownBodyElementsSurviveRewrite(t *testing.T) {
	doc := parseBody(t,
		`<w:bookmarkStart w:id="0" w:name="top"/>`+
			`<w:p><w:r><w:t>text</w:t></w:r></w:p>`+
			`<w:bookmarkEnd w:id="0"/>`)

	out, err := doc.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(out), `<w:bookmarkStart w:id="0" w:name="top"/>`)
	require.Contains(t, string(out), `<w:bookmarkEnd w:id="0"/>`)
}
