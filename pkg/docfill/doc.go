// Package docfill discovers {{placeholder}} fields in DOCX templates and
// produces filled copies.
//
// Preparing a template extracts the ordered list of unique placeholders, a
// render-ready structural model of the document, a coarse document-type
// classification and a grouping of the placeholders into human-readable
// sections. Filling takes a placeholder-to-value map and rewrites a fresh
// copy of the template, leaving the original untouched.
//
//	tmpl, err := docfill.PrepareFile("contract.docx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, section := range tmpl.Sections() {
//	    fmt.Println(section.Name, section.Placeholders)
//	}
//	out, err := tmpl.Fill(docfill.FillMap{"{{nome}}": "Maria Silva"})
package docfill
