// Package ooxml implements the subset of WordprocessingML needed to read,
// edit and rewrite the main document part of a DOCX file.
//
// The model keeps paragraphs, runs and tables as typed elements and captures
// everything else (section properties, bookmarks, drawings, nested tables)
// verbatim, so a parse/serialize round trip does not lose markup it does not
// understand.
package ooxml
