package docfill

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
)

const documentPart = "word/document.xml"

// DocxReader handles reading the parts of a DOCX container.
type DocxReader struct {
	reader *zip.Reader
	parts  map[string]*zip.File
}

// NewDocxReader creates a reader over DOCX bytes.
func NewDocxReader(r io.ReaderAt, size int64) (*DocxReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	dr := &DocxReader{
		reader: zipReader,
		parts:  make(map[string]*zip.File),
	}
	for _, file := range zipReader.File {
		dr.parts[file.Name] = file
	}

	if _, ok := dr.parts[documentPart]; !ok {
		return nil, fmt.Errorf("not a valid DOCX file: missing %s", documentPart)
	}

	return dr, nil
}

// Part retrieves the content of a named part.
func (dr *DocxReader) Part(name string) ([]byte, error) {
	file, ok := dr.parts[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}

	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open part %s: %w", name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read part %s: %w", name, err)
	}
	return content, nil
}

// DocumentXML retrieves the content of word/document.xml.
func (dr *DocxReader) DocumentXML() ([]byte, error) {
	return dr.Part(documentPart)
}

// rewriteDocx builds a new DOCX from source bytes with word/document.xml
// replaced by documentXML. Every other part is copied through unchanged.
func rewriteDocx(source []byte, documentXML []byte) ([]byte, error) {
	zipReader, err := zip.NewReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, fmt.Errorf("failed to read source zip: %w", err)
	}

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	for _, file := range zipReader.File {
		fw, err := w.Create(file.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", file.Name, err)
		}
		if file.Name == documentPart {
			if _, err := fw.Write(documentXML); err != nil {
				return nil, fmt.Errorf("failed to write %s: %w", file.Name, err)
			}
			continue
		}
		fr, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
		}
		if _, err := io.Copy(fw, fr); err != nil {
			fr.Close()
			return nil, fmt.Errorf("failed to copy %s: %w", file.Name, err)
		}
		fr.Close()
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize output: %w", err)
	}
	return buf.Bytes(), nil
}
