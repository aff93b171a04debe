package docfill

import (
	"bytes"
	"io"
	"log/slog"
	"os"

	"github.com/duartecp/docfill/pkg/docfill/ooxml"
)

// Engine prepares templates. Use New or NewWithOptions to create one.
type Engine struct {
	config   *Config
	logger   *slog.Logger
	keywords *KeywordConfig
}

// New creates an engine with environment-driven configuration and the
// built-in keyword taxonomy.
func New() *Engine {
	return &Engine{
		config:   ConfigFromEnvironment(),
		logger:   slog.Default(),
		keywords: DefaultKeywords(),
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the engine configuration.
func WithConfig(config *Config) Option {
	return func(e *Engine) {
		e.config = config
	}
}

// WithLogger sets the logger used by the engine and its templates.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithKeywords replaces the keyword taxonomy used for classification and
// sectioning.
func WithKeywords(keywords *KeywordConfig) Option {
	return func(e *Engine) {
		e.keywords = keywords
	}
}

// NewWithOptions creates an engine with the given options applied.
func NewWithOptions(opts ...Option) *Engine {
	engine := New()
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// Prepare loads a DOCX template and derives its placeholder list,
// structural model, document type and sections in a single traversal.
func (e *Engine) Prepare(r io.Reader) (*Template, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, NewDocumentError("read", "", err)
	}

	reader, err := NewDocxReader(bytes.NewReader(source), int64(len(source)))
	if err != nil {
		return nil, NewDocumentError("load", "", err)
	}
	docXML, err := reader.DocumentXML()
	if err != nil {
		return nil, NewDocumentError("load", documentPart, err)
	}
	doc, err := ooxml.Parse(bytes.NewReader(docXML))
	if err != nil {
		return nil, NewDocumentError("parse", documentPart, err)
	}

	scanner := newPlaceholderScanner()
	builder := &modelBuilder{}
	walkDocument(doc, scanner, builder)
	blocks := builder.result()

	var paragraphs []string
	for _, b := range blocks {
		if p, ok := b.(ParagraphBlock); ok {
			paragraphs = append(paragraphs, p.Text)
		}
	}

	docType := NewClassifier(e.keywords, e.config.MaxClassifyParagraphs).Classify(paragraphs)
	sections := NewSectionAssigner(e.keywords).Assign(scanner.ordered, paragraphs, docType)

	e.logger.Debug("template prepared",
		"placeholders", len(scanner.ordered),
		"blocks", len(blocks),
		"type", docType,
		"sections", len(sections))

	return &Template{
		source:       source,
		document:     doc,
		placeholders: scanner.ordered,
		blocks:       blocks,
		docType:      docType,
		sections:     sections,
		config:       e.config,
		logger:       e.logger,
	}, nil
}

// PrepareFile loads a template from a file path.
func (e *Engine) PrepareFile(path string) (*Template, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	defer file.Close()
	return e.Prepare(file)
}

// DefaultEngine is the global default engine instance.
var DefaultEngine = New()

// Prepare loads a template using the default engine.
func Prepare(r io.Reader) (*Template, error) {
	return DefaultEngine.Prepare(r)
}

// PrepareFile loads a template from a file path using the default engine.
func PrepareFile(path string) (*Template, error) {
	return DefaultEngine.PrepareFile(path)
}
