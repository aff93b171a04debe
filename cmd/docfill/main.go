package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/duartecp/docfill/pkg/docfill"
)

var cli struct {
	Verbose  bool   `short:"v" help:"Enable verbose logging"`
	Keywords string `short:"k" help:"Custom keyword taxonomy YAML file" type:"existingfile"`

	Inspect struct {
		Template string `arg:"" help:"Template DOCX file" type:"existingfile"`
		Skeleton bool   `help:"Print a YAML values skeleton instead of a report"`
	} `cmd:"" help:"Show the placeholders, sections and detected type of a template"`

	Fill struct {
		Template string `arg:"" help:"Template DOCX file" type:"existingfile"`
		Values   string `short:"f" required:"" help:"YAML file mapping placeholders to values" type:"existingfile"`
		Output   string `short:"o" help:"Output path" default:"filled_template.docx"`
		Force    bool   `help:"Fill even when values are missing placeholders"`
	} `cmd:"" help:"Fill a template with values and write the result"`
}

func main() {
	_ = godotenv.Load()
	ctx := kong.Parse(&cli,
		kong.Name("docfill"),
		kong.Description("Discover and fill {{placeholder}} fields in DOCX templates."))

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	engine, err := buildEngine(logger)
	if err == nil {
		switch ctx.Command() {
		case "inspect <template>":
			err = runInspect(engine)
		case "fill <template>":
			err = runFill(engine)
		default:
			err = fmt.Errorf("unknown command: %s", ctx.Command())
		}
	}
	if err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func buildEngine(logger *slog.Logger) (*docfill.Engine, error) {
	opts := []docfill.Option{docfill.WithLogger(logger)}
	if cli.Keywords != "" {
		data, err := os.ReadFile(cli.Keywords)
		if err != nil {
			return nil, fmt.Errorf("failed to read keyword taxonomy: %w", err)
		}
		keywords, err := docfill.ParseKeywordConfig(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, docfill.WithKeywords(keywords))
	}
	return docfill.NewWithOptions(opts...), nil
}

func runInspect(engine *docfill.Engine) error {
	tmpl, err := engine.PrepareFile(cli.Inspect.Template)
	if err != nil {
		return err
	}

	if !tmpl.HasPlaceholders() {
		fmt.Println("No placeholders found in the template. Make sure the document contains fields in {{placeholder}} format.")
		return nil
	}

	if cli.Inspect.Skeleton {
		// Quoted keys: placeholder literals start with '{', which YAML
		// would otherwise read as a flow mapping.
		for _, ph := range tmpl.Placeholders() {
			fmt.Printf("%q: \"\"\n", ph)
		}
		return nil
	}

	fmt.Printf("Document type: %s\n", tmpl.Type().Label())
	fmt.Printf("Found %d fields to fill\n\n", len(tmpl.Placeholders()))
	for _, section := range tmpl.Sections() {
		fmt.Printf("%s:\n", section.Name)
		for _, ph := range section.Placeholders {
			fmt.Printf("  %s  (%s)\n", ph, docfill.FieldLabel(ph))
		}
	}

	paragraphs, tables := 0, 0
	for _, block := range tmpl.Blocks() {
		switch block.(type) {
		case docfill.ParagraphBlock:
			paragraphs++
		case docfill.TableBlock:
			tables++
		}
	}
	fmt.Printf("\nStructure: %d paragraphs, %d tables\n", paragraphs, tables)
	return nil
}

func runFill(engine *docfill.Engine) error {
	values, err := loadValues(cli.Fill.Values)
	if err != nil {
		return err
	}

	tmpl, err := engine.PrepareFile(cli.Fill.Template)
	if err != nil {
		return err
	}
	if !tmpl.HasPlaceholders() {
		return fmt.Errorf("%w: %s", docfill.ErrNoPlaceholders, cli.Fill.Template)
	}

	if missing := tmpl.MissingValues(values); len(missing) > 0 && !cli.Fill.Force {
		return fmt.Errorf("values file is missing %d placeholder(s): %s (use --force to fill anyway)",
			len(missing), strings.Join(missing, ", "))
	}

	out, err := tmpl.Fill(values)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cli.Fill.Output, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cli.Fill.Output, err)
	}

	slog.Info("document generated", "output", cli.Fill.Output, "fields", len(tmpl.Placeholders()))
	return nil
}

// loadValues reads a YAML mapping of placeholder to value. Keys may be bare
// names; they are canonicalized to the full {{name}} literal.
func loadValues(path string) (docfill.FillMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file: %w", err)
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse values file: %w", err)
	}
	values := make(docfill.FillMap, len(raw))
	for key, value := range raw {
		if !strings.HasPrefix(key, "{{") {
			key = "{{" + key + "}}"
		}
		values[key] = value
	}
	return values, nil
}
