package docfill

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// CatchAllSection is the reserved section receiving placeholders no other
// section claims.
const CatchAllSection = "Other"

// Section is a named group of placeholders for presentation purposes. The
// sections returned by Assign partition the placeholder list: every
// placeholder appears in exactly one section.
type Section struct {
	Name         string
	Placeholders []string
}

var (
	// Parenthesized clause titles: "Cláusula Primeira (Identificação das Partes)".
	parenTitlePattern = regexp.MustCompile(`\(([^)]+)\)`)
	// Numbered article/chapter/section headers: "Artigo 3 – Prazo".
	markerPattern     = regexp.MustCompile(`^(artigo|capítulo|secção|título)\s+\d+`)
	titleSplitPattern = regexp.MustCompile(`[–\-:]`)
	// Plain numbered headings: "1. Identificação".
	numberedPattern      = regexp.MustCompile(`^\d+\.\s+[A-ZÁÀÂÃÉÊÍÓÔÕÚÇ]`)
	numberedStripPattern = regexp.MustCompile(`^\d+\.\s+`)

	markerWords = []string{"artigo", "capítulo", "secção", "título"}
)

// ExtractSectionTitles scans paragraph texts for section headers and returns
// the titles in document order. Duplicate titles are kept; a later duplicate
// simply finds its candidates already claimed.
func ExtractSectionTitles(paragraphs []string) []string {
	var titles []string
	for _, text := range paragraphs {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		lower := normalizeText(text)

		switch {
		case strings.Contains(lower, "cláusula") && strings.Contains(text, "(") && strings.Contains(text, ")"):
			if m := parenTitlePattern.FindStringSubmatch(text); m != nil {
				if title := strings.TrimSpace(m[1]); utf8.RuneCountInString(title) > 3 {
					titles = append(titles, title)
				}
			}
		case containsAny(lower, markerWords):
			if !markerPattern.MatchString(lower) {
				continue
			}
			parts := titleSplitPattern.Split(text, 2)
			if len(parts) > 1 {
				if title := strings.TrimSpace(parts[1]); utf8.RuneCountInString(title) > 3 {
					titles = append(titles, title)
				}
			}
		case numberedPattern.MatchString(text):
			title := strings.TrimSpace(numberedStripPattern.ReplaceAllString(text, ""))
			if n := utf8.RuneCountInString(title); n > 3 && n < 100 {
				titles = append(titles, title)
			}
		}
	}
	return titles
}

// SectionAssigner maps placeholders to human-readable sections.
type SectionAssigner struct {
	keywords *KeywordConfig
}

// NewSectionAssigner creates an assigner over the given taxonomy.
func NewSectionAssigner(keywords *KeywordConfig) *SectionAssigner {
	return &SectionAssigner{keywords: keywords}
}

// Assign partitions placeholders into sections. Sections derived from the
// document's own headers come first, in document order; placeholders they do
// not claim fall back to the type-specific keyword table, with a catch-all
// section last. Empty sections are dropped.
func (a *SectionAssigner) Assign(placeholders []string, paragraphs []string, docType DocumentType) []Section {
	fallback := a.keywords.fallbackFor(docType)

	titles := ExtractSectionTitles(paragraphs)
	if len(titles) == 0 {
		return a.categorizeWithFallback(placeholders, fallback)
	}

	var sections []Section
	claimed := make(map[string]bool)
	for _, title := range titles {
		keywords := a.titleKeywords(title)
		var matched []string
		for _, ph := range placeholders {
			if claimed[ph] {
				continue
			}
			if containsAny(normalizeText(ph), keywords) {
				matched = append(matched, ph)
				claimed[ph] = true
			}
		}
		if len(matched) > 0 {
			sections = append(sections, Section{Name: title, Placeholders: matched})
		}
	}

	var remaining []string
	for _, ph := range placeholders {
		if !claimed[ph] {
			remaining = append(remaining, ph)
		}
	}
	if len(remaining) > 0 {
		sections = append(sections, a.categorizeWithFallback(remaining, fallback)...)
	}
	return sections
}

// titleKeywords derives the matching keyword set for a section title: the
// keyword lists of every known concept whose name appears in the title, plus
// every word of the title longer than three runes.
func (a *SectionAssigner) titleKeywords(title string) []string {
	lower := normalizeText(title)

	var keywords []string
	for concept, related := range a.keywords.Concepts {
		if strings.Contains(lower, concept) {
			keywords = append(keywords, related...)
		}
	}
	for _, word := range strings.Fields(lower) {
		if utf8.RuneCountInString(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	return keywords
}

func (a *SectionAssigner) categorizeWithFallback(placeholders []string, fallback []FallbackSection) []Section {
	buckets := make([][]string, len(fallback))
	var other []string

	for _, ph := range placeholders {
		lower := normalizeText(ph)
		assigned := false
		for i, fs := range fallback {
			if containsAny(lower, fs.Keywords) {
				buckets[i] = append(buckets[i], ph)
				assigned = true
				break
			}
		}
		if !assigned {
			other = append(other, ph)
		}
	}

	var sections []Section
	for i, fs := range fallback {
		if len(buckets[i]) > 0 {
			sections = append(sections, Section{Name: fs.Name, Placeholders: buckets[i]})
		}
	}
	if len(other) > 0 {
		sections = append(sections, Section{Name: CatchAllSection, Placeholders: other})
	}
	return sections
}
