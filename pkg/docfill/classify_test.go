package docfill

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier(DefaultKeywords(), 20)

	tests := []struct {
		name       string
		paragraphs []string
		want       DocumentType
	}{
		{
			name:       "real estate",
			paragraphs: []string{"Contrato de Mediação Imobiliária", "O imóvel sito em Lisboa"},
			want:       TypeRealEstate,
		},
		{
			name:       "labor",
			paragraphs: []string{"Contrato de Trabalho", "entre o empregador e o trabalhador"},
			want:       TypeLabor,
		},
		{
			name:       "rental",
			paragraphs: []string{"Contrato de Arrendamento", "o inquilino e o senhorio acordam"},
			want:       TypeRental,
		},
		{
			name:       "services",
			paragraphs: []string{"Contrato de Prestação de Serviços", "entre fornecedor e cliente"},
			want:       TypeServices,
		},
		{
			name:       "no keywords",
			paragraphs: []string{"Ata de reunião", "Ordem do dia"},
			want:       TypeGeneric,
		},
		{
			name:       "empty document",
			paragraphs: nil,
			want:       TypeGeneric,
		},
		{
			name:       "case insensitive",
			paragraphs: []string{"ARRENDAMENTO URBANO"},
			want:       TypeRental,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classifier.Classify(tt.paragraphs))
		})
	}
}

func TestClassifyPrecedenceIsFixed(t *testing.T) {
	classifier := NewClassifier(DefaultKeywords(), 20)

	// Matching both real_estate ("imóvel") and labor ("trabalho") resolves
	// to the earlier group in the chain.
	got := classifier.Classify([]string{"O imóvel serve de local de trabalho"})
	require.Equal(t, TypeRealEstate, got)

	// Labor before rental.
	got = classifier.Classify([]string{"contrato de trabalho com cláusula de arrendamento"})
	require.Equal(t, TypeLabor, got)
}

func TestClassifyOnlyInspectsLeadingParagraphs(t *testing.T) {
	classifier := NewClassifier(DefaultKeywords(), 20)

	paragraphs := make([]string, 25)
	for i := range paragraphs {
		paragraphs[i] = "texto neutro"
	}
	paragraphs[24] = "contrato de arrendamento"
	require.Equal(t, TypeGeneric, classifier.Classify(paragraphs))

	paragraphs[3] = "contrato de arrendamento"
	require.Equal(t, TypeRental, classifier.Classify(paragraphs))
}

func TestClassifyIsIdempotent(t *testing.T) {
	classifier := NewClassifier(DefaultKeywords(), 20)
	paragraphs := []string{"Contrato de arrendamento", "inquilino", "senhorio"}

	first := classifier.Classify(paragraphs)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, classifier.Classify(paragraphs))
	}
}

func TestClassifyNormalizesDecomposedAccents(t *testing.T) {
	classifier := NewClassifier(DefaultKeywords(), 20)

	// "imóvel" with U+0301 combining acute instead of the precomposed ó.
	decomposed := "imóvel em Lisboa"
	require.Equal(t, TypeRealEstate, classifier.Classify([]string{decomposed}))
}

func TestDocumentTypeLabel(t *testing.T) {
	require.Equal(t, "Rental Agreement", TypeRental.Label())
	require.Equal(t, "Generic Document", TypeGeneric.Label())
	require.Equal(t, "Generic Document", DocumentType("bogus").Label())
}

func TestPrepareClassifiesFromDocumentText(t *testing.T) {
	docx := buildDocx(t, []string{
		"Contrato de arrendamento para habitação",
		"Senhorio: {{nome_senhorio}}",
		"Inquilino: {{nome_inquilino}}",
	})

	tmpl, err := Prepare(strings.NewReader(string(docx)))
	require.NoError(t, err)
	require.Equal(t, TypeRental, tmpl.Type())
}
