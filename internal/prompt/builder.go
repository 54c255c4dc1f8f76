// Package prompt assembles the grading request sent to the language model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
)

// Format selects the output directive appended to every prompt.
type Format string

const (
	// FormatFreeform asks for numbered sections in free text.
	FormatFreeform Format = "freeform"
	// FormatStrict asks for a fixed set of HTML section tags and nothing else.
	FormatStrict Format = "strict"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatFreeform, FormatStrict:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// RubricVersion identifies the scoring criteria embedded in every prompt.
// Bump it whenever rubricCriteria changes.
const RubricVersion = "cefs-gdo-2024.1"

const framing = `Você é um avaliador do Curso Especial de Formação de Sargentos (CEFS).
Abaixo está a transcrição de um vídeo de apresentação de um aluno sobre indicadores da GDO.`

const rubricCriteria = `Critérios de avaliação (máx. 2,0 pontos):
- Introdução e indicação do tema: 0 a 0,3
- Explicação da metodologia do indicador: 0 a 0,5
- Domínio do conteúdo (evitar leitura): 0 a 0,3
- Pertinência do conteúdo: 0 a 0,3
- Conclusão e importância profissional: 0 a 0,3
- Requisitos formais (tempo, uniforme, presença): 0 a 0,3`

const freeformDirective = `Com base nos critérios e observações acima, forneça:
1. Nota final (máx. 2,0)
2. Pontuação por critério
3. Pontos fortes e sugestões de melhoria`

// StrictSections are the ids of the tags the strict directive asks for, in order.
var StrictSections = []string{"nota-final", "pontuacao", "pontos-fortes", "sugestoes"}

const strictDirective = `Com base nos critérios e observações acima, responda SOMENTE com o HTML abaixo,
substituindo cada marcador entre colchetes pelo conteúdo pedido.
Não escreva nada antes, depois ou fora destas tags.

<section id="nota-final">[nota final, de 0,0 a 2,0]</section>
<section id="pontuacao">[pontuação por critério, um <p> por critério]</section>
<section id="pontos-fortes">[pontos fortes, em <ul><li>]</section>
<section id="sugestoes">[sugestões de melhoria, em <ul><li>]</section>`

// Builder renders an EvaluationRequest into prompt text. It is a pure function
// of its input and format.
type Builder struct {
	format Format
}

func NewBuilder(format Format) *Builder {
	if format == "" {
		format = FormatFreeform
	}
	return &Builder{format: format}
}

func (b *Builder) Format() Format {
	return b.format
}

// Build validates the observations and returns the prompt. Sections appear in
// a fixed order: framing and criteria, rubric context (if any), transcript,
// evaluator observations, output directive.
func (b *Builder) Build(req domain.EvaluationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(framing)
	sb.WriteString("\n\n")
	sb.WriteString(rubricCriteria)
	sb.WriteString("\n")

	if req.HasContext() {
		sb.WriteString("\nDocumento de referência (barema/instruções):\n\"\"\"\n")
		sb.WriteString(strings.TrimSpace(req.RubricContext))
		sb.WriteString("\n\"\"\"\n")
	}

	sb.WriteString("\nTranscrição do vídeo:\n\"\"\"")
	sb.WriteString(req.Transcript)
	sb.WriteString("\"\"\"\n")

	sb.WriteString("\n*Observação do avaliador sobre o vídeo:*\n")
	fmt.Fprintf(&sb, "- Fardamento: %s\n", req.Fardamento)
	fmt.Fprintf(&sb, "- Grau de leitura (0 a 5): %d (0 = não leu, 5 = só leu o texto)\n", int(req.Leitura))

	sb.WriteString("\n")
	switch b.format {
	case FormatStrict:
		sb.WriteString(strictDirective)
	default:
		sb.WriteString(freeformDirective)
	}
	sb.WriteString("\n")

	return sb.String(), nil
}
