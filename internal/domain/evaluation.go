package domain

import (
	"fmt"
	"strings"
	"time"
)

// Fardamento is the evaluator's judgment of dress-code compliance.
type Fardamento string

const (
	FardamentoAdequado   Fardamento = "Adequado"
	FardamentoInadequado Fardamento = "Inadequado"
)

// Fardamentos lists the accepted values in display order.
var Fardamentos = []Fardamento{FardamentoAdequado, FardamentoInadequado}

func (f Fardamento) Valid() bool {
	return f == FardamentoAdequado || f == FardamentoInadequado
}

// ParseFardamento accepts the canonical values case-insensitively.
func ParseFardamento(s string) (Fardamento, error) {
	for _, f := range Fardamentos {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f, nil
		}
	}
	return "", Errorf(KindInvalidInput, "parse fardamento", "fardamento must be one of %v, got %q", Fardamentos, s)
}

const (
	LeituraMin = 0
	LeituraMax = 5
)

// Leitura is how much of the presentation was read from a script:
// 0 means spoken freely, 5 means read entirely.
type Leitura int

func (l Leitura) Valid() bool {
	return l >= LeituraMin && l <= LeituraMax
}

// EvaluationRequest carries everything the model needs to score one presentation.
type EvaluationRequest struct {
	Transcript string
	Fardamento Fardamento
	Leitura    Leitura
	// RubricContext is empty when no reference document was loaded.
	RubricContext string
}

// NewEvaluationRequest validates the human observations.
func NewEvaluationRequest(transcript string, fardamento Fardamento, leitura Leitura, rubricContext string) (EvaluationRequest, error) {
	req := EvaluationRequest{
		Transcript:    transcript,
		Fardamento:    fardamento,
		Leitura:       leitura,
		RubricContext: rubricContext,
	}
	if err := req.Validate(); err != nil {
		return EvaluationRequest{}, err
	}
	return req, nil
}

func (r EvaluationRequest) Validate() error {
	return ValidateObservations(r.Fardamento, r.Leitura)
}

// HasContext reports whether rubric text is attached.
func (r EvaluationRequest) HasContext() bool {
	return strings.TrimSpace(r.RubricContext) != ""
}

// ValidateObservations checks the two values entered by the human evaluator.
func ValidateObservations(fardamento Fardamento, leitura Leitura) error {
	if !fardamento.Valid() {
		return Errorf(KindInvalidInput, "validate", "fardamento must be one of %v, got %q", Fardamentos, string(fardamento))
	}
	if !leitura.Valid() {
		return Errorf(KindInvalidInput, "validate", "leitura must be between %d and %d, got %d", LeituraMin, LeituraMax, int(leitura))
	}
	return nil
}

// EvaluationResult is the model's verdict as returned, without post-processing.
type EvaluationResult struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	BaseName  string    `json:"base_name"`
}

// HistoryEntry points at a stored result without loading it.
type HistoryEntry struct {
	Name    string    `json:"name"`
	File    string    `json:"file"`
	ModTime time.Time `json:"mod_time"`
}

func (h HistoryEntry) String() string {
	return fmt.Sprintf("%s (%s)", h.Name, h.ModTime.Format("2006-01-02 15:04"))
}
