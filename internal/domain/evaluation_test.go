package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateObservations(t *testing.T) {
	for _, f := range Fardamentos {
		for l := LeituraMin; l <= LeituraMax; l++ {
			require.NoError(t, ValidateObservations(f, Leitura(l)), "%s/%d", f, l)
		}
	}

	tests := []struct {
		name       string
		fardamento Fardamento
		leitura    Leitura
	}{
		{"leitura below range", FardamentoAdequado, -1},
		{"leitura above range", FardamentoInadequado, 6},
		{"unknown fardamento", Fardamento("Parcial"), 2},
		{"empty fardamento", Fardamento(""), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObservations(tt.fardamento, tt.leitura)
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
		})
	}
}

func TestParseFardamento(t *testing.T) {
	f, err := ParseFardamento(" adequado ")
	require.NoError(t, err)
	assert.Equal(t, FardamentoAdequado, f)

	f, err = ParseFardamento("INADEQUADO")
	require.NoError(t, err)
	assert.Equal(t, FardamentoInadequado, f)

	_, err = ParseFardamento("ok")
	assert.True(t, IsKind(err, KindInvalidInput))
}

func TestNewEvaluationRequest(t *testing.T) {
	req, err := NewEvaluationRequest("texto", FardamentoAdequado, 3, "")
	require.NoError(t, err)
	assert.False(t, req.HasContext())

	_, err = NewEvaluationRequest("texto", FardamentoAdequado, 9, "")
	assert.Error(t, err)
}

func TestWrapKeepsExistingKind(t *testing.T) {
	inner := Wrap(KindExtraction, "extract", errors.New("no audio stream"))
	outer := Wrap(KindStorageWrite, "save", fmt.Errorf("stage: %w", inner))

	assert.Equal(t, KindExtraction, KindOf(outer))
	assert.Nil(t, Wrap(KindEvaluation, "evaluate", nil))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
}
