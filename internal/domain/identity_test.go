package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunIdentityBaseName(t *testing.T) {
	at := time.Date(2025, 3, 7, 14, 5, 42, 0, time.Local)
	id := NewRunIdentity("aluno_silva.mp4", at)
	assert.Equal(t, "aluno_silva_202503071405", id.BaseName())
}

func TestRunIdentitySameMinuteCollides(t *testing.T) {
	first := NewRunIdentity("videos/apresentacao.mov", time.Date(2025, 3, 7, 14, 5, 1, 0, time.Local))
	second := NewRunIdentity("apresentacao.mov", time.Date(2025, 3, 7, 14, 5, 59, 999, time.Local))
	assert.Equal(t, first.BaseName(), second.BaseName())
}

func TestRunIdentityMinuteApartDiffers(t *testing.T) {
	at := time.Date(2025, 3, 7, 14, 5, 30, 0, time.Local)
	first := NewRunIdentity("apresentacao.mov", at)
	second := NewRunIdentity("apresentacao.mov", at.Add(time.Minute))
	assert.NotEqual(t, first.BaseName(), second.BaseName())
}

func TestStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a.mp4", "a"},
		{"dir/sub/nome composto.mkv", "nome composto"},
		{"sem_extensao", "sem_extensao"},
		{"dois.pontos.mov", "dois.pontos"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Stem(tt.in), tt.in)
	}
}
