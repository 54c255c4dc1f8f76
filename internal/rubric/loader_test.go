package rubric

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HugeFrog24/cefs-video-grader/internal/domain"
	"github.com/HugeFrog24/cefs-video-grader/internal/logger"
)

func TestLoadNoPathConfigured(t *testing.T) {
	text, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), "")
	assert.Empty(t, text)
	assert.False(t, ok)
	assert.NoError(t, warn)
}

func TestLoadTextDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barema.md")
	require.NoError(t, os.WriteFile(path, []byte("# Barema\n- Introdução: 0,3"), 0o644))

	text, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), path)
	require.NoError(t, warn)
	assert.True(t, ok)
	assert.Equal(t, "# Barema\n- Introdução: 0,3", text)
}

func TestLoadMissingDocumentIsAbsent(t *testing.T) {
	text, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), filepath.Join(t.TempDir(), "barema.pdf"))
	assert.Empty(t, text)
	assert.False(t, ok)
	require.Error(t, warn)
	assert.Equal(t, domain.KindContextLoad, domain.KindOf(warn))
}

func TestLoadCorruptPDFIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barema.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not really a pdf"), 0o644))

	text, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), path)
	assert.Empty(t, text)
	assert.False(t, ok)
	assert.Equal(t, domain.KindContextLoad, domain.KindOf(warn))
}

func TestLoadEmptyDocumentIsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vazio.txt")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	_, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), path)
	assert.False(t, ok)
	assert.Error(t, warn)
}

func TestLoadUnsupportedType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barema.docx")
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o644))

	_, ok, warn := NewLoader(logger.NewNop()).Load(context.Background(), path)
	assert.False(t, ok)
	assert.Contains(t, warn.Error(), "unsupported")
}
