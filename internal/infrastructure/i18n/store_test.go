package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

func writeResource(t *testing.T, dir string, locale Locale, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, string(locale)+".json"), []byte(content), 0644)
	require.NoError(t, err)
}

func TestNewStore(t *testing.T) {
	t.Run("loads both locales", func(t *testing.T) {
		dir := t.TempDir()
		writeResource(t, dir, CA, `{"meta": {"title": "Títol"}}`)
		writeResource(t, dir, ES, `{"meta": {"title": "Título"}}`)

		store, err := NewStore(dir, CA, logger.NewLogger())
		require.NoError(t, err)

		assert.Equal(t, "Títol", store.Text(CA, "meta.title", ""))
		assert.Equal(t, "Título", store.Text(ES, "meta.title", ""))
	})

	t.Run("missing locale falls back to default tree", func(t *testing.T) {
		dir := t.TempDir()
		writeResource(t, dir, CA, `{"meta": {"title": "Títol"}}`)

		store, err := NewStore(dir, CA, logger.NewLogger())
		require.NoError(t, err)

		assert.Equal(t, "Títol", store.Text(ES, "meta.title", ""))
	})

	t.Run("malformed locale falls back to default tree", func(t *testing.T) {
		dir := t.TempDir()
		writeResource(t, dir, CA, `{"meta": {"title": "Títol"}}`)
		writeResource(t, dir, ES, `{"meta": `)

		store, err := NewStore(dir, CA, logger.NewLogger())
		require.NoError(t, err)

		assert.Equal(t, "Títol", store.Text(ES, "meta.title", ""))
	})

	t.Run("missing default resource is a startup error", func(t *testing.T) {
		dir := t.TempDir()
		writeResource(t, dir, ES, `{"meta": {"title": "Título"}}`)

		_, err := NewStore(dir, CA, logger.NewLogger())
		assert.Error(t, err)
	})

	t.Run("malformed default resource is a startup error", func(t *testing.T) {
		dir := t.TempDir()
		writeResource(t, dir, CA, `not json`)

		_, err := NewStore(dir, CA, logger.NewLogger())
		assert.Error(t, err)
	})
}

func TestStoreText(t *testing.T) {
	dir := t.TempDir()
	writeResource(t, dir, CA, `{"form": {"success": "Gràcies!"}}`)
	writeResource(t, dir, ES, `{"form": {"success": "¡Gracias!"}}`)

	store, err := NewStore(dir, CA, logger.NewLogger())
	require.NoError(t, err)

	assert.Equal(t, "Gràcies!", store.Text(CA, "form.success", "Thanks"))
	assert.Equal(t, "¡Gracias!", store.Text(ES, "form.success", "Thanks"))
	assert.Equal(t, "Thanks", store.Text(CA, "form.missing", "Thanks"))

	t.Run("unknown locale uses default tree", func(t *testing.T) {
		assert.Equal(t, "Gràcies!", store.Text(Locale("fr"), "form.success", ""))
	})
}
