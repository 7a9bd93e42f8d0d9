package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResource = `{
	"meta": {
		"title": "Axl Espai De Salut - Fisioteràpia a Vilassar de Mar",
		"description": "Centre de fisioteràpia"
	},
	"nav": {
		"contacto": "Contacte"
	},
	"form": {
		"success": "Gràcies!"
	}
}`

func TestParseTree(t *testing.T) {
	t.Run("parses nested strings and objects", func(t *testing.T) {
		tree, err := ParseTree([]byte(sampleResource))
		require.NoError(t, err)

		node, ok := tree.Get("meta")
		require.True(t, ok)
		_, isObject := node.(ObjectNode)
		assert.True(t, isObject)

		leaf, ok := tree.Get("meta.title")
		require.True(t, ok)
		assert.Equal(t, StringNode("Axl Espai De Salut - Fisioteràpia a Vilassar de Mar"), leaf)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		_, err := ParseTree([]byte(`{"meta": `))
		assert.Error(t, err)
	})

	t.Run("rejects non-string leaf values", func(t *testing.T) {
		_, err := ParseTree([]byte(`{"meta": {"count": 3}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "meta.count")
	})
}

func TestLookup(t *testing.T) {
	tree, err := ParseTree([]byte(sampleResource))
	require.NoError(t, err)

	t.Run("returns exact configured value", func(t *testing.T) {
		assert.Equal(t, "Axl Espai De Salut - Fisioteràpia a Vilassar de Mar",
			Lookup(tree, "meta.title", ""))
		assert.Equal(t, "Contacte", Lookup(tree, "nav.contacto", ""))
	})

	t.Run("returns default for missing paths", func(t *testing.T) {
		missing := []string{
			"meta.subtitle",
			"nav.contacto.deeper",
			"nope",
			"nope.nested.path",
			"meta.title.extra",
			"",
		}
		for _, path := range missing {
			assert.Equal(t, "fallback", Lookup(tree, path, "fallback"), "path %q", path)
		}
	})

	t.Run("returns default when path resolves to an object", func(t *testing.T) {
		assert.Equal(t, "fallback", Lookup(tree, "meta", "fallback"))
	})

	t.Run("empty default passes through", func(t *testing.T) {
		assert.Equal(t, "", Lookup(tree, "does.not.exist", ""))
	})
}
