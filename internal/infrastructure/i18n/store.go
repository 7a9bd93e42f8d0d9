package i18n

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joanpuche05/fisioterapiavilassar/internal/shared/logger"
)

// Store holds one immutable translation tree per locale, loaded once at
// startup. Locales whose resource is missing or malformed share the default
// locale's tree; an unusable default resource is a startup failure.
type Store struct {
	trees         map[Locale]ObjectNode
	defaultLocale Locale
}

// NewStore loads <dir>/<locale>.json for every supported locale.
func NewStore(dir string, defaultLocale Locale, log logger.Interface) (*Store, error) {
	defaultTree, err := loadTree(dir, defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("default locale %q unusable: %w", defaultLocale, err)
	}

	trees := make(map[Locale]ObjectNode, len(SupportedLocales()))
	trees[defaultLocale] = defaultTree

	for _, locale := range SupportedLocales() {
		if locale == defaultLocale {
			continue
		}
		tree, err := loadTree(dir, locale)
		if err != nil {
			log.Warnw("translation resource unusable, falling back to default locale",
				"locale", locale,
				"default", defaultLocale,
				"error", err,
			)
			trees[locale] = defaultTree
			continue
		}
		trees[locale] = tree
	}

	return &Store{
		trees:         trees,
		defaultLocale: defaultLocale,
	}, nil
}

func loadTree(dir string, locale Locale) (ObjectNode, error) {
	path := filepath.Join(dir, string(locale)+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// DefaultLocale returns the deployment's configured default locale
func (s *Store) DefaultLocale() Locale {
	return s.defaultLocale
}

// Tree returns the translation tree for a locale
func (s *Store) Tree(locale Locale) ObjectNode {
	if tree, ok := s.trees[locale]; ok {
		return tree
	}
	return s.trees[s.defaultLocale]
}

// Text looks up a dotted path in a locale's tree, returning def when absent
func (s *Store) Text(locale Locale, path, def string) string {
	return Lookup(s.Tree(locale), path, def)
}
