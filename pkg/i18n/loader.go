package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

type decodeFunc func([]byte, any) error

// WithJSONDir loads every {lang}/{namespace}.json file in fsys.
func WithJSONDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, json.Unmarshal, ".json")
	}
}

// WithYAMLDir loads every {lang}/{namespace}.yaml or .yml file in fsys:
//
//	en/site.yaml
//	en/assistant.yaml
//	ar/assistant.yaml
func WithYAMLDir(fsys fs.FS) Option {
	return func(i *I18n) error {
		return loadDir(i, fsys, yaml.Unmarshal, ".yaml", ".yml")
	}
}

func loadDir(i *I18n, fsys fs.FS, decode decodeFunc, exts ...string) error {
	return fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.ToLower(path.Ext(name))
		if d.IsDir() || !slices.Contains(exts, ext) {
			return nil
		}

		lang, namespace, ok := splitTranslationPath(name)
		if !ok {
			return fmt.Errorf("%w: %q is not inside a language directory", ErrInvalidFile, name)
		}

		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %q: %w", name, err)
		}
		var tree map[string]any
		if err := decode(raw, &tree); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidFile, name, err)
		}
		i.add(lang, namespace, tree)
		return nil
	})
}

// splitTranslationPath turns "fr/assistant.yaml" into ("fr", "assistant").
func splitTranslationPath(name string) (lang, namespace string, ok bool) {
	dir, file := path.Split(name)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		return "", "", false
	}
	return path.Base(dir), strings.TrimSuffix(file, path.Ext(file)), true
}
