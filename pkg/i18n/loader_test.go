package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

func translationFS() fstest.MapFS {
	return fstest.MapFS{
		"en/site.json": {Data: []byte(`{
			"skip_link": "Skip to content",
			"banner": {"title": "Archive Mode Available", "link": "Browse Artifacts →"}
		}`)},
		"fr/site.yaml": {Data: []byte("skip_link: Aller au contenu\nbanner:\n  title: Mode archive disponible\n")},
		"ar/site.yml":  {Data: []byte("skip_link: تخطي إلى المحتوى\n")},
		"README.md":    {Data: []byte("not a translation")},
	}
}

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithJSONDir(translationFS()),
	)
	require.NoError(t, err)

	require.Equal(t, "Skip to content", inst.T("en", "site", "skip_link"))
	require.Equal(t, "Browse Artifacts →", inst.T("en", "site", "banner.link"))
	require.False(t, inst.Has("fr", "site", "skip_link"), "yaml files are ignored by the JSON loader")
}

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithYAMLDir(translationFS()),
	)
	require.NoError(t, err)

	require.Equal(t, "Aller au contenu", inst.T("fr", "site", "skip_link"))
	require.Equal(t, "Mode archive disponible", inst.T("fr", "site", "banner.title"))
	require.Equal(t, "تخطي إلى المحتوى", inst.T("ar", "site", "skip_link"))
}

func TestWithJSONDirAndYAMLDir(t *testing.T) {
	t.Parallel()

	inst, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithJSONDir(translationFS()),
		i18n.WithYAMLDir(translationFS()),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"en", "ar", "fr"}, inst.Languages())
	// fr has no banner.link, so the English entry is used.
	require.Equal(t, "Browse Artifacts →", inst.T("fr", "site", "banner.link"))
}

func TestLoaderErrors(t *testing.T) {
	t.Parallel()

	t.Run("file outside a language directory", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithYAMLDir(fstest.MapFS{
			"site.yaml": {Data: []byte("a: b\n")},
		}))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("malformed file", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithJSONDir(fstest.MapFS{
			"en/site.json": {Data: []byte(`{"a":`)},
		}))
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})
}
