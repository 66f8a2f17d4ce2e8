package i18n_test

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/i18n"
)

func TestNewLocales(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewLocales("en")
		require.ErrorIs(t, err, i18n.ErrNoLocales)
	})

	t.Run("rejects invalid code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewLocales("en", i18n.Locale{Code: "en"}, i18n.Locale{Code: "not a tag"})
		require.ErrorIs(t, err, i18n.ErrInvalidLocale)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewLocales("en", i18n.Locale{Code: "en"}, i18n.Locale{Code: "en"})
		require.ErrorIs(t, err, i18n.ErrDuplicateLocale)
	})

	t.Run("canonical must be in the table", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewLocales("de", i18n.Locale{Code: "en"})
		require.ErrorIs(t, err, i18n.ErrUnknownCanonical)
	})

	t.Run("fills direction and name", func(t *testing.T) {
		t.Parallel()
		ls, err := i18n.NewLocales("en", i18n.Locale{Code: "en"})
		require.NoError(t, err)
		require.Equal(t, i18n.LTR, ls.Canonical().Dir)
		require.Equal(t, "en", ls.Canonical().Name)
	})
}

func TestDefaultLocales(t *testing.T) {
	t.Parallel()

	ls := i18n.DefaultLocales()
	require.Equal(t, []string{"en", "fr", "ar", "zh", "ru"}, ls.Codes())
	require.Equal(t, "en", ls.Canonical().Code)

	for _, l := range ls.All() {
		require.NotEmpty(t, l.Name)
		if l.Code == "ar" {
			require.Equal(t, i18n.RTL, l.Dir)
		} else {
			require.Equal(t, i18n.LTR, l.Dir)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	ls := i18n.DefaultLocales()

	tests := []struct {
		path string
		want string
	}{
		{"/fr/methodology/", "fr"},
		{"/ar/", "ar"},
		{"/ar", "ar"},
		{"ru/how-to-cite/", "ru"},
		{"//zh//system-map/", "zh"},
		{"/", "en"},
		{"", "en"},
		{"/unknown/page", "en"},
		{"/FR/methodology/", "en"},
		{"/methodology/fr/", "en"},
		{"/system-map.html", "en"},
		{"/\xff\xfe/", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ls.Resolve(tt.path).Code)
		})
	}

	t.Run("direction follows locale", func(t *testing.T) {
		t.Parallel()
		require.True(t, ls.Resolve("/ar/governance-status/").IsRTL())
		require.False(t, ls.Resolve("/zh/").IsRTL())
	})
}

func TestResolveIsTotalAndIdempotent(t *testing.T) {
	t.Parallel()

	ls := i18n.DefaultLocales()
	known := map[string]bool{"en": true, "fr": true, "ar": true, "zh": true, "ru": true}

	prop := func(p string) bool {
		first, second := ls.Resolve(p), ls.Resolve(p)
		return first.Code == second.Code && first.Dir == second.Dir && known[first.Code]
	}
	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 2000}))
}

func TestSwitchPath(t *testing.T) {
	t.Parallel()

	ls := i18n.DefaultLocales()

	tests := []struct {
		name string
		path string
		code string
		want string
	}{
		{"replaces locale segment", "/en/methodology/", "fr", "/fr/methodology/"},
		{"prepends when no locale", "/methodology/", "ru", "/ru/methodology/"},
		{"root", "/", "zh", "/zh/"},
		{"empty", "", "ar", "/ar/"},
		{"locale only", "/fr", "en", "/en/"},
		{"keeps file name", "/system-map.html", "ar", "/ar/system-map.html"},
		{"adds trailing slash to directories", "/fr/how-to-cite", "en", "/en/how-to-cite/"},
		{"unknown target leaves path", "/fr/methodology/", "de", "/fr/methodology/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ls.SwitchPath(tt.path, tt.code))
		})
	}

	t.Run("switched path resolves to target", func(t *testing.T) {
		t.Parallel()
		for _, code := range ls.Codes() {
			require.Equal(t, code, ls.Resolve(ls.SwitchPath("/en/scientific-narrative/", code)).Code)
		}
	})
}

func TestMatch(t *testing.T) {
	t.Parallel()

	ls := i18n.DefaultLocales()

	tests := []struct {
		header string
		want   string
	}{
		{"fr-FR,fr;q=0.9,en;q=0.8", "fr"},
		{"ar-EG", "ar"},
		{"zh-CN,zh;q=0.9", "zh"},
		{"de-DE,ru;q=0.5", "ru"},
		{"ja", "en"},
		{"", "en"},
		{";;;=", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, ls.Match(tt.header).Code)
		})
	}
}
