// Package web embeds the static assets, translations and the default site
// served when no site root is configured.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

//go:embed translations
var translations embed.FS

//go:embed site
var site embed.FS

// Static returns the asset tree served under /static/ (css/, js/).
func Static() fs.FS {
	return mustSub(static, "static")
}

// Translations returns the translation tree laid out as {lang}/{namespace}.yaml.
func Translations() fs.FS {
	return mustSub(translations, "translations")
}

// Site returns the bundled site root: content/, data/, artifacts/ and the
// governance documents.
func Site() fs.FS {
	return mustSub(site, "site")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
