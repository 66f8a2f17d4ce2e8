package audit

import "strings"

// DefaultLocales is the locale list the audit checks out of the box. It is
// independent of the site's locale table: unknown locales are served the
// canonical content and still need to pass.
func DefaultLocales() []string {
	return []string{"en", "fr", "de", "ru", "zh", "ar"}
}

// DefaultPages are the locale-relative pages checked for every locale.
func DefaultPages() []string {
	return []string{
		"/",
		"/index.html",
		"/governance-status/",
		"/how-to-cite/",
		"/methodology/",
		"/scientific-narrative/",
		"/scientific-publication/",
		"/system-map/",
	}
}

// DefaultRootPages are checked once, without a locale prefix.
func DefaultRootPages() []string {
	return []string{
		"/",
		"/accessibility.html",
		"/statistics.html",
		"/system-map.html",
	}
}

// Matrix is the set of (locale × page) combinations plus root pages.
type Matrix struct {
	BaseURL   string
	Locales   []string
	Pages     []string
	RootPages []string
}

// DefaultMatrix returns the default matrix against baseURL.
func DefaultMatrix(baseURL string) Matrix {
	return Matrix{
		BaseURL:   baseURL,
		Locales:   DefaultLocales(),
		Pages:     DefaultPages(),
		RootPages: DefaultRootPages(),
	}
}

// URLs lists root pages first, then every page for each locale in order.
func (m Matrix) URLs() []string {
	base := strings.TrimRight(m.BaseURL, "/")
	urls := make([]string, 0, len(m.RootPages)+len(m.Locales)*len(m.Pages))
	for _, p := range m.RootPages {
		urls = append(urls, base+cleanPage(p))
	}
	for _, lang := range m.Locales {
		lang = strings.Trim(lang, "/")
		if lang == "" {
			continue
		}
		for _, p := range m.Pages {
			urls = append(urls, base+"/"+lang+cleanPage(p))
		}
	}
	return urls
}

func cleanPage(p string) string {
	return "/" + strings.TrimLeft(p, "/")
}
