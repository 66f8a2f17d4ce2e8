package i18n

// Translator is bound to one locale and one namespace.
type Translator struct {
	i18n      *I18n
	locale    Locale
	namespace string
}

// NewTranslator creates a Translator for the given locale and namespace.
// A locale without a code falls back to the I18n default language.
func NewTranslator(i18n *I18n, locale Locale, namespace string) *Translator {
	if i18n == nil {
		panic("i18n: service is not provided")
	}
	if locale.Code == "" {
		locale = Locale{Code: i18n.DefaultLanguage(), Name: i18n.DefaultLanguage(), Dir: LTR}
	}
	return &Translator{
		i18n:      i18n,
		locale:    locale,
		namespace: namespace,
	}
}

// T translates a key using the translator's locale and namespace.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.locale.Code, t.namespace, key, placeholders...)
}

// In returns a translator for the same locale bound to another namespace.
func (t *Translator) In(namespace string) *Translator {
	if namespace == t.namespace {
		return t
	}
	return &Translator{i18n: t.i18n, locale: t.locale, namespace: namespace}
}

// Language returns the translator's locale code.
func (t *Translator) Language() string {
	return t.locale.Code
}

// Locale returns the translator's locale.
func (t *Translator) Locale() Locale {
	return t.locale
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}
