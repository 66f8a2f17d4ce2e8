package i18n

import "errors"

var (
	ErrEmptyLanguage  = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace = errors.New("i18n: namespace cannot be empty")
	ErrInvalidFile    = errors.New("i18n: invalid translation file")

	ErrNoLocales        = errors.New("i18n: at least one locale is required")
	ErrInvalidLocale    = errors.New("i18n: invalid locale code")
	ErrDuplicateLocale  = errors.New("i18n: duplicate locale code")
	ErrUnknownCanonical = errors.New("i18n: canonical locale is not in the locale table")
)
