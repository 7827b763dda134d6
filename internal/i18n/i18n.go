// Package i18n translates user-facing text into Chinese or English.
//
// There is no process-wide language: callers build a Translator for the
// language they resolved and pass it to everything that produces text.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported language codes.
const (
	LangZH = "zh"
	LangEN = "en"
)

// DefaultLanguage is used for empty or unsupported language codes.
const DefaultLanguage = LangZH

var (
	tagZH = language.Chinese
	tagEN = language.English
)

var messages = buildCatalog()

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(tagZH))
	for key, msg := range zhMessages {
		if err := b.SetString(tagZH, key, msg); err != nil {
			panic("i18n: invalid zh message " + key + ": " + err.Error())
		}
	}
	for key, msg := range enMessages {
		if err := b.SetString(tagEN, key, msg); err != nil {
			panic("i18n: invalid en message " + key + ": " + err.Error())
		}
	}
	return b
}

// Normalize maps user spellings like "zh-CN", "zh_cn", "cn" or "en-US" onto a
// supported language code.
func Normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch lang {
	case "":
		return DefaultLanguage
	case "cn":
		return LangZH
	}

	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return DefaultLanguage
	}
	base, _ := tag.Base()
	switch base.String() {
	case LangZH:
		return LangZH
	case LangEN:
		return LangEN
	default:
		return DefaultLanguage
	}
}

// IsSupported reports whether lang is one of the exact supported codes.
func IsSupported(lang string) bool {
	return lang == LangZH || lang == LangEN
}

// Translator renders catalog messages in one language.
type Translator struct {
	lang    string
	printer *message.Printer
}

// New creates a Translator for lang (normalized first).
func New(lang string) Translator {
	lang = Normalize(lang)
	tag := tagZH
	if lang == LangEN {
		tag = tagEN
	}
	return Translator{
		lang:    lang,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// Language returns the normalized language code.
func (t Translator) Language() string {
	if t.lang == "" {
		return DefaultLanguage
	}
	return t.lang
}

// T formats the message for key with printf-style args. Unknown keys are
// returned as-is.
func (t Translator) T(key string, args ...any) string {
	if t.printer == nil {
		return New(DefaultLanguage).T(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}
