// Package locale translates user-facing UI strings. Catalogs are TOML files
// embedded in the binary; English is the fallback for anything missing.
package locale

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var catalogs embed.FS

// Data is template data for messages with placeholders.
type Data map[string]interface{}

// Localizer resolves message ids for one preferred language.
type Localizer struct {
	lang string
	loc  *goi18n.Localizer
}

// New returns a Localizer for lang (a BCP 47 tag such as "pt-BR").
// Unknown or empty languages fall back to English.
func New(lang string) (*Localizer, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(catalogs, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(catalogs, f); err != nil {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return &Localizer{
		lang: lang,
		loc:  goi18n.NewLocalizer(bundle, lang, language.English.String()),
	}, nil
}

// Must is New for callers with a known-good language list, such as tests.
func Must(lang string) *Localizer {
	l, err := New(lang)
	if err != nil {
		panic(err)
	}
	return l
}

// Language returns the requested language tag.
func (l *Localizer) Language() string {
	return l.lang
}

// T translates id. A message missing from every catalog renders as its id.
func (l *Localizer) T(id string, data ...Data) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 {
		cfg.TemplateData = map[string]interface{}(data[0])
	}
	s, err := l.loc.Localize(cfg)
	if err != nil {
		return id
	}
	return s
}
