package i18n

import (
	"os"
	"slices"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      = "en"
)

// SupportedLanguages lists the bundled locales. Only UI chrome is
// translated; month and weekday names stay English.
var SupportedLanguages = []string{"en", "de"}

// Init loads the embedded locales and picks a language.
// Priority: config > LC_ALL > LANG > en
func Init(configLang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	if err := loadEmbeddedTranslations(); err != nil {
		return err
	}

	lang = detectLanguage(configLang)
	localizer = i18n.NewLocalizer(bundle, lang, "en")
	return nil
}

func detectLanguage(configLang string) string {
	for _, candidate := range []string{configLang, os.Getenv("LC_ALL"), os.Getenv("LANG")} {
		if candidate == "" {
			continue
		}
		return normalizeLanguage(candidate)
	}
	return "en"
}

// normalizeLanguage maps locale strings like "de_DE.UTF-8" to "de"
func normalizeLanguage(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "en"
	}
	base, _ := tag.Base()
	if IsSupported(base.String()) {
		return base.String()
	}
	return "en"
}

// T translates id, returning id itself when no translation is available
func T(id string, data ...map[string]any) string {
	if localizer == nil {
		return id
	}

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(data) > 0 && data[0] != nil {
		cfg.TemplateData = data[0]
	}

	msg, err := localizer.Localize(cfg)
	if err != nil {
		return id
	}
	return msg
}

func CurrentLanguage() string {
	return lang
}

func IsSupported(code string) bool {
	return slices.Contains(SupportedLanguages, code)
}
