package i18n

import (
	"embed"
	"path"
)

//go:embed locales/*.yml
var localesFS embed.FS

func loadEmbeddedTranslations() error {
	files, err := localesFS.ReadDir("locales")
	if err != nil {
		return err
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localesFS, path.Join("locales", f.Name())); err != nil {
			return err
		}
	}
	return nil
}
