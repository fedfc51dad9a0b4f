package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"

	"prosong/config"
	"prosong/state"
)

// OutputFileName derives the document file name from a song title: spaces
// become underscores, the result is optionally transliterated into an ASCII
// slug and always cleaned of characters file systems object to.
func OutputFileName(title string, transliterate bool) string {
	name := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if transliterate {
		name = slug.Make(name)
	}
	return config.CleanFileName(name) + ".pro"
}

// buildOutputPath places the derived file name into the destination
// directory.
func buildOutputPath(title, dst string, env *state.LocalEnv) string {
	return filepath.Join(dst, OutputFileName(title, env.Cfg.Document.FileNameTransliterate))
}
