package source

import (
	"path/filepath"
	"strings"
)

// Platforms lists directory names that restrict files below them to one platform
var Platforms = []string{"win32", "posix", "linux", "darwin", "bsd", "freebsd", "sunos"}

var languageByExt = map[string]Language{
	".c":   LanguageC,
	".cc":  LanguageCXX,
	".cpp": LanguageCXX,
	".cxx": LanguageCXX,
	".h":   LanguageCXX,
	".hh":  LanguageCXX,
	".hpp": LanguageCXX,
	".hxx": LanguageCXX,
	".inl": LanguageCXX,
}

// InferLanguage returns language tag for a file extension
func InferLanguage(path string) Language {
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return LanguageOther
}

// InferPlatform returns the platform affinity of a root-relative file path: the first
// directory segment naming a known platform wins, otherwise WildcardPlatform.
func InferPlatform(rel string, platforms []string) string {
	if len(platforms) == 0 {
		platforms = Platforms
	}
	segments := strings.Split(filepath.ToSlash(filepath.Dir(rel)), "/")
	for _, segment := range segments {
		for _, platform := range platforms {
			if segment == platform {
				return platform
			}
		}
	}
	return WildcardPlatform
}
