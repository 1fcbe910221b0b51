package source

// Role represents how a file participates in the build
type Role int

const (
	// RoleHeader files are listed but never compiled
	RoleHeader Role = iota
	// RoleCompiled files are compiled for the target platform
	RoleCompiled
	// RoleExcluded files stay visible but are disabled for every configuration
	RoleExcluded
)

func (r Role) String() string {
	switch r {
	case RoleHeader:
		return "header"
	case RoleCompiled:
		return "compiled"
	default:
		return "excluded"
	}
}

// Family represents the languages a target toolchain compiles
type Family []Language

// NativeFamily is compiled by the native toolchain
var NativeFamily = Family{LanguageC, LanguageCXX}

// Includes returns true if language belongs to the family
func (f Family) Includes(language Language) bool {
	for _, candidate := range f {
		if candidate == language {
			return true
		}
	}
	return false
}

type extensionSet map[string]bool

var (
	headerExtensions = map[Language]extensionSet{
		LanguageC:   {".h": true, ".hh": true, ".hpp": true, ".hxx": true, ".inl": true},
		LanguageCXX: {".h": true, ".hh": true, ".hpp": true, ".hxx": true, ".inl": true},
	}
	compiledExtensions = map[Language]extensionSet{
		LanguageC:   {".c": true, ".cc": true, ".cpp": true, ".cxx": true},
		LanguageCXX: {".c": true, ".cc": true, ".cpp": true, ".cxx": true},
	}
)

// IsHeader returns true if the file extension is a header extension of its language family
func (f *File) IsHeader() bool {
	return headerExtensions[f.Language][f.Ext()]
}

// Classify maps a file to its build role for the target platform and the language family
// the target compiles. Files of other languages stay in the project as excluded items.
func Classify(file *File, platform string, family Family) Role {
	if file.IsHeader() {
		return RoleHeader
	}
	if compiledExtensions[file.Language][file.Ext()] &&
		family.Includes(file.Language) &&
		file.MatchesPlatform(platform) &&
		!file.Excluded {
		return RoleCompiled
	}
	return RoleExcluded
}
