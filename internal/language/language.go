package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Lang describes one lemma language supported by the dictionary data tree.
type Lang struct {
	Code  string // lemma language code used in dictionary file names (ISO 639-1)
	code3 string // ISO 639-2 terminology code carried by book metadata
	alt3  string // ISO 639-2 bibliographic alternate (e.g. "fre" vs "fra")
}

// Entries are ordered; book-language resolution takes the first match.
var languages = []Lang{
	{"en", "eng", ""},
	{"zh", "zho", "chi"},
	{"es", "spa", ""},
	{"fr", "fra", "fre"},
	{"de", "deu", "ger"},
	{"it", "ita", ""},
	{"pt", "por", ""},
	{"ja", "jpn", ""},
	{"ko", "kor", ""},
	{"ru", "rus", ""},
	{"nl", "nld", "dut"},
	{"pl", "pol", ""},
	{"sv", "swe", ""},
	{"da", "dan", ""},
	{"no", "nor", ""},
	{"fi", "fin", ""},
	{"el", "ell", "gre"},
	{"cs", "ces", "cze"},
	{"ro", "ron", "rum"},
	{"uk", "ukr", ""},
}

// FromBookLanguage resolves a book's ISO 639-2 language code to the lemma
// language used by the dictionary data tree. The second return is false when
// the language is not in the table; callers treat that as a silent no-op.
func FromBookLanguage(code string) (Lang, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return Lang{}, false
	}
	for _, lang := range languages {
		if lang.code3 == code || (lang.alt3 != "" && lang.alt3 == code) {
			return lang, true
		}
		if lang.Code == code {
			return lang, true
		}
	}
	return Lang{}, false
}

// IsEnglish reports whether the given book language code denotes English.
func IsEnglish(code string) bool {
	lang, ok := FromBookLanguage(code)
	return ok && lang.Code == "en"
}

// Display returns a human-readable English name for a language code, falling
// back to the code itself when the tag cannot be parsed.
func Display(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}
