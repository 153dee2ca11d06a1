package otlayout

import (
	"strings"

	"github.com/npillmayer/otlayoutcore/ot"
	"golang.org/x/text/language"
)

// ScriptTagFor returns the OpenType script tag for an ISO 15924 script.
//
// OpenType script tags mostly are ISO 15924 codes with a lowercase first letter.
// Exceptions are Hiragana and Katakana, which share 'kana', and the scripts
// with codes ending in a repeated letter, which are padded with spaces
// instead. Unknown and common scripts map to 'DFLT'.
//
// Only the original ("version 1") script tags are produced. Indic scripts
// have additional tags, e.g. 'dev2' for Devanagari, which fonts usually carry
// alongside.
func ScriptTagFor(script language.Script) ot.Tag {
	code := script.String()
	switch code {
	case "Zzzz", "Zyyy", "Zinh", "":
		return ot.DFLT
	case "Zmth":
		return ot.T("math")
	case "Hira", "Kana", "Hrkt":
		return ot.T("kana")
	case "Laoo":
		return ot.T("lao")
	case "Yiii":
		return ot.T("yi")
	case "Nkoo":
		return ot.T("nko")
	case "Vaii":
		return ot.T("vai")
	}
	return ot.T(strings.ToLower(code[:1]) + code[1:])
}

// OpenType language system tags which do not follow ISO 639-3.
var irregularLanguageTags = map[string]string{
	"cs": "CSY",
	"es": "ESP",
	"et": "ETI",
	"ga": "IRI",
	"ja": "JAN",
	"nb": "NOR",
	"no": "NOR",
	"pl": "PLK",
	"ro": "ROM",
	"sk": "SKY",
	"sv": "SVE",
	"tr": "TRK",
	"vi": "VIT",
	"zh": "ZHS",
}

// LanguageTagFor returns the OpenType language system tag for a BCP 47
// language tag. If the base language cannot be determined with at least
// confidence minConf, the default language system 'dflt' is returned.
//
// Most OpenType language tags are uppercase ISO 639-3 codes; a small table
// covers frequently used languages for which this does not hold.
func LanguageTagFor(lang language.Tag, minConf language.Confidence) ot.Tag {
	base, conf := lang.Base()
	if conf < minConf || base.String() == "und" {
		return ot.DefaultLanguage
	}
	if tag, ok := irregularLanguageTags[base.String()]; ok {
		return ot.T(tag)
	}
	return ot.T(strings.ToUpper(base.ISO3()))
}
