package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "script", "scripts", "scriptlist":
		pterm.Info.Println("ScriptList / Script")
		pterm.Println(`
	ScriptList is a property of GSUB and GPOS.
	It consists of ScriptRecords, sorted by tag:
	+------------+----------------+
	| Script Tag | Link to Script |
	+------------+----------------+
	ScriptList behaves as a map.

	A Script table links to a default LangSys entry, and contains a list of LangSys records:
	+--------------------------------+
	| Link to LangSys record         |
	+--------------+-----------------+
	| Language Tag | Link to LangSys |
	+--------------+-----------------+
	Script behaves as a map, with entry 0 as the default link.
	Use 'scripts:latn' to select a script.
	`)
	case "lang", "langsys", "langs", "language":
		pterm.Info.Println("LangSys")
		pterm.Println(`
	LangSys is pointed to from a Script Record.
	It links a language with features to activate. It does so using an index into the feature table.
	+-----------------------------------+
	| Index of required feature or null |
	+-----------------------------------+
	| Index of feature 1                |
	+-----------------------------------+
	| Index of feature 2                |
	+-----------------------------------+
	| ...                               |
	+-----------------------------------+
	LangSys behaves as a list. Use 'langs:dflt' to select the default language system.
	`)
	case "feature", "features", "featurelist":
		pterm.Info.Println("FeatureList / Feature")
		pterm.Println(`
	FeatureList is a property of GSUB and GPOS. Records are sorted by tag,
	tags may occur more than once.
	+-------------+-----------------+
	| Feature Tag | Link to Feature |
	+-------------+-----------------+
	A Feature is a list of indexes into the LookupList.
	Without a script selected, 'features' lists the whole FeatureList.
	`)
	case "lookup", "lookups", "lookuplist":
		pterm.Info.Println("LookupList / Lookup")
		pterm.Println(`
	LookupList is a list of Lookups, addressed by index.
	A Lookup has a type, flags and a list of subtables.
	Use 'lookups' to list all of them and 'lookups:3' to show lookup #3.
	`)
	case "class", "carets", "gdef":
		pterm.Info.Println("GDEF")
		pterm.Println(`
	GDEF classifies glyphs as base, ligature, mark or component glyphs.
	'class:<gid>' shows glyph class, mark attachment class, attachment points
	and mark glyph set membership of a glyph.
	'carets:<gid>' shows the ligature caret positions of a ligature glyph.
	`)
	default:
		pterm.Info.Println("General Help")
		pterm.Println(`
	Commands are separated by blanks and may carry an argument after a colon:
	  table:GSUB      select a layout table (GSUB or GPOS)
	  scripts[:tag]   list scripts, optionally select one
	  langs[:tag]     list language systems of the script, optionally select one
	  features[:tag]  list features, optionally select one
	  lookups[:n]     list lookups or show lookup n
	  class:gid       show GDEF classes of a glyph
	  carets:gid      show ligature carets of a glyph
	  info            show font information
	  warnings        show warnings collected while parsing
	  help[:topic]    topics are script, lang, feature, lookup, gdef
	  quit
	Example: table:GSUB scripts:latn langs:dflt features:liga
	`)
	}
}
