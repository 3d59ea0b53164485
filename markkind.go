package texmark

import "fmt"

// MarkKind tags a Mark with the semantic LaTeX construct it represents. The
// set is closed: every value texmark ever produces is named here.
type MarkKind int

// The full closed set of mark kinds from the LaTeX structure model.
const (
	noMarkKind MarkKind = iota
	KindTitle
	KindSection
	KindSectionStar
	KindSubsection
	KindSubsectionStar
	KindSubsubsection
	KindSubsubsectionStar
	KindChapter
	KindChapterStar
	KindTextbf
	KindTextit
	KindCaption
	KindLabel
	KindRef
	KindInput
	KindInclude
	KindIncludegraphics
	KindIncludegraphicsOptional
	KindInlineMath
	KindDisplayMath
	KindOuterDisplayMath
	KindAbstract
	KindFigure
	KindItemize
	KindEnumerate
	KindItem
	KindEnumerateItem
	KindMaketitle

	// Bibliographic citation commands, one kind per recognized command name.
	KindCite
	KindCitep
	KindCitet
	KindFootcite
	KindNocite
	KindAutocite
	KindAutocites
	KindCiteauthor
	KindCiteyear
	KindParencite
	KindCitealt
	KindTextcite
	KindCref
	KindCrefCapitalized // "Cref"
)

var markKindNames = map[MarkKind]string{
	KindTitle:                   "title",
	KindSection:                 `section`,
	KindSectionStar:             `section*`,
	KindSubsection:              "subsection",
	KindSubsectionStar:          `subsection*`,
	KindSubsubsection:           "subsubsection",
	KindSubsubsectionStar:       `subsubsection*`,
	KindChapter:                 "chapter",
	KindChapterStar:             `chapter*`,
	KindTextbf:                  "textbf",
	KindTextit:                  "textit",
	KindCaption:                 "caption",
	KindLabel:                   "label",
	KindRef:                     "ref",
	KindInput:                   "input",
	KindInclude:                 "include",
	KindIncludegraphics:         "includegraphics",
	KindIncludegraphicsOptional: "includegraphics-optional",
	KindInlineMath:              "inline-math",
	KindDisplayMath:             "display-math",
	KindOuterDisplayMath:        "outer-display-math",
	KindAbstract:                "abstract",
	KindFigure:                  "figure",
	KindItemize:                 "itemize",
	KindEnumerate:               "enumerate",
	KindItem:                    "item",
	KindEnumerateItem:           "enumerate-item",
	KindMaketitle:               "maketitle",
	KindCite:                    "cite",
	KindCitep:                   "citep",
	KindCitet:                   "citet",
	KindFootcite:                "footcite",
	KindNocite:                  "nocite",
	KindAutocite:                "autocite",
	KindAutocites:               "autocites",
	KindCiteauthor:              "citeauthor",
	KindCiteyear:                "citeyear",
	KindParencite:               "parencite",
	KindCitealt:                 "citealt",
	KindTextcite:                "textcite",
	KindCref:                    "cref",
	KindCrefCapitalized:         "Cref",
}

// String returns the mark kind's tag string, exactly as named in the
// closed set (e.g. "section*", "includegraphics-optional").
func (k MarkKind) String() string {
	if name, ok := markKindNames[k]; ok {
		return name
	}
	return "invalid"
}

// Format supports %v, matching the teacher's BlockType.Format idiom.
func (k MarkKind) Format(f fmt.State, c rune) {
	switch c {
	case 'v':
		fmt.Fprint(f, k.String())
	default:
		fmt.Fprintf(f, "!(ERROR invalid format verb %%%s)", string(c))
	}
}

// citeKinds maps every recognized bibliographic citation command name to
// its mark kind, grounding C5's "bibliographic citation commands" table.
var citeKinds = map[string]MarkKind{
	"cite":       KindCite,
	"citep":      KindCitep,
	"citet":      KindCitet,
	"footcite":   KindFootcite,
	"nocite":     KindNocite,
	"autocite":   KindAutocite,
	"autocites":  KindAutocites,
	"citeauthor": KindCiteauthor,
	"citeyear":   KindCiteyear,
	"parencite":  KindParencite,
	"citealt":    KindCitealt,
	"textcite":   KindTextcite,
	"cref":       KindCref,
	"Cref":       KindCrefCapitalized,
}
