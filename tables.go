package texmark

import (
	"regexp"
	"sync"
)

// argShape describes how a command's argument(s) attach to its mark.
type argShape int

const (
	// shapeSimple: command name, then one required {arg}; one mark spans
	// the whole construct; contentFrom/contentTo are the required arg's
	// inner span.
	shapeSimple argShape = iota
	// shapeTitling: command name, then an optional [arg]? consumed but
	// unmarked, then one required {arg}; one mark spans the whole
	// construct (including any optional arg); contentFrom/contentTo are
	// the required arg's inner span only.
	shapeTitling
	// shapeGraphics: command name, then an optional [arg]? (its own
	// mark), then one required {arg} (its own mark); no outer mark.
	shapeGraphics
)

// commandDescriptor names a command recognized as taking a braced
// argument, per C5.
type commandDescriptor struct {
	name      string
	lookahead *regexp.Regexp // `\name\s*[\[{]`, lookahead only
	match     *regexp.Regexp // `\name\s*`, consumed
	kind      MarkKind
	shape     argShape
}

func cmdPattern(name string) (lookahead, match *regexp.Regexp) {
	lookahead = regexp.MustCompile(`^\\` + regexp.QuoteMeta(name) + `\s*[\[{]`)
	match = regexp.MustCompile(`^\\` + regexp.QuoteMeta(name) + `\s*`)
	return lookahead, match
}

func newCommand(name string, kind MarkKind, shape argShape) commandDescriptor {
	la, m := cmdPattern(name)
	return commandDescriptor{name: name, lookahead: la, match: m, kind: kind, shape: shape}
}

// titlingCommands are recognized at the top level: a command name,
// optionally a "[...]" argument (unmarked), then a required "{...}"
// argument producing the named mark.
var titlingCommands = []commandDescriptor{
	newCommand("title", KindTitle, shapeTitling),
	// \author is argument-taking like \title but produces no mark: it is
	// not a member of the closed mark-kind set.
	newCommand("author", noMarkKind, shapeTitling),
}

// sectioningCommands are recognized at the top level, one per sectioning
// level and its starred variant.
var sectioningCommands = []commandDescriptor{
	newCommand("chapter*", KindChapterStar, shapeTitling),
	newCommand("chapter", KindChapter, shapeTitling),
	newCommand("section*", KindSectionStar, shapeTitling),
	newCommand("section", KindSection, shapeTitling),
	newCommand("subsubsection*", KindSubsubsectionStar, shapeTitling),
	newCommand("subsubsection", KindSubsubsection, shapeTitling),
	newCommand("subsection*", KindSubsectionStar, shapeTitling),
	newCommand("subsection", KindSubsection, shapeTitling),
}

// textStyleCommands are tried first within text: simple typographic markup.
var textStyleCommands = []commandDescriptor{
	newCommand("textbf", KindTextbf, shapeSimple),
	newCommand("textit", KindTextit, shapeSimple),
}

// refCommand is tried within text, right after the math delimiters.
var refCommand = newCommand("ref", KindRef, shapeSimple)

// textLateCommands are tried within text, after bibliographic citations.
var textLateCommands = []commandDescriptor{
	newCommand("label", KindLabel, shapeSimple),
	newCommand("input", KindInput, shapeSimple),
	newCommand("include", KindInclude, shapeSimple),
}

// citationCommands recognized within text, one per bibliographic command.
var citationCommands = func() []commandDescriptor {
	// deterministic order: a name that extends another is listed before
	// it, so e.g. "autocites" is tried before "autocite" would otherwise
	// prefix-match it; since our
	// lookahead patterns are anchored+bounded by `\s*[\[{]` this isn't
	// strictly required for correctness, but keeps iteration order stable.
	names := []string{
		"autocites", "autocite", "citeauthor", "citeyear", "parencite",
		"citealt", "textcite", "footcite", "nocite", "citep", "citet",
		"cite", "Cref", "cref",
	}
	out := make([]commandDescriptor, 0, len(names))
	for _, n := range names {
		out = append(out, newCommand(n, citeKinds[n], shapeSimple))
	}
	return out
}()

// includegraphicsCommand is the lone shapeGraphics command.
var includegraphicsCommand = newCommand("includegraphics", KindIncludegraphics, shapeGraphics)

// captionCommand is recognized only inside figure content.
var captionCommand = newCommand("caption", KindCaption, shapeSimple)

// envDescriptor names a recognized environment and how its body should be
// tokenized, per C5 and spec.md §4.3.
type envDescriptor struct {
	name             string
	kind             MarkKind // noMarkKind if the environment itself is not marked
	hasMark          bool
	allowBlankLines  bool
	matchOnSingleLine bool // \begin{name} must be the rest of the line to open
	target           target
}

var mathEnvNames = []string{
	"equation", "equation*",
	"eqnarray", "eqnarray*",
	"align", "align*",
	"gather", "gather*",
	"multline", "multline*",
	"alignat", "alignat*",
	"xalignat", "xalignat*",
	"math", "displaymath",
}

var ignoredEnvNames = []string{"verbatim", "verbatim*", "lstlisting", "alltt"}

var listEnvNames = map[string]MarkKind{
	"itemize":   KindItemize,
	"enumerate": KindEnumerate,
}

var figureEnvNames = []string{"figure", "figure*"}

// listEnvOrder fixes the try-order for itemize/enumerate (map iteration
// order is not stable).
var listEnvOrder = []string{"itemize", "enumerate"}

// ignoredAndCommentEnvNames fixes the try-order for the verbatim-family and
// comment environments.
var ignoredAndCommentEnvNames = append(append([]string{}, ignoredEnvNames...), "comment")

func buildEnvTable() map[string]envDescriptor {
	envs := make(map[string]envDescriptor)
	for _, name := range mathEnvNames {
		envs[name] = envDescriptor{name: name, matchOnSingleLine: true, target: targetMath}
	}
	for _, name := range ignoredEnvNames {
		envs[name] = envDescriptor{name: name, allowBlankLines: true, target: targetVerbatimChars}
	}
	envs["comment"] = envDescriptor{name: "comment", allowBlankLines: true, target: targetCommentChars}
	for name, kind := range listEnvNames {
		envs[name] = envDescriptor{name: name, kind: kind, hasMark: true, matchOnSingleLine: true, target: targetItemList}
	}
	for _, name := range figureEnvNames {
		envs[name] = envDescriptor{name: name, kind: KindFigure, hasMark: true, target: targetFigureContent}
	}
	envs["abstract"] = envDescriptor{name: "abstract", kind: KindAbstract, hasMark: true, allowBlankLines: true, target: targetText}
	envs["tikzpicture"] = envDescriptor{name: "tikzpicture", allowBlankLines: true, target: targetTikz}
	return envs
}

var envTable = buildEnvTable()

var (
	beginLookahead = regexp.MustCompile(`^\\begin\s*\{([A-Za-z*]+)\}`)

	genericCommandRe  = regexp.MustCompile(`^\\[A-Za-z]+\*?`)
	numberRe          = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?`)
	lineCommentRe     = regexp.MustCompile(`^[ \t ]*%`)
	maketitleRe       = regexp.MustCompile(`^\\maketitle\s*$`)
	endDocumentLAHRe  = regexp.MustCompile(`^\\end\s*\{document\}`)
	itemRe            = regexp.MustCompile(`^\\item(?:[ \t]|$)`)
	verbRe            = regexp.MustCompile(`^\\verb\*?`)
)

var endLookaheadCache sync.Map // string -> *regexp.Regexp

// endLookaheadRe returns (compiling and caching on first use) the pattern
// matching "\end{name}" for one specific, already-known environment name.
func endLookaheadRe(name string) *regexp.Regexp {
	if v, ok := endLookaheadCache.Load(name); ok {
		return v.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`^\\end\s*\{` + regexp.QuoteMeta(name) + `\}`)
	endLookaheadCache.Store(name, re)
	return re
}

var beginLookaheadCache sync.Map // struct{name string; eol bool} -> *regexp.Regexp

type beginLookaheadKey struct {
	name string
	eol  bool
}

// beginLookaheadFor returns the pattern matching "\begin{name}", optionally
// requiring the match to run to the end of the line (for environments that
// must open on a line of their own, e.g. math and list environments).
func beginLookaheadFor(name string, requireEOL bool) *regexp.Regexp {
	key := beginLookaheadKey{name, requireEOL}
	if v, ok := beginLookaheadCache.Load(key); ok {
		return v.(*regexp.Regexp)
	}
	pat := `^\\begin\s*\{` + regexp.QuoteMeta(name) + `\}`
	if requireEOL {
		pat += `\s*$`
	}
	re := regexp.MustCompile(pat)
	beginLookaheadCache.Store(key, re)
	return re
}

// endLookaheadAny matches "\end{name}" for any name, capturing it.
var endLookaheadAny = regexp.MustCompile(`^\\end\s*\{([A-Za-z*]+)\}`)
