/* Package texmark implements an incremental, resumable tokenizer and
structural marker for LaTeX source, meant to be driven by a line-oriented
host editor.

For each line of input the host repeatedly calls Token until the line is
exhausted; each call returns one Style suitable for syntax highlighting.
Alongside styling, texmark maintains a stack of open Marks — position
annotated regions (titles, sections, math zones, list items, figures,
abstracts, and more) — which close as the matching LaTeX construct is
fully consumed and accumulate in State.Marks for a host to decorate, fold,
or render.

State is resumable: the host saves the State returned at every line
boundary and may restart tokenization from any such snapshot, so edits
only need to re-tokenize the affected suffix of a document. State must be
treated as immutable by callers; Token and BlankLine update only the State
they are passed, never a copy of it that the host saved earlier.

Minimal usage:

	state := texmark.StartState()
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			texmark.BlankLine(&state)
			continue
		}
		stream := texmark.NewStream(line)
		for !stream.AtEndOfLine() {
			style := texmark.Token(stream, &state)
			_ = style // feed to a highlighter
		}
	}
	for _, mark := range state.Marks() {
		_ = mark // feed to a structure renderer
	}
*/
package texmark
