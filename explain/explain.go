// Package explain holds the long-form prose behind every explainable
// diagnostic (any diag.Log built with .Explainable()): the catalog
// `emblem explain E003` reads from, one entry per stable E-code.
package explain

import "fmt"

// entry pairs an E-code with the prose `Lookup` returns for it.
type entry struct {
	code string
	text string
}

var catalog = []entry{
	{
		code: "E001",
		text: "Error codes have the form Eddd, for digits d, such as this one, E001. " +
			"If you were given this code by the tool and it isn't in this catalog, " +
			"check for a typo in the code itself before assuming the tool is broken.",
	},
	{
		code: "E002",
		text: "A newline was found while still reading a brace-delimited argument. " +
			"Inline arguments (the {...} after a command name) must stay on one " +
			"line; they end at the closing brace, not at the end of the line.\n\n" +
			".command{inline-arg-1}{inline-arg-2}: remainder-arg\n" +
			"// or, for arguments too long to fit on one line:\n" +
			".command{inline-arg-1}{inline-arg-2}:\n" +
			"    trailer arg 1\n" +
			"::\n" +
			"    trailer arg 2\n\n" +
			"If an argument needs to span multiple lines, move it into a trailer " +
			"argument (introduced with a colon and indentation) instead of a brace.",
	},
	{
		code: "E003",
		text: "A closing emphasis delimiter was found that didn't match the most " +
			"recently opened one. This usually means two different delimiter " +
			"spellings were nested in a way that's locally ambiguous: a run of " +
			"three underscores or asterisks in a row can be read as either an " +
			"opening bold mark followed by an opening italic mark, or the other " +
			"way around, and the parser has to guess.\n\n" +
			"The surest way to avoid this is to keep to one spelling per kind of " +
			"emphasis throughout a document: underscores for italics, asterisks " +
			"for bold (or vice versa, just not both), so a run like this never " +
			"needs to be disambiguated at all.",
	},
	{
		code: "E004",
		text: "A command was called with an empty qualifier: two dots in a row, as " +
			"in ..foo, or a qualifier with nothing before the final dot. Since an " +
			"extension name must have at least one character, an empty qualifier " +
			"can never name anything and is always a mistake.\n\n" +
			"If two separate dots really were intended - one ending a word and " +
			"one starting a command - insert glue between them (e.g. ~.foo) so " +
			"the parser doesn't read them as a single qualified name.",
	},
	{
		code: "E005",
		text: "A command name had more than one qualifying dot, as in .foo.bar.baz. " +
			"Emblem allows at most one qualifier per command (.pkg.cmd), used to " +
			"pick a specific extension's definition of cmd when more than one " +
			"extension defines it; a second qualifier has nothing left to name " +
			"and is rejected rather than silently ignored.",
	},
}

var byCode = func() map[string]string {
	m := make(map[string]string, len(catalog))
	for _, e := range catalog {
		m[e.code] = e.text
	}
	return m
}()

// Lookup returns the long-form explanation for an E-code, and whether
// one was found.
func Lookup(code string) (string, bool) {
	text, ok := byCode[code]
	return text, ok
}

// Codes returns every known E-code, in catalog order.
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, e := range catalog {
		codes[i] = e.code
	}
	return codes
}

// ErrNoSuchCode is returned in prose form by callers that need to report
// an unrecognised code without importing the fmt-formatted message twice.
func ErrNoSuchCode(code string) string {
	return fmt.Sprintf("no such error code %q; perhaps there is a typo here?", code)
}
