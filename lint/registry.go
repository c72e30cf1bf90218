package lint

import "github.com/emblem-lang/emblem/lint/rules"

// Registry returns one fresh instance of every built-in rule, per
// spec.md §4.4's fixed rule table. Each call returns independent
// instances so concurrent or repeated lint runs never share state.
func Registry() []Lint {
	return []Lint{
		rules.NewAttrOrdering(),
		rules.NewCommandNaming(),
		rules.NewDuplicateAttrs(),
		rules.NewEmphDelimiters(),
		rules.NewEmptyAttrs(),
		rules.NewNumArgs(),
		rules.NewNumAttrs(),
		rules.NewNumPluses(),
		rules.NewSpiltGlue(),
		rules.NewSugarUsage(),
	}
}
