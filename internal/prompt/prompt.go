// Package prompt builds the few-shot instruction sent to the completion provider.
package prompt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const examples = `Suggest three names for an animal that is a superhero.
Animal: Cat
Names: Captain Sharpclaw, Agent Fluffball, The Incredible Feline
Animal: Dog
Names: Ruff the Protector, Wonder Canine, Sir Barks-a-Lot
`

// Build returns the prompt asking for superhero names for animal. Only the first
// letter is upper-cased; the rest of the input is kept as typed. An empty animal
// still yields a well-formed prompt.
func Build(animal string) string {
	var b strings.Builder
	b.Grow(len(examples) + len(animal) + 16)
	b.WriteString(examples)
	b.WriteString("Animal: ")
	b.WriteString(capitalize(animal))
	b.WriteString("\nNames:")
	return b.String()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
