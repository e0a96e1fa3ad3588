package rosmsg

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

/*
This is a grammar for the msg text this package emits, covering both single
definitions and merged bundles (delimiter lines followed by MSG: headers). It
exists to verify renderer output: VerifyBundle backs the bundle tests and the
CLI's --check flag. It makes no attempt to recover schemas from the text.
*/

// nolint:gochecknoglobals
var (
	msgLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Newline", Pattern: `\s*[\n\r]+`},
		{Name: "Float", Pattern: `[+-]?[0-9]+\.[0-9]+`},
		{Name: "Integer", Pattern: `[+-]?[0-9]+`},
		{Name: "Word", Pattern: `[a-zA-Z0-9\_]+`},
		{Name: "Whitespace", Pattern: `[\s\t]+`},
		{Name: "LBracket", Pattern: `\[`},
		{Name: "RBracket", Pattern: `\]`},
		{Name: "Slash", Pattern: `/`},
		{Name: "Colon", Pattern: `:`},
		{Name: "Equals", Pattern: `=`},
	})

	bundleParser = participle.MustBuild[msgBundle](
		participle.Lexer(msgLexer),
		participle.Union[msgElement](msgConstant{}, msgField{}),
		participle.Elide("Whitespace", "Newline", "Comment"),
		participle.UseLookahead(1000),
	)
)

type msgBundle struct {
	Elements []msgElement `parser:"@@*"`
	Blocks   []msgBlock   `parser:"@@*"`
}

type msgBlock struct {
	Name     string       `parser:"Equals+ 'MSG' Colon @(Word ( Slash Word )*)"`
	Elements []msgElement `parser:"@@*"`
}

type msgElement interface{ element() }

type msgField struct {
	Type msgType `parser:"@@"`
	Name string  `parser:"@Word"`
}

type msgConstant struct {
	Type  msgType `parser:"@@"`
	Name  string  `parser:"@Word Equals"`
	Value string  `parser:"@(Float | Integer | Word)"`
}

type msgType struct {
	Name        string `parser:"@(Word ( Slash Word )*)"`
	Array       bool   `parser:"@LBracket?"`
	FixedLength int    `parser:"(( @Integer RBracket ) | RBracket)?"`
}

func (msgField) element()    {}
func (msgConstant) element() {}

// VerifyBundle checks that rendered output parses as a msg definition or
// bundle and returns the MSG: header names in order of appearance.
func VerifyBundle(text string) ([]string, error) {
	bundle, err := bundleParser.ParseString("", text)
	if err != nil {
		return nil, fmt.Errorf("malformed bundle: %w", err)
	}
	names := make([]string, 0, len(bundle.Blocks))
	for _, block := range bundle.Blocks {
		names = append(names, block.Name)
	}
	return names, nil
}
