package shell

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// commandLine is one parsed input line: a code token and its arguments.
// Tokens are kept as text; the dispatcher decides what is numeric.
type commandLine struct {
	Code string   `@Word`
	Args []string `@Word*`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Word", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var lineParser = participle.MustBuild[commandLine](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
)

// parseLine tokenizes a non-blank line.
func parseLine(line string) (*commandLine, error) {
	return lineParser.ParseString("", line)
}
