package puzzle

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var fileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// Values are captured as text so that leading zeros stay decimal.
type targetFile struct {
	Values []string `parser:"@Int*"`
}

type solutionFile struct {
	Problem string `parser:"('solve' @Ident)?"`
	Moves   string `parser:"@Int?"`
}

var (
	targetParser = participle.MustBuild[targetFile](
		participle.Lexer(fileLexer),
		participle.Elide("Whitespace", "Comment"),
	)
	solutionParser = participle.MustBuild[solutionFile](
		participle.Lexer(fileLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)
