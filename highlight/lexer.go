package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenClass names the kind of a lexed token. Themes key their rules by it.
type TokenClass string

const (
	ClassText     TokenClass = "text"
	ClassComment  TokenClass = "comment"
	ClassString   TokenClass = "string"
	ClassNumber   TokenClass = "number"
	ClassKeyword  TokenClass = "keyword"
	ClassFunction TokenClass = "function"
	ClassIdent    TokenClass = "ident"
	ClassPunct    TokenClass = "punct"
)

func (c TokenClass) valid() bool {
	switch c {
	case ClassText, ClassComment, ClassString, ClassNumber, ClassKeyword,
		ClassFunction, ClassIdent, ClassPunct:
		return true
	}
	return false
}

// codeLexer tokenizes a single source line of a C-family or scripting
// language. Unterminated strings run to the end of the line and the final
// Other rule accepts any rune, so lexing a line never fails.
var codeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Space", Pattern: `\s+`},
	{Name: "Comment", Pattern: `//.*|#.*|/\*.*?(?:\*/|$)`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"?|'(?:\\.|[^'\\])*'?|` + "`[^`]*`?"},
	{Name: "Number", Pattern: `0[xX][0-9a-fA-F_]+|\d[\d_]*(?:\.\d+)?(?:[eE][+-]?\d+)?`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[-+*/%=<>!&|^~?:;,.(){}\[\]@$\\]`},
	{Name: "Other", Pattern: `.`},
})

var tokenNames = invertSymbols(codeLexer.Symbols())

func invertSymbols(symbols map[string]lexer.TokenType) map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string, len(symbols))
	for name, tt := range symbols {
		out[tt] = name
	}
	return out
}

// token is a lexed piece of a line with its class.
type token struct {
	class TokenClass
	text  string
}

// tokenize splits line into classified tokens whose concatenation is line.
func tokenize(line string, keywords map[string]struct{}) ([]token, error) {
	lex, err := codeLexer.LexString("", line)
	if err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("highlight: %w", err)
	}

	out := make([]token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			break
		}
		out = append(out, token{class: classify(tokenNames[tok.Type], tok.Value, keywords), text: tok.Value})
	}

	// An identifier directly followed by "(" is a call or declaration.
	for i := range out {
		if out[i].class != ClassIdent {
			continue
		}
		if j := nextNonSpace(out, i+1); j >= 0 && out[j].text == "(" {
			out[i].class = ClassFunction
		}
	}
	return out, nil
}

func classify(name, value string, keywords map[string]struct{}) TokenClass {
	switch name {
	case "Comment":
		return ClassComment
	case "String":
		return ClassString
	case "Number":
		return ClassNumber
	case "Ident":
		if _, ok := keywords[value]; ok {
			return ClassKeyword
		}
		return ClassIdent
	case "Punct":
		return ClassPunct
	default:
		return ClassText
	}
}

func nextNonSpace(toks []token, from int) int {
	for i := from; i < len(toks); i++ {
		if strings.TrimSpace(toks[i].text) != "" {
			return i
		}
	}
	return -1
}

// DefaultKeywords is the keyword set of the common C-family and scripting
// languages (Go, Rust, C, Java, JavaScript, Python, shell).
var DefaultKeywords = []string{
	"as", "async", "await", "break", "case", "catch", "chan", "class", "const",
	"continue", "def", "default", "defer", "del", "do", "elif", "else", "enum",
	"except", "export", "extends", "extern", "false", "fi", "finally", "fn",
	"for", "from", "func", "function", "go", "goto", "if", "impl", "import",
	"in", "interface", "is", "lambda", "let", "loop", "map", "match", "mod",
	"mut", "new", "nil", "None", "not", "null", "or", "and", "package", "pass",
	"pub", "raise", "range", "return", "select", "self", "static", "struct",
	"super", "switch", "then", "this", "throw", "trait", "true", "True", "False",
	"try", "type", "typedef", "unsafe", "use", "var", "void", "where", "while",
	"with", "yield",
}
