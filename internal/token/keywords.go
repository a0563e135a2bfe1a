package token

var keywords = map[string]Kind{
	"if":     KwIf,
	"else":   KwElse,
	"while":  KwWhile,
	"do":     KwDo,
	"for":    KwFor,
	"return": KwReturn,
	"null":   KwNull,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword maps an identifier spelling to its keyword kind, or Ident.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}
	return Ident
}
