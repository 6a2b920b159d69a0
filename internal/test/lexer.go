package test

import (
	"fmt"
	"math/rand"
	"strings"
)

// Standalone lexemes for scanning benchmarks; the declaration grammar is
// not respected.
var validTokens = []string{
	"int", "float", "string", "bool", "fn", "return", "while", "continue",
	"main", "x", "count", "ratio", "someVariable", "añejo",
	"0", "1", "42", "123", "321", "98765",
	"0.5", "3.14", "123.456", "1.",
	"true", "false",
	"\"this is a string\"",
	"\"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.\"",
	"\"\"",
	"=", "==", "++", "+=", "+", "-", "*", "/", "%",
	"(", ")", "{", "}", "[", "]", ",", ";", ":",
	"//comment\n",
}

var declTypes = []string{"int", "float", "string", "bool"}

var declLiterals = map[string][]string{
	"int":    {"0", "1", "42", "123456"},
	"float":  {"0.5", "3.14", "123.456", "1."},
	"string": {"\"hello\"", "\"\"", "\"a\\tb\"", "\"lorem ipsum dolor sit amet\""},
	"bool":   {"true", "false"},
}

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	var toks []string
	for len(toks) < size {
		toks = append(toks, validTokens[rand.Intn(len(validTokens))])
	}

	return strings.Join(toks, sep)
}

// GetRandomSource returns size well-formed variable declarations, one per
// line, each initialized with a literal matching its declared type.
func GetRandomSource(size int) string {
	var sb strings.Builder
	for i := 0; i < size; i++ {
		typ := declTypes[rand.Intn(len(declTypes))]
		lits := declLiterals[typ]
		fmt.Fprintf(&sb, "%s v%d = %s;\n", typ, i, lits[rand.Intn(len(lits))])
	}

	return sb.String()
}
