package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thornvm/scanner"
)

func kinds(src string) []scanner.Kind {
	s := scanner.New(src)
	var out []scanner.Kind
	for {
		tok := s.Next()
		out = append(out, tok.Kind)
		if tok.Kind == scanner.EOF {
			return out
		}
	}
}

func TestPunctuationAndOperators(t *testing.T) {
	got := kinds("(){};,.-+/*!!====<=>=<>")
	want := []scanner.Kind{
		scanner.LeftParen, scanner.RightParen, scanner.LeftBrace, scanner.RightBrace,
		scanner.Semicolon, scanner.Comma, scanner.Dot, scanner.Minus, scanner.Plus,
		scanner.Slash, scanner.Star, scanner.Bang, scanner.BangEqual, scanner.EqualEqual,
		scanner.Equal, scanner.LessEqual, scanner.GreaterEqual, scanner.Less, scanner.Greater, scanner.EOF,
	}
	assert.Equal(t, want, got)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	got := kinds("var let const fun if else while for break continue print return nil true false and or class super this foo")
	want := []scanner.Kind{
		scanner.Var, scanner.Var, scanner.Const, scanner.Fun, scanner.If, scanner.Else,
		scanner.While, scanner.For, scanner.Break, scanner.Continue, scanner.Print,
		scanner.Return, scanner.Nil, scanner.True, scanner.False, scanner.And, scanner.Or,
		scanner.Class, scanner.Super, scanner.This, scanner.Identifier, scanner.EOF,
	}
	assert.Equal(t, want, got)
}

func TestNumberLexeme(t *testing.T) {
	s := scanner.New("12.34")
	tok := s.Next()
	require.Equal(t, scanner.Number, tok.Kind)
	assert.Equal(t, "12.34", tok.Lexeme)
}

func TestStringLiteralSpansLinesAndTracksLineNumber(t *testing.T) {
	s := scanner.New("\"a\nb\" 1")
	str := s.Next()
	require.Equal(t, scanner.String, str.Kind)
	assert.Equal(t, "\"a\nb\"", str.Lexeme)

	num := s.Next()
	assert.Equal(t, 2, num.Line)
}

func TestUnterminatedStringIsAnErrorToken(t *testing.T) {
	s := scanner.New("\"abc")
	tok := s.Next()
	require.Equal(t, scanner.Error, tok.Kind)
	assert.Equal(t, "Unterminated string.", tok.Message)
}

func TestCommentsAreSkipped(t *testing.T) {
	got := kinds("1 // a comment\n2")
	want := []scanner.Kind{scanner.Number, scanner.Number, scanner.EOF}
	assert.Equal(t, want, got)
}

func TestUnescapeStripsQuotesAndBackslashEscapes(t *testing.T) {
	assert.Equal(t, `a"b`, scanner.Unescape(`"a\"b"`))
	assert.Equal(t, `a\b`, scanner.Unescape(`"a\\b"`))
	assert.Equal(t, "plain", scanner.Unescape(`"plain"`))
}

func TestUnexpectedCharacterIsAnErrorToken(t *testing.T) {
	s := scanner.New("@")
	tok := s.Next()
	require.Equal(t, scanner.Error, tok.Kind)
	assert.Equal(t, "Unexpected character.", tok.Message)
}

func TestEOFIsSticky(t *testing.T) {
	s := scanner.New("")
	first := s.Next()
	second := s.Next()
	assert.Equal(t, scanner.EOF, first.Kind)
	assert.Equal(t, scanner.EOF, second.Kind)
}
