package routepattern

import (
	"strings"
	"unicode"

	"golang.org/x/exp/utf8string"
)

type tokenizer struct {
	input     *utf8string.String
	tokenList []token
	pending   strings.Builder
	index     int
	nextIndex int
	codePoint rune
}

// tokenize splits a pattern into atoms, left to right. It never fails:
// structurally suspect input (bare colons, stray backslashes, unbalanced
// parens) is carried through as literal text or group-boundary atoms and left
// for the matcher and formatter to judge.
func tokenize(input string) []token {
	t := tokenizer{
		input:     utf8string.NewString(input),
		tokenList: make([]token, 0, len(input)),
	}

	length := t.input.RuneCount()

	for t.index < length {
		t.seekAndGetNextCodePoint(t.index)

		switch t.codePoint {
		case '*':
			if t.nextIndex < length && t.input.At(t.nextIndex) == '*' {
				t.addToken(tokenGreedySplat, "**", t.nextIndex+1)

				continue
			}

			t.addToken(tokenSplat, "*", t.nextIndex)

		case '(':
			t.addToken(tokenOpen, "(", t.nextIndex)

		case ')':
			t.addToken(tokenClose, ")", t.nextIndex)

		case '\\':
			if t.index == length-1 {
				// A trailing backslash has nothing to escape.
				t.appendLiteralCodePoint()

				continue
			}

			t.getNextCodePoint()

			switch t.codePoint {
			case '(':
				t.addToken(tokenEscapedOpen, "(", t.nextIndex)
			case ')':
				t.addToken(tokenEscapedClose, ")", t.nextIndex)
			default:
				// Only parens can be escaped; anything else keeps its backslash.
				t.pending.WriteByte('\\')
				t.appendLiteralCodePoint()
			}

		case ':':
			namePosition := t.nextIndex
			nameStart := namePosition

			for namePosition < length {
				t.seekAndGetNextCodePoint(namePosition)

				var firstCodePoint bool
				if namePosition == nameStart {
					firstCodePoint = true
				}

				if !isValidNameCodePoint(t.codePoint, firstCodePoint) {
					break
				}

				namePosition = t.nextIndex
			}

			if namePosition <= nameStart {
				// A colon with no name after it is plain text.
				t.pending.WriteByte(':')
				t.index = nameStart

				continue
			}

			t.addToken(tokenName, t.input.Slice(nameStart, namePosition), namePosition)

		default:
			t.appendLiteralCodePoint()
		}
	}

	t.flushPendingLiteral()

	return t.tokenList
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

func (t *tokenizer) addToken(tType tokenType, value string, nextPosition int) {
	t.flushPendingLiteral()
	t.tokenList = append(t.tokenList, token{tType: tType, value: value})
	t.index = nextPosition
}

func (t *tokenizer) appendLiteralCodePoint() {
	t.pending.WriteRune(t.codePoint)
	t.index = t.nextIndex
}

func (t *tokenizer) flushPendingLiteral() {
	if t.pending.Len() == 0 {
		return
	}

	t.tokenList = append(t.tokenList, token{tType: tokenLiteral, value: t.pending.String()})
	t.pending.Reset()
}

func isValidNameCodePoint(codePoint rune, first bool) bool {
	if first {
		return isIdentifierStart(codePoint)
	}

	return isIdentifierPart(codePoint)
}

func isIdentifierStart(codePoint rune) bool {
	return unicode.In(
		codePoint,
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
	) && !unicode.In(
		codePoint,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}

func isIdentifierPart(codePoint rune) bool {
	return unicode.In(
		codePoint,
		unicode.L,
		unicode.Nl,
		unicode.Other_ID_Start,
		unicode.Mn,
		unicode.Mc,
		unicode.Nd,
		unicode.Pc,
		unicode.Other_ID_Continue,
	) && !unicode.In(
		codePoint,
		unicode.Pattern_Syntax,
		unicode.Pattern_White_Space,
	)
}
