package routepattern

import (
	"unicode/utf8"

	"github.com/dunglas/whatwg-url/url"
)

var urlParser = url.NewParser()

// encodeSplat percent-encodes a splat value at the URI level: separators and
// the rest of the path structure survive, only code points that cannot appear
// in a path at all are escaped.
func encodeSplat(value string) string {
	return urlParser.PercentEncodeString(value, url.PathPercentEncodeSet)
}

// encodeComponent percent-encodes a named parameter value as a single path
// component. Stricter than encodeSplat: the separator itself is escaped.
func encodeComponent(value string) string {
	return urlParser.PercentEncodeString(value, url.UserInfoPercentEncodeSet)
}

// Adapted from the regexp package (/ added to the list of special chars): https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmap used by func specialRegexp to check whether a character needs to be escaped.
var specialRegexpBytes [16]byte

// specialRegexp reports whether byte b needs to be escaped by escapeRegexpString.
func specialRegexp(b byte) bool {
	return b < utf8.RuneSelf && specialRegexpBytes[b%16]&(1<<(b/16)) != 0
}

func init() {
	for _, b := range []byte(`\.+*?()|[]{}^$/`) {
		specialRegexpBytes[b%16] |= 1 << (b / 16)
	}
}

// escapeRegexpString escapes regexp metacharacters so literal pattern text is
// matched verbatim.
func escapeRegexpString(s string) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if specialRegexp(s[i]) {
			break
		}
	}
	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if specialRegexp(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}
	return string(b[:j])
}
