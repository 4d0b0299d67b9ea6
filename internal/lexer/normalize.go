package lexer

import (
	"bytes"

	"golang.org/x/text/unicode/norm"
)

// utf8BOM is the UTF-8 Byte Order Mark some editors prepend to galaxy
// program files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Normalize strips a leading UTF-8 BOM and applies Unicode NFC
// normalization to src, so that a name typed in NFD form (diacritics as
// separate combining runes) tokenizes identically to the same name in
// NFC form. Run once per file before scanning begins.
//
// Examples:
//   - "﻿main = 1\n" -> "main = 1\n" (BOM stripped)
//   - a name spelled with "e" + combining acute (NFD) and one spelled
//     with the precomposed "é" (NFC) lex to the same identifier
func Normalize(src []byte) []byte {
	src = bytes.TrimPrefix(src, utf8BOM)

	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}

	return src
}
