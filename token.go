// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltf

import "errors"

// The schema decoder needs flat tokens with byte spans and parent links:
// spans back raw extras retrieval and parent links make sub-tree skipping
// linear, neither of which encoding/json can provide. The tokenizer runs
// twice per document - a counting pass with a nil output slice, then a
// filling pass over an exactly sized array.

// Tokenizer failure modes. Parse reports all of them as ErrInvalidJSON.
var (
	errTokenCapacity = errors.New("out of token capacity")
	errInvalidByte   = errors.New("invalid byte")
	errTruncated     = errors.New("truncated input")
)

type tokenKind int

const (
	tokenUndefined tokenKind = iota
	tokenObject
	tokenArray
	tokenString
	tokenPrimitive
)

// token is a typed span of the source document. For an object or array
// token of size N, the N immediate children occupy the following
// sub-spans in depth-first order.
type token struct {
	kind   tokenKind
	start  int // Byte offset of the first byte. Strings exclude the quotes.
	end    int // Byte offset one past the last byte.
	size   int // Child count: elements for arrays, keys for objects, values for keys.
	parent int // Index of the enclosing token, -1 at top level.
}

// tokenizer is a resumable cursor over the source bytes.
type tokenizer struct {
	pos   int // Offset in the source
	next  int // Next token to allocate
	super int // Enclosing container token, -1 at top level
}

func newTokenizer() *tokenizer {

	return &tokenizer{super: -1}
}

// alloc takes the next unused token, or nil when the array is full.
func (p *tokenizer) alloc(tokens []token) *token {

	if p.next >= len(tokens) {
		return nil
	}
	tok := &tokens[p.next]
	p.next++
	tok.start = -1
	tok.end = -1
	tok.size = 0
	tok.parent = -1
	return tok
}

// parse tokenizes js. With a nil tokens slice it only counts; bracket
// matching and open-container detection are deferred to the filling pass.
// Returns the total token count.
func (p *tokenizer) parse(js []byte, tokens []token) (int, error) {

	count := p.next
	for ; p.pos < len(js); p.pos++ {
		c := js[p.pos]
		switch c {
		case '{', '[':
			count++
			if tokens == nil {
				break
			}
			tok := p.alloc(tokens)
			if tok == nil {
				return 0, errTokenCapacity
			}
			if p.super != -1 {
				tokens[p.super].size++
				tok.parent = p.super
			}
			if c == '{' {
				tok.kind = tokenObject
			} else {
				tok.kind = tokenArray
			}
			tok.start = p.pos
			p.super = p.next - 1
		case '}', ']':
			if tokens == nil {
				break
			}
			kind := tokenObject
			if c == ']' {
				kind = tokenArray
			}
			if p.next < 1 {
				return 0, errInvalidByte
			}
			// Walk the parent chain to the innermost open container and
			// verify the bracket matches its opener.
			tok := &tokens[p.next-1]
			for {
				if tok.start != -1 && tok.end == -1 {
					if tok.kind != kind {
						return 0, errInvalidByte
					}
					tok.end = p.pos + 1
					p.super = tok.parent
					break
				}
				if tok.parent == -1 {
					if tok.kind != kind || p.super == -1 {
						return 0, errInvalidByte
					}
					break
				}
				tok = &tokens[tok.parent]
			}
		case '"':
			if err := p.parseString(js, tokens); err != nil {
				return 0, err
			}
			count++
			if p.super != -1 && tokens != nil {
				tokens[p.super].size++
			}
		case '\t', '\r', '\n', ' ':
			// Whitespace between tokens.
		case ':':
			// The key just completed becomes the parent of the value.
			p.super = p.next - 1
		case ',':
			if tokens != nil && p.super != -1 &&
				tokens[p.super].kind != tokenArray &&
				tokens[p.super].kind != tokenObject {
				p.super = tokens[p.super].parent
			}
		default:
			if err := p.parsePrimitive(js, tokens); err != nil {
				return 0, err
			}
			count++
			if p.super != -1 && tokens != nil {
				tokens[p.super].size++
			}
		}
	}

	if tokens != nil {
		for i := p.next - 1; i >= 0; i-- {
			if tokens[i].start != -1 && tokens[i].end == -1 {
				return 0, errTruncated
			}
		}
	}
	return count, nil
}

// parsePrimitive consumes an unquoted value up to a delimiter.
func (p *tokenizer) parsePrimitive(js []byte, tokens []token) error {

	start := p.pos
loop:
	for ; p.pos < len(js); p.pos++ {
		switch js[p.pos] {
		case ':', '\t', '\r', '\n', ' ', ',', ']', '}':
			break loop
		}
		if js[p.pos] < 32 || js[p.pos] >= 127 {
			p.pos = start
			return errInvalidByte
		}
	}

	if tokens == nil {
		p.pos--
		return nil
	}
	tok := p.alloc(tokens)
	if tok == nil {
		p.pos = start
		return errTokenCapacity
	}
	tok.kind = tokenPrimitive
	tok.start = start
	tok.end = p.pos
	tok.parent = p.super
	p.pos--
	return nil
}

// parseString consumes a quoted string, validating escapes.
func (p *tokenizer) parseString(js []byte, tokens []token) error {

	start := p.pos
	p.pos++
	for ; p.pos < len(js); p.pos++ {
		c := js[p.pos]

		if c == '"' {
			if tokens == nil {
				return nil
			}
			tok := p.alloc(tokens)
			if tok == nil {
				p.pos = start
				return errTokenCapacity
			}
			tok.kind = tokenString
			tok.start = start + 1
			tok.end = p.pos
			tok.parent = p.super
			return nil
		}

		if c == '\\' && p.pos+1 < len(js) {
			p.pos++
			switch js[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
			case 'u':
				p.pos++
				for i := 0; i < 4 && p.pos < len(js); i++ {
					if !isHexDigit(js[p.pos]) {
						p.pos = start
						return errInvalidByte
					}
					p.pos++
				}
				p.pos--
			default:
				p.pos = start
				return errInvalidByte
			}
		}
	}
	p.pos = start
	return errTruncated
}

func isHexDigit(c byte) bool {

	return c >= '0' && c <= '9' || c >= 'A' && c <= 'F' || c >= 'a' && c <= 'f'
}
