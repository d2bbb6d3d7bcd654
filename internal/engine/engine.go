// Package engine turns a stream of JSON-model tokens into a generic tree and
// enforces input limits while doing so.
package engine

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

var kindNames = [...]string{"{", "}", "[", "]", "key", "string", "number", "bool", "null"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

var (
	// ErrTrailingData is wrapped when a value is followed by further tokens.
	ErrTrailingData = errors.New("unexpected data after top-level value")
	// ErrUnexpectedToken is wrapped when a token cannot appear where it does.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// SyntaxError reports a token stream that does not form exactly one value.
// Err is ErrTrailingData, ErrUnexpectedToken or io.ErrUnexpectedEOF.
type SyntaxError struct {
	Offset int64
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("engine: %v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// DecodeAnyFromSource builds the tree of the single value in src. Objects
// become map[string]any, arrays []any (never nil) and numbers json.Number.
// Errors from src other than io.EOF are returned unchanged.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	d := &decoder{src: src}
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, err
	}
	extra, err := src.NextToken()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return nil, err
	}
	return nil, &SyntaxError{Offset: extra.Offset, Err: ErrTrailingData}
}

type decoder struct {
	src TokenSource
}

// next reads one token; running out of input is a syntax error here because
// a value is still open.
func (d *decoder) next() (Token, error) {
	tok, err := d.src.NextToken()
	if errors.Is(err, io.EOF) {
		return Token{}, &SyntaxError{Offset: d.src.Location(), Err: io.ErrUnexpectedEOF}
	}
	return tok, err
}

func (d *decoder) value(tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return d.object()
	case KindBeginArray:
		return d.array()
	case KindString:
		return tok.String, nil
	case KindNumber:
		return json.Number(tok.Number), nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	}
	return nil, d.unexpected(tok)
}

func (d *decoder) unexpected(tok Token) error {
	return &SyntaxError{Offset: tok.Offset, Err: fmt.Errorf("%w %s", ErrUnexpectedToken, tok.Kind)}
}

func (d *decoder) object() (map[string]any, error) {
	m := make(map[string]any)
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case KindEndObject:
			return m, nil
		case KindKey:
		default:
			return nil, d.unexpected(tok)
		}
		vt, err := d.next()
		if err != nil {
			return nil, err
		}
		v, err := d.value(vt)
		if err != nil {
			return nil, err
		}
		m[tok.String] = v
	}
}

func (d *decoder) array() ([]any, error) {
	arr := []any{}
	for {
		tok, err := d.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}
