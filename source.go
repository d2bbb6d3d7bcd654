package dof

import (
	"io"

	eng "github.com/reoring/godof/internal/engine"
	"github.com/reoring/godof/source/gojson"
	"github.com/reoring/godof/source/yamlsrc"
)

// TokenKind enumerates the token kinds of a document stream.
type TokenKind int

const (
	TokenBeginObject TokenKind = iota
	TokenEndObject
	TokenBeginArray
	TokenEndArray
	TokenKey
	TokenString
	TokenNumber
	TokenBool
	TokenNull
)

// Token describes a token in the input stream. Offset records the input
// position when known (-1 otherwise).
type Token struct {
	Kind   TokenKind
	String string // Stored for key/string tokens.
	Number string // Literal text of a number token.
	Bool   bool
	Offset int64
}

// Source abstracts over polymorphic input sources (JSON, YAML or any custom
// tokenizer producing the JSON data model).
type Source interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}

// JSONReader wraps an io.Reader as a JSON Source backed by goccy/go-json.
func JSONReader(r io.Reader) Source { return &engineSourceAdapter{inner: gojson.NewReader(r)} }

// JSONBytes wraps a byte slice as a JSON Source backed by goccy/go-json.
func JSONBytes(b []byte) Source { return &engineSourceAdapter{inner: gojson.NewBytes(b)} }

// YAMLBytes wraps a YAML document as a Source.
func YAMLBytes(b []byte) Source { return &engineSourceAdapter{inner: yamlsrc.NewBytes(b)} }

// YAMLReader reads a YAML document from r and wraps it as a Source.
func YAMLReader(r io.Reader) Source { return &engineSourceAdapter{inner: yamlsrc.NewReader(r)} }

// EnforceSource wraps a Source with runtime enforcement (duplicate keys, depth,
// bytes). Non-fatal issues such as duplicate-key warnings go to sink when it is
// non-nil.
func EnforceSource(s Source, opt ParseOpt, sink func(Issue)) Source {
	var forward func(eng.SimpleIssue)
	if sink != nil {
		forward = func(si eng.SimpleIssue) {
			sink(Issue{Path: si.Path, Code: si.Code, Message: si.Message})
		}
	}
	enforced := eng.WrapWithEnforcement(engineTokenSource(s), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxDepth,
		MaxBytes:    opt.MaxBytes,
		IssueSink:   forward,
		FailFast:    opt.FailFast,
	})
	return &engineSourceAdapter{inner: enforced}
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}

type engineSourceAdapter struct {
	inner eng.TokenSource
}

func (s *engineSourceAdapter) NextToken() (Token, error) {
	t, err := s.inner.NextToken()
	if err != nil {
		return Token{}, err
	}
	return Token{Kind: fromEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}

func (s *engineSourceAdapter) Location() int64 { return s.inner.Location() }

// tokenSourceAdapter exposes a caller-provided Source to the engine.
type tokenSourceAdapter struct{ inner Source }

func (a *tokenSourceAdapter) NextToken() (eng.Token, error) {
	t, err := a.inner.NextToken()
	if err != nil {
		return eng.Token{}, err
	}
	return eng.Token{Kind: toEngineKind(t.Kind), String: t.String, Number: t.Number, Bool: t.Bool, Offset: t.Offset}, nil
}

func (a *tokenSourceAdapter) Location() int64 { return a.inner.Location() }

func engineTokenSource(s Source) eng.TokenSource {
	if ea, ok := s.(*engineSourceAdapter); ok {
		return ea.inner
	}
	return &tokenSourceAdapter{inner: s}
}

var engineKinds = [...]eng.Kind{
	TokenBeginObject: eng.KindBeginObject,
	TokenEndObject:   eng.KindEndObject,
	TokenBeginArray:  eng.KindBeginArray,
	TokenEndArray:    eng.KindEndArray,
	TokenKey:         eng.KindKey,
	TokenString:      eng.KindString,
	TokenNumber:      eng.KindNumber,
	TokenBool:        eng.KindBool,
	TokenNull:        eng.KindNull,
}

func toEngineKind(k TokenKind) eng.Kind {
	if k < 0 || int(k) >= len(engineKinds) {
		return eng.KindNull
	}
	return engineKinds[k]
}

func fromEngineKind(k eng.Kind) TokenKind {
	for tk, ek := range engineKinds {
		if ek == k {
			return TokenKind(tk)
		}
	}
	return TokenNull
}
