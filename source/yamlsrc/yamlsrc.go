// Package yamlsrc exposes YAML documents as an engine.TokenSource so that
// .dof files may be authored in YAML. The document is decoded into a
// yaml.Node tree and replayed as JSON-like tokens.
package yamlsrc

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/godof/internal/engine"
)

// maxAliasDepth bounds alias expansion so self-referencing anchors terminate.
const maxAliasDepth = 32

type source struct {
	toks []eng.Token
	pos  int
	size int64
	err  error
}

// NewBytes decodes b as a single YAML document. Decoding errors surface from
// the first NextToken call.
func NewBytes(b []byte) eng.TokenSource {
	s := &source{size: int64(len(b))}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		s.err = err
		return s
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return s
		}
		root = root.Content[0]
	}
	if root.Kind == 0 {
		return s
	}
	s.err = s.emit(root, 0)
	return s
}

// NewReader reads r fully and decodes it with NewBytes.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

func (s *source) push(t eng.Token) { s.toks = append(s.toks, t) }

func (s *source) emit(n *yaml.Node, depth int) error {
	off := int64(n.Line)
	switch n.Kind {
	case yaml.MappingNode:
		s.push(eng.Token{Kind: eng.KindBeginObject, Offset: off})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: line %d: mapping keys must be scalars", k.Line)
			}
			s.push(eng.Token{Kind: eng.KindKey, String: k.Value, Offset: int64(k.Line)})
			if err := s.emit(n.Content[i+1], depth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndObject, Offset: off})
	case yaml.SequenceNode:
		s.push(eng.Token{Kind: eng.KindBeginArray, Offset: off})
		for _, c := range n.Content {
			if err := s.emit(c, depth); err != nil {
				return err
			}
		}
		s.push(eng.Token{Kind: eng.KindEndArray, Offset: off})
	case yaml.AliasNode:
		if depth >= maxAliasDepth || n.Alias == nil {
			return fmt.Errorf("yaml: line %d: alias nesting too deep", n.Line)
		}
		return s.emit(n.Alias, depth+1)
	case yaml.ScalarNode:
		s.push(scalarToken(n))
	default:
		return fmt.Errorf("yaml: line %d: unsupported node", n.Line)
	}
	return nil
}

func scalarToken(n *yaml.Node) eng.Token {
	off := int64(n.Line)
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: off}
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return eng.Token{Kind: eng.KindBool, Bool: b, Offset: off}
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10), Offset: off}
		}
		return eng.Token{Kind: eng.KindNumber, Number: n.Value, Offset: off}
	case "!!float":
		var f float64
		if err := n.Decode(&f); err == nil {
			return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64), Offset: off}
		}
	}
	return eng.Token{Kind: eng.KindString, String: n.Value, Offset: off}
}

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	if s.pos >= len(s.toks) {
		return eng.Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

// Location reports the document size; the whole input is read up front.
func (s *source) Location() int64 { return s.size }
