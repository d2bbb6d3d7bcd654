package dof

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef names a location in a document as a JSON Pointer and creates
// Issues at it. PathRefs are immutable; Field and Index return new values.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the PathRef of the document itself ("/").
func Root() PathRef { return (*pathRef)(nil) }

// At parses a JSON Pointer into a PathRef. Segments are taken verbatim, so
// already escaped segments stay escaped. "" and "/" both name the root.
func At(path string) PathRef {
	var p *pathRef
	if path == "" || path == "/" {
		return p
	}
	for _, seg := range strings.Split(strings.TrimPrefix(path, "/"), "/") {
		p = &pathRef{parent: p, seg: seg}
	}
	return p
}

// pathRef is one escaped segment linked to its parent; nil is the root.
// Children share their parent.
type pathRef struct {
	parent *pathRef
	seg    string
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// Field appends a member name. An empty name is a segment of its own.
func (p *pathRef) Field(name string) PathRef {
	return &pathRef{parent: p, seg: pointerEscaper.Replace(name)}
}

func (p *pathRef) Index(i int) PathRef { return &pathRef{parent: p, seg: strconv.Itoa(i)} }

func (p *pathRef) Pointer() string {
	if p == nil {
		return "/"
	}
	var segs []string
	for q := p; q != nil; q = q.parent {
		segs = append(segs, q.seg)
	}
	b := strings.Builder{}
	for i := len(segs) - 1; i >= 0; i-- {
		b.WriteByte('/')
		b.WriteString(segs[i])
	}
	return b.String()
}

// Issue builds an Issue at p. kv holds alternating param names and values;
// a trailing name without a value is dropped.
func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	var params map[string]any
	for i := 0; i+1 < len(kv); i += 2 {
		if params == nil {
			params = make(map[string]any, len(kv)/2)
		}
		params[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}
