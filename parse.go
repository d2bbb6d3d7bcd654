package dof

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	eng "github.com/reoring/godof/internal/engine"
)

// Parse is the primary entry point. It consumes tokens from the Source,
// builds the generic tree under the enforcement options of opt and resolves
// it into a Document. Failures are returned as Issues.
func Parse(ctx context.Context, src Source, opts ...ParseOpt) (*Document, error) {
	opt := pickOpt(opts)
	v, err := decodeAnyFromSource(ctx, src, opt)
	if err != nil {
		return nil, toIssues(err)
	}
	return fromValue(ctx, v, opt)
}

// ParseBytes parses a JSON document held in memory.
func ParseBytes(ctx context.Context, b []byte, opts ...ParseOpt) (*Document, error) {
	return Parse(ctx, JSONBytes(b), opts...)
}

// StreamParse parses a JSON document from an io.Reader.
// When MaxBytes is set it enforces the size cap up front, otherwise it
// streams tokens from r directly.
func StreamParse(ctx context.Context, r io.Reader, opts ...ParseOpt) (*Document, error) {
	opt := pickOpt(opts)
	if opt.MaxBytes > 0 {
		lr := io.LimitReader(r, opt.MaxBytes+1)
		data, err := io.ReadAll(lr)
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return Parse(ctx, JSONBytes(data), opts...)
	}
	return Parse(ctx, JSONReader(r), opts...)
}

// FromValue resolves an already decoded tree: map[string]any objects, []any
// or []string arrays, strings, numbers (json.Number, int, int64, float64),
// booleans and nil.
func FromValue(ctx context.Context, v any, opts ...ParseOpt) (*Document, error) {
	return fromValue(ctx, v, pickOpt(opts))
}

func decodeAnyFromSource(ctx context.Context, src Source, opt ParseOpt) (any, error) {
	lg := loggerFrom(ctx)
	var sink func(Issue)
	if opt.Strictness.OnDuplicateKey == Warn {
		sink = func(it Issue) {
			if it.Code == CodeDuplicateKey {
				lg.Warn("duplicate key", "path", it.Path)
			}
		}
	}
	return eng.DecodeAnyFromSource(engineTokenSource(EnforceSource(src, opt, sink)))
}

func toIssues(err error) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: ie.Message})
	}
	var se *eng.SyntaxError
	if errors.As(err, &se) {
		msg := se.Err.Error()
		if errors.Is(se.Err, io.ErrUnexpectedEOF) {
			msg = "unexpected end of input"
		}
		return Issues{Root().Issue(CodeParseError, msg, "offset", se.Offset)}
	}
	return singleIssue(CodeParseError, err.Error())
}

// Top-level fields of a .dof document.
var knownFields = map[string]struct{}{
	"name": {}, "authors": {}, "author": {}, "year": {}, "date": {}, "description": {}, "note": {},
	"link": {}, "tags": {}, "languages": {}, "layers": {}, "board": {}, "anchor": {},
	"fingering": {}, "combos": {}, "alt_fingerings": {},
}

// pipeline pools issues across stages. Stages that only depend on document
// fields all run; a stage whose input failed is skipped.
type pipeline struct {
	opt    ParseOpt
	log    *log.Logger
	issues Issues
}

// run executes one stage and records its failure. It reports whether the
// stage succeeded.
func (pl *pipeline) run(stage string, fn func() error) bool {
	err := fn()
	if err == nil {
		pl.log.Debug("stage done", "stage", stage)
		return true
	}
	iss := toIssues(err)
	pl.log.Debug("stage failed", "stage", stage, "issues", len(iss), "first", iss[0].Code)
	pl.issues = AppendIssues(pl.issues, iss...)
	return false
}

// stop reports whether the pipeline must return now.
func (pl *pipeline) stop() bool { return pl.opt.FailFast && len(pl.issues) > 0 }

// skip logs a stage not run because an input failed.
func (pl *pipeline) skip(stage string) { pl.log.Debug("stage skipped", "stage", stage) }

func fromValue(ctx context.Context, v any, opt ParseOpt) (*Document, error) {
	root := Root()
	obj, err := asObject(v, root)
	if err != nil {
		return nil, err
	}
	pl := &pipeline{opt: opt, log: loggerFrom(ctx)}
	d := &Document{}

	pl.run("fields", func() error { return checkFields(obj, opt.Unknown, root) })
	if pl.stop() {
		return nil, pl.issues[:1]
	}

	pl.run("metadata", func() (err error) {
		d.meta, err = parseMetadata(obj, root)
		return err
	})
	if pl.stop() {
		return nil, pl.issues[:1]
	}

	layersOK := pl.run("layers", func() (err error) {
		raw, ok := obj["layers"]
		if !ok {
			return failWith(root.Field("layers"), CodeMissingRequiredField, "layers is required", "field", "layers")
		}
		d.layers, d.generatedShift, err = buildLayers(raw, root.Field("layers"))
		return err
	})
	if pl.stop() {
		return nil, pl.issues[:1]
	}

	boardOK := pl.run("board", func() (err error) {
		raw, ok := obj["board"]
		if !ok {
			return failWith(root.Field("board"), CodeMissingRequiredField, "board is required", "field", "board")
		}
		d.board, err = resolveBoard(raw, root.Field("board"))
		return err
	})
	if pl.stop() {
		return nil, pl.issues[:1]
	}

	anchorOK := false
	if boardOK {
		anchorOK = pl.run("anchor", func() (err error) {
			raw, present := obj["anchor"]
			d.anchor, err = resolveAnchor(raw, present, d.board, root.Field("anchor"))
			return err
		})
		if pl.stop() {
			return nil, pl.issues[:1]
		}
	} else {
		pl.skip("anchor")
	}

	alignOK := false
	if layersOK && anchorOK {
		alignOK = pl.run("alignment", func() error {
			return alignLayout(d.Shape(), d.board.geometry, d.anchor, root.Field("layers").Field(MainLayer))
		})
		if pl.stop() {
			return nil, pl.issues[:1]
		}
	} else {
		pl.skip("alignment")
	}

	if alignOK {
		pl.run("fingering", func() (err error) {
			raw, present := obj["fingering"]
			d.fingering, d.fingeringName, err = resolveFingering(raw, present, d.board, d.anchor, d.Shape(), root.Field("fingering"))
			return err
		})
		if pl.stop() {
			return nil, pl.issues[:1]
		}
	} else {
		pl.skip("fingering")
	}

	if raw, ok := obj["combos"]; ok {
		if layersOK {
			pl.run("combos", func() (err error) {
				d.combos, err = resolveCombos(raw, d.layers, root.Field("combos"))
				return err
			})
			if pl.stop() {
				return nil, pl.issues[:1]
			}
		} else {
			pl.skip("combos")
		}
	}

	if raw, ok := obj["alt_fingerings"]; ok {
		if layersOK {
			pl.run("alt_fingerings", func() (err error) {
				d.alt, err = resolveAltFingerings(raw, d.Main(), root.Field("alt_fingerings"))
				return err
			})
		} else {
			pl.skip("alt_fingerings")
		}
	}

	if len(pl.issues) > 0 {
		return nil, pl.issues
	}
	pl.log.Debug("parsed layout", "name", d.meta.Name, "board", d.board.Type(), "layers", len(d.layers))
	return d, nil
}

// checkFields reports every unknown top-level key unless unknown keys are
// stripped.
func checkFields(obj map[string]any, policy UnknownPolicy, p PathRef) error {
	if policy == UnknownStrip {
		return nil
	}
	var iss Issues
	for _, k := range sortedKeys(obj) {
		if _, ok := knownFields[k]; !ok {
			iss = AppendIssues(iss, p.Field(k).Issue(CodeUnknownKey, "unknown field '"+k+"'", "key", k))
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
