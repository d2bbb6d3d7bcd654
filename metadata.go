package dof

// Language is a language a layout was designed for, with its share of use.
type Language struct {
	Language string `json:"language"`
	Weight   int    `json:"weight"`
}

// DefaultLanguages is assumed when a document does not list any.
func DefaultLanguages() []Language { return []Language{{Language: "English", Weight: 100}} }

// Metadata holds the descriptive fields of a document. They are copied
// through without interpretation beyond their types.
type Metadata struct {
	Name        string
	Authors     []string
	Year        *int
	Date        string
	Description string
	Link        string
	Tags        []string
	Languages   []Language
}

func parseMetadata(obj map[string]any, p PathRef) (Metadata, error) {
	var md Metadata

	rawName, ok := obj["name"]
	if !ok {
		return md, failWith(p.Field("name"), CodeMissingRequiredField, "name is required", "field", "name")
	}
	name, err := asString(rawName, p.Field("name"))
	if err != nil {
		return md, err
	}
	md.Name = name

	if _, both := obj["author"]; both {
		if _, ok := obj["authors"]; ok {
			return md, failWith(p.Field("author"), CodeConflict, "author and authors are mutually exclusive", "fields", "author,authors")
		}
	}
	for _, key := range []string{"authors", "author"} {
		if raw, ok := obj[key]; ok {
			if md.Authors, err = stringOrList(raw, p.Field(key)); err != nil {
				return md, err
			}
			if len(md.Authors) == 0 {
				md.Authors = nil
			}
		}
	}

	if raw, ok := obj["year"]; ok {
		y, err := asInt(raw, p.Field("year"))
		if err != nil {
			return md, err
		}
		md.Year = &y
	}

	if _, both := obj["note"]; both {
		if _, ok := obj["description"]; ok {
			return md, failWith(p.Field("note"), CodeConflict, "description and note are mutually exclusive", "fields", "description,note")
		}
	}
	for _, f := range []struct {
		key string
		dst *string
	}{
		{"date", &md.Date}, {"description", &md.Description}, {"note", &md.Description}, {"link", &md.Link},
	} {
		if raw, ok := obj[f.key]; ok {
			if *f.dst, err = asString(raw, p.Field(f.key)); err != nil {
				return md, err
			}
		}
	}

	if raw, ok := obj["tags"]; ok {
		if md.Tags, err = asStrings(raw, p.Field("tags")); err != nil {
			return md, err
		}
		if len(md.Tags) == 0 {
			md.Tags = nil
		}
	}

	md.Languages = DefaultLanguages()
	if raw, ok := obj["languages"]; ok {
		if md.Languages, err = parseLanguages(raw, p.Field("languages")); err != nil {
			return md, err
		}
	}
	return md, nil
}

// stringOrList accepts a single string or an array of strings.
func stringOrList(raw any, p PathRef) ([]string, error) {
	if s, ok := raw.(string); ok {
		return []string{s}, nil
	}
	return asStrings(raw, p)
}

func parseLanguages(raw any, p PathRef) ([]Language, error) {
	arr, err := asArray(raw, p)
	if err != nil {
		return nil, err
	}
	out := make([]Language, 0, len(arr))
	for i, e := range arr {
		ep := p.Index(i)
		obj, err := asObject(e, ep)
		if err != nil {
			return nil, err
		}
		rawLang, ok := obj["language"]
		if !ok {
			return nil, failWith(ep.Field("language"), CodeMissingRequiredField, "language is required", "field", "language")
		}
		lang, err := asString(rawLang, ep.Field("language"))
		if err != nil {
			return nil, err
		}
		weight := 100
		if rawW, ok := obj["weight"]; ok {
			if weight, err = asInt(rawW, ep.Field("weight")); err != nil {
				return nil, err
			}
			if weight < 0 {
				return nil, failWith(ep.Field("weight"), CodeInvalidType, "weight must not be negative", "expected", "non-negative integer", "value", weight)
			}
		}
		out = append(out, Language{Language: lang, Weight: weight})
	}
	return out, nil
}
