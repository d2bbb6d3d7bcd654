package dof

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// failWith builds a single-issue error at p carrying structured params.
func failWith(p PathRef, code, msg string, kv ...any) error {
	return Issues{p.Issue(code, msg, kv...)}
}

func singleIssue(code, msg string) Issues { return AppendIssues(nil, Issue{Code: code, Path: "/", Message: msg}) }
