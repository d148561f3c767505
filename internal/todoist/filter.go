package todoist

import (
	"fmt"
	"regexp"
	"strings"
)

// filterSpecials matches the Todoist query operators and whitespace that need
// escaping inside a search term.
var filterSpecials = regexp.MustCompile(`[|&!()\s]`)

// escapeSearch backslash-escapes filter grammar operators in free text so the
// term is matched literally instead of being parsed as part of the query.
func escapeSearch(text string) string {
	return filterSpecials.ReplaceAllString(text, `\$0`)
}

// BuildFilter composes a Todoist filter expression from structured inputs.
// Clauses are joined with "&" in a fixed order: search text, due-date filter,
// priority OR-set, passthrough fragment. An empty input set yields "", which
// callers must translate into the absence of the filter parameter.
//
// The search text is escaped; dueDate and passthrough are fragments in the
// filter grammar and forwarded verbatim. Priorities are rendered in input
// order as e.g. "(p2|p4)" and not deduplicated or validated.
func BuildFilter(search, dueDate string, priorities []int, passthrough string) string {
	var clauses []string

	if search != "" {
		clauses = append(clauses, fmt.Sprintf("search: %s", escapeSearch(search)))
	}

	if dueDate != "" {
		clauses = append(clauses, dueDate)
	}

	if len(priorities) > 0 {
		tokens := make([]string, 0, len(priorities))
		for _, p := range priorities {
			tokens = append(tokens, fmt.Sprintf("p%d", p))
		}
		clauses = append(clauses, "("+strings.Join(tokens, "|")+")")
	}

	if passthrough != "" {
		clauses = append(clauses, passthrough)
	}

	return strings.Join(clauses, "&")
}
