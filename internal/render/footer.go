// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholder matches any brace token left after expansion, which signals
// a typo in the user's template.
var placeholder = regexp.MustCompile(`\{[a-z]+\}`)

// footer expands the footer template for one card. Supported placeholders
// are {subject}, {lesson}, {unit}, {index} and {page}; {unit} is an alias
// for lesson. A template that still contains brace tokens after expansion
// falls back to "subject lesson" trimmed, so a bad template never aborts a
// print run.
type footer struct {
	enabled  bool
	template string
	subject  string
	lesson   string
}

func (f footer) render(index, page int) string {
	if !f.enabled {
		return ""
	}

	out := strings.NewReplacer(
		"{subject}", f.subject,
		"{lesson}", f.lesson,
		"{unit}", f.lesson,
		"{index}", strconv.Itoa(index),
		"{page}", strconv.Itoa(page),
	).Replace(f.template)

	if placeholder.MatchString(out) {
		return strings.TrimSpace(f.subject + " " + f.lesson)
	}
	return out
}
