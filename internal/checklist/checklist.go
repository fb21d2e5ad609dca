// Package checklist recognises the gh pr create conventions the PR hook relies on.
package checklist

import (
	"regexp"
	"strings"

	"github.com/wizzomafizzo/tasksave/internal/constants"
)

// UncheckedMarker is the literal Markdown task-list item that is not ticked.
// It is matched anywhere in the body, including inside code blocks.
const UncheckedMarker = "- [ ]"

// prURLPattern matches the URL gh pr create prints on success.
var prURLPattern = regexp.MustCompile(`https://github\.com/[^\s]+/pull/\d+`)

// IsPRCreate reports whether a shell command creates a pull request.
func IsPRCreate(command string) bool {
	return strings.Contains(command, constants.PRCreateCommand)
}

// ExtractPRURL returns the first pull request URL found in text.
func ExtractPRURL(text string) (string, bool) {
	url := prURLPattern.FindString(text)
	return url, url != ""
}

// HasUncheckedItems reports whether body contains at least one unchecked item.
func HasUncheckedItems(body string) bool {
	return strings.Contains(body, UncheckedMarker)
}

// CountUncheckedItems returns the number of unchecked item markers in body.
func CountUncheckedItems(body string) int {
	return strings.Count(body, UncheckedMarker)
}
