package refine

import (
	"regexp"
	"strings"
)

// Instructions travel to the model wrapped in <user_input> tags so the
// prompt can tell the model where untrusted text starts and ends. Any
// literal tag inside the text is therefore neutralized first.
var userInputTagPattern = regexp.MustCompile(`(?i)</?\s*user_input\s*>`)

// injectionPatterns flag instructions that try to rewrite the model's
// role rather than the document. Matching is coarse on purpose; a
// false positive only downgrades the turn to a plain quoted string.
var injectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)ignore\s+(all\s+)?(previous|prior|above)\s+instructions`),
	regexp.MustCompile(`(?i)disregard\s+(all\s+)?(previous|prior|your)\s+instructions`),
	regexp.MustCompile(`(?i)forget\s+(all\s+)?(previous|prior|your)\s+instructions`),
	regexp.MustCompile(`(?i)you\s+are\s+now\s+`),
	regexp.MustCompile(`(?i)reveal\s+(your|the)\s+system\s+prompt`),
	regexp.MustCompile(`(?i)print\s+(your|the)\s+system\s+prompt`),
}

// WrapUserInput fences untrusted text for prompt assembly. Embedded
// <user_input> tags are rewritten to their bracketed form so the fence
// cannot be closed early.
func WrapUserInput(text string) string {
	cleaned := userInputTagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		return "[" + strings.Trim(tag, "<>") + "]"
	})
	return "<user_input>\n" + cleaned + "\n</user_input>"
}

// LooksLikeInjection reports whether an instruction matches a known
// prompt-injection phrasing.
func LooksLikeInjection(instruction string) bool {
	for _, p := range injectionPatterns {
		if p.MatchString(instruction) {
			return true
		}
	}
	return false
}
