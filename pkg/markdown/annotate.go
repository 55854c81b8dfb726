package markdown

import (
	"regexp"
	"strings"
)

type SpanKind string

const (
	SpanText     SpanKind = "text"
	SpanCitation SpanKind = "citation"
	SpanPriority SpanKind = "priority"
)

// Span is one inline fragment of annotated text. Joining the Text of
// every span in order reconstructs the input exactly; annotation never
// drops characters.
type Span struct {
	Kind     SpanKind `json:"kind"`
	Text     string   `json:"text"`
	Citation string   `json:"citation,omitempty"` // numeric id for citation spans
	Priority string   `json:"priority,omitempty"` // normalized level for priority spans
}

// inlinePattern matches both annotation triggers in one pass so spans
// come out in document order: [N] citation markers and
// "Priority: <level>" phrases.
var inlinePattern = regexp.MustCompile(`\[(\d+)\]|Priority:[ \t]*((?i:high|medium|low|critical|optional))\b`)

// AnnotateText scans a rendered text fragment for citation markers and
// priority phrases. resolve reports whether a citation id is known to
// the section; unresolved markers stay literal text so nothing the
// model wrote disappears. A nil resolve treats every id as unresolved.
func AnnotateText(text string, resolve func(id string) bool) []Span {
	matches := inlinePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Kind: SpanText, Text: text}}
	}

	var spans []Span
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > last {
			spans = append(spans, Span{Kind: SpanText, Text: text[last:start]})
		}

		if m[2] >= 0 { // citation marker
			id := text[m[2]:m[3]]
			if resolve != nil && resolve(id) {
				spans = append(spans, Span{Kind: SpanCitation, Text: text[start:end], Citation: id})
			} else {
				spans = append(spans, Span{Kind: SpanText, Text: text[start:end]})
			}
		} else { // priority phrase
			level := normalizePriority(text[m[4]:m[5]])
			spans = append(spans, Span{Kind: SpanPriority, Text: text[start:end], Priority: level})
		}
		last = end
	}
	if last < len(text) {
		spans = append(spans, Span{Kind: SpanText, Text: text[last:]})
	}
	return spans
}

func normalizePriority(level string) string {
	if level == "" {
		return ""
	}
	lower := strings.ToLower(level)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

type BoldKind string

const (
	BoldRequirementID BoldKind = "requirement_id"
	BoldLabel         BoldKind = "label"
	BoldScopeTag      BoldKind = "scope_tag"
	BoldPlain         BoldKind = "plain"
)

var requirementIDPattern = regexp.MustCompile(`^(FR|NFR|BR|SR|TR)-[\w.\-]+$`)

var boldLabels = map[string]struct{}{
	"requirement":         {},
	"description":         {},
	"rationale":           {},
	"acceptance criteria": {},
	"priority":            {},
	"impact":              {},
	"risk":                {},
	"mitigation":          {},
	"owner":               {},
	"dependencies":        {},
}

// ClassifyBold decides how a bold fragment renders: requirement ids
// become badges, known field labels get label styling, scope tags get
// scope styling, everything else stays plain bold.
func ClassifyBold(text string) BoldKind {
	t := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ":"))
	switch {
	case requirementIDPattern.MatchString(t):
		return BoldRequirementID
	case strings.EqualFold(t, "IN-SCOPE") || strings.EqualFold(t, "OUT-OF-SCOPE"):
		return BoldScopeTag
	default:
		if _, ok := boldLabels[strings.ToLower(t)]; ok {
			return BoldLabel
		}
		return BoldPlain
	}
}
