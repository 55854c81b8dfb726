package brd

import (
	"strings"

	"brd-studio-be/internal/constant"
)

// requirementPrefixes maps requirement-identifier prefixes onto section
// keys. Identifiers like "NFR-04" name the family of requirements they
// belong to.
var requirementPrefixes = []struct {
	prefix string
	key    string
}{
	{"NFR-", constant.SectionNonFunctionalRequirements},
	{"FR-", constant.SectionFunctionalRequirements},
	{"BR-", constant.SectionBusinessObjectives},
	{"SR-", constant.SectionProjectScope},
	{"TR-", constant.SectionTimeline},
}

// sectionPhrases maps lowercase phrases found in free-text requirement
// references onto section keys. Matching is first-hit and best-effort;
// overlapping vocabulary (e.g. "risk" in cost-benefit prose) resolves
// to whichever phrase is listed first.
var sectionPhrases = []struct {
	phrase string
	key    string
}{
	{"executive summary", constant.SectionExecutiveSummary},
	{"business objective", constant.SectionBusinessObjectives},
	{"stakeholder", constant.SectionStakeholders},
	{"non-functional", constant.SectionNonFunctionalRequirements},
	{"functional requirement", constant.SectionFunctionalRequirements},
	{"assumption", constant.SectionAssumptions},
	{"success metric", constant.SectionSuccessMetrics},
	{"timeline", constant.SectionTimeline},
	{"background", constant.SectionProjectBackground},
	{"scope", constant.SectionProjectScope},
	{"dependenc", constant.SectionDependencies},
	{"risk", constant.SectionRisks},
	{"cost", constant.SectionCostBenefit},
	{"benefit", constant.SectionCostBenefit},
}

// RequirementToSectionKey maps one affected-requirement reference to
// the section it most likely lives in. Returns "" when nothing
// matches; callers fall back to the active section.
func RequirementToSectionKey(requirement string) string {
	ref := strings.TrimSpace(requirement)
	if ref == "" {
		return ""
	}

	upper := strings.ToUpper(ref)
	for _, p := range requirementPrefixes {
		if strings.HasPrefix(upper, p.prefix) {
			return p.key
		}
	}

	lower := strings.ToLower(ref)
	for _, p := range sectionPhrases {
		if strings.Contains(lower, p.phrase) {
			return p.key
		}
	}
	return ""
}

// TargetSectionKey resolves a conflict's target section from its
// affected-requirement list, taking the first reference that maps to a
// known section. Falls back to activeKey when none match.
func TargetSectionKey(affectedRequirements []string, activeKey string) string {
	for _, req := range affectedRequirements {
		if key := RequirementToSectionKey(req); key != "" {
			return key
		}
	}
	return activeKey
}

// CanTransitionConflict reports whether a conflict status change is
// allowed. All four states are mutually reachable by explicit user
// action, so the only rejections are unknown statuses and self moves.
func CanTransitionConflict(from, to string) bool {
	if !constant.IsValidConflictStatus(to) {
		return false
	}
	if from == "" {
		from = constant.ConflictStatusOpen
	}
	if !constant.IsValidConflictStatus(from) {
		return false
	}
	return from != to
}
