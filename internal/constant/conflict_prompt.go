package constant

import (
	"fmt"
	"strings"
)

// ConflictContextV1 renders the synthesized seed text for a conflict-attached
// refinement session. It stands in for a literal selection, so reconciliation
// will fall through to a full-section replace when accepted.
func ConflictContextV1(conflictType, severity, description string, affectedRequirements []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Conflict (%s, severity: %s): %s", conflictType, severity, description)
	if len(affectedRequirements) > 0 {
		fmt.Fprintf(&b, "\nAffected requirements: %s", strings.Join(affectedRequirements, ", "))
	}
	return b.String()
}

// ConflictResolutionInstructionV1 is the first instruction sent automatically
// when a conflict enters refinement through "Resolve with AI".
const ConflictResolutionInstructionV1 = `Review the conflict described above against the current section content. ` +
	`If the content needs to change, rewrite the affected part so the conflict is resolved while preserving every other requirement. ` +
	`If the content already satisfies both sides of the conflict, explain why no edit is needed.`
