package brd

import (
	"testing"

	"brd-studio-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func TestRequirementToSectionKeyPrefixes(t *testing.T) {
	assert.Equal(t, constant.SectionNonFunctionalRequirements, RequirementToSectionKey("NFR-04"))
	assert.Equal(t, constant.SectionFunctionalRequirements, RequirementToSectionKey("FR-12"))
	assert.Equal(t, constant.SectionFunctionalRequirements, RequirementToSectionKey("fr-2.1"))
	assert.Equal(t, constant.SectionBusinessObjectives, RequirementToSectionKey("BR-3"))
	assert.Equal(t, constant.SectionTimeline, RequirementToSectionKey("TR-1"))
}

func TestRequirementToSectionKeySubstrings(t *testing.T) {
	assert.Equal(t, constant.SectionExecutiveSummary, RequirementToSectionKey("Executive Summary discussion"))
	assert.Equal(t, constant.SectionRisks, RequirementToSectionKey("the risk register"))
	assert.Equal(t, constant.SectionStakeholders, RequirementToSectionKey("stakeholder approval item"))
}

func TestRequirementToSectionKeyUnrecognized(t *testing.T) {
	assert.Equal(t, "", RequirementToSectionKey("miscellaneous item 7"))
	assert.Equal(t, "", RequirementToSectionKey(""))
	assert.Equal(t, "", RequirementToSectionKey("   "))
}

func TestTargetSectionKeyFirstMatchWins(t *testing.T) {
	key := TargetSectionKey([]string{"note 1", "NFR-2", "FR-9"}, constant.SectionExecutiveSummary)

	assert.Equal(t, constant.SectionNonFunctionalRequirements, key)
}

func TestTargetSectionKeyFallsBackToActive(t *testing.T) {
	key := TargetSectionKey([]string{"unmapped", "also unmapped"}, constant.SectionRisks)

	assert.Equal(t, constant.SectionRisks, key)
}

func TestCanTransitionConflict(t *testing.T) {
	// All four states are mutually reachable.
	states := []string{
		constant.ConflictStatusOpen,
		constant.ConflictStatusResolved,
		constant.ConflictStatusAccepted,
		constant.ConflictStatusDeferred,
	}
	for _, from := range states {
		for _, to := range states {
			if from == to {
				assert.False(t, CanTransitionConflict(from, to))
				continue
			}
			assert.True(t, CanTransitionConflict(from, to), "%s -> %s", from, to)
		}
	}

	// Missing status defaults to open.
	assert.True(t, CanTransitionConflict("", constant.ConflictStatusResolved))
	assert.False(t, CanTransitionConflict("", constant.ConflictStatusOpen))

	assert.False(t, CanTransitionConflict(constant.ConflictStatusOpen, "closed"))
	assert.False(t, CanTransitionConflict("bogus", constant.ConflictStatusOpen))
}
