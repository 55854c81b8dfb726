package constant

// Section keys are the fixed addressable set for every BRD. Uniqueness inside
// a document is guaranteed by the key itself; this layer never adds or
// removes sections.
const (
	SectionExecutiveSummary          = "executive_summary"
	SectionBusinessObjectives        = "business_objectives"
	SectionStakeholders              = "stakeholders"
	SectionFunctionalRequirements    = "functional_requirements"
	SectionNonFunctionalRequirements = "non_functional_requirements"
	SectionAssumptions               = "assumptions"
	SectionSuccessMetrics            = "success_metrics"
	SectionTimeline                  = "timeline"
	SectionProjectBackground         = "project_background"
	SectionProjectScope              = "project_scope"
	SectionDependencies              = "dependencies"
	SectionRisks                     = "risks"
	SectionCostBenefit               = "cost_benefit"
)

// SectionKeys lists every key in canonical display order.
var SectionKeys = []string{
	SectionExecutiveSummary,
	SectionProjectBackground,
	SectionBusinessObjectives,
	SectionProjectScope,
	SectionStakeholders,
	SectionFunctionalRequirements,
	SectionNonFunctionalRequirements,
	SectionAssumptions,
	SectionDependencies,
	SectionRisks,
	SectionSuccessMetrics,
	SectionCostBenefit,
	SectionTimeline,
}

// SectionTitles maps keys to their display titles (also used on export).
var SectionTitles = map[string]string{
	SectionExecutiveSummary:          "Executive Summary",
	SectionBusinessObjectives:        "Business Objectives",
	SectionStakeholders:              "Stakeholders",
	SectionFunctionalRequirements:    "Functional Requirements",
	SectionNonFunctionalRequirements: "Non-Functional Requirements",
	SectionAssumptions:               "Assumptions",
	SectionSuccessMetrics:            "Success Metrics",
	SectionTimeline:                  "Timeline",
	SectionProjectBackground:         "Project Background",
	SectionProjectScope:              "Project Scope",
	SectionDependencies:              "Dependencies",
	SectionRisks:                     "Risks",
	SectionCostBenefit:               "Cost-Benefit Analysis",
}

// IsValidSectionKey reports whether key belongs to the fixed section set.
func IsValidSectionKey(key string) bool {
	_, ok := SectionTitles[key]
	return ok
}

// Conflict lifecycle. Every status is reachable from every other via explicit
// user action; there is no forced ordering.
const (
	ConflictStatusOpen     = "open"
	ConflictStatusResolved = "resolved"
	ConflictStatusAccepted = "accepted"
	ConflictStatusDeferred = "deferred"
)

func IsValidConflictStatus(status string) bool {
	switch status {
	case ConflictStatusOpen, ConflictStatusResolved, ConflictStatusAccepted, ConflictStatusDeferred:
		return true
	}
	return false
}

// Conflict severities (set by generation, read-only here).
const (
	ConflictSeverityLow    = "low"
	ConflictSeverityMedium = "medium"
	ConflictSeverityHigh   = "high"
)

// Refinement session modes.
const (
	RefinementModeRefine   = "refine"   // lightweight single-pass edit
	RefinementModeGenerate = "generate" // agentic, may search the project corpus
)

// Chat roles inside a refinement transcript.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	ChatRoleSystem    = "system"
)

// Event types published to the NATS bus.
const (
	EventSectionUpdated   = "SECTION_UPDATED"
	EventConflictResolved = "CONFLICT_RESOLVED"
)
