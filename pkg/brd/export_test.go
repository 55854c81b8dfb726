package brd

import (
	"strings"
	"testing"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestExportMarkdownSkipsEmptySections(t *testing.T) {
	sections := []*entity.Section{
		{Key: constant.SectionExecutiveSummary, Title: "Executive Summary", Content: "The project modernizes billing."},
		{Key: constant.SectionRisks, Title: "Risks", Content: "   \n"},
	}

	out := ExportMarkdown("Billing BRD", sections)

	assert.Contains(t, out, "# Billing BRD")
	assert.Contains(t, out, "## Executive Summary")
	assert.NotContains(t, out, "## Risks")
}

func TestExportMarkdownOrdersAndDivides(t *testing.T) {
	sections := []*entity.Section{
		{Key: constant.SectionRisks, Content: "Vendor risk."},
		{Key: constant.SectionExecutiveSummary, Content: "Summary text."},
	}

	out := ExportMarkdown("Doc", sections)

	// Canonical order, not input order.
	assert.Less(t, strings.Index(out, "Summary text."), strings.Index(out, "Vendor risk."))
	assert.Equal(t, 2, strings.Count(out, "\n---\n"))
	// Missing titles fall back to the canonical ones.
	assert.Contains(t, out, "## Executive Summary")
	assert.Contains(t, out, "## Risks")
}

func TestExportMarkdownIncludesCitations(t *testing.T) {
	sections := []*entity.Section{
		{
			Key:     constant.SectionFunctionalRequirements,
			Content: "The system must export reports [1].",
			Citations: []entity.Citation{
				{Id: "1", Filename: "rfp.pdf", Quote: "exportable reporting"},
			},
		},
	}

	out := ExportMarkdown("Doc", sections)

	assert.Contains(t, out, "**Sources**")
	assert.Contains(t, out, `- [1] rfp.pdf: "exportable reporting"`)
}
