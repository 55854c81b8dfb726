package service

import (
	"context"
	"testing"
	"time"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newBrdFixture(state *fakeState) (IBrdService, *fakePublisher) {
	publisher := &fakePublisher{}
	svc := NewBrdService(newFakeFactory(state), nil, publisher, nil, noopLogger{})
	return svc, publisher
}

func seedBrd(state *fakeState) uuid.UUID {
	id := uuid.New()
	state.brds = append(state.brds, &entity.Brd{
		Id:          id,
		ProjectId:   uuid.New(),
		GeneratedAt: time.Now(),
	})
	return id
}

func TestShowRepairsSectionContent(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)
	seedSection(state, brdId, constant.SectionTimeline,
		"Phases:\n| Phase | Weeks |\n\n| --- | --- |\n| Pilot | 2 |")

	svc, _ := newBrdFixture(state)
	res, err := svc.Show(context.Background(), brdId)

	assert.NoError(t, err)
	assert.Len(t, res.Sections, 1)
	assert.Equal(t,
		"Phases:\n\n| Phase | Weeks |\n| --- | --- |\n| Pilot | 2 |",
		res.Sections[0].Content)
}

func TestRenderSectionAnnotatesCitations(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)
	sec := seedSection(state, brdId, constant.SectionFunctionalRequirements,
		"Reports must be exportable [1] and archived [9].")
	sec.Citations = []entity.Citation{{Id: "1", Filename: "rfp.pdf"}}

	svc, _ := newBrdFixture(state)
	res, err := svc.RenderSection(context.Background(), brdId, constant.SectionFunctionalRequirements)

	assert.NoError(t, err)

	var resolved []string
	literal := ""
	for _, span := range res.Spans {
		if span.Kind == "citation" {
			resolved = append(resolved, span.Citation)
		}
		literal += span.Text
	}
	assert.Equal(t, []string{"1"}, resolved)
	// The unknown marker stays literal text.
	assert.Contains(t, literal, "[9]")
}

func TestUpdateSectionRejectsUnknownKey(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)

	svc, _ := newBrdFixture(state)
	_, err := svc.UpdateSection(context.Background(), brdId, "conclusion", &dto.UpdateSectionRequest{Content: "x"})

	assert.Error(t, err)
}

func TestUpdateSectionWritesAndPublishes(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)
	seedSection(state, brdId, constant.SectionAssumptions, "old")

	svc, publisher := newBrdFixture(state)
	res, err := svc.UpdateSection(context.Background(), brdId, constant.SectionAssumptions, &dto.UpdateSectionRequest{Content: "new"})

	assert.NoError(t, err)
	assert.Equal(t, "new", res.Content)
	assert.Equal(t, "new", state.sections[0].Content)
	assert.Len(t, publisher.payloads, 1)
}

func TestUpdateConflictStatusTransitions(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)
	seedConflict(state, brdId, 0, nil)

	svc, _ := newBrdFixture(state)

	err := svc.UpdateConflictStatus(context.Background(), brdId, 0, &dto.UpdateConflictStatusRequest{
		Status: constant.ConflictStatusDeferred,
	})
	assert.NoError(t, err)
	assert.Equal(t, constant.ConflictStatusDeferred, state.conflicts[0].Status)

	// Re-opening is an explicit, allowed move.
	err = svc.UpdateConflictStatus(context.Background(), brdId, 0, &dto.UpdateConflictStatusRequest{
		Status: constant.ConflictStatusOpen,
	})
	assert.NoError(t, err)

	// Same-state moves are rejected.
	err = svc.UpdateConflictStatus(context.Background(), brdId, 0, &dto.UpdateConflictStatusRequest{
		Status: constant.ConflictStatusOpen,
	})
	assert.Error(t, err)
}

func TestExportContainsPopulatedSections(t *testing.T) {
	state := &fakeState{}
	brdId := seedBrd(state)
	seedSection(state, brdId, constant.SectionExecutiveSummary, "The summary.")
	seedSection(state, brdId, constant.SectionRisks, "")

	svc, _ := newBrdFixture(state)
	res, err := svc.Export(context.Background(), brdId)

	assert.NoError(t, err)
	assert.Contains(t, res.Markdown, "## Executive Summary")
	assert.Contains(t, res.Markdown, "The summary.")
	assert.NotContains(t, res.Markdown, "## Risks")
}
