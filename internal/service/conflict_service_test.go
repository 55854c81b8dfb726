package service

import (
	"context"
	"testing"

	"brd-studio-be/internal/constant"
	"brd-studio-be/internal/dto"
	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/memory"
	"brd-studio-be/pkg/refine"
	"brd-studio-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newConflictFixture(state *fakeState, provider refine.Provider) (IConflictService, IRefinementService, *memory.SessionRepository) {
	sessionRepo := memory.NewSessionRepository()
	refinementSvc := NewRefinementService(sessionRepo, newFakeFactory(state), provider, nil, nil, &fakePublisher{}, nil, noopLogger{})
	conflictSvc := NewConflictService(newFakeFactory(state), refinementSvc, sessionRepo, noopLogger{})
	return conflictSvc, refinementSvc, sessionRepo
}

func seedConflict(state *fakeState, brdId uuid.UUID, position int, affected []string) *entity.Conflict {
	c := &entity.Conflict{
		Id:                   uuid.New(),
		BrdId:                brdId,
		Position:             position,
		Type:                 "contradiction",
		Severity:             constant.ConflictSeverityHigh,
		Description:          "Latency target contradicts the batch window",
		AffectedRequirements: affected,
		Status:               constant.ConflictStatusOpen,
	}
	state.conflicts = append(state.conflicts, c)
	return c
}

func TestResolveWithAISeedsAndSendsFirstTurn(t *testing.T) {
	state := &fakeState{}
	brdId := uuid.New()
	seedSection(state, brdId, constant.SectionNonFunctionalRequirements, "nfr content")
	seedConflict(state, brdId, 0, []string{"NFR-04", "FR-02"})

	provider := &fakeProvider{refineResults: []*refine.Result{
		{Content: "proposed resolution", Kind: store.KindRewrite},
	}}
	conflictSvc, _, sessionRepo := newConflictFixture(state, provider)

	res, err := conflictSvc.ResolveWithAI(context.Background(), "client-1", &dto.ResolveWithAIRequest{
		BrdId:            brdId,
		ConflictPosition: 0,
		ActiveSectionKey: constant.SectionExecutiveSummary,
	})

	assert.NoError(t, err)
	// NFR-04 maps to the non-functional section, overriding the active one.
	assert.Equal(t, constant.SectionNonFunctionalRequirements, res.SectionKey)
	// The resolution instruction was sent automatically.
	assert.Len(t, res.Messages, 2)
	assert.Equal(t, "proposed resolution", res.LatestOutput)

	session, found := sessionRepo.Get(res.SessionId)
	assert.True(t, found)
	assert.NotNil(t, session.ConflictPosition)
	assert.Equal(t, 0, *session.ConflictPosition)
	// The synthesized seed carries the conflict card details.
	assert.Contains(t, session.OriginalText, "Latency target contradicts the batch window")
	assert.Contains(t, session.OriginalText, "NFR-04")
}

func TestResolveWithAIFallsBackToActiveSection(t *testing.T) {
	state := &fakeState{}
	brdId := uuid.New()
	seedSection(state, brdId, constant.SectionExecutiveSummary, "summary content")
	seedConflict(state, brdId, 0, []string{"unmapped reference"})

	provider := &fakeProvider{refineResults: []*refine.Result{
		{Content: "resolution", Kind: store.KindRewrite},
	}}
	conflictSvc, _, _ := newConflictFixture(state, provider)

	res, err := conflictSvc.ResolveWithAI(context.Background(), "client-1", &dto.ResolveWithAIRequest{
		BrdId:            brdId,
		ConflictPosition: 0,
		ActiveSectionKey: constant.SectionExecutiveSummary,
	})

	assert.NoError(t, err)
	assert.Equal(t, constant.SectionExecutiveSummary, res.SectionKey)
}

func TestConfirmWithoutEditRequiresAnswerKind(t *testing.T) {
	state := &fakeState{}
	brdId := uuid.New()
	seedSection(state, brdId, constant.SectionNonFunctionalRequirements, "nfr content")
	seedConflict(state, brdId, 0, []string{"NFR-04"})

	// A rewrite response must not allow the shortcut.
	provider := &fakeProvider{refineResults: []*refine.Result{
		{Content: "a rewrite", Kind: store.KindRewrite},
	}}
	conflictSvc, _, _ := newConflictFixture(state, provider)

	res, err := conflictSvc.ResolveWithAI(context.Background(), "client-1", &dto.ResolveWithAIRequest{
		BrdId:            brdId,
		ConflictPosition: 0,
	})
	assert.NoError(t, err)

	_, err = conflictSvc.ConfirmWithoutEdit(context.Background(), &dto.ConfirmWithoutEditRequest{SessionId: res.SessionId})
	assert.Error(t, err)
	assert.Equal(t, constant.ConflictStatusOpen, state.conflicts[0].Status)
}

func TestConfirmWithoutEditResolvesConflict(t *testing.T) {
	state := &fakeState{}
	brdId := uuid.New()
	seedSection(state, brdId, constant.SectionNonFunctionalRequirements, "nfr content")
	seedConflict(state, brdId, 0, []string{"NFR-04"})

	provider := &fakeProvider{refineResults: []*refine.Result{
		{Content: "The content already covers both requirements.", Kind: store.KindAnswer},
	}}
	conflictSvc, _, _ := newConflictFixture(state, provider)

	res, err := conflictSvc.ResolveWithAI(context.Background(), "client-1", &dto.ResolveWithAIRequest{
		BrdId:            brdId,
		ConflictPosition: 0,
	})
	assert.NoError(t, err)

	confirm, err := conflictSvc.ConfirmWithoutEdit(context.Background(), &dto.ConfirmWithoutEditRequest{SessionId: res.SessionId})
	assert.NoError(t, err)
	assert.Equal(t, constant.ConflictStatusResolved, confirm.Status)
	assert.Equal(t, constant.ConflictStatusResolved, state.conflicts[0].Status)
	// No content merge happened.
	assert.Equal(t, "nfr content", state.sections[0].Content)
}

func TestConfirmWithoutEditRejectsUnattachedSession(t *testing.T) {
	state := &fakeState{}
	brdId := uuid.New()
	seedSection(state, brdId, constant.SectionRisks, "risk content")

	provider := &fakeProvider{refineResults: []*refine.Result{
		{Content: "answer", Kind: store.KindAnswer},
	}}
	conflictSvc, refinementSvc, _ := newConflictFixture(state, provider)

	session, err := refinementSvc.InitSession(context.Background(), "client-1", &dto.InitSessionRequest{
		BrdId:        brdId,
		SectionKey:   constant.SectionRisks,
		SelectedText: "risk content",
	})
	assert.NoError(t, err)
	_, err = refinementSvc.SendMessage(context.Background(), session.SessionId, &dto.SendMessageRequest{Instruction: "is this fine?"})
	assert.NoError(t, err)

	_, err = conflictSvc.ConfirmWithoutEdit(context.Background(), &dto.ConfirmWithoutEditRequest{SessionId: session.SessionId})
	assert.Error(t, err)
}
