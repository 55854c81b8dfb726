package service

import (
	"context"
	"errors"

	"brd-studio-be/internal/entity"
	"brd-studio-be/internal/repository/contract"
	"brd-studio-be/internal/repository/specification"
	"brd-studio-be/internal/repository/unitofwork"
	"brd-studio-be/pkg/refine"

	"github.com/google/uuid"
)

// In-memory doubles for the repository layer. Spec filtering is done
// by type-switching on the concrete specification structs the services
// actually use.

type fakeState struct {
	brds      []*entity.Brd
	sections  []*entity.Section
	conflicts []*entity.Conflict
	chunks    []*entity.SectionChunk

	sectionUpdateErr  error
	conflictUpdateErr error
}

type fakeFactory struct {
	state *fakeState
}

func newFakeFactory(state *fakeState) unitofwork.RepositoryFactory {
	return &fakeFactory{state: state}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{state: f.state}
}

type fakeUow struct {
	state *fakeState
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) BrdRepository() contract.BrdRepository {
	return &fakeBrdRepo{state: u.state}
}

func (u *fakeUow) SectionRepository() contract.SectionRepository {
	return &fakeSectionRepo{state: u.state}
}

func (u *fakeUow) ConflictRepository() contract.ConflictRepository {
	return &fakeConflictRepo{state: u.state}
}

func (u *fakeUow) SectionChunkRepository() contract.SectionChunkRepository {
	return &fakeChunkRepo{state: u.state}
}

type specFilter struct {
	brdID      *uuid.UUID
	id         *uuid.UUID
	sectionKey string
	position   *int
}

func buildFilter(specs []specification.Specification) specFilter {
	var f specFilter
	for _, s := range specs {
		switch v := s.(type) {
		case specification.ByID:
			id := v.ID
			f.id = &id
		case specification.ByBrdID:
			id := v.BrdID
			f.brdID = &id
		case specification.BySectionKey:
			f.sectionKey = v.Key
		case specification.ByPosition:
			p := v.Position
			f.position = &p
		}
	}
	return f
}

type fakeBrdRepo struct {
	state *fakeState
}

func (r *fakeBrdRepo) Create(ctx context.Context, b *entity.Brd) error {
	r.state.brds = append(r.state.brds, b)
	return nil
}

func (r *fakeBrdRepo) Update(ctx context.Context, b *entity.Brd) error { return nil }

func (r *fakeBrdRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Brd, error) {
	f := buildFilter(specs)
	for _, b := range r.state.brds {
		if f.id != nil && b.Id != *f.id {
			continue
		}
		return b, nil
	}
	return nil, nil
}

func (r *fakeBrdRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Brd, error) {
	return r.state.brds, nil
}

func (r *fakeBrdRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.brds)), nil
}

type fakeSectionRepo struct {
	state *fakeState
}

func (r *fakeSectionRepo) Create(ctx context.Context, s *entity.Section) error {
	r.state.sections = append(r.state.sections, s)
	return nil
}

func (r *fakeSectionRepo) Update(ctx context.Context, s *entity.Section) error {
	if r.state.sectionUpdateErr != nil {
		return r.state.sectionUpdateErr
	}
	for i, existing := range r.state.sections {
		if existing.Id == s.Id {
			r.state.sections[i] = s
			return nil
		}
	}
	return errors.New("section not found")
}

func (r *fakeSectionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Section, error) {
	f := buildFilter(specs)
	for _, s := range r.state.sections {
		if f.brdID != nil && s.BrdId != *f.brdID {
			continue
		}
		if f.sectionKey != "" && s.Key != f.sectionKey {
			continue
		}
		copied := *s
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeSectionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Section, error) {
	return r.state.sections, nil
}

func (r *fakeSectionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.sections)), nil
}

type fakeConflictRepo struct {
	state *fakeState
}

func (r *fakeConflictRepo) Create(ctx context.Context, c *entity.Conflict) error {
	r.state.conflicts = append(r.state.conflicts, c)
	return nil
}

func (r *fakeConflictRepo) Update(ctx context.Context, c *entity.Conflict) error {
	if r.state.conflictUpdateErr != nil {
		return r.state.conflictUpdateErr
	}
	for i, existing := range r.state.conflicts {
		if existing.Id == c.Id {
			r.state.conflicts[i] = c
			return nil
		}
	}
	return errors.New("conflict not found")
}

func (r *fakeConflictRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conflict, error) {
	f := buildFilter(specs)
	for _, c := range r.state.conflicts {
		if f.brdID != nil && c.BrdId != *f.brdID {
			continue
		}
		if f.position != nil && c.Position != *f.position {
			continue
		}
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeConflictRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conflict, error) {
	return r.state.conflicts, nil
}

func (r *fakeConflictRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.conflicts)), nil
}

type fakeChunkRepo struct {
	state *fakeState
}

func (r *fakeChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.SectionChunk) error {
	r.state.chunks = append(r.state.chunks, chunks...)
	return nil
}

func (r *fakeChunkRepo) DeleteBySection(ctx context.Context, brdId uuid.UUID, sectionKey string) error {
	return nil
}

func (r *fakeChunkRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.SectionChunk, error) {
	return r.state.chunks, nil
}

func (r *fakeChunkRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.state.chunks)), nil
}

func (r *fakeChunkRepo) SearchSimilar(ctx context.Context, brdId uuid.UUID, embedding []float32, limit int) ([]*entity.SectionChunk, error) {
	if limit > len(r.state.chunks) {
		limit = len(r.state.chunks)
	}
	return r.state.chunks[:limit], nil
}

// fakeProvider scripts refiner turns.
type fakeProvider struct {
	refineResults []*refine.Result
	chatResults   []*refine.Result
	err           error

	refineCalls []refine.RefineRequest
	chatCalls   []refine.ChatRequest
}

func (p *fakeProvider) Refine(ctx context.Context, req refine.RefineRequest) (*refine.Result, error) {
	p.refineCalls = append(p.refineCalls, req)
	if p.err != nil {
		return nil, p.err
	}
	res := p.refineResults[0]
	if len(p.refineResults) > 1 {
		p.refineResults = p.refineResults[1:]
	}
	return res, nil
}

func (p *fakeProvider) Chat(ctx context.Context, req refine.ChatRequest) (*refine.Result, error) {
	p.chatCalls = append(p.chatCalls, req)
	if p.err != nil {
		return nil, p.err
	}
	res := p.chatResults[0]
	if len(p.chatResults) > 1 {
		p.chatResults = p.chatResults[1:]
	}
	return res, nil
}

// fakeEmbedder records embedded texts and returns a fixed vector.
type fakeEmbedder struct {
	calls []string
}

func (e *fakeEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	e.calls = append(e.calls, text)
	return []float32{0.6, 0.8}, nil
}

// fakePublisher records watermill payloads.
type fakePublisher struct {
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}

// noopLogger satisfies ILogger for tests.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
