package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

type fakeTankRepo struct {
	tanks map[string]*entity.Tank
}

func newFakeTankRepo(tanks ...entity.Tank) *fakeTankRepo {
	r := &fakeTankRepo{tanks: map[string]*entity.Tank{}}
	for _, t := range tanks {
		c := t.Clone()
		r.tanks[t.ID] = &c
	}
	return r
}

func (r *fakeTankRepo) Create(_ context.Context, t *entity.Tank) error {
	c := t.Clone()
	r.tanks[t.ID] = &c
	return nil
}

func (r *fakeTankRepo) GetByID(_ context.Context, id string) (*entity.Tank, error) {
	t, ok := r.tanks[id]
	if !ok {
		return nil, nil
	}
	c := t.Clone()
	return &c, nil
}

func (r *fakeTankRepo) GetForUpdate(ctx context.Context, id string) (*entity.Tank, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeTankRepo) GetByName(_ context.Context, name string) (*entity.Tank, error) {
	for _, t := range r.tanks {
		if entity.NameKey(t.Name) == entity.NameKey(name) {
			c := t.Clone()
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTankRepo) List(_ context.Context) ([]*entity.Tank, error) {
	list := []*entity.Tank{}
	for _, t := range r.tanks {
		c := t.Clone()
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeTankRepo) Update(_ context.Context, t *entity.Tank) error {
	if _, ok := r.tanks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	c := t.Clone()
	r.tanks[t.ID] = &c
	return nil
}

type fakePropertyRepo struct {
	props map[string]*entity.PropertyDefinition
}

func (r *fakePropertyRepo) Create(_ context.Context, p *entity.PropertyDefinition) error {
	for _, existing := range r.props {
		if entity.NameKey(existing.Name) == entity.NameKey(p.Name) {
			return domain.ErrDuplicate
		}
	}
	c := *p
	r.props[p.ID] = &c
	return nil
}

func (r *fakePropertyRepo) GetByID(_ context.Context, id string) (*entity.PropertyDefinition, error) {
	p, ok := r.props[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (r *fakePropertyRepo) List(_ context.Context) ([]*entity.PropertyDefinition, error) {
	list := []*entity.PropertyDefinition{}
	for _, p := range r.props {
		c := *p
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakePropertyRepo) Update(_ context.Context, p *entity.PropertyDefinition) error {
	c := *p
	r.props[p.ID] = &c
	return nil
}

func (r *fakePropertyRepo) Delete(_ context.Context, id string) error {
	delete(r.props, id)
	return nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
	filter  repository.AuditFilter
	total   int
	err     error
}

func (r *fakeAuditRepo) Create(_ context.Context, e *entity.AuditEntry) error {
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, f repository.AuditFilter) ([]*entity.AuditEntry, int, error) {
	r.filter = f
	return r.entries, r.total, nil
}

var errDBDown = errors.New("db down")

type recordedAudit struct {
	Action      entity.AuditAction
	EntityType  entity.AuditEntityType
	EntityID    string
	UserID      string
	Old, New    any
	Description string
}

type fakeAuditor struct {
	calls []recordedAudit
}

func (a *fakeAuditor) Record(_ context.Context, action entity.AuditAction, entityType entity.AuditEntityType,
	entityID, userID string, old, new any, description string) {
	a.calls = append(a.calls, recordedAudit{action, entityType, entityID, userID, old, new, description})
}

type fakeUserRepo struct{ users []*entity.User }

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) { return r.users, nil }
