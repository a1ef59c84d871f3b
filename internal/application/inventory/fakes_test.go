package inventory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
	"github.com/jhoicas/tank-inventory-api/internal/domain/repository"
)

type fakeTankRepo struct {
	mu     sync.Mutex
	tanks  map[string]*entity.Tank
	locked []string
}

func newFakeTankRepo(tanks ...entity.Tank) *fakeTankRepo {
	r := &fakeTankRepo{tanks: map[string]*entity.Tank{}}
	for _, t := range tanks {
		c := t.Clone()
		r.tanks[t.ID] = &c
	}
	return r
}

func (r *fakeTankRepo) get(id string) *entity.Tank {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tanks[id]
	if !ok {
		return nil
	}
	c := t.Clone()
	return &c
}

func (r *fakeTankRepo) Create(_ context.Context, t *entity.Tank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := t.Clone()
	r.tanks[t.ID] = &c
	return nil
}

func (r *fakeTankRepo) GetByID(_ context.Context, id string) (*entity.Tank, error) {
	return r.get(id), nil
}

func (r *fakeTankRepo) GetForUpdate(_ context.Context, id string) (*entity.Tank, error) {
	r.mu.Lock()
	r.locked = append(r.locked, id)
	r.mu.Unlock()
	return r.get(id), nil
}

func (r *fakeTankRepo) GetByName(_ context.Context, name string) (*entity.Tank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tanks {
		if entity.NameKey(t.Name) == entity.NameKey(name) {
			c := t.Clone()
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeTankRepo) List(_ context.Context) ([]*entity.Tank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*entity.Tank, 0, len(r.tanks))
	for _, t := range r.tanks {
		c := t.Clone()
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeTankRepo) Update(_ context.Context, t *entity.Tank) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tanks[t.ID]; !ok {
		return domain.ErrNotFound
	}
	c := t.Clone()
	r.tanks[t.ID] = &c
	return nil
}

type fakeMovementRepo struct {
	mu        sync.Mutex
	movements map[string]*entity.Movement
}

func newFakeMovementRepo(ms ...entity.Movement) *fakeMovementRepo {
	r := &fakeMovementRepo{movements: map[string]*entity.Movement{}}
	for i := range ms {
		m := ms[i]
		r.movements[m.ID] = &m
	}
	return r
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *m
	r.movements[m.ID] = &c
	return nil
}

func (r *fakeMovementRepo) GetByID(_ context.Context, id string) (*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.movements[id]
	if !ok {
		return nil, nil
	}
	c := *m
	return &c, nil
}

func (r *fakeMovementRepo) Update(_ context.Context, m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *m
	r.movements[m.ID] = &c
	return nil
}

func (r *fakeMovementRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movements[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.movements, id)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := []*entity.Movement{}
	for _, m := range r.movements {
		if f.TankID != "" && !m.Involves(f.TankID) {
			continue
		}
		if f.PendingOnly && m.IsCompleted() {
			continue
		}
		c := *m
		list = append(list, &c)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if !list[i].ScheduledDate.Equal(list[j].ScheduledDate) {
			return list[i].ScheduledDate.After(list[j].ScheduledDate)
		}
		return list[i].ID > list[j].ID
	})
	return list, nil
}

// fakeTxRunner no tiene rollback real: los tests de error verifican que nada se haya escrito
// antes del fallo.
type fakeTxRunner struct {
	tanks     *fakeTankRepo
	movements *fakeMovementRepo
	calls     int
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.TankRepository, repository.MovementRepository) error) error {
	r.calls++
	return fn(r.tanks, r.movements)
}

type auditCall struct {
	Action     entity.AuditAction
	EntityType entity.AuditEntityType
	EntityID   string
	UserID     string
	Old, New   any
}

type fakeAuditor struct {
	calls []auditCall
}

func (a *fakeAuditor) Record(_ context.Context, action entity.AuditAction, entityType entity.AuditEntityType,
	entityID, userID string, old, new any, _ string) {
	a.calls = append(a.calls, auditCall{action, entityType, entityID, userID, old, new})
}

var repositoryFilterAll = repository.MovementFilter{}
