package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

func newPropertyUC() (*PropertyUseCase, *fakePropertyRepo, *fakeAuditor) {
	repo := &fakePropertyRepo{props: map[string]*entity.PropertyDefinition{}}
	auditor := &fakeAuditor{}
	uc := NewPropertyUseCase(repo, auditor)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, auditor
}

func TestPropertyUseCase_Lifecycle(t *testing.T) {
	uc, repo, auditor := newPropertyUC()
	ctx := context.Background()

	created, err := uc.Create(ctx, "ops", dto.CreatePropertyRequest{Name: "API", Unit: "°API"})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, created.CreatedAt)

	_, err = uc.Create(ctx, "ops", dto.CreatePropertyRequest{Name: "api"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	unit := "grados API"
	updated, err := uc.Update(ctx, "ops", created.ID, dto.UpdatePropertyRequest{Unit: &unit})
	require.NoError(t, err)
	assert.Equal(t, "grados API", updated.Unit)
	assert.Equal(t, "API", updated.Name)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	require.NoError(t, uc.Delete(ctx, "ops", created.ID))
	assert.Empty(t, repo.props)
	assert.ErrorIs(t, uc.Delete(ctx, "ops", created.ID), domain.ErrNotFound)

	actions := []entity.AuditAction{}
	for _, c := range auditor.calls {
		assert.Equal(t, entity.AuditEntityProperty, c.EntityType)
		actions = append(actions, c.Action)
	}
	assert.Equal(t, []entity.AuditAction{entity.AuditActionCreate, entity.AuditActionUpdate, entity.AuditActionDelete}, actions)
}

func TestPropertyUseCase_Validation(t *testing.T) {
	uc, _, _ := newPropertyUC()

	_, err := uc.Create(context.Background(), "ops", dto.CreatePropertyRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), "ops", "missing", dto.UpdatePropertyRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
