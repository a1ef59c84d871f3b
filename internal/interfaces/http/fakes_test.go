package http_test

import (
	"context"
	"io"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
)

// Fakes con funciones configurables; lo no configurado responde ErrNotFound.

type fakeTanks struct {
	create  func(userID string, in dto.CreateTankRequest) (*dto.TankResponse, error)
	getByID func(id string) (*dto.TankResponse, error)
	list    func() (*dto.TankListResponse, error)
	update  func(userID, id string, in dto.UpdateTankRequest) (*dto.TankResponse, error)
	reset   func(userID, id string, in dto.ResetTankRequest) (*dto.TankResponse, error)
}

func (f *fakeTanks) Create(_ context.Context, userID string, in dto.CreateTankRequest) (*dto.TankResponse, error) {
	if f.create == nil {
		return nil, domain.ErrNotFound
	}
	return f.create(userID, in)
}

func (f *fakeTanks) GetByID(_ context.Context, id string) (*dto.TankResponse, error) {
	if f.getByID == nil {
		return nil, domain.ErrNotFound
	}
	return f.getByID(id)
}

func (f *fakeTanks) List(context.Context) (*dto.TankListResponse, error) {
	if f.list == nil {
		return &dto.TankListResponse{Items: []dto.TankResponse{}}, nil
	}
	return f.list()
}

func (f *fakeTanks) Update(_ context.Context, userID, id string, in dto.UpdateTankRequest) (*dto.TankResponse, error) {
	if f.update == nil {
		return nil, domain.ErrNotFound
	}
	return f.update(userID, id, in)
}

func (f *fakeTanks) Reset(_ context.Context, userID, id string, in dto.ResetTankRequest) (*dto.TankResponse, error) {
	if f.reset == nil {
		return nil, domain.ErrNotFound
	}
	return f.reset(userID, id, in)
}

type fakeProjections struct {
	projectTank func(id string) (*dto.ProjectionResponse, error)
	projectAll  func() (*dto.TankListResponse, error)
	timeline    func(id string, horizon int) (*dto.TimelineResponse, error)
}

func (f *fakeProjections) ProjectTank(_ context.Context, id string) (*dto.ProjectionResponse, error) {
	if f.projectTank == nil {
		return nil, domain.ErrNotFound
	}
	return f.projectTank(id)
}

func (f *fakeProjections) ProjectAll(context.Context) (*dto.TankListResponse, error) {
	if f.projectAll == nil {
		return &dto.TankListResponse{Items: []dto.TankResponse{}}, nil
	}
	return f.projectAll()
}

func (f *fakeProjections) Timeline(_ context.Context, id string, horizon int) (*dto.TimelineResponse, error) {
	if f.timeline == nil {
		return nil, domain.ErrNotFound
	}
	return f.timeline(id, horizon)
}

type fakeReports struct {
	generate func(id string) ([]byte, string, error)
}

func (f *fakeReports) Generate(_ context.Context, id string) ([]byte, string, error) {
	if f.generate == nil {
		return nil, "", domain.ErrNotFound
	}
	return f.generate(id)
}

type fakeMovements struct {
	create  func(userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error)
	update  func(userID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error)
	delete  func(userID, id string) error
	getByID func(id string) (*dto.MovementResponse, error)
	list    func(tankID string) (*dto.MovementListResponse, error)
}

func (f *fakeMovements) Create(_ context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if f.create == nil {
		return nil, domain.ErrNotFound
	}
	return f.create(userID, in)
}

func (f *fakeMovements) Update(_ context.Context, userID, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	if f.update == nil {
		return nil, domain.ErrNotFound
	}
	return f.update(userID, id, in)
}

func (f *fakeMovements) Delete(_ context.Context, userID, id string) error {
	if f.delete == nil {
		return domain.ErrNotFound
	}
	return f.delete(userID, id)
}

func (f *fakeMovements) GetByID(_ context.Context, id string) (*dto.MovementResponse, error) {
	if f.getByID == nil {
		return nil, domain.ErrNotFound
	}
	return f.getByID(id)
}

func (f *fakeMovements) List(_ context.Context, tankID string) (*dto.MovementListResponse, error) {
	if f.list == nil {
		return &dto.MovementListResponse{Items: []dto.MovementResponse{}}, nil
	}
	return f.list(tankID)
}

type fakeProperties struct {
	create func(userID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error)
	delete func(userID, id string) error
}

func (f *fakeProperties) Create(_ context.Context, userID string, in dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
	if f.create == nil {
		return nil, domain.ErrNotFound
	}
	return f.create(userID, in)
}

func (f *fakeProperties) List(context.Context) (*dto.PropertyListResponse, error) {
	return &dto.PropertyListResponse{Items: []dto.PropertyResponse{}}, nil
}

func (f *fakeProperties) Update(context.Context, string, string, dto.UpdatePropertyRequest) (*dto.PropertyResponse, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProperties) Delete(_ context.Context, userID, id string) error {
	if f.delete == nil {
		return domain.ErrNotFound
	}
	return f.delete(userID, id)
}

type fakeUsers struct{}

func (fakeUsers) List(context.Context) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{Items: []dto.UserResponse{{ID: "system", Name: "System"}}}, nil
}

type fakeAudit struct {
	last dto.AuditListRequest
}

func (f *fakeAudit) List(_ context.Context, in dto.AuditListRequest) (*dto.AuditListResponse, error) {
	f.last = in
	if in.EntityType == "invoice" {
		return nil, domain.NewValidationError("entity_type", "debe ser tank, movement o property")
	}
	return &dto.AuditListResponse{Items: []dto.AuditEntryResponse{}}, nil
}

type fakeUploads struct {
	upload func(userID, contentType string, body io.Reader, size int64) (*dto.UploadResponse, error)
	open   func(token string) (io.ReadCloser, string, error)
}

func (f *fakeUploads) Upload(_ context.Context, userID, contentType string, body io.Reader, size int64) (*dto.UploadResponse, error) {
	return f.upload(userID, contentType, body, size)
}

func (f *fakeUploads) Open(_ context.Context, token string) (io.ReadCloser, string, error) {
	return f.open(token)
}
