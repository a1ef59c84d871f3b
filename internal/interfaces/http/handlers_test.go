package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tank-inventory-api/internal/application/dto"
	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/tank-inventory-api/internal/interfaces/http"
)

type testDeps struct {
	tanks       *fakeTanks
	projections *fakeProjections
	reports     *fakeReports
	movements   *fakeMovements
	properties  *fakeProperties
	audit       *fakeAudit
	uploads     *fakeUploads
	metrics     *metrics.Metrics
}

func newTestDeps() *testDeps {
	return &testDeps{
		tanks:       &fakeTanks{},
		projections: &fakeProjections{},
		reports:     &fakeReports{},
		movements:   &fakeMovements{},
		properties:  &fakeProperties{},
		audit:       &fakeAudit{},
		uploads:     &fakeUploads{},
		metrics:     metrics.New(),
	}
}

func (d *testDeps) app() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		TankUC:       d.tanks,
		ProjectionUC: d.projections,
		ReportUC:     d.reports,
		MovementUC:   d.movements,
		PropertyUC:   d.properties,
		UserUC:       fakeUsers{},
		AuditUC:      d.audit,
		UploadUC:     d.uploads,
		Metrics:      d.metrics,
		CORSOrigins:  "http://localhost:3000",
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreateTank_PassesUserFromHeader(t *testing.T) {
	d := newTestDeps()
	var gotUser string
	d.tanks.create = func(userID string, in dto.CreateTankRequest) (*dto.TankResponse, error) {
		gotUser = userID
		return &dto.TankResponse{ID: "t1", Name: in.Name, CurrentVolume: in.CurrentVolume}, nil
	}

	resp := doJSON(t, d.app(), http.MethodPost, "/api/tanks",
		map[string]any{"name": "TK-1", "current_volume": "120.5"},
		map[string]string{"X-User-ID": "ana"})

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ana", gotUser)
	out := decode[dto.TankResponse](t, resp)
	assert.Equal(t, "TK-1", out.Name)
	assert.True(t, out.CurrentVolume.Equal(decimal.RequireFromString("120.5")))
}

func TestCreateTank_DefaultsToSystemUser(t *testing.T) {
	d := newTestDeps()
	var gotUser string
	d.tanks.create = func(userID string, _ dto.CreateTankRequest) (*dto.TankResponse, error) {
		gotUser = userID
		return &dto.TankResponse{ID: "t1"}, nil
	}
	resp := doJSON(t, d.app(), http.MethodPost, "/api/tanks", map[string]any{"name": "TK-1"}, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "system", gotUser)
}

func TestCreateTank_InvalidBody(t *testing.T) {
	d := newTestDeps()
	req := httptest.NewRequest(http.MethodPost, "/api/tanks", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.app().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validación", domain.NewValidationError("name", "obligatorio"), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"interno", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDeps()
			d.tanks.getByID = func(string) (*dto.TankResponse, error) { return nil, tc.err }
			resp := doJSON(t, d.app(), http.MethodGet, "/api/tanks/t1", nil, nil)
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

func TestValidationDetails(t *testing.T) {
	d := newTestDeps()
	d.movements.create = func(string, dto.CreateMovementRequest) (*dto.MovementResponse, error) {
		verr := &domain.ValidationError{}
		verr.Add("source_tank_id", "el tanque origen es obligatorio para despachos")
		verr.Add("expected_volume", "debe ser mayor que cero")
		return nil, verr
	}
	resp := doJSON(t, d.app(), http.MethodPost, "/api/movements", map[string]any{"type": "ship"}, nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	require.Len(t, out.Details, 2)
	assert.Equal(t, "source_tank_id", out.Details[0].Field)
}

func TestListTanks_Projected(t *testing.T) {
	d := newTestDeps()
	projected := decimal.RequireFromString("80")
	d.projections.projectAll = func() (*dto.TankListResponse, error) {
		return &dto.TankListResponse{Items: []dto.TankResponse{{ID: "t1", ProjectedVolume: &projected}}}, nil
	}
	d.tanks.list = func() (*dto.TankListResponse, error) {
		return nil, errors.New("no debe llamarse")
	}

	resp := doJSON(t, d.app(), http.MethodGet, "/api/tanks?projected=true", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.TankListResponse](t, resp)
	require.Len(t, out.Items, 1)
	require.NotNil(t, out.Items[0].ProjectedVolume)
	assert.True(t, out.Items[0].ProjectedVolume.Equal(projected))
}

func TestTimeline_PassesHorizon(t *testing.T) {
	d := newTestDeps()
	var gotHorizon int
	d.projections.timeline = func(id string, horizon int) (*dto.TimelineResponse, error) {
		gotHorizon = horizon
		return &dto.TimelineResponse{TankID: id, HorizonDays: horizon}, nil
	}
	resp := doJSON(t, d.app(), http.MethodGet, "/api/tanks/t1/timeline?horizon_days=7", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, gotHorizon)
}

func TestReport_ReturnsPDF(t *testing.T) {
	d := newTestDeps()
	d.reports.generate = func(string) ([]byte, string, error) {
		return []byte("%PDF-1.4 fake"), "tank-tk-1-20260301.pdf", nil
	}
	resp := doJSON(t, d.app(), http.MethodGet, "/api/tanks/t1/report.pdf", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "tank-tk-1-20260301.pdf")
}

func TestCreateMovement_RecordsMetrics(t *testing.T) {
	d := newTestDeps()
	d.movements.create = func(_ string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
		return &dto.MovementResponse{ID: "m1", Type: in.Type, Status: dto.MovementStatusCompleted}, nil
	}
	resp := doJSON(t, d.app(), http.MethodPost, "/api/movements",
		map[string]any{"type": "receive", "destination_tank_id": "t1", "expected_volume": "10"}, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	reg := d.metrics.Registry()
	n, err := testutil.GatherAndCount(reg, "tank_inventory_movements_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListMovements_ForwardsTankID(t *testing.T) {
	d := newTestDeps()
	var got string
	d.movements.list = func(tankID string) (*dto.MovementListResponse, error) {
		got = tankID
		return &dto.MovementListResponse{Items: []dto.MovementResponse{}}, nil
	}
	resp := doJSON(t, d.app(), http.MethodGet, "/api/movements?tank_id=t9", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "t9", got)
}

func TestUpdateMovement_Conflict(t *testing.T) {
	d := newTestDeps()
	d.movements.update = func(string, string, dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
		return nil, domain.ErrConflict
	}
	resp := doJSON(t, d.app(), http.MethodPatch, "/api/movements/m1", map[string]any{"expected_volume": "5"}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestDeleteMovement(t *testing.T) {
	d := newTestDeps()
	d.movements.delete = func(_, id string) error {
		if id == "m1" {
			return nil
		}
		return domain.ErrNotFound
	}
	app := d.app()
	assert.Equal(t, fiber.StatusNoContent, doJSON(t, app, http.MethodDelete, "/api/movements/m1", nil, nil).StatusCode)
	assert.Equal(t, fiber.StatusNotFound, doJSON(t, app, http.MethodDelete, "/api/movements/m2", nil, nil).StatusCode)
}

func TestCreateProperty_Duplicate(t *testing.T) {
	d := newTestDeps()
	d.properties.create = func(string, dto.CreatePropertyRequest) (*dto.PropertyResponse, error) {
		return nil, domain.ErrDuplicate
	}
	resp := doJSON(t, d.app(), http.MethodPost, "/api/properties", map[string]any{"name": "API"}, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestListUsers(t *testing.T) {
	resp := doJSON(t, newTestDeps().app(), http.MethodGet, "/api/users", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.UserListResponse](t, resp)
	assert.Equal(t, "system", out.Items[0].ID)
}

func TestAuditLog_ParsesQuery(t *testing.T) {
	d := newTestDeps()
	app := d.app()

	resp := doJSON(t, app, http.MethodGet, "/api/audit-log?entity_type=tank&entity_id=t1&page=2&limit=10", nil, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "tank", d.audit.last.EntityType)
	assert.Equal(t, "t1", d.audit.last.EntityID)
	assert.Equal(t, 2, d.audit.last.Page)
	assert.Equal(t, 10, d.audit.last.Limit)

	resp = doJSON(t, app, http.MethodGet, "/api/audit-log?entity_type=invoice", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadPDF(t *testing.T) {
	d := newTestDeps()
	var gotType string
	var gotBody []byte
	d.uploads.upload = func(_ string, contentType string, body io.Reader, size int64) (*dto.UploadResponse, error) {
		gotType = contentType
		gotBody, _ = io.ReadAll(body)
		return &dto.UploadResponse{Path: "measurements/x.pdf", Size: size}, nil
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="m.pdf"`)
	h.Set("Content-Type", "application/pdf")
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, _ = part.Write([]byte("%PDF-1.4 data"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/pdf", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := d.app().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "%PDF-1.4 data", string(gotBody))
}

func TestUpload_MissingFile(t *testing.T) {
	d := newTestDeps()
	resp := doJSON(t, d.app(), http.MethodPost, "/api/uploads/pdf", map[string]any{}, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDownload(t *testing.T) {
	d := newTestDeps()
	d.uploads.open = func(token string) (io.ReadCloser, string, error) {
		if token != "good" {
			return nil, "", domain.NewValidationError("token", "enlace inválido o expirado")
		}
		return io.NopCloser(strings.NewReader("%PDF-1.4")), "measurements/abc.pdf", nil
	}
	app := d.app()

	resp := doJSON(t, app, http.MethodGet, "/api/uploads/good", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "abc.pdf")

	resp = doJSON(t, app, http.MethodGet, "/api/uploads/bad", nil, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	resp := doJSON(t, newTestDeps().app(), http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "go_goroutines")
}
