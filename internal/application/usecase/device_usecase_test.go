package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credimovil/backoffice-api/internal/application/usecase"
	"github.com/credimovil/backoffice-api/internal/domain"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/internal/domain/repository"
	"github.com/credimovil/backoffice-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeDeviceRepo struct {
	devices map[string]*entity.Device
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{devices: make(map[string]*entity.Device)}
}

func (r *fakeDeviceRepo) Create(_ context.Context, d *entity.Device) error {
	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *fakeDeviceRepo) GetByID(_ context.Context, id string) (*entity.Device, error) {
	d, ok := r.devices[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDeviceRepo) GetByIMEI(_ context.Context, imei string) (*entity.Device, error) {
	for _, d := range r.devices {
		if d.IMEI == imei {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDeviceRepo) Update(_ context.Context, d *entity.Device) error {
	cp := *d
	r.devices[d.ID] = &cp
	return nil
}

func (r *fakeDeviceRepo) UpdateStatus(_ context.Context, id, status, unlockCode string) error {
	d, ok := r.devices[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.Status = status
	d.UnlockCode = unlockCode
	return nil
}

func (r *fakeDeviceRepo) List(_ context.Context, _ repository.DeviceFilter, _, _ int) ([]*entity.Device, error) {
	var out []*entity.Device
	for _, d := range r.devices {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDeviceRepo) Delete(_ context.Context, id string) error {
	delete(r.devices, id)
	return nil
}

// fakeDispatcher registra los envíos y falla bajo demanda.
type fakeDispatcher struct {
	fail  bool
	sent  int
	last  string
	data  map[string]any
	token string
}

func (d *fakeDispatcher) Notify(_ context.Context, pushToken, body string, data map[string]any) error {
	if d.fail {
		return errors.New("expo no responde")
	}
	d.sent++
	d.token = pushToken
	d.last = body
	d.data = data
	return nil
}

type recordingAudit struct {
	events []string
}

func (a *recordingAudit) Record(_ context.Context, event, _, _ string, _ map[string]any) {
	a.events = append(a.events, event)
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func seedDevice(repo *fakeDeviceRepo, pushToken *string) *entity.Device {
	d := &entity.Device{
		ID:         "dev-1",
		IMEI:       "356938035643809",
		Owner:      "Juan Pérez",
		StoreID:    "store-1",
		Brand:      "Samsung",
		Model:      "A54",
		Status:     entity.DeviceStatusUnblocked,
		UnlockCode: "111111",
		PushToken:  pushToken,
	}
	repo.devices[d.ID] = d
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// SetStatus: mutación primero, notificación después
// ──────────────────────────────────────────────────────────────────────────────

func TestSetStatus_BloqueaYNotifica(t *testing.T) {
	repo := newFakeDeviceRepo()
	token := "ExponentPushToken[abc]"
	seedDevice(repo, &token)
	dispatcher := &fakeDispatcher{}
	audit := &recordingAudit{}
	uc := usecase.NewDeviceUseCase(repo, dispatcher, audit, testLogger())

	device, notified, err := uc.SetStatus(context.Background(), "dev-1", entity.DeviceStatusBlocked, "mora de 30 días", "admin-1")
	require.NoError(t, err)

	assert.Equal(t, entity.DeviceStatusBlocked, device.Status)
	assert.True(t, notified, "con dispatcher sano la notificación debe entregarse")
	assert.Equal(t, 1, dispatcher.sent)
	assert.Equal(t, token, dispatcher.token)
	assert.Equal(t, "mora de 30 días", dispatcher.data["reason"])
	assert.Contains(t, audit.events, "UPDATE")
}

func TestSetStatus_FalloDePushNoRevierteElEstado(t *testing.T) {
	repo := newFakeDeviceRepo()
	token := "ExponentPushToken[abc]"
	seedDevice(repo, &token)
	dispatcher := &fakeDispatcher{fail: true}
	uc := usecase.NewDeviceUseCase(repo, dispatcher, &recordingAudit{}, testLogger())

	device, notified, err := uc.SetStatus(context.Background(), "dev-1", entity.DeviceStatusBlocked, "", "admin-1")
	require.NoError(t, err, "el fallo del push no debe fallar la operación")

	assert.False(t, notified, "el caller debe poder distinguir que el push no llegó")
	assert.Equal(t, entity.DeviceStatusBlocked, device.Status)

	// El estado quedó persistido a pesar del push caído.
	stored, err := repo.GetByID(context.Background(), "dev-1")
	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusBlocked, stored.Status)
}

func TestSetStatus_SinPushTokenNoNotifica(t *testing.T) {
	repo := newFakeDeviceRepo()
	seedDevice(repo, nil)
	dispatcher := &fakeDispatcher{}
	uc := usecase.NewDeviceUseCase(repo, dispatcher, &recordingAudit{}, testLogger())

	_, notified, err := uc.SetStatus(context.Background(), "dev-1", entity.DeviceStatusBlocked, "", "admin-1")
	require.NoError(t, err)
	assert.False(t, notified)
	assert.Zero(t, dispatcher.sent)
}

func TestSetStatus_DesbloqueoEmiteCodigoNuevo(t *testing.T) {
	repo := newFakeDeviceRepo()
	token := "ExponentPushToken[abc]"
	d := seedDevice(repo, &token)
	d.Status = entity.DeviceStatusBlocked
	previous := d.UnlockCode
	dispatcher := &fakeDispatcher{}
	uc := usecase.NewDeviceUseCase(repo, dispatcher, &recordingAudit{}, testLogger())

	device, notified, err := uc.SetStatus(context.Background(), "dev-1", entity.DeviceStatusUnblocked, "", "admin-1")
	require.NoError(t, err)

	assert.True(t, notified)
	assert.NotEqual(t, previous, device.UnlockCode, "cada desbloqueo emite un código nuevo")
	assert.Len(t, device.UnlockCode, 6)
	assert.Equal(t, device.UnlockCode, dispatcher.data["unlock_code"],
		"el código nuevo viaja en la notificación")
}

func TestSetStatus_EstadoInvalidoFalla(t *testing.T) {
	repo := newFakeDeviceRepo()
	seedDevice(repo, nil)
	uc := usecase.NewDeviceUseCase(repo, &fakeDispatcher{}, &recordingAudit{}, testLogger())

	_, _, err := uc.SetStatus(context.Background(), "dev-1", "Suspendido", "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetStatus_DispositivoInexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewDeviceUseCase(newFakeDeviceRepo(), &fakeDispatcher{}, &recordingAudit{}, testLogger())

	_, _, err := uc.SetStatus(context.Background(), "no-existe", entity.DeviceStatusBlocked, "", "admin-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDevice_NaceDesbloqueadoConCodigo(t *testing.T) {
	repo := newFakeDeviceRepo()
	uc := usecase.NewDeviceUseCase(repo, &fakeDispatcher{}, &recordingAudit{}, testLogger())

	device, err := uc.Create(context.Background(), &entity.Device{
		IMEI:    "356938035643810",
		Owner:   "María Gómez",
		StoreID: "store-1",
		Brand:   "Xiaomi",
		Model:   "Redmi 12",
	}, "admin-1")
	require.NoError(t, err)

	assert.NotEmpty(t, device.ID)
	assert.Equal(t, entity.DeviceStatusUnblocked, device.Status)
	assert.Len(t, device.UnlockCode, 6)
}

func TestCreateDevice_IMEIDuplicadoFalla(t *testing.T) {
	repo := newFakeDeviceRepo()
	seedDevice(repo, nil)
	uc := usecase.NewDeviceUseCase(repo, &fakeDispatcher{}, &recordingAudit{}, testLogger())

	_, err := uc.Create(context.Background(), &entity.Device{
		IMEI:    "356938035643809", // mismo IMEI del seed
		Owner:   "Otro Dueño",
		StoreID: "store-2",
		Brand:   "Samsung",
		Model:   "A54",
	}, "admin-1")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}
