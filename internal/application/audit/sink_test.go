package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credimovil/backoffice-api/internal/application/audit"
	"github.com/credimovil/backoffice-api/internal/domain/entity"
	"github.com/credimovil/backoffice-api/pkg/logger"
)

type fakeAuditRepo struct {
	fail    bool
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(_ context.Context, a *entity.AuditLog) error {
	if r.fail {
		return errors.New("db caída")
	}
	r.entries = append(r.entries, a)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, _, _ int) ([]*entity.AuditLog, error) {
	return r.entries, nil
}

func TestRecord_PersisteLaEntrada(t *testing.T) {
	repo := &fakeAuditRepo{}
	sink := audit.NewSink(repo, logger.New(logger.Config{Env: "development", Level: "error"}))

	sink.Record(context.Background(), "MOVEMENT", "user-1", "stock_balances", map[string]any{"quantity": 3})

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "MOVEMENT", entry.Event)
	assert.Equal(t, "user-1", entry.UserID)
	assert.Equal(t, "stock_balances", entry.TableName)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

// El sink es best-effort: un repo caído no debe tumbar ni propagar nada a la
// operación que reporta.
func TestRecord_FalloDelRepoNoPropaga(t *testing.T) {
	repo := &fakeAuditRepo{fail: true}
	sink := audit.NewSink(repo, logger.New(logger.Config{Env: "development", Level: "error"}))

	assert.NotPanics(t, func() {
		sink.Record(context.Background(), "DELETE", "user-1", "products", nil)
	})
	assert.Empty(t, repo.entries)
}
