package store_test

import (
	"database/sql"
	"testing"

	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// Both the connection pool and a transaction must satisfy DBTX so stores can
// be rebound to a transaction without code changes.
var (
	_ store.DBTX = (*sql.DB)(nil)
	_ store.DBTX = (*sql.Tx)(nil)
)

func TestErrorDefinitions(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrTaskNotFound, store.ErrNotFound)
	assert.NotErrorIs(t, store.ErrTaskNotFound, store.ErrUserNotFound)
	assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)
}
