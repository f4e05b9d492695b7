package dbmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	operations []string
	errs       []error
}

func (r *recordingObserver) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.operations = append(r.operations, operation)
	r.errs = append(r.errs, err)
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", Operation("SELECT id FROM bookings"))
	assert.Equal(t, "insert", Operation("  INSERT INTO bookings"))
	assert.Equal(t, "unknown", Operation("   "))
}

func TestDB_ObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	obs := &recordingObserver{}
	db := New(sqlDB, obs)

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectQuery("SELECT id FROM bookings").WillReturnError(errors.New("boom"))

	_, err = db.ExecContext(context.Background(), "DELETE FROM bookings")
	require.NoError(t, err)

	_, err = db.QueryContext(context.Background(), "SELECT id FROM bookings")
	require.Error(t, err)

	assert.Equal(t, []string{"delete", "select"}, obs.operations)
	assert.NoError(t, obs.errs[0])
	assert.Error(t, obs.errs[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}
