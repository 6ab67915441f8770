package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB wires GORM's postgres dialector onto a sqlmock connection so the
// generated SQL can be asserted against.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func taskColumns() []string {
	return []string{"id", "title", "description", "status", "project_id", "position", "created_at", "updated_at"}
}

func TestListByProject_OrdersByPositionThenNewest(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 ORDER BY position ASC, created_at DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(2, "newer", "", "todo", 7, 0, now, now).
			AddRow(1, "older", "", "todo", 7, 0, now.Add(-time.Hour), now))

	tasks, err := repo.ListByProject(7)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "newer", tasks[0].Title)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTopPositioned_QueriesHighestPosition(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 ORDER BY position DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(3, "bottom of board", "", "done", 7, 12, now, now))

	task, err := repo.FindTopPositioned(7)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, 12, task.Position)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTopPositioned_EmptyProject(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE project_id = \$1 ORDER BY position DESC`).
		WillReturnRows(sqlmock.NewRows(taskColumns()))

	task, err := repo.FindTopPositioned(7)
	require.NoError(t, err)
	assert.Nil(t, task)

	assert.NoError(t, mock.ExpectationsWereMet())
}
