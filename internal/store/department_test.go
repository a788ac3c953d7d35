package store

import (
	"context"
	"errors"
	"testing"

	"pc-management/internal/database"
	"pc-management/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeDeptRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeDeptRow struct {
	scanErr error
	dept    model.Department
}

func (r *fakeDeptRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 2:
		// GetDepartmentByID / GetDepartmentByName: id, name
		*dest[0].(*int) = r.dept.ID
		*dest[1].(*string) = r.dept.Name
	case 1:
		// CreateDepartment: id
		*dest[0].(*int) = r.dept.ID
	default:
		panic("fakeDeptRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeDeptRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeDeptRows struct {
	data    []model.Department
	idx     int
	scanErr error
	err     error
}

func (r *fakeDeptRows) Close()                                       {}
func (r *fakeDeptRows) Err() error                                   { return r.err }
func (r *fakeDeptRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeDeptRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeDeptRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeDeptRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	d := r.data[r.idx]
	r.idx++
	*dest[0].(*int) = d.ID
	*dest[1].(*string) = d.Name
	return nil
}
func (r *fakeDeptRows) Values() ([]any, error) { return nil, nil }
func (r *fakeDeptRows) RawValues() [][]byte    { return nil }
func (r *fakeDeptRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestDepartmentStore(t *testing.T) {
	sample := model.Department{ID: 1, Name: "IT"}

	t.Run("GetByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDeptRow{dept: sample}
			},
		}
		d, err := GetDepartmentByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, sample, *d)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDeptRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetDepartmentByID(context.Background(), db, 9)
		require.Error(t, err)
		require.True(t, IsNotFound(err))
	})

	t.Run("GetByName ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "IT", args[0])
				return &fakeDeptRow{dept: sample}
			},
		}
		d, err := GetDepartmentByName(context.Background(), db, "IT")
		require.NoError(t, err)
		require.Equal(t, 1, d.ID)
	})

	t.Run("List ok preserves order", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				require.Equal(t, 0, args[0])
				require.Equal(t, 100, args[1])
				return &fakeDeptRows{data: []model.Department{{ID: 1, Name: "IT"}, {ID: 2, Name: "HR"}}}, nil
			},
		}
		out, err := ListDepartments(context.Background(), db, 0, 100)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, "IT", out[0].Name)
		require.Equal(t, "HR", out[1].Name)
	})

	t.Run("List empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDeptRows{}, nil
			},
		}
		out, err := ListDepartments(context.Background(), db, 0, 10)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("List query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("q")
			},
		}
		_, err := ListDepartments(context.Background(), db, 0, 10)
		require.Error(t, err)
	})

	t.Run("List scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeDeptRows{data: []model.Department{sample}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListDepartments(context.Background(), db, 0, 10)
		require.Error(t, err)
	})

	t.Run("Create ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "IT", args[0])
				return &fakeDeptRow{dept: sample}
			},
		}
		d, err := CreateDepartment(context.Background(), db, &model.Department{Name: "IT"})
		require.NoError(t, err)
		require.Equal(t, 1, d.ID)
	})

	t.Run("Create unique violation", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeDeptRow{scanErr: &pgconn.PgError{Code: "23505"}}
			},
		}
		_, err := CreateDepartment(context.Background(), db, &model.Department{Name: "IT"})
		require.Error(t, err)
		require.True(t, IsUniqueViolation(err))
	})
}

func TestErrorHelpers(t *testing.T) {
	require.True(t, IsNotFound(pgx.ErrNoRows))
	require.False(t, IsNotFound(errors.New("x")))
	require.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("x")))
}
