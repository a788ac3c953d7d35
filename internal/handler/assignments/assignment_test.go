package assignments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pc-management/internal/cache"
	"pc-management/internal/database"
	"pc-management/internal/model"
	"pc-management/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type stubValidator struct{ err error }

func (s *stubValidator) Validate(i interface{}) error { return s.err }

func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newParamCtx(e *echo.Echo, method, val string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/assignments/"+val, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/assignments/:assignment_id")
	c.SetParamNames("assignment_id")
	c.SetParamValues(val)
	return c, rec
}

func restore() {
	getUserByID = store.GetUserByID
	getPCByID = store.GetPCByID
	getAssignmentByID = store.GetAssignmentByID
	listAssignments = store.ListAssignments
	createAssignment = store.CreateAssignment
	returnAssignment = store.ReturnAssignment
	timeNow = time.Now
}

func delCache(t *testing.T, wantKey string) *cache.FakeCache {
	t.Helper()
	return &cache.FakeCache{
		DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			require.Equal(t, []string{wantKey}, keys)
			return redis.NewIntCmd(ctx)
		},
	}
}

func sampleAssignment() *model.Assignment {
	return &model.Assignment{
		ID:             1,
		UserID:         7,
		PCID:           4,
		AssignmentDate: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		User:           &model.User{ID: 7, Username: "alice", Email: "a@b.com"},
		PC:             &model.PC{ID: 4, SerialNumber: "SN-4", Model: "X1", Status: model.StatusAssigned},
	}
}

func TestCreateAssignmentHandler(t *testing.T) {
	e := echo.New()
	db := &database.FakeDB{}

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		ctx, rec := newJSONCtx(e, "{")
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validate error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{err: errors.New("v")}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("user not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(ctx context.Context, db database.DB, id int) (*model.User, error) {
			require.Equal(t, 7, id)
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "User not found")
	})

	t.Run("pc not found", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 7}, nil
		}
		getPCByID = func(ctx context.Context, db database.DB, id int) (*model.PC, error) {
			require.Equal(t, 4, id)
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "PC not found")
	})

	t.Run("pc not available", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 7}, nil
		}
		getPCByID = func(context.Context, database.DB, int) (*model.PC, error) {
			return &model.PC{ID: 4, Status: model.StatusAssigned}, nil
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "PC is not available for assignment")
	})

	t.Run("lost race inside transaction", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 7}, nil
		}
		getPCByID = func(context.Context, database.DB, int) (*model.PC, error) {
			return &model.PC{ID: 4, Status: model.StatusAvailable}, nil
		}
		createAssignment = func(context.Context, database.DB, int, int) (*model.Assignment, error) {
			return nil, store.ErrPCUnavailable
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "PC is not available for assignment")
	})

	t.Run("create error", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 7}, nil
		}
		getPCByID = func(context.Context, database.DB, int) (*model.PC, error) {
			return &model.PC{ID: 4, Status: model.StatusAvailable}, nil
		}
		createAssignment = func(context.Context, database.DB, int, int) (*model.Assignment, error) {
			return nil, errors.New("tx failed")
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success invalidates pc cache", func(t *testing.T) {
		t.Cleanup(restore)
		e.Validator = &stubValidator{}
		getUserByID = func(context.Context, database.DB, int) (*model.User, error) {
			return &model.User{ID: 7}, nil
		}
		getPCByID = func(context.Context, database.DB, int) (*model.PC, error) {
			return &model.PC{ID: 4, Status: model.StatusAvailable}, nil
		}
		createAssignment = func(ctx context.Context, db database.DB, userID, pcID int) (*model.Assignment, error) {
			require.Equal(t, 7, userID)
			require.Equal(t, 4, pcID)
			return &model.Assignment{ID: 1, UserID: 7, PCID: 4}, nil
		}
		getAssignmentByID = func(ctx context.Context, db database.DB, id int) (*model.Assignment, error) {
			require.Equal(t, 1, id)
			return sampleAssignment(), nil
		}
		ctx, rec := newJSONCtx(e, `{"user_id":7,"pc_id":4}`)
		require.NoError(t, CreateAssignmentHandler(db, delCache(t, "pc:4"))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), `"username":"alice"`)
		require.Contains(t, rec.Body.String(), `"status":"assigned"`)
	})
}

func TestReturnAssignmentHandler(t *testing.T) {
	e := echo.New()
	db := &database.FakeDB{}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodPost, "abc")
		require.NoError(t, ReturnAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		returnAssignment = func(context.Context, database.DB, int, time.Time) (*model.Assignment, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newParamCtx(e, http.MethodPost, "1")
		require.NoError(t, ReturnAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Assignment not found")
	})

	t.Run("already returned", func(t *testing.T) {
		t.Cleanup(restore)
		returnAssignment = func(context.Context, database.DB, int, time.Time) (*model.Assignment, error) {
			return nil, store.ErrAlreadyReturned
		}
		ctx, rec := newParamCtx(e, http.MethodPost, "1")
		require.NoError(t, ReturnAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "assignment already returned")
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		returnAssignment = func(context.Context, database.DB, int, time.Time) (*model.Assignment, error) {
			return nil, errors.New("tx failed")
		}
		ctx, rec := newParamCtx(e, http.MethodPost, "1")
		require.NoError(t, ReturnAssignmentHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success invalidates pc cache", func(t *testing.T) {
		t.Cleanup(restore)
		now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
		timeNow = func() time.Time { return now }
		returnAssignment = func(ctx context.Context, db database.DB, id int, at time.Time) (*model.Assignment, error) {
			require.Equal(t, 1, id)
			require.Equal(t, now, at)
			return &model.Assignment{ID: 1, UserID: 7, PCID: 4, ReturnDate: &now}, nil
		}
		getAssignmentByID = func(ctx context.Context, db database.DB, id int) (*model.Assignment, error) {
			a := sampleAssignment()
			a.ReturnDate = &now
			a.PC.Status = model.StatusAvailable
			return a, nil
		}
		ctx, rec := newParamCtx(e, http.MethodPost, "1")
		require.NoError(t, ReturnAssignmentHandler(db, delCache(t, "pc:4"))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"return_date"`)
		require.Contains(t, rec.Body.String(), `"status":"available"`)
	})
}

func TestListAssignmentsHandler(t *testing.T) {
	e := echo.New()
	db := &database.FakeDB{}

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listAssignments = func(context.Context, database.DB, int, int) ([]model.Assignment, error) {
			return nil, errors.New("query failed")
		}
		req := httptest.NewRequest(http.MethodGet, "/assignments", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListAssignmentsHandler(db)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		listAssignments = func(ctx context.Context, db database.DB, skip, limit int) ([]model.Assignment, error) {
			return []model.Assignment{*sampleAssignment()}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/assignments", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, ListAssignmentsHandler(db)(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"username":"alice"`)
		require.Contains(t, rec.Body.String(), `"serial_number":"SN-4"`)
	})
}

func TestGetAssignmentHandler(t *testing.T) {
	e := echo.New()
	db := &database.FakeDB{}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newParamCtx(e, http.MethodGet, "abc")
		require.NoError(t, GetAssignmentHandler(db)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		t.Cleanup(restore)
		getAssignmentByID = func(context.Context, database.DB, int) (*model.Assignment, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "1")
		require.NoError(t, GetAssignmentHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		getAssignmentByID = func(ctx context.Context, db database.DB, id int) (*model.Assignment, error) {
			require.Equal(t, 1, id)
			return sampleAssignment(), nil
		}
		ctx, rec := newParamCtx(e, http.MethodGet, "1")
		require.NoError(t, GetAssignmentHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"pc_id":4`)
	})
}
