package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/contact-management/internal/config"
	"github.com/iliyamo/contact-management/internal/handler"
	"github.com/iliyamo/contact-management/internal/repository"
	"github.com/iliyamo/contact-management/internal/router"
	"github.com/iliyamo/contact-management/internal/validation"
)

var (
	errNoRows       = sql.ErrNoRows
	errDuplicateKey = errors.New("Error 1062: Duplicate entry 'test' for key 'users.PRIMARY'")
)

// newServer assembles the real Echo stack (validator, error translator,
// token middleware, routes) on top of a sqlmock database, so tests exercise
// the same request path production does.
func newServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)
	addressRepo := repository.NewAddressRepo(db)

	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = router.NewErrorHandler(zerolog.Nop())

	cfg := config.Config{Env: "test", BcryptCost: bcrypt.MinCost}
	router.RegisterRoutes(e,
		handler.NewUserHandler(cfg, userRepo),
		handler.NewContactHandler(contactRepo, false),
		handler.NewAddressHandler(contactRepo, addressRepo, false),
		handler.NewHealthHandler(db),
		userRepo,
	)
	return e, mock
}

// do performs a JSON request against the assembled server.
func do(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("X-API-TOKEN", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the {"data":...}/{"errors":...} response body.
type envelope struct {
	Data   map[string]any   `json:"data"`
	List   []map[string]any `json:"-"`
	Paging map[string]any   `json:"paging"`
	Errors any              `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

// decodeList is for endpoints whose data field is an array.
func decodeList(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var raw struct {
		Data   []map[string]any `json:"data"`
		Paging map[string]any   `json:"paging"`
		Errors any              `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	return envelope{List: raw.Data, Paging: raw.Paging, Errors: raw.Errors}
}

// expectAuth queues the token middleware lookup for a logged-in user.
func expectAuth(mock sqlmock.Sqlmock, username, passwordHash, token string) {
	q := regexp.QuoteMeta("SELECT username,password,name,token FROM users WHERE token=? LIMIT 1")
	mock.ExpectQuery(q).WithArgs(token).
		WillReturnRows(sqlmock.NewRows([]string{"username", "password", "name", "token"}).
			AddRow(username, passwordHash, username, token))
}

func mustHash(t *testing.T, plain string) string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(b)
}
