package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/carelink/handler"
	"github.com/dmitrymomot/carelink/pkg/environment"
	"github.com/dmitrymomot/carelink/pkg/logger"
	"github.com/dmitrymomot/carelink/pkg/requestid"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	run := func(t *testing.T, env environment.Environment, err error) (*httptest.ResponseRecorder, map[string]any) {
		t.Helper()

		var logs bytes.Buffer
		log := logger.New(logger.WithOutput(&logs), logger.WithContextExtractors(requestid.LoggerExtractor()))

		req := httptest.NewRequest(http.MethodPost, "/v1/validate/phone", nil)
		ctx := requestid.WithContext(req.Context(), "req-42")
		ctx = environment.WithContext(ctx, env)
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()

		handler.NewErrorHandler(log)(handler.NewContext(rec, req), err)

		var record map[string]any
		require.NoError(t, json.Unmarshal(logs.Bytes(), &record))
		return rec, record
	}

	t.Run("client error logs at warn", func(t *testing.T) {
		t.Parallel()
		rec, record := run(t, environment.Development, handler.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"not_found"}}`, rec.Body.String())
		assert.Equal(t, "WARN", record["level"])
		assert.Equal(t, "req-42", record["request_id"])
		assert.EqualValues(t, 404, record["status"])
		assert.Equal(t, "/v1/validate/phone", record["path"])
	})

	t.Run("server error keeps message outside production", func(t *testing.T) {
		t.Parallel()
		rec, record := run(t, environment.Staging, errors.New("registry unavailable"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "registry unavailable")
		assert.Equal(t, "ERROR", record["level"])
		assert.Equal(t, "registry unavailable", record["error"])
	})

	t.Run("server error is masked in production", func(t *testing.T) {
		t.Parallel()
		rec, _ := run(t, environment.Production, errors.New("registry unavailable"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":{"code":"internal_error","message":"Internal Server Error"}}`, rec.Body.String())
	})
}
