package shared

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt64Param(t *testing.T) {
	t.Parallel()

	t.Run("valid_id", func(t *testing.T) {
		t.Parallel()
		id, err := ParseInt64Param("42")
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("rejects_zero", func(t *testing.T) {
		t.Parallel()
		_, err := ParseInt64Param("0")
		assert.Error(t, err)
	})

	t.Run("rejects_negative", func(t *testing.T) {
		t.Parallel()
		_, err := ParseInt64Param("-7")
		assert.Error(t, err)
	})

	t.Run("rejects_non_numeric", func(t *testing.T) {
		t.Parallel()
		_, err := ParseInt64Param("abc")
		assert.Error(t, err)
	})

	t.Run("rejects_empty", func(t *testing.T) {
		t.Parallel()
		_, err := ParseInt64Param("")
		assert.Error(t, err)
	})
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes_valid_body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"padel"}`))

		var p payload
		require.NoError(t, DecodeJSON(req, &p))
		assert.Equal(t, "padel", p.Name)
	})

	t.Run("errors_on_malformed_body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": `))

		var p payload
		assert.Error(t, DecodeJSON(req, &p))
	})
}

type selfValidating struct {
	failWith error
}

func (s selfValidating) Validate() error { return s.failWith }

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("struct_tags", func(t *testing.T) {
		t.Parallel()
		type tagged struct {
			Name string `validate:"required"`
		}
		assert.NoError(t, ValidateRequest(tagged{Name: "ok"}))
		assert.Error(t, ValidateRequest(tagged{}))
	})

	t.Run("prefers_own_validate_method", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, ValidateRequest(selfValidating{}))
		assert.Error(t, ValidateRequest(selfValidating{failWith: assert.AnError}))
	})
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("round_trip", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		assert.Len(t, traceID, TraceIDLength*2)
	})

	t.Run("absent_is_empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("distinct_per_context", func(t *testing.T) {
		t.Parallel()
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}

func TestResponseEnvelope(t *testing.T) {
	t.Parallel()

	t.Run("success_envelope", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		RespondWithSuccess(w, req, http.StatusOK, "Things retrieved", []string{"a", "b"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var env Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Success)
		assert.Equal(t, "Things retrieved", env.Message)
		assert.NotEmpty(t, env.TraceID)
	})

	t.Run("error_envelope_omits_data", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things", nil)

		RespondWithError(w, req, http.StatusNotFound, "Thing not found")

		assert.Equal(t, http.StatusNotFound, w.Code)

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.Equal(t, false, raw["success"])
		assert.Equal(t, "Thing not found", raw["message"])
		assert.NotContains(t, raw, "data")
	})

	t.Run("error_and_log_keeps_safe_message", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/things", nil)

		RespondWithErrorAndLog(w, req, http.StatusInternalServerError,
			"An unexpected error occurred", assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var env Envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, "An unexpected error occurred", env.Message)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}
