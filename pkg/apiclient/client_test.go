package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storage-equipment/internal/dto"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/api/"}, nil)
}

func TestNew_DefaultsAndTrailingSlash(t *testing.T) {
	c := New(Config{}, nil)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())

	c.SetBaseURL("http://example.test/api/")
	assert.Equal(t, "http://example.test/api", c.BaseURL())
}

func TestDo_ErrorMessagePreference(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusInternalServerError, `{"message":"db down"}`, "db down"},
		{"error wins over message", http.StatusBadRequest, `{"error":"bad serial","message":"ignored"}`, "bad serial"},
		{"empty body", http.StatusInternalServerError, ``, "Internal Server Error"},
		{"not json", http.StatusBadGateway, `<html>oops</html>`, "Bad Gateway"},
		{"unknown status", 599, ``, "HTTP 599"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.ListEquipment(context.Background())
			require.Error(t, err)
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Message)
		})
	}
}

func TestDo_SendsJSONAndHeaders(t *testing.T) {
	var gotMethod, gotPath, gotType, gotTrace string
	var got dto.EquipmentPayload
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotTrace = r.Header.Get("X-Trace")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "eq-9", "name": got.Name, "status": "operational"})
	})

	var out dto.EquipmentDTO
	err := c.Do(context.Background(), http.MethodPut, "/equipment/eq-9",
		dto.EquipmentPayload{Name: "Monitor"}, &out, WithHeader("X-Trace", "abc"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/equipment/eq-9", gotPath)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, "abc", gotTrace)
	assert.Equal(t, "Monitor", got.Name)
	assert.Equal(t, "eq-9", out.ID)
}

func TestDo_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/orders/o-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.CancelOrder(context.Background(), "o-1"))
}

func TestDo_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := New(Config{BaseURL: base}, nil)
	_, err := c.ListOrders(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Equal(t, 0, StatusOf(err))
}

func TestGetEquipment_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":false,"message":"not found"}`)
	})

	rec, err := c.GetEquipment(context.Background(), "missing")
	assert.Nil(t, rec)
	assert.True(t, IsNotFound(err))
}

func TestListOrders_NormalizesTotals(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"o-1","requestedBy":"Dr. Who","status":"pending",
			"items":[{"equipmentName":"Mask","quantity":4,"unitPrice":2.5,"totalPrice":1}]}]`)
	})

	list, err := c.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "10.00", list[0].Items[0].TotalPrice.Display())
	assert.Equal(t, "10.00", list[0].Total().Display())
}

func TestErrorMessage_StatusLineFallback(t *testing.T) {
	tests := []struct {
		name   string
		code   int
		status string
		want   string
	}{
		{name: "custom reason phrase", code: 503, status: "503 Backend Warming Up", want: "Backend Warming Up"},
		{name: "standard status line", code: 500, status: "500 Internal Server Error", want: "Internal Server Error"},
		{name: "code only", code: 502, status: "502", want: "Bad Gateway"},
		{name: "unknown code", code: 599, status: "", want: "HTTP 599"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &http.Response{
				StatusCode: tt.code,
				Status:     tt.status,
				Body:       io.NopCloser(strings.NewReader("<html>oops</html>")),
			}
			assert.Equal(t, tt.want, errorMessage(resp))
		})
	}
}
