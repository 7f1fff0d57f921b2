package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/catpoint/internal/classifier"
	domain "github.com/oshokin/catpoint/internal/domain/security"
	"github.com/oshokin/catpoint/internal/repository/state"
	engine "github.com/oshokin/catpoint/internal/service/security"
)

// newTestServer starts the panel over a fresh engine.
func newTestServer(t *testing.T, cat bool) *httptest.Server {
	t.Helper()

	eng, err := engine.NewEngine(state.NewMemoryRepository(), &classifier.StaticService{Cat: cat})
	require.NoError(t, err)

	server := httptest.NewServer(NewHandler(context.Background(), eng))
	t.Cleanup(server.Close)

	return server
}

// do sends a request and decodes the JSON response into out when it is not nil.
func do(t *testing.T, method, url, contentType string, body []byte, out any) int {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, bytes.NewReader(body))
	require.NoError(t, err)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

// TestPanel_Scenario drives the engine through the HTTP API.
func TestPanel_Scenario(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, false)

	var health map[string]string

	require.Equal(t, http.StatusOK, do(t, http.MethodGet, server.URL+"/health", "", nil, &health))
	require.Equal(t, "ok", health["status"])

	var door domain.Sensor

	code := do(t, http.MethodPost, server.URL+"/sensors", "application/json",
		[]byte(`{"name":"Door","type":"door"}`), &door)
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, door.ID)

	var status statusResponse

	code = do(t, http.MethodPut, server.URL+"/arming", "application/json",
		[]byte(`{"arming_status":"ARMED_AWAY"}`), &status)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ARMED_AWAY", status.ArmingStatus)

	var sensor domain.Sensor

	code = do(t, http.MethodPut, server.URL+"/sensors/"+door.ID+"/active", "application/json",
		[]byte(`{"active":true}`), &sensor)
	require.Equal(t, http.StatusOK, code)
	require.True(t, sensor.Active)

	require.Equal(t, http.StatusOK, do(t, http.MethodGet, server.URL+"/status", "", nil, &status))
	require.Equal(t, "PENDING_ALARM", status.AlarmStatus)
	require.Equal(t, "#C89614", status.AlarmColor)

	var sensors sensorsResponse

	require.Equal(t, http.StatusOK, do(t, http.MethodGet, server.URL+"/sensors", "", nil, &sensors))
	require.Len(t, sensors.Sensors, 1)

	require.Equal(t, http.StatusNoContent, do(t, http.MethodDelete, server.URL+"/sensors/"+door.ID, "", nil, nil))
	require.Equal(t, http.StatusOK, do(t, http.MethodGet, server.URL+"/sensors", "", nil, &sensors))
	require.Empty(t, sensors.Sensors)
}

// TestPanel_Images submits a camera frame.
func TestPanel_Images(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, true)

	code := do(t, http.MethodPut, server.URL+"/arming", "application/json",
		[]byte(`{"arming_status":"home"}`), nil)
	require.Equal(t, http.StatusOK, code)

	var result imageResponse

	code = do(t, http.MethodPost, server.URL+"/images", "image/png", pngBytes(t), &result)
	require.Equal(t, http.StatusOK, code)
	require.True(t, result.CatDetected)
	require.Equal(t, "ALARM", result.AlarmStatus)
}

// TestPanel_Errors maps failures to status codes.
func TestPanel_Errors(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, false)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		code   int
	}{
		{"unknown arming", http.MethodPut, "/arming", `{"arming_status":"ARMED_GARAGE"}`, http.StatusBadRequest},
		{"malformed json", http.MethodPut, "/arming", `{`, http.StatusBadRequest},
		{"unknown field", http.MethodPut, "/arming", `{"mode":"home"}`, http.StatusBadRequest},
		{"unknown sensor type", http.MethodPost, "/sensors", `{"name":"Hatch","type":"HATCH"}`, http.StatusBadRequest},
		{"empty sensor name", http.MethodPost, "/sensors", `{"name":"","type":"DOOR"}`, http.StatusBadRequest},
		{"missing sensor", http.MethodPut, "/sensors/missing/active", `{"active":true}`, http.StatusNotFound},
		{"remove missing sensor", http.MethodDelete, "/sensors/missing", ``, http.StatusNotFound},
		{"garbage image", http.MethodPost, "/images", `not an image`, http.StatusBadRequest},
		{"empty image", http.MethodPost, "/images", ``, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var response errorResponse

			code := do(t, tc.method, server.URL+tc.path, "application/json", []byte(tc.body), &response)
			require.Equal(t, tc.code, code)
			require.NotEmpty(t, response.Error)
		})
	}
}

// TestPanel_MethodNotAllowed relies on the router method matching.
func TestPanel_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, false)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, server.URL+"/status",
		strings.NewReader(""))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer resp.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
