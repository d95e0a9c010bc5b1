package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealtrack/food-api/pkg/food"
	"github.com/mealtrack/food-api/pkg/store/memory"
	"github.com/mealtrack/food-api/pkg/store/sqlite"
)

// TestConstants verifies package constants are properly defined
func TestConstants(t *testing.T) {
	assert.Equal(t, "food-api", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

type apiClient struct {
	t    *testing.T
	base string
}

func (c apiClient) do(method, path string, body any) (int, []byte) {
	c.t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.base+path, r)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

func newTestAPI(t *testing.T, st food.Store) apiClient {
	t.Helper()

	ts := httptest.NewServer(NewServer(DefaultConfig(), st).Handler())
	t.Cleanup(ts.Close)

	// the listener is up, so readiness only depends on the store
	return apiClient{t: t, base: ts.URL}
}

// runFoodScenario exercises the food API the way its clients do: create,
// read, update, read back, and add a salad.
func runFoodScenario(t *testing.T, st food.Store) {
	c := newTestAPI(t, st)

	status, body := c.do(http.MethodPost, "/api/food", map[string]string{"name": "Pizza", "meal": "Dinner"})
	require.Equal(t, http.StatusOK, status, string(body))

	var created food.Food
	require.NoError(t, json.Unmarshal(body, &created))
	require.False(t, created.ID.IsZero())
	id := created.ID.Hex()

	status, body = c.do(http.MethodGet, "/api/food/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	var got food.Food
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "Pizza", got.Name)
	assert.Equal(t, "Dinner", got.Meal)
	assert.NotNil(t, got.Salads)

	status, _ = c.do(http.MethodPost, "/api/food", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = c.do(http.MethodGet, "/api/fo", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = c.do(http.MethodGet, "/api/food/123", nil)
	assert.Equal(t, http.StatusNotFound, status)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))

	update := map[string]string{"name": "new name", "meal": "lunch"}
	status, body = c.do(http.MethodPut, "/api/food/"+id, update)
	require.Equal(t, http.StatusOK, status, string(body))
	var updated map[string]any
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "new name", updated["name"])
	assert.Equal(t, "lunch", updated["meal"])
	assert.Equal(t, raw["timestamp"], updated["timestamp"])

	status, _ = c.do(http.MethodPut, "/api/food/123", update)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = c.do(http.MethodPut, "/api/fo", update)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = c.do(http.MethodPost, "/api/food/"+id+"/salads", map[string]string{"name": "Caesar"})
	require.Equal(t, http.StatusOK, status, string(body))

	status, first := c.do(http.MethodGet, "/api/food/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(first, &got))
	require.Len(t, got.Salads, 1)
	assert.Equal(t, "Caesar", got.Salads[0].Name)
	assert.Equal(t, "new name", got.Name)

	_, second := c.do(http.MethodGet, "/api/food/"+id, nil)
	assert.Equal(t, string(first), string(second))

	status, _ = c.do(http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status, "ready is only reported once Run has started listening")
}

func TestFoodScenario_Memory(t *testing.T) {
	runFoodScenario(t, memory.New())
}

func TestFoodScenario_SQLite(t *testing.T) {
	st, err := sqlite.Open(context.Background(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close(context.Background()) })

	runFoodScenario(t, st)
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func TestRun(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()
	cfg.Port = freePort(t)
	cfg.StoreURI = "memory://"
	cfg.ShutdownTimeout = 2 * time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, cfg)
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/ready", cfg.Port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StoreURI = "redis://localhost"

	err := Run(context.Background(), cfg)
	assert.Error(t, err)
}
