// test/e2e/e2e_test.go
package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/server"
	"mergington-activities/pkg/registry"
)

// startServer boots the full HTTP stack (handler + middleware) on a fresh
// registry, the same wiring cmd/activity-server performs.
func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewTestLogger(t)
	reg := registry.New(log)
	handler := server.NewHandler(reg, log)
	routes := server.Instrument(handler.Routes("../../static"), log, observability.New("e2e"))

	ts := httptest.NewServer(routes)
	t.Cleanup(ts.Close)
	return ts
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func do(t *testing.T, method, url string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func stringField(t *testing.T, body map[string]json.RawMessage, key string) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(body[key], &s))
	return s
}

func participants(t *testing.T, baseURL, activity string) []string {
	t.Helper()
	resp, err := http.Get(baseURL + "/activities")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var activities map[string]registry.Activity
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&activities))
	act, ok := activities[activity]
	require.True(t, ok, "activity %q missing", activity)
	return act.Participants
}

func TestRootRedirect(t *testing.T) {
	ts := startServer(t)

	resp, err := noRedirectClient().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get("Location"))
}

func TestStaticIndexServed(t *testing.T) {
	ts := startServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestSignupScenario runs the full signup/unregister walkthrough against a
// freshly seeded server.
func TestSignupScenario(t *testing.T) {
	ts := startServer(t)

	// Chess Club starts with its two seeded students.
	require.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		participants(t, ts.URL, "Chess Club"))

	// A new student signs up.
	resp, body := do(t, http.MethodPost,
		ts.URL+"/activities/Chess%20Club/signup?email=new@mergington.edu")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	message := stringField(t, body, "message")
	assert.Contains(t, message, "new@mergington.edu")
	assert.Contains(t, message, "Chess Club")

	roster := participants(t, ts.URL, "Chess Club")
	assert.Len(t, roster, 3)
	assert.Contains(t, roster, "new@mergington.edu")

	// A duplicate signup is rejected.
	resp, body = do(t, http.MethodPost,
		ts.URL+"/activities/Chess%20Club/signup?email=michael@mergington.edu")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, strings.ToLower(stringField(t, body, "detail")), "already signed up")

	// Existing students unregister.
	for _, email := range []string{"michael@mergington.edu", "new@mergington.edu"} {
		resp, _ = do(t, http.MethodDelete,
			fmt.Sprintf("%s/activities/Chess%%20Club/unregister?email=%s", ts.URL, email))
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, []string{"daniel@mergington.edu"}, participants(t, ts.URL, "Chess Club"))

	// Any operation on an unknown activity is a 404.
	for _, op := range []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/activities/Nonexistent%20Activity/signup?email=x@mergington.edu"},
		{http.MethodDelete, "/activities/Nonexistent%20Activity/unregister?email=x@mergington.edu"},
	} {
		resp, body = do(t, op.method, ts.URL+op.path)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, strings.ToLower(stringField(t, body, "detail")), "not found")
	}
}
