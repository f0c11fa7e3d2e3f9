package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/renderers/report"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

var validValues = rules.Values{
	Name:            "Ada Lovelace",
	Email:           "ada@example.com",
	Phone:           "9876543210",
	Password:        "Secret1!",
	ConfirmPassword: "Secret1!",
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := New(opts...)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postJSON(t *testing.T, target string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(target, "application/json", strings.NewReader(string(raw)))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServer_ServesPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	doc, err := dom.Parse(resp.Body)
	require.NoError(t, err)
	for _, id := range []string{"myForm", "fullName", "email", "phone", "password", "confirmPassword"} {
		assert.True(t, doc.Has(id), "missing #%s", id)
	}
	form, err := doc.Element("myForm")
	require.NoError(t, err)
	assert.Equal(t, "/ws", form.Attr("data-live"))
}

func TestServer_ServesAssets(t *testing.T) {
	_, ts := newTestServer(t)

	for _, name := range []string{"formcheck.css", "formcheck.js"} {
		resp, err := http.Get(ts.URL + "/assets/" + name)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, name)
		assert.NotEmpty(t, body, name)
	}
}

func TestServer_FormPostRejectedRendersFeedback(t *testing.T) {
	_, ts := newTestServer(t)

	form := url.Values{}
	form.Set("name", "A")
	form.Set("email", "ada@example.com")
	form.Set("phone", "12")
	form.Set("password", "Secret1!")
	form.Set("confirmPassword", "Secret1!")

	resp, err := http.PostForm(ts.URL+"/", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	doc, err := dom.Parse(resp.Body)
	require.NoError(t, err)

	name, err := doc.Element("fullName")
	require.NoError(t, err)
	assert.True(t, name.HasClass("is-invalid"))

	msg, err := doc.Element("fullName-error")
	require.NoError(t, err)
	assert.Equal(t, "Name must be at least 2 characters.", msg.Text())
	assert.True(t, msg.Visible())

	phoneMsg, err := doc.Element("phone-error")
	require.NoError(t, err)
	assert.Equal(t, "Phone must be 10 digits and start with 6, 7, 8, or 9.", phoneMsg.Text())

	email, err := doc.Element("email")
	require.NoError(t, err)
	assert.True(t, email.HasClass("is-valid"))
}

func TestServer_FormPostAcceptedShowsBanner(t *testing.T) {
	_, ts := newTestServer(t)

	form := url.Values{}
	for _, field := range rules.Fields() {
		form.Set(string(field), validValues.Get(field))
	}
	resp, err := http.PostForm(ts.URL+"/", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := dom.Parse(resp.Body)
	require.NoError(t, err)

	banner, err := doc.Element("form-status")
	require.NoError(t, err)
	assert.True(t, banner.Visible())
	assert.Equal(t, "Form validation passed.", banner.Text())

	name, err := doc.Element("fullName")
	require.NoError(t, err)
	assert.Empty(t, name.Value())
	assert.False(t, name.HasClass("is-valid"))
}

func TestServer_FieldInput(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/fields/phone", map[string]string{"value": "98a76-543210999"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fieldResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.True(t, got.Valid)
	assert.Equal(t, "9876543210", got.State.Value)
	assert.Equal(t, form.MarkerValid, got.State.Marker)
}

func TestServer_FieldInputPasswordIncludesPanel(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/fields/password", map[string]string{"value": "abc"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fieldResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.False(t, got.Valid)
	assert.Equal(t, "Password must meet all listed conditions.", got.Message)
	require.NotNil(t, got.Panel)
	assert.True(t, got.Panel.Visible)
	assert.True(t, got.Panel.Items[rules.ConditionHasLower])
	assert.False(t, got.Panel.Items[rules.ConditionMinLength])
}

func TestServer_FieldInputConfirmComparesPassword(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/fields/confirmPassword", map[string]string{"value": "Secret1?", "password": "Secret1!"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got fieldResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.False(t, got.Valid)
	assert.Equal(t, rules.CodeConfirmMismatch, got.Code)
}

func TestServer_FieldInputUnknownField(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/fields/age", map[string]string{"value": "3"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_SubmitJSON(t *testing.T) {
	srv, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/submit", rules.Values{Name: "Ada", Email: "bad"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var payload report.Payload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotNil(t, payload.Outcome)
	assert.False(t, payload.Outcome.Accepted)
	require.NotNil(t, payload.Errors)
	assert.Equal(t, []string{"Please enter a valid email address."}, payload.Errors.Fields["email"])
	assert.Equal(t, []string{"Phone number is required."}, payload.Errors.Fields["phone"])

	resp = postJSON(t, ts.URL+"/api/submit", validValues)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	payload = report.Payload{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Outcome.Accepted)
	assert.Equal(t, []string{"Form validation passed."}, payload.Notifications)

	assert.Equal(t, float64(1), testutil.ToFloat64(srv.Metrics().submits.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(srv.Metrics().submits.WithLabelValues("rejected")))
}

func TestServer_SubmitTextAndUnknownFormat(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/submit?format=text", validValues)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Accepted")

	resp = postJSON(t, ts.URL+"/api/submit?format=xml", validValues)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_SubmitRejectsUnknownKeys(t *testing.T) {
	_, ts := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/submit", map[string]string{"nickname": "ada"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	postJSON(t, ts.URL+"/api/fields/email", map[string]string{"value": "x"})

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `formcheck_field_validations_total{field="email",valid="false"} 1`)
}

func TestServer_LiveSession(t *testing.T) {
	_, ts := newTestServer(t)

	ctx := context.Background()
	conn, resp, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	exchange := func(event LiveEvent) LiveReply {
		t.Helper()
		require.NoError(t, wsjson.Write(ctx, conn, event))
		var reply LiveReply
		require.NoError(t, wsjson.Read(ctx, conn, &reply))
		return reply
	}

	reply := exchange(LiveEvent{Type: EventInput, Field: "password", Value: "Secret1!"})
	require.Empty(t, reply.Error)
	require.NotNil(t, reply.Snapshot)
	assert.True(t, reply.Snapshot.Panel.Visible)

	reply = exchange(LiveEvent{Type: EventFocus, Field: "confirmPassword"})
	require.NotNil(t, reply.Snapshot)
	assert.False(t, reply.Snapshot.Panel.Visible)

	reply = exchange(LiveEvent{Type: "hover"})
	assert.Contains(t, reply.Error, "unknown event type")

	reply = exchange(LiveEvent{Type: EventSubmit, Values: validValues})
	require.NotNil(t, reply.Outcome)
	assert.True(t, reply.Outcome.Accepted)
	assert.Equal(t, "Form validation passed.", reply.Notice)
}
