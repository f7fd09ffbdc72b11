package routes

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"specs-nexus-web/internal/adapters/http/middleware"
	"specs-nexus-web/internal/adapters/nexus"
	"specs-nexus-web/internal/config"
	"specs-nexus-web/internal/core/domain"
	"specs-nexus-web/internal/core/services"
	"specs-nexus-web/internal/pkg/session"
	"specs-nexus-web/internal/pkg/view"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const eventListJSON = `[{"id":7,"title":"Sports Fest","description":"Annual games","date":"2030-05-01T10:00:00Z","location":"Gym","participant_count":3}]`

// baseMux fakes the remote API endpoints the pages fetch on render.
func baseMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"full_name":"Juan Dela Cruz","student_number":"2021-00001","year":"3rd Year","block":"A"}`))
	})
	mux.HandleFunc("/clearance/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/analytics/dashboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/events/officer/list", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventListJSON))
	})
	mux.HandleFunc("/officers/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	return mux
}

func newTestApp(t *testing.T, mux *http.ServeMux) (*fiber.App, *session.Store, func()) {
	t.Helper()
	upstream := httptest.NewServer(mux)

	cfg := &config.Config{
		AppMode: "dev",
		Session: config.SessionConfig{Secret: "routes-test-secret", SameSite: "Lax"},
	}
	client := nexus.New(upstream.URL)
	store := session.NewStore(cfg.Session)
	log := zap.NewNop()

	engine := html.New("../../../../web/templates", ".html")
	engine.AddFuncMap(view.NewResolver(upstream.URL).FuncMap())

	app := fiber.New(fiber.Config{
		Views:        engine,
		ErrorHandler: middleware.ErrorHandler,
	})
	Setup(app, client, store, cfg, log, services.NewChatService(client, log))

	return app, store, upstream.Close
}

func memberCookie(t *testing.T, store *session.Store) *http.Cookie {
	t.Helper()
	value, err := store.Encode("member-token", domain.RawProfile(domain.Member{ID: 7, FullName: "Juan Dela Cruz"}))
	require.NoError(t, err)
	return &http.Cookie{Name: "specs_member_session", Value: value}
}

func officerCookie(t *testing.T, store *session.Store, position string) *http.Cookie {
	t.Helper()
	officer := domain.Officer{ID: 1, FullName: "Maria Santos", Position: position}
	value, err := store.Encode("officer-token", domain.RawProfile(officer))
	require.NoError(t, err)
	return &http.Cookie{Name: "specs_officer_session", Value: value}
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestOfficerPortalNeedsOnlyOfficerSession(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	for _, path := range []string{"/officer-dashboard", "/officer-manage-events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(officerCookie(t, store, "President"))

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestMemberSessionDoesNotUnlockOfficerPortal(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/officer-dashboard", nil)
	req.AddCookie(memberCookie(t, store))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/officer-login", resp.Header.Get("Location"))
}

func TestMemberPagesRequireMemberSession(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	// no session at all
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// an officer session is not a member session
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(officerCookie(t, store, "President"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(memberCookie(t, store))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOfficerDirectoryIsAdminOnly(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/admin-manage-officers", nil)
	req.AddCookie(officerCookie(t, store, "President"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/officer-dashboard", resp.Header.Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/admin-manage-officers", nil)
	req.AddCookie(officerCookie(t, store, "admin"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestManageEventsEditSeedsForm(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/officer-manage-events?edit=7", nil)
	req.AddCookie(officerCookie(t, store, "President"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := bodyOf(t, resp)
	assert.Contains(t, body, `action="/officer-manage-events/update/7"`)
	assert.Contains(t, body, `value="Sports Fest"`)
	assert.NotContains(t, body, `action="/officer-manage-events/create"`)
}

func TestManageEventsUnknownEditFallsBackToCreate(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	req := httptest.NewRequest(http.MethodGet, "/officer-manage-events?edit=999", nil)
	req.AddCookie(officerCookie(t, store, "President"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, bodyOf(t, resp), `action="/officer-manage-events/create"`)
}

func TestManageEventsInvalidWindowKeepsEnteredValues(t *testing.T) {
	app, store, done := newTestApp(t, baseMux())
	defer done()

	buf, ctype := multipartForm(t, map[string]string{
		"title":              "Sports Fest",
		"description":        "Annual games",
		"location":           "Gym",
		"date":               "2030-05-01T10:00",
		"registration_start": "2030-04-02T10:00",
		"registration_end":   "2030-04-01T10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/officer-manage-events/update/7", buf)
	req.Header.Set("Content-Type", ctype)
	req.AddCookie(officerCookie(t, store, "President"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Registration must open before it closes.")
	assert.Contains(t, body, `action="/officer-manage-events/update/7"`)
	assert.Contains(t, body, `value="2030-05-01T10:00"`)
	assert.Contains(t, body, `value="2030-04-02T10:00"`)
	assert.Contains(t, body, `value="2030-04-01T10:00"`)
}

func TestManageEventsUpstreamFailureKeepsEnteredValues(t *testing.T) {
	mux := baseMux()
	mux.HandleFunc("/events/officer/update/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"database down"}`))
	})
	app, store, done := newTestApp(t, mux)
	defer done()

	buf, ctype := multipartForm(t, map[string]string{
		"title":       "Sports Fest Extended",
		"description": "Annual games",
		"location":    "Gym",
		"date":        "2030-05-01T10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/officer-manage-events/update/7", buf)
	req.Header.Set("Content-Type", ctype)
	req.AddCookie(officerCookie(t, store, "President"))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Saving failed. Please try again.")
	assert.Contains(t, body, `value="Sports Fest Extended"`)
	assert.Contains(t, body, `value="2030-05-01T10:00"`)
}
