package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showcase/gallery"
	"showcase/state"

	"github.com/gin-gonic/gin"
)

type gallerySnapshot struct {
	Visible        map[string]bool `json:"visible"`
	SubmittedNames []string        `json:"submittedNames"`
	Entries        []struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
		Time   string `json:"time"`
	} `json:"entries"`
	SortColumn    string `json:"sortColumn"`
	SortDirection string `json:"sortDirection"`
}

type galleryResponse struct {
	OK     bool            `json:"ok"`
	ID     string          `json:"id"`
	Detail string          `json:"detail"`
	State  gallerySnapshot `json:"state"`
}

func newGalleryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	state.Global = state.NewAppState()

	r := gin.New()
	r.POST("/api/gallery/sessions", CreateGallerySession)
	r.GET("/api/gallery/sessions/:id", GetGallerySession)
	r.DELETE("/api/gallery/sessions/:id", DeleteGallerySession)
	r.POST("/api/gallery/sessions/:id/toggle", ToggleGalleryComponent)
	r.POST("/api/gallery/sessions/:id/submit", SubmitGalleryName)
	r.POST("/api/gallery/sessions/:id/sort", SortGalleryStatus)
	return r
}

func galleryCall(t *testing.T, r *gin.Engine, method, path, body string) (int, galleryResponse) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp galleryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode %s %s: %v (body %s)", method, path, err, w.Body.String())
	}
	return w.Code, resp
}

func mountGallery(t *testing.T, r *gin.Engine) string {
	t.Helper()

	code, resp := galleryCall(t, r, "POST", "/api/gallery/sessions", "")
	if code != http.StatusOK || resp.ID == "" {
		t.Fatalf("mount failed: code=%d resp=%+v", code, resp)
	}
	if len(resp.State.Entries) != 3 {
		t.Fatalf("expected 3 seed rows on mount, got %d", len(resp.State.Entries))
	}
	return resp.ID
}

func TestGallerySession_MountAndTeardown(t *testing.T) {
	r := newGalleryRouter(t)
	id := mountGallery(t, r)

	code, resp := galleryCall(t, r, "GET", "/api/gallery/sessions/"+id, "")
	if code != http.StatusOK || !resp.OK {
		t.Fatalf("get session: code=%d resp=%+v", code, resp)
	}

	code, _ = galleryCall(t, r, "DELETE", "/api/gallery/sessions/"+id, "")
	if code != http.StatusOK {
		t.Fatalf("delete session: code=%d", code)
	}

	// State is discarded with the session
	code, _ = galleryCall(t, r, "GET", "/api/gallery/sessions/"+id, "")
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 after teardown, got %d", code)
	}
}

func TestGallerySession_NotFound(t *testing.T) {
	r := newGalleryRouter(t)

	code, _ := galleryCall(t, r, "POST", "/api/gallery/sessions/nope/toggle",
		`{"component":"banner","visible":true}`)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown session, got %d", code)
	}
}

func TestGalleryToggle(t *testing.T) {
	r := newGalleryRouter(t)
	id := mountGallery(t, r)

	code, resp := galleryCall(t, r, "POST", fmt.Sprintf("/api/gallery/sessions/%s/toggle", id),
		`{"component":"banner","visible":true}`)
	if code != http.StatusOK {
		t.Fatalf("toggle: code=%d resp=%+v", code, resp)
	}
	if !resp.State.Visible[gallery.ComponentBanner] {
		t.Fatalf("banner not visible after toggle")
	}

	found := false
	for _, entry := range resp.State.Entries {
		if entry.Name == "Welcome Banner" {
			found = true
			if entry.Status != "Active" {
				t.Fatalf("banner status = %q, want Active", entry.Status)
			}
		}
	}
	if !found {
		t.Fatalf("banner entry missing from status log")
	}

	code, _ = galleryCall(t, r, "POST", fmt.Sprintf("/api/gallery/sessions/%s/toggle", id),
		`{"component":"spinner","visible":true}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown component, got %d", code)
	}
}

func TestGallerySubmit(t *testing.T) {
	r := newGalleryRouter(t)
	id := mountGallery(t, r)
	path := fmt.Sprintf("/api/gallery/sessions/%s/submit", id)

	// Whitespace-only name rejected; list unchanged
	code, resp := galleryCall(t, r, "POST", path, `{"name":"   "}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank name, got %d", code)
	}
	if len(resp.State.SubmittedNames) != 0 {
		t.Fatalf("blank submission changed names list: %v", resp.State.SubmittedNames)
	}

	code, resp = galleryCall(t, r, "POST", path, `{"name":"Grace"}`)
	if code != http.StatusOK || !resp.OK {
		t.Fatalf("submit: code=%d resp=%+v", code, resp)
	}
	if len(resp.State.SubmittedNames) != 1 || resp.State.SubmittedNames[0] != "Grace" {
		t.Fatalf("names = %v, want [Grace]", resp.State.SubmittedNames)
	}

	last := resp.State.Entries[len(resp.State.Entries)-1]
	if last.Name != "Grace" || last.Status != "Submitted" {
		t.Fatalf("unexpected appended entry: %+v", last)
	}
}

func TestGallerySort(t *testing.T) {
	r := newGalleryRouter(t)
	id := mountGallery(t, r)
	path := fmt.Sprintf("/api/gallery/sessions/%s/sort", id)

	_, resp := galleryCall(t, r, "POST", path, `{"column":"name"}`)
	if resp.State.SortColumn != "name" || resp.State.SortDirection != "asc" {
		t.Fatalf("first sort = %s/%s, want name/asc", resp.State.SortColumn, resp.State.SortDirection)
	}

	_, resp = galleryCall(t, r, "POST", path, `{"column":"name"}`)
	if resp.State.SortDirection != "desc" {
		t.Fatalf("second sort = %s, want desc", resp.State.SortDirection)
	}

	_, resp = galleryCall(t, r, "POST", path, `{"column":"id"}`)
	if resp.State.SortColumn != "id" || resp.State.SortDirection != "asc" {
		t.Fatalf("cross-column sort = %s/%s, want id/asc", resp.State.SortColumn, resp.State.SortDirection)
	}

	code, _ := galleryCall(t, r, "POST", path, `{"column":"owner"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown column, got %d", code)
	}
}
