package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
	"github.com/google/vsaq/internal/manifest"
)

func newHandler(cfg *config.Config) *Handler {
	scanner := discovery.NewScanner(cfg.TestFilePattern)
	resolver := NewResolver(cfg, manifest.NewGenerator(cfg, scanner))
	return NewHandler(cfg, scanner, resolver)
}

func get(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_TestIndex(t *testing.T) {
	cfg := setupTree(t, map[string]string{
		"build/index.html":                   "<html>fallback</html>",
		"vsaq/editor_test_dom.html":          "<html>editor</html>",
		"vsaq/questionnaire_test_dom.html":   "<html>questionnaire</html>",
		"vsaq/static/template_test_dom.html": "<html>template</html>",
	})
	h := newHandler(cfg)

	t.Run("lists every discovered test file", func(t *testing.T) {
		w := get(h, "/tests.html")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/html" {
			t.Errorf("expected text/html content type, got %s", ct)
		}

		doc, err := goquery.NewDocumentFromReader(w.Body)
		if err != nil {
			t.Fatalf("failed to parse index page: %v", err)
		}

		links := doc.Find("ul li a")
		if links.Length() != 3 {
			t.Errorf("expected 3 test links, got %d", links.Length())
		}
		links.Each(func(i int, s *goquery.Selection) {
			href, ok := s.Attr("href")
			if !ok {
				t.Errorf("link %d has no href", i)
				return
			}
			if !strings.HasPrefix(href, "/vsaq/") {
				t.Errorf("link %d href %s is not under /vsaq/", i, href)
			}
			if s.Text() != strings.TrimPrefix(href, "/") {
				t.Errorf("link %d text %q does not match href %q", i, s.Text(), href)
			}
		})

		suite := doc.Find("a[href='/all_tests.html']")
		if suite.Length() != 1 {
			t.Errorf("expected a link to the combined test suite")
		}
	})

	t.Run("both aliases produce identical pages", func(t *testing.T) {
		first := get(h, "/tests.html")
		second := get(h, "/tests.html/")
		if first.Code != http.StatusOK || second.Code != http.StatusOK {
			t.Fatalf("expected 200 for both aliases, got %d and %d", first.Code, second.Code)
		}
		if first.Body.String() != second.Body.String() {
			t.Error("aliases produced different bodies")
		}
	})

	t.Run("reflects new test files without caching", func(t *testing.T) {
		before := get(h, "/tests.html")
		if err := os.WriteFile("vsaq/added_test_dom.html", []byte("<html></html>"), 0644); err != nil {
			t.Fatalf("failed to add test file: %v", err)
		}
		defer os.Remove("vsaq/added_test_dom.html")

		after := get(h, "/tests.html")
		if !strings.Contains(after.Body.String(), "added_test_dom.html") {
			t.Error("new test file missing from index")
		}
		if before.Body.String() == after.Body.String() {
			t.Error("index page did not change after adding a test file")
		}
	})

	t.Run("missing test root returns an error response", func(t *testing.T) {
		broken := newHandler(setupTree(t, map[string]string{
			"build/index.html": "<html>fallback</html>",
		}))
		w := get(broken, "/tests.html")
		if w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}

func TestHandler_IndexEscapesFilenames(t *testing.T) {
	cfg := setupTree(t, map[string]string{
		"build/index.html":          "<html>fallback</html>",
		"vsaq/a<b>&c_test_dom.html": "<html></html>",
	})
	h := newHandler(cfg)

	w := get(h, "/tests.html")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()

	if !strings.Contains(body, "a&lt;b&gt;&amp;c_test_dom.html") {
		t.Errorf("link text was not escaped: %s", body)
	}
	if strings.Contains(body, ">a<b>&c_test_dom.html<") {
		t.Error("raw markup characters leaked into the link text")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to parse index page: %v", err)
	}
	if got := doc.Find("ul li a").First().Text(); got != "vsaq/a<b>&c_test_dom.html" {
		t.Errorf("unexpected decoded link text: %q", got)
	}
}

func TestHandler_StaticFiles(t *testing.T) {
	cfg := setupTree(t, map[string]string{
		"build/index.html":          "<html>fallback</html>",
		"build/deps-runfiles.js":    "// deps",
		"vsaq/editor_test_dom.html": "<html>editor</html>",
		"vsaq/static/util.js":       "// util",
	})
	h := newHandler(cfg)

	t.Run("serves mapped files with inferred content type", func(t *testing.T) {
		w := get(h, "/vsaq/static/util.js")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "// util" {
			t.Errorf("unexpected body: %q", body)
		}
		if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "javascript") {
			t.Errorf("expected a javascript content type, got %s", ct)
		}
	})

	t.Run("query strings do not affect the served file", func(t *testing.T) {
		plain := get(h, "/vsaq/editor_test_dom.html")
		withQuery := get(h, "/vsaq/editor_test_dom.html?ts=12345")
		if plain.Code != http.StatusOK || withQuery.Code != http.StatusOK {
			t.Fatalf("expected 200 for both, got %d and %d", plain.Code, withQuery.Code)
		}
		if plain.Body.String() != withQuery.Body.String() {
			t.Error("query string changed the response body")
		}
	})

	t.Run("deps manifest override", func(t *testing.T) {
		w := get(h, "/javascript/closure/deps-runfiles.js")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "// deps" {
			t.Errorf("unexpected body: %q", body)
		}
	})

	t.Run("unresolved paths serve the fallback document", func(t *testing.T) {
		w := get(h, "/questionnaire/some/client/route")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != "<html>fallback</html>" {
			t.Errorf("expected fallback document, got %q", body)
		}
	})

	t.Run("missing fallback yields 404", func(t *testing.T) {
		if err := os.Remove(cfg.FallbackFile); err != nil {
			t.Fatalf("failed to remove fallback: %v", err)
		}
		defer os.WriteFile(cfg.FallbackFile, []byte("<html>fallback</html>"), 0644)

		w := get(h, "/questionnaire/some/client/route")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("non-GET methods are rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/vsaq/static/util.js", nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", w.Code)
		}
	})
}

func TestHandler_ManifestRoute(t *testing.T) {
	cfg := setupTree(t, map[string]string{
		"build/index.html":          "<html>fallback</html>",
		"vsaq/editor_test_dom.html": "<html>editor</html>",
	})
	h := newHandler(cfg)

	first := get(h, "/build/all_tests.js")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", first.Code)
	}
	if ct := first.Header().Get("Content-Type"); !strings.Contains(ct, "javascript") {
		t.Errorf("expected a javascript content type, got %s", ct)
	}
	body := first.Body.String()
	if !strings.HasPrefix(body, "var _allTests=[") || !strings.HasSuffix(body, "];") {
		t.Fatalf("unexpected manifest body: %q", body)
	}
	if !strings.Contains(body, "vsaq/editor_test_dom.html") {
		t.Errorf("manifest does not list the test file: %q", body)
	}

	// The artifact is generated once; later requests serve the stale copy
	// even after the test tree changes.
	if err := os.WriteFile("vsaq/later_test_dom.html", []byte("<html></html>"), 0644); err != nil {
		t.Fatalf("failed to add test file: %v", err)
	}
	second := get(h, "/build/all_tests.js")
	if second.Body.String() != body {
		t.Error("manifest was regenerated; expected the first artifact to be served unchanged")
	}
}
