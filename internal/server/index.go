package server

import (
	"fmt"
	"html"
	"net/http"
)

// renderIndex writes the test index page: a link to the combined test suite
// followed by one link per discovered test file. The file list is walked
// fresh on every request, unlike the cached manifest artifact.
func (h *Handler) renderIndex(w http.ResponseWriter) int {
	tests, err := h.scanner.Scan(h.cfg.TestRoot)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)

	fmt.Fprint(w, "<h2>VSAQ test server</h2>")
	fmt.Fprint(w, "<h3>Test suite</h3>")
	fmt.Fprint(w, "<a href=\"/all_tests.html\">all_tests.html</a>\n")
	fmt.Fprint(w, "<h3>Individual tests</h3>")
	fmt.Fprint(w, "<ul>")
	for _, test := range tests {
		// Only the link text needs escaping; the path itself is served as-is.
		fmt.Fprintf(w, "<li><a href=\"/%s\">%s</a>\n", test, html.EscapeString(test))
	}
	fmt.Fprint(w, "</ul>")
	return http.StatusOK
}
