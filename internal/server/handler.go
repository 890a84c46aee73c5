package server

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/fatih/color"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/discovery"
)

// Handler serves test assets over HTTP. Requests are processed one at a
// time, which keeps the manifest check-then-write free of races.
type Handler struct {
	cfg      *config.Config
	scanner  *discovery.Scanner
	resolver *Resolver

	mu sync.Mutex
}

// NewHandler creates a new Handler
func NewHandler(cfg *config.Config, scanner *discovery.Scanner, resolver *Resolver) *Handler {
	return &Handler{cfg: cfg, scanner: scanner, resolver: resolver}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	code := h.handle(w, r)
	logRequest(r, code)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
	if r.URL.Path == "/tests.html" || r.URL.Path == "/tests.html/" {
		return h.renderIndex(w)
	}
	return h.serveFile(w, r)
}

// serveFile translates the request path and streams the resolved file back.
// RequestURI is passed through untouched so the resolver sees the query
// string and any percent-encoding exactly as the client sent it.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) int {
	target, err := h.resolver.Resolve(r.RequestURI)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return http.StatusInternalServerError
	}

	f, err := os.Open(target)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return http.StatusNotFound
	}
	defer f.Close()

	ctype := mime.TypeByExtension(filepath.Ext(target))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	if info, err := f.Stat(); err == nil {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, f); err != nil {
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

func logRequest(r *http.Request, code int) {
	status := strconv.Itoa(code)
	switch {
	case code >= 500:
		status = color.RedString(status)
	case code >= 400:
		status = color.YellowString(status)
	default:
		status = color.GreenString(status)
	}
	fmt.Printf("%s %s %s\n", r.Method, r.RequestURI, status)
}
