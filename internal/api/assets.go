package api

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rajrishis/portfolio/internal/storage"
)

const assetsDir = "assets"

// AssetHandler serves files from the assets directory of the content
// directory.
type AssetHandler struct {
	fs storage.Provider
}

// NewAssetHandler creates a handler reading from fs. A nil fs serves nothing.
func NewAssetHandler(fs storage.Provider) *AssetHandler {
	return &AssetHandler{fs: fs}
}

// safeName validates that name is a plain file name (no separators, no
// traversal, not hidden) and returns its path relative to the content root.
func safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("filename is required")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid filename: %s", name)
	}
	return path.Join(assetsDir, name), nil
}

// ServeFile handles GET /assets/{filename}.
func (h *AssetHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	rel, err := safeName(chi.URLParam(r, "filename"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if h.fs == nil {
		http.NotFound(w, r)
		return
	}
	data, err := h.fs.Read(rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, rel, time.Time{}, bytes.NewReader(data))
}
