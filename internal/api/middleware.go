// Package api implements the portfolio REST API and page routes using chi.
package api

import (
	"net/http"

	"github.com/rajrishis/portfolio/internal/models"
)

// VersionHeader carries the content version of the snapshot a response was
// built from.
const VersionHeader = "X-Content-Version"

// Snapshotter supplies the current content snapshot.
type Snapshotter interface {
	Snapshot() *models.Portfolio
}

// ContentVersion returns middleware that stamps every response with the
// current content version.
func ContentVersion(content Snapshotter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(VersionHeader, content.Snapshot().Version)
			next.ServeHTTP(w, r)
		})
	}
}
