package httpapi

import (
	"errors"
	"net/http"

	"github.com/lgtm-migrator/mecj-demo/internal/static"
)

// staticHandler serves files under prefix. A miss answers 404 with the
// prefix-relative path as a plain-text body.
func staticHandler(res *static.Resolver, prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := res.Resolve(prefix, r.URL.Path)
		if err != nil {
			var nf *static.NotFoundError
			if errors.As(err, &nf) {
				writeText(w, http.StatusNotFound, nf.Path)
				return
			}
			writeText(w, http.StatusInternalServerError, "failed to read asset")
			return
		}
		if asset.ContentType != "" {
			w.Header().Set("Content-Type", asset.ContentType)
		} else {
			// nil suppresses net/http content sniffing
			w.Header()["Content-Type"] = nil
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(asset.Body)
	}
}
