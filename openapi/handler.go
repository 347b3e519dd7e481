package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Handler validates the document and returns an http.Handler serving it as
// JSON, for mounting at a path such as "/openapi.json".
func Handler(s *openapi3.T) (http.Handler, error) {
	if err := s.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specJSON)
	}), nil
}

// HandlerMust is like Handler but panics on error.
func HandlerMust(s *openapi3.T) http.Handler {
	h, err := Handler(s)
	if err != nil {
		panic(err)
	}
	return h
}
