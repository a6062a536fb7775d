package shared

import (
	"net/http"

	"workwise/internal/listing"
	"workwise/internal/requestctx"
	"workwise/internal/transport/http/api"
)

// WriteList applies the q/sort/dir query of r to rows and writes the result.
// A search without matches is an empty list, not an error.
func WriteList[T any](w http.ResponseWriter, r *http.Request, t listing.Table[T], rows []T) {
	out := t.Apply(rows, listing.ParseQuery(r))
	if out == nil {
		out = []T{}
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}
