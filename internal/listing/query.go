package listing

import (
	"net/http"
	"net/url"
	"strings"
)

const (
	ParamSearch    = "q"
	ParamSort      = "sort"
	ParamDirection = "dir"
)

func ParseQuery(r *http.Request) Query {
	return QueryFromValues(r.URL.Query())
}

func QueryFromValues(values url.Values) Query {
	return Query{
		Search:    values.Get(ParamSearch),
		SortKey:   strings.TrimSpace(values.Get(ParamSort)),
		Direction: ParseDirection(values.Get(ParamDirection)),
	}
}

// Values encodes q for a request URL, omitting empty parts.
func (q Query) Values() url.Values {
	values := url.Values{}
	if strings.TrimSpace(q.Search) != "" {
		values.Set(ParamSearch, q.Search)
	}
	if q.SortKey != "" {
		values.Set(ParamSort, q.SortKey)
		values.Set(ParamDirection, string(ParseDirection(string(q.Direction))))
	}
	return values
}
