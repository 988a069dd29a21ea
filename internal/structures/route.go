package structures

import "net/http"

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}

// Pattern returns the method-qualified ServeMux pattern, e.g. "GET /catches".
func (r Route) Pattern() string {
	return r.Method + " " + r.Url
}
