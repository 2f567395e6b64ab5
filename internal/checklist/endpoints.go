package checklist

// Endpoint is one line of the informational API summary.
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// EndpointGroup is a titled block of endpoints.
type EndpointGroup struct {
	Title     string     `json:"title"`
	Endpoints []Endpoint `json:"endpoints"`
}

// String renders the endpoint the way the summary prints it.
func (e Endpoint) String() string {
	return e.Method + " " + e.Path + " - " + e.Description
}

var endpointGroups = []EndpointGroup{
	{
		Title: "Authentication",
		Endpoints: []Endpoint{
			{"POST", "/auth/register", "Register new user"},
			{"POST", "/auth/login", "User login"},
			{"GET", "/auth/me", "Get user profile"},
			{"POST", "/auth/regenerate-secret", "Regenerate API secret"},
		},
	},
	{
		Title: "Nightscout-Compatible API",
		Endpoints: []Endpoint{
			{"GET", "/api/v1/entries[.json]", "Get CGM entries"},
			{"POST", "/api/v1/entries[.json]", "Upload CGM entries"},
			{"GET", "/api/v1/treatments[.json]", "Get treatments"},
			{"POST", "/api/v1/treatments[.json]", "Upload treatments"},
			{"GET", "/api/v1/status[.json]", "Get server status"},
			{"GET", "/api/v1/profile[.json]", "Get treatment profile"},
		},
	},
	{
		Title: "Utility",
		Endpoints: []Endpoint{
			{"GET", "/", "User dashboard"},
			{"GET", "/api-docs", "API documentation"},
		},
	},
}

// Endpoints returns the API summary groups. It is static text describing the
// backend's routes, not derived from any route table.
func Endpoints() []EndpointGroup {
	out := make([]EndpointGroup, len(endpointGroups))
	for i, g := range endpointGroups {
		eps := make([]Endpoint, len(g.Endpoints))
		copy(eps, g.Endpoints)
		out[i] = EndpointGroup{Title: g.Title, Endpoints: eps}
	}
	return out
}
