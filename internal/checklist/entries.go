package checklist

// Category groups expected files the way the report lists them.
type Category string

const (
	CategoryRoot   Category = "root"
	CategorySource Category = "source"
	CategoryPublic Category = "public"
)

// Entry is one expected path, relative to the project directory, with the
// label printed next to it.
type Entry struct {
	Path        string   `json:"path" yaml:"path" toml:"path" mapstructure:"path" validate:"required"`
	Description string   `json:"description" yaml:"description" toml:"description" mapstructure:"description" validate:"required"`
	Category    Category `json:"category,omitempty" yaml:"-" toml:"-" mapstructure:"-"`
}

// ManifestPath is the dependency manifest of the checked project.
const ManifestPath = "package.json"

var rootFiles = []Entry{
	{Path: "package.json", Description: "Package configuration"},
	{Path: "README.md", Description: "Documentation"},
	{Path: "Dockerfile", Description: "Docker configuration"},
	{Path: "docker-compose.yml", Description: "Docker Compose configuration"},
	{Path: ".env.example", Description: "Environment variables template"},
	{Path: ".gitignore", Description: "Git ignore rules"},
	{Path: "init.sql", Description: "Database initialization"},
}

var sourceFiles = []Entry{
	{Path: "src/app.js", Description: "Main Express application"},
	{Path: "src/server.js", Description: "Server startup"},
	{Path: "src/config/database.js", Description: "Database configuration"},
	{Path: "src/models/User.js", Description: "User model"},
	{Path: "src/models/Entry.js", Description: "Entry model"},
	{Path: "src/models/Treatment.js", Description: "Treatment model"},
	{Path: "src/middleware/auth.js", Description: "Authentication middleware"},
	{Path: "src/controllers/auth.js", Description: "Authentication controller"},
	{Path: "src/controllers/entries.js", Description: "Entries controller"},
	{Path: "src/controllers/treatments.js", Description: "Treatments controller"},
	{Path: "src/controllers/status.js", Description: "Status controller"},
	{Path: "src/routes/api.js", Description: "API routes"},
	{Path: "src/routes/auth.js", Description: "Authentication routes"},
	{Path: "src/utils/query.js", Description: "Query utilities"},
}

var publicFiles = []Entry{
	{Path: "public/index.html", Description: "Dashboard HTML"},
	{Path: "public/css/style.css", Description: "Dashboard CSS"},
	{Path: "public/js/dashboard.js", Description: "Dashboard JavaScript"},
}

// RootFiles returns the expected top-level project files.
func RootFiles() []Entry { return withCategory(rootFiles, CategoryRoot) }

// SourceFiles returns the expected files under src/.
func SourceFiles() []Entry { return withCategory(sourceFiles, CategorySource) }

// PublicFiles returns the expected dashboard assets under public/.
func PublicFiles() []Entry { return withCategory(publicFiles, CategoryPublic) }

// All returns root, source and public entries concatenated in that order.
func All() []Entry {
	all := make([]Entry, 0, len(rootFiles)+len(sourceFiles)+len(publicFiles))
	all = append(all, RootFiles()...)
	all = append(all, SourceFiles()...)
	all = append(all, PublicFiles()...)
	return all
}

func withCategory(entries []Entry, c Category) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Category = c
		out[i] = e
	}
	return out
}
