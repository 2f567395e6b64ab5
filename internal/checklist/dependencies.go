package checklist

var requiredDependencies = []string{
	"express", "cors", "helmet", "morgan", "dotenv",
	"bcryptjs", "jsonwebtoken", "pg", "sequelize",
	"joi", "express-rate-limit", "compression",
}

// RequiredDependencies returns the package names that must appear as keys of
// the manifest's "dependencies" object. Versions are not checked.
func RequiredDependencies() []string {
	out := make([]string, len(requiredDependencies))
	copy(out, requiredDependencies)
	return out
}
