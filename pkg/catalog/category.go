package catalog

// Category groups stacks for display.
type Category string

const (
	CategoryLanguage Category = "language"
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryTooling  Category = "tooling"
	CategoryEditors  Category = "editors"
	CategoryCICD     Category = "cicd"
	CategoryDatabase Category = "database"
	CategoryCloud    Category = "cloud"
	CategoryTesting  Category = "testing"
	CategoryDevOps   Category = "devops"
	CategoryMobile   Category = "mobile"
	CategoryProtocol Category = "protocol"
)

// categoryOrder is the display order of categories.
var categoryOrder = []Category{
	CategoryLanguage, CategoryFrontend, CategoryBackend, CategoryTooling,
	CategoryEditors, CategoryCICD, CategoryDatabase, CategoryCloud,
	CategoryTesting, CategoryDevOps, CategoryMobile, CategoryProtocol,
}

var categoryTitles = map[Category]string{
	CategoryLanguage: "Languages",
	CategoryFrontend: "Frontend",
	CategoryBackend:  "Backend",
	CategoryTooling:  "Tooling",
	CategoryEditors:  "Editors",
	CategoryCICD:     "CI/CD",
	CategoryDatabase: "Databases",
	CategoryCloud:    "Cloud",
	CategoryTesting:  "Testing",
	CategoryDevOps:   "DevOps",
	CategoryMobile:   "Mobile",
	CategoryProtocol: "Protocols",
}

// Categories returns all categories in display order.
func Categories() []Category {
	return append([]Category(nil), categoryOrder...)
}

// Known reports whether c is a recognised category.
func (c Category) Known() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title returns the display heading for c, or c itself when unknown.
func (c Category) Title() string {
	if t, ok := categoryTitles[c]; ok {
		return t
	}
	return string(c)
}
