package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/latest-stack/pkg/errors"
)

//go:embed stacks.toml
var defaultCatalog string

// Repo identifies a GitHub repository.
type Repo struct {
	Owner string `toml:"owner" json:"owner"`
	Repo  string `toml:"repo" json:"repo"`
}

func (r Repo) String() string { return r.Owner + "/" + r.Repo }

// Stack is a static definition of a tracked product.
//
// ID and Category are read by resolution and listing logic; the remaining
// display fields are carried through for consumers. VersionSource, when
// recognised, takes precedence over VersionRepo, which takes precedence over
// GitHubRepo.
type Stack struct {
	ID            string   `toml:"id" json:"id"`
	Name          string   `toml:"name" json:"name"`
	Category      Category `toml:"category" json:"category"`
	URL           string   `toml:"url" json:"url"`
	GitHubRepo    *Repo    `toml:"github_repo" json:"githubRepo,omitempty"`
	VersionRepo   *Repo    `toml:"version_repo" json:"versionRepo,omitempty"`
	VersionSource Source   `toml:"version_source" json:"versionSource,omitempty"`
	VersionURL    string   `toml:"version_url" json:"versionUrl,omitempty"`
}

// LookupRepo returns the repository used for version lookup: VersionRepo if
// set, otherwise GitHubRepo. It returns nil when neither is present.
func (s Stack) LookupRepo() *Repo {
	if s.VersionRepo != nil {
		return s.VersionRepo
	}
	return s.GitHubRepo
}

// Catalog is an ordered, immutable-by-convention list of stacks.
type Catalog struct {
	Stacks []Stack `toml:"stack"`
}

// Default returns the catalog embedded in the binary.
// It panics if the embedded file is invalid, which is a build defect.
func Default() *Catalog {
	c, err := Parse(strings.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog from a TOML file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "open catalog %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a TOML catalog from r and validates it.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "decode catalog")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "unknown catalog key %q", undec[0].String())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks structural invariants: valid unique IDs, known
// categories, and well-formed repositories. Unknown version sources are
// not structural errors; see [Catalog.Lint].
func (c *Catalog) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(c.Stacks))
	for _, s := range c.Stacks {
		if err := errors.ValidateStackID(s.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[s.ID] {
			errs = append(errs, errors.New(errors.ErrCodeDuplicateStack, "stack %q defined more than once", s.ID))
		}
		seen[s.ID] = true
		if !s.Category.Known() {
			errs = append(errs, errors.New(errors.ErrCodeUnknownCategory, "stack %q: unknown category %q", s.ID, s.Category))
		}
		for _, r := range []*Repo{s.GitHubRepo, s.VersionRepo} {
			if r == nil {
				continue
			}
			if err := errors.ValidateRepo(r.Owner, r.Repo); err != nil {
				errs = append(errs, errors.Wrap(errors.ErrCodeInvalidRepo, err, "stack %q", s.ID))
			}
		}
	}
	return errors.Join(errs...)
}

// Lint reports soft problems that do not prevent resolution: version
// sources outside the known set (resolution falls back to the repository)
// and stacks with no way to resolve a version at all.
func (c *Catalog) Lint() []error {
	var issues []error
	for _, s := range c.Stacks {
		if s.VersionSource != "" && !s.VersionSource.Known() {
			issues = append(issues, errors.New(errors.ErrCodeUnknownSource,
				"stack %q: unknown version source %q, falling back to repository", s.ID, s.VersionSource))
		}
		if !s.VersionSource.Known() && s.LookupRepo() == nil {
			issues = append(issues, errors.New(errors.ErrCodeUnsupported,
				"stack %q: no version source or repository, version will be unknown", s.ID))
		}
	}
	return issues
}

// Lookup returns the stack with the given ID.
func (c *Catalog) Lookup(id string) (Stack, error) {
	for _, s := range c.Stacks {
		if s.ID == id {
			return s, nil
		}
	}
	return Stack{}, errors.New(errors.ErrCodeStackNotFound, "no stack with id %q", id)
}

// Filter returns a catalog containing only stacks for which keep returns true.
func (c *Catalog) Filter(keep func(Stack) bool) *Catalog {
	out := &Catalog{}
	for _, s := range c.Stacks {
		if keep(s) {
			out.Stacks = append(out.Stacks, s)
		}
	}
	return out
}

// Group is the stacks of one category in display order.
type Group struct {
	Category Category
	Stacks   []Stack
}

// Groups arranges stacks by category in display order, sorting each group
// by name case-insensitively. Empty categories are omitted, and a stack
// named "R" is never listed under tooling since R belongs with languages.
func (c *Catalog) Groups() []Group {
	byCat := make(map[Category][]Stack)
	for _, s := range c.Stacks {
		if s.Category == CategoryTooling && s.Name == "R" {
			continue
		}
		byCat[s.Category] = append(byCat[s.Category], s)
	}

	var groups []Group
	for _, cat := range categoryOrder {
		stacks, ok := byCat[cat]
		if !ok {
			continue
		}
		slices.SortStableFunc(stacks, func(a, b Stack) int {
			return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		})
		groups = append(groups, Group{Category: cat, Stacks: stacks})
	}
	return groups
}
