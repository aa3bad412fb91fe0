package resolve

import "github.com/matzehuels/latest-stack/pkg/catalog"

// StrategyKind classifies how a stack is resolved.
type StrategyKind int

const (
	// StrategyNone means the stack has nothing to resolve against.
	StrategyNone StrategyKind = iota
	// StrategySource uses a dedicated registry adapter.
	StrategySource
	// StrategyGitHub uses the default GitHub release adapter.
	StrategyGitHub
)

// Strategy is the outcome of [Resolver.Select].
type Strategy struct {
	Kind   StrategyKind
	Source catalog.Source // set for StrategySource
	Repo   catalog.Repo   // set for StrategyGitHub
}

// String renders the strategy as "source:<name>", "github:<owner>/<repo>"
// or "none".
func (s Strategy) String() string {
	switch s.Kind {
	case StrategySource:
		return "source:" + string(s.Source)
	case StrategyGitHub:
		return "github:" + s.Repo.String()
	default:
		return "none"
	}
}
