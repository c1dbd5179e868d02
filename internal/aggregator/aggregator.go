// Package aggregator merges per-component navigation trees into the User and Developer manuals.
package aggregator

import (
	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/nav"
	"github.com/mrdocs/mrdocs/pkg/log"
)

const (
	UserManualTitle      = "User Manual"
	DeveloperManualTitle = "Developer Manual"
)

type group struct {
	kind    component.Kind
	entries nav.Tree
}

type manual struct {
	groups []*group
}

func (m *manual) add(kind component.Kind, entry nav.Item) {
	for _, g := range m.groups {
		if g.kind == kind {
			g.entries = append(g.entries, entry)
			return
		}
	}

	m.groups = append(m.groups, &group{kind: kind, entries: nav.Tree{entry}})
}

func (m *manual) tree() nav.Tree {
	tree := make(nav.Tree, 0, len(m.groups))

	for _, g := range m.groups {
		tree = append(tree, nav.Entry(string(g.kind), g.entries))
	}

	return tree
}

// Aggregator holds the state of one build pass. Create a new one for every build.
type Aggregator struct {
	user manual
	dev  manual
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Add appends the component's user and dev trees under its kind.
// Components must be added in declaration order.
func (agg *Aggregator) Add(l log.Logger, spec *component.Spec, cn *nav.ComponentNav) {
	agg.user.add(spec.Kind, nav.Entry(spec.Title, cn.UserNav(l)))
	agg.dev.add(spec.Kind, nav.Entry(spec.Title, cn.DevNav(l)))
}

// Result returns the two manuals, each grouped by kind in first-seen order.
func (agg *Aggregator) Result() (user, dev nav.Tree) {
	return agg.user.tree(), agg.dev.tree()
}

// Manuals returns the manuals as the two top-level navigation sections.
func (agg *Aggregator) Manuals() nav.Tree {
	user, dev := agg.Result()

	return nav.Tree{
		nav.Entry(UserManualTitle, user),
		nav.Entry(DeveloperManualTitle, dev),
	}
}

// Input pairs a loaded component with its walked navigation.
type Input struct {
	Component *component.Loaded
	Nav       *nav.ComponentNav
}

// Aggregate folds inputs, in order, into a fresh Aggregator and returns both manuals.
func Aggregate(l log.Logger, inputs []Input) (user, dev nav.Tree) {
	agg := New()

	for _, in := range inputs {
		agg.Add(l, in.Component.Spec, in.Nav)
	}

	return agg.Result()
}
