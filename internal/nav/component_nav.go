// Package nav classifies the documentation files of a component into the persona and
// content-type taxonomy and renders the per-component navigation trees.
package nav

import (
	"path"
	"strings"

	"github.com/mrdocs/mrdocs/pkg/log"
)

// Classification is the outcome of ComponentNav.Add.
type Classification int

const (
	Unnavigable Classification = iota
	UserIndex
	DevIndex
	Extra
	User
	Admin
	Dev
	Duplicate
	NotMarkdown
)

var classificationNames = map[Classification]string{
	Unnavigable: "unnavigable",
	UserIndex:   "user-index",
	DevIndex:    "dev-index",
	Extra:       "extra",
	User:        "user",
	Admin:       "admin",
	Dev:         "dev",
	Duplicate:   "duplicate",
	NotMarkdown: "not-markdown",
}

func (c Classification) String() string {
	return classificationNames[c]
}

const (
	markdownExt = ".md"

	// slug/docs/<persona>/<content>/<file>
	bucketDepth = 5
)

type indexSlot struct {
	uri   string
	found bool
}

// ComponentNav accumulates the classified files of one component during a build.
type ComponentNav struct {
	navFile string
	slug    string

	userIndex indexSlot
	devIndex  indexSlot

	uris  map[Persona][]string
	extra []string
	seen  map[string]struct{}
}

// NewComponentNav returns an empty ComponentNav for the component at slug.
// navFile is the name of a curated table of contents, e.g. "_SUMMARY.md".
func NewComponentNav(navFile, slug string) *ComponentNav {
	return &ComponentNav{
		navFile:   navFile,
		slug:      slug,
		userIndex: indexSlot{uri: IndexURI(slug)},
		devIndex:  indexSlot{uri: DevIndexURI(slug)},
		uris:      make(map[Persona][]string, len(Personas)),
		seen:      make(map[string]struct{}),
	}
}

// Slug returns the component slug.
func (cn *ComponentNav) Slug() string {
	return cn.slug
}

// Add classifies one site path of the form `{slug}/...`.
// Every distinct path is recorded at most once.
func (cn *ComponentNav) Add(l log.Logger, uri string) Classification {
	if path.Ext(uri) != markdownExt {
		return NotMarkdown
	}

	parts := strings.Split(uri, "/")
	if parts[0] != cn.slug {
		l.Infof("Skipping %s: not under component %s", uri, cn.slug)
		return Unnavigable
	}

	if _, ok := cn.seen[uri]; ok {
		return Duplicate
	}

	class := cn.classify(parts, uri)

	switch class {
	case UserIndex:
		cn.userIndex.found = true
	case DevIndex:
		cn.devIndex.found = true
	case Extra:
		cn.extra = append(cn.extra, uri)
	case User:
		cn.uris[PersonaUser] = append(cn.uris[PersonaUser], uri)
	case Admin:
		cn.uris[PersonaAdmin] = append(cn.uris[PersonaAdmin], uri)
	case Dev:
		cn.uris[PersonaDev] = append(cn.uris[PersonaDev], uri)
	default:
		l.Infof("Unnavigable file %s", uri)
		return class
	}

	cn.seen[uri] = struct{}{}

	return class
}

func (cn *ComponentNav) classify(parts []string, uri string) Classification {
	switch {
	case uri == cn.userIndex.uri:
		return UserIndex
	case uri == cn.devIndex.uri:
		return DevIndex
	case len(parts) == 2:
		return Extra
	case len(parts) < 3:
		return Unnavigable
	}

	persona, ok := ParsePersona(parts[2])
	if !ok {
		return Unnavigable
	}

	switch persona {
	case PersonaUser:
		return User
	case PersonaAdmin:
		return Admin
	case PersonaDev:
		return Dev
	}

	return Unnavigable
}

func (cn *ComponentNav) hasUserContent() bool {
	return len(cn.uris[PersonaUser])+len(cn.uris[PersonaAdmin]) > 0
}

func (cn *ComponentNav) hasDevContent() bool {
	return len(cn.uris[PersonaDev]) > 0
}

// UserNav returns the component's User Manual entry, or an empty tree when the
// component has neither user nor admin content nor a user index.
func (cn *ComponentNav) UserNav(l log.Logger) Tree {
	if !cn.hasUserContent() && !cn.userIndex.found {
		return Tree{}
	}

	tree := Tree{Page(cn.userIndex.uri)}

	for _, persona := range []Persona{PersonaUser, PersonaAdmin} {
		tree = append(tree, NewSection(persona.SectionTitle(), cn.buckets(l, cn.uris[persona])...))
	}

	for _, uri := range cn.extra {
		tree = append(tree, Page(uri))
	}

	return tree
}

// DevNav returns the component's Developer Manual entry, or an empty tree when the
// component has neither dev content nor a dev index.
func (cn *ComponentNav) DevNav(l log.Logger) Tree {
	if !cn.hasDevContent() && !cn.devIndex.found {
		return Tree{}
	}

	return append(Tree{Page(cn.devIndex.uri)}, cn.buckets(l, cn.uris[PersonaDev])...)
}

// MissingIndices returns the index paths that have content under them but no index file.
func (cn *ComponentNav) MissingIndices() []string {
	var missing []string

	if !cn.userIndex.found && cn.hasUserContent() {
		missing = append(missing, cn.userIndex.uri)
	}

	if !cn.devIndex.found && cn.hasDevContent() {
		missing = append(missing, cn.devIndex.uri)
	}

	return missing
}

// buckets sorts uris into the four content-type sections. A bucket whose directory
// holds the nav file is rendered as a reference to that directory.
func (cn *ComponentNav) buckets(l log.Logger, uris []string) Tree {
	sections := make(map[ContentType]*Section, len(ContentTypes))
	tree := make(Tree, 0, len(ContentTypes))

	for _, ct := range ContentTypes {
		section := NewSection(ct.Title())
		sections[ct] = section
		tree = append(tree, section)
	}

	for _, uri := range uris {
		parts := strings.Split(uri, "/")

		var ct ContentType

		ok := len(parts) > 4
		if ok {
			ct, ok = ParseContentType(parts[3])
		}

		if !ok {
			l.Infof("Could not navigate %s", uri)
			continue
		}

		section := sections[ct]

		if len(parts) == bucketDepth && parts[4] == cn.navFile {
			section.Ref = path.Dir(uri) + "/"
			continue
		}

		section.Children = append(section.Children, Page(uri))
	}

	for _, section := range sections {
		if section.Ref != "" {
			section.Children = Tree{}
		}
	}

	return tree
}
