package nav_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/mrdocs/mrdocs/internal/nav"
	"github.com/mrdocs/mrdocs/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const navFile = "_SUMMARY.md"

func quietLogger() log.Logger {
	return log.New(log.WithOutput(io.Discard))
}

func toJSON(t *testing.T, tree nav.Tree) string {
	t.Helper()

	out, err := json.Marshal(tree)
	require.NoError(t, err)

	return string(out)
}

const emptyBuckets = `[{"Tutorials":[]},{"How-to Guides":[]},{"Learn More":[]},{"Reference":[]}]`

func TestComponentNavScenarioA(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")

	assert.Equal(t, nav.UserIndex, cn.Add(l, "core/index.md"))
	assert.Equal(t, nav.User, cn.Add(l, "core/docs/user/guides/install.md"))
	assert.Equal(t, nav.DevIndex, cn.Add(l, "core/docs/dev/index.md"))

	assert.JSONEq(t,
		`["core/index.md",
		  {"Usage":[{"Tutorials":[]},{"How-to Guides":["core/docs/user/guides/install.md"]},{"Learn More":[]},{"Reference":[]}]},
		  {"Administration":`+emptyBuckets+`}]`,
		toJSON(t, cn.UserNav(l)))

	assert.JSONEq(t,
		`["core/docs/dev/index.md",{"Tutorials":[]},{"How-to Guides":[]},{"Learn More":[]},{"Reference":[]}]`,
		toJSON(t, cn.DevNav(l)))

	assert.Empty(t, cn.MissingIndices())
}

func TestComponentNavEmpty(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")

	assert.Empty(t, cn.UserNav(l))
	assert.Empty(t, cn.DevNav(l))
	assert.Empty(t, cn.MissingIndices())
	assert.JSONEq(t, `[]`, toJSON(t, cn.UserNav(l)))
}

func TestComponentNavIndexOnly(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")
	cn.Add(l, "core/index.md")

	tree := cn.UserNav(l)
	require.NotEmpty(t, tree)
	assert.Equal(t, nav.Page("core/index.md"), tree[0])
	assert.Empty(t, cn.MissingIndices())
	assert.Empty(t, cn.DevNav(l))
}

func TestComponentNavMissingIndex(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")
	cn.Add(l, "core/docs/user/guides/x.md")
	cn.Add(l, "core/docs/admin/reference/settings.md")
	cn.Add(l, "core/docs/dev/learn/arch.md")

	assert.Equal(t, []string{"core/index.md", "core/docs/dev/index.md"}, cn.MissingIndices())

	assert.JSONEq(t,
		`["core/index.md",
		  {"Usage":[{"Tutorials":[]},{"How-to Guides":["core/docs/user/guides/x.md"]},{"Learn More":[]},{"Reference":[]}]},
		  {"Administration":[{"Tutorials":[]},{"How-to Guides":[]},{"Learn More":[]},{"Reference":["core/docs/admin/reference/settings.md"]}]}]`,
		toJSON(t, cn.UserNav(l)))

	assert.JSONEq(t,
		`["core/docs/dev/index.md",{"Tutorials":[]},{"How-to Guides":[]},{"Learn More":["core/docs/dev/learn/arch.md"]},{"Reference":[]}]`,
		toJSON(t, cn.DevNav(l)))
}

func TestComponentNavAddIsIdempotent(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")

	assert.Equal(t, nav.User, cn.Add(l, "core/docs/user/guides/x.md"))
	assert.Equal(t, nav.Duplicate, cn.Add(l, "core/docs/user/guides/x.md"))
	assert.Equal(t, nav.Extra, cn.Add(l, "core/changes.md"))
	assert.Equal(t, nav.Duplicate, cn.Add(l, "core/changes.md"))

	tree := cn.UserNav(l)
	assert.Equal(t, []string{"core/index.md", "core/docs/user/guides/x.md", "core/changes.md"}, tree.Pages())
	assert.Equal(t, nav.Page("core/changes.md"), tree[len(tree)-1])
	assert.Len(t, tree, 4)
	assert.Equal(t, []string{"core/index.md"}, cn.MissingIndices())
}

func TestComponentNavClassification(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		uri      string
		expected nav.Classification
	}{
		{"core/index.md", nav.UserIndex},
		{"core/docs/dev/index.md", nav.DevIndex},
		{"core/changes.md", nav.Extra},
		{"core/docs/user/tutorials/a.md", nav.User},
		{"core/docs/admin/guides/b.md", nav.Admin},
		{"core/docs/dev/reference/c.md", nav.Dev},
		{"core/docs/sections.md", nav.Unnavigable},
		{"core/docs/includes/snippet.md", nav.Unnavigable},
		{"core/docs/assets/logo.png", nav.NotMarkdown},
		{"other/docs/user/guides/a.md", nav.Unnavigable},
	}

	for _, tc := range testCases {
		t.Run(tc.uri, func(t *testing.T) {
			t.Parallel()

			cn := nav.NewComponentNav(navFile, "core")
			assert.Equal(t, tc.expected, cn.Add(quietLogger(), tc.uri))
		})
	}
}

func TestComponentNavUnnavigableIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := log.New(log.WithOutput(&buf))
	cn := nav.NewComponentNav(navFile, "core")

	cn.Add(l, "core/docs/includes/snippet.md")
	cn.Add(l, "core/docs/user/misc.md")

	assert.Contains(t, buf.String(), "core/docs/includes/snippet.md")

	// Counted towards the Usage section but not placed in a bucket.
	tree := cn.UserNav(l)
	assert.Equal(t, []string{"core/index.md"}, tree.Pages())
	assert.Contains(t, buf.String(), "Could not navigate core/docs/user/misc.md")
}

func TestComponentNavExtrasAloneDoNotTriggerUserNav(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")
	cn.Add(l, "core/changes.md")

	assert.Empty(t, cn.UserNav(l))
	assert.Empty(t, cn.MissingIndices())
}

func TestComponentNavNavFileTurnsBucketIntoReference(t *testing.T) {
	t.Parallel()

	l := quietLogger()

	for _, order := range [][]string{
		{"core/docs/user/guides/a.md", "core/docs/user/guides/_SUMMARY.md"},
		{"core/docs/user/guides/_SUMMARY.md", "core/docs/user/guides/a.md"},
	} {
		cn := nav.NewComponentNav(navFile, "core")
		cn.Add(l, "core/index.md")

		for _, uri := range order {
			cn.Add(l, uri)
		}

		assert.JSONEq(t,
			`["core/index.md",
			  {"Usage":[{"Tutorials":[]},{"How-to Guides":"core/docs/user/guides/"},{"Learn More":[]},{"Reference":[]}]},
			  {"Administration":`+emptyBuckets+`}]`,
			toJSON(t, cn.UserNav(l)))
	}
}

func TestComponentNavPreservesAddOrder(t *testing.T) {
	t.Parallel()

	l := quietLogger()
	cn := nav.NewComponentNav(navFile, "core")
	cn.Add(l, "core/docs/dev/guides/zeta.md")
	cn.Add(l, "core/docs/dev/guides/alpha.md")

	assert.Equal(t, []string{"core/docs/dev/index.md", "core/docs/dev/guides/zeta.md", "core/docs/dev/guides/alpha.md"}, cn.DevNav(l).Pages())
}

func TestTreeMarshalYAML(t *testing.T) {
	t.Parallel()

	tree := nav.Tree{
		nav.Page("core/index.md"),
		nav.NewSection("Usage", nav.NewSection("Tutorials"), nav.NewSection("How-to Guides", nav.Page("core/docs/user/guides/x.md"))),
		&nav.Section{Title: "Reference", Ref: "core/docs/user/reference/"},
	}

	out, err := yaml.Marshal(tree)
	require.NoError(t, err)

	var decoded any
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	expected := []any{
		"core/index.md",
		map[string]any{"Usage": []any{
			map[string]any{"Tutorials": []any{}},
			map[string]any{"How-to Guides": []any{"core/docs/user/guides/x.md"}},
		}},
		map[string]any{"Reference": "core/docs/user/reference/"},
	}
	assert.Equal(t, expected, decoded)
}

func TestPathBuilders(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "core/index.md", nav.IndexURI("core"))
	assert.Equal(t, "core/docs/dev/index.md", nav.DevIndexURI("core"))
	assert.Equal(t, "core/docs/admin/learn", nav.ContentDir("core", nav.PersonaAdmin, nav.ContentLearn))
	assert.Equal(t, "core/docs/user/reference/api.md", nav.URI("core", nav.PersonaUser, nav.ContentReference, "api.md"))
	assert.Equal(t, "How-to Guides", nav.ContentGuides.Title())
	assert.Equal(t, "Administration", nav.PersonaAdmin.SectionTitle())
}
