package component_test

import (
	"path/filepath"
	"testing"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecVariant(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		path           string
		expected       component.Variant
		repositoryName string
		componentName  string
	}{
		{
			name:           "repository",
			path:           "pulpcore",
			expected:       component.Repository{Name: "pulpcore"},
			repositoryName: "pulpcore",
			componentName:  "pulpcore",
		},
		{
			name:           "subpackage",
			path:           "pulp-glue/pulp_glue",
			expected:       component.SubPackage{Parent: "pulp-glue", Name: "pulp_glue", Path: "pulp-glue/pulp_glue"},
			repositoryName: "pulp-glue",
			componentName:  "pulp_glue",
		},
		{
			name:           "nested subpackage",
			path:           "mono/pkgs/inner",
			expected:       component.SubPackage{Parent: "mono", Name: "inner", Path: "mono/pkgs/inner"},
			repositoryName: "mono",
			componentName:  "inner",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			spec := &component.Spec{Title: "X", Path: tc.path, Kind: component.KindCore}

			assert.Equal(t, tc.expected, spec.Variant())
			assert.Equal(t, tc.repositoryName, spec.RepositoryName())
			assert.Equal(t, tc.componentName, spec.ComponentName())
		})
	}
}

func TestLoadedComponentDir(t *testing.T) {
	t.Parallel()

	work := t.TempDir()

	repo := &component.Loaded{
		Spec:          &component.Spec{Title: "Core", Path: "core", Kind: component.KindCore},
		RepositoryDir: filepath.Join(work, "core"),
	}
	assert.Equal(t, filepath.Join(work, "core"), repo.ComponentDir())
	assert.Equal(t, "core", repo.Slug())

	sub := &component.Loaded{
		Spec:          &component.Spec{Title: "Glue", Path: "pulp-glue/pulp_glue", Kind: component.KindExtra},
		RepositoryDir: filepath.Join(work, "pulp-glue"),
	}
	assert.Equal(t, filepath.Join(work, "pulp-glue", "pulp_glue"), sub.ComponentDir())
	assert.Equal(t, "pulp_glue", sub.Slug())

	rel, err := sub.RelToRepository(filepath.Join(sub.ComponentDir(), "docs", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "pulp_glue/docs/index.md", rel)
}

func TestSpecsHelpers(t *testing.T) {
	t.Parallel()

	specs := component.Specs{
		{Title: "B", Path: "b", Kind: component.KindCore},
		{Title: "A", Path: "a", Kind: component.KindPlugin},
		{Title: "C", Path: "repo/c", Kind: component.KindCore},
	}

	assert.Equal(t, []string{"b", "a", "c"}, specs.Names())
	assert.Equal(t, []string{"b", "c"}, specs.Filter(component.KindCore).Names())
	assert.Same(t, specs[2], specs.FindByPath("repo/c"))
	assert.Nil(t, specs.FindByPath("missing"))
}
