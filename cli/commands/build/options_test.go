package build_test

import (
	"testing"

	"github.com/mrdocs/mrdocs/cli/commands/build"
	"github.com/mrdocs/mrdocs/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		outputDir string
		exclude   []string
		wantErr   string
	}{
		{name: "valid", outputDir: "site-data", exclude: []string{"**/drafts/**"}},
		{name: "empty output", outputDir: "", wantErr: "output directory"},
		{name: "bad pattern", outputDir: "site-data", exclude: []string{"[oops"}, wantErr: "invalid exclude pattern"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			opts := build.NewOptions(&options.DocsOptions{OutputDir: tc.outputDir, Exclude: tc.exclude})

			err := opts.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
