package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeManifestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write manifest: %v", err)
	}

	return path
}

func Test_LoadManifest(t *testing.T) {
	testCases := []struct {
		name      string
		file      string
		content   string
		expect    Manifest
		expectErr bool
	}{
		{
			name: "yaml",
			file: "jelcol.yml",
			content: `dir: ./models
columns:
  - Color
  - AppliedAt
queryable:
  - Swatch
`,
			expect: Manifest{
				Dir:       "models",
				Columns:   []string{"Color", "AppliedAt"},
				Queryable: []string{"Swatch"},
			},
		},
		{
			name:    "json",
			file:    "jelcol.json",
			content: `{"columns": ["Color"]}`,
			expect: Manifest{
				Dir:     ".",
				Columns: []string{"Color"},
			},
		},
		{
			name:      "unsupported extension",
			file:      "jelcol.toml",
			content:   `columns = ["Color"]`,
			expectErr: true,
		},
		{
			name:      "nothing to generate",
			file:      "jelcol.yml",
			content:   `dir: .`,
			expectErr: true,
		},
		{
			name:      "malformed yaml",
			file:      "jelcol.yml",
			content:   "columns: [",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			path := writeManifestFile(t, tc.file, tc.content)

			actual, err := LoadManifest(path)

			if tc.expectErr {
				assert.Error(err)
				return
			}

			if !assert.NoError(err) {
				return
			}

			// Dir is resolved relative to the manifest's directory
			expectDir := filepath.Join(filepath.Dir(path), tc.expect.Dir)
			assert.Equal(expectDir, actual.Dir)
			assert.Equal(tc.expect.Columns, actual.Columns)
			assert.Equal(tc.expect.Queryable, actual.Queryable)
		})
	}
}

func Test_LoadManifest_missingFile(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yml"))

	assert.Error(err)
}

func Test_WriteFiles(t *testing.T) {
	assert := assert.New(t)

	outDir := filepath.Join(t.TempDir(), "out")
	files := []GeneratedFile{
		{Filename: "color_column.go", Content: []byte("package paint\n")},
		{Filename: "swatch_queryable.go", Content: []byte("package paint\n")},
	}

	err := WriteFiles(files, outDir)
	if !assert.NoError(err) {
		return
	}

	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(outDir, f.Filename))
		if !assert.NoError(err) {
			continue
		}
		assert.Equal(f.Content, data)
	}
}
