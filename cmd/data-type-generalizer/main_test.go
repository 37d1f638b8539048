package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRunSuccess(t *testing.T) {
	in := writeTemp(t, "in.csv", "a,b\n1,x\n2,y\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code := run([]string{"--type_map", "int:float", in, out})
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1.0,x\n2.0,y\n", string(data))
}

func TestRunWithMapFile(t *testing.T) {
	in := writeTemp(t, "in.csv", "a\n1\n")
	mapFile := writeTemp(t, "map.yaml", "int: float\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code := run([]string{"--map_file", mapFile, in, out})
	require.Equal(t, exitOK, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\n1.0\n", string(data))
}

func TestRunFailures(t *testing.T) {
	in := writeTemp(t, "in.csv", "a,b\n1,x\n")

	tests := []struct {
		name string
		args func(out string) []string
		code int
	}{
		{
			name: "malformed type map",
			args: func(out string) []string { return []string{"--type_map", "intfloat", in, out} },
			code: exitParse,
		},
		{
			name: "unknown type in map",
			args: func(out string) []string { return []string{"--type_map", "int:double", in, out} },
			code: exitParse,
		},
		{
			name: "no type map at all",
			args: func(out string) []string { return []string{in, out} },
			code: exitParse,
		},
		{
			name: "both map sources",
			args: func(out string) []string {
				return []string{"--type_map", "int:float", "--map_file", "map.yaml", in, out}
			},
			code: exitParse,
		},
		{
			name: "multi-character delimiter",
			args: func(out string) []string {
				return []string{"--type_map", "int:float", "--delimiter", "ab", in, out}
			},
			code: exitParse,
		},
		{
			name: "missing positional arguments",
			args: func(out string) []string { return []string{"--type_map", "int:float", in} },
			code: exitParse,
		},
		{
			name: "missing input file",
			args: func(out string) []string {
				return []string{"--type_map", "int:float", filepath.Join(t.TempDir(), "nope.csv"), out}
			},
			code: exitLoad,
		},
		{
			name: "unconvertible column",
			args: func(out string) []string { return []string{"--type_map", "str:int", in, out} },
			code: exitConvert,
		},
		{
			name: "unwritable output path",
			args: func(out string) []string {
				return []string{"--type_map", "int:float", in, filepath.Join(out, "missing", "out.csv")}
			},
			code: exitWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "out.csv")

			code := run(tt.args(out))
			assert.Equal(t, tt.code, code)

			// no output file may exist after any failure
			_, err := os.Stat(out)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestRunVerbose(t *testing.T) {
	in := writeTemp(t, "in.csv", "a\n1\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	code := run([]string{"--verbose", "--type_map", "int:float", in, out})
	require.Equal(t, exitOK, code)
}
