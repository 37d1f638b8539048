package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/dataset"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/generalize"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/typemap"
)

func TestWriteCSVRoundTrip(t *testing.T) {
	in := writeTemp(t, "in.csv", "a,b\n1,x\n2,y\n")

	f, err := dataset.Load(in, dataset.Options{})
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, dataset.Write(f, out, dataset.Options{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,x\n2,y\n", string(data))
}

func TestWriteCSVAfterGeneralize(t *testing.T) {
	// the canonical scenario: int:float turns 1 into 1.0
	in := writeTemp(t, "in.csv", "a,b\n1,x\n2,y\n")

	f, err := dataset.Load(in, dataset.Options{})
	require.NoError(t, err)

	m, err := typemap.Parse("int:float")
	require.NoError(t, err)
	require.NoError(t, generalize.Apply(f, m))

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, dataset.Write(f, out, dataset.Options{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1.0,x\n2.0,y\n", string(data))
}

func TestWriteCSVDelimiter(t *testing.T) {
	in := writeTemp(t, "in.csv", "a;b\n1;x\n")
	opts := dataset.Options{Delimiter: ';'}

	f, err := dataset.Load(in, opts)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, dataset.Write(f, out, opts))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a;b\n1;x\n", string(data))
}

func TestWriteJSONL(t *testing.T) {
	in := writeTemp(t, "in.jsonl",
		`{"a":1,"b":"x","c":true}`+"\n"+
			`{"a":2,"b":"y","c":false}`+"\n")

	f, err := dataset.Load(in, dataset.Options{})
	require.NoError(t, err)

	m, err := typemap.Parse("int:float")
	require.NoError(t, err)
	require.NoError(t, generalize.Apply(f, m))

	out := filepath.Join(t.TempDir(), "out.jsonl")
	require.NoError(t, dataset.Write(f, out, dataset.Options{}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t,
		`{"a":1,"b":"x","c":true}`+"\n"+
			`{"a":2,"b":"y","c":false}`+"\n",
		string(data))
}

func TestWriteErrorOnBadPath(t *testing.T) {
	f, err := dataset.Load(writeTemp(t, "in.csv", "a\n1\n"), dataset.Options{})
	require.NoError(t, err)

	err = dataset.Write(f, filepath.Join(t.TempDir(), "no", "such", "dir", "out.csv"), dataset.Options{})
	require.Error(t, err)
}
