package loader_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kpaths/loader"
)

const sampleYAML = `
directed: true
weighted: true
multigraph: true
vertices: [z]
edges:
  - {from: a, to: b, weight: 1}
  - {from: a, to: b, weight: 2.5}
  - {from: b, to: c, weight: 3}
`

func TestFromReader_YAML(t *testing.T) {
	g, err := loader.FromReader(strings.NewReader(sampleYAML), loader.FormatYAML, loader.CompressionNone)
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.True(t, g.Multigraph())
	assert.Equal(t, []string{"a", "b", "c", "z"}, g.Vertices())
	require.Equal(t, 3, g.EdgeCount())
	e, err := g.GetEdge("e2")
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Weight)
}

func TestFromReader_JSON(t *testing.T) {
	doc := `{"directed": false, "weighted": true, "edges": [{"from": "x", "to": "y", "weight": 4}]}`
	g, err := loader.FromReader(strings.NewReader(doc), loader.FormatJSON, loader.CompressionNone)
	require.NoError(t, err)
	assert.False(t, g.Directed())
	assert.True(t, g.HasEdge("y", "x"))
}

func TestFromReader_Errors(t *testing.T) {
	_, err := loader.FromReader(strings.NewReader("  \n"), loader.FormatYAML, loader.CompressionNone)
	assert.ErrorIs(t, err, loader.ErrEmptyDocument)

	_, err = loader.FromReader(strings.NewReader("directed: true\n"), loader.FormatYAML, loader.CompressionNone)
	assert.ErrorIs(t, err, loader.ErrEmptyDocument)

	// weight on an unweighted graph
	bad := "edges:\n  - {from: a, to: b, weight: 3}\n"
	_, err = loader.FromReader(strings.NewReader(bad), loader.FormatYAML, loader.CompressionNone)
	assert.ErrorIs(t, err, loader.ErrBadEdge)

	_, err = loader.FromReader(strings.NewReader("{"), loader.FormatJSON, loader.CompressionNone)
	assert.Error(t, err)

	_, err = loader.FromReader(strings.NewReader("x"), loader.Format("toml"), loader.CompressionNone)
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestDetectFormat(t *testing.T) {
	for name, want := range map[string][2]string{
		"g.yaml":        {"yaml", ""},
		"g.YML":         {"yaml", ""},
		"dir/g.json.gz": {"json", "gzip"},
		"g.yaml.zst":    {"yaml", "zstd"},
		"g.json.lz4":    {"json", "lz4"},
	} {
		f, c, err := loader.DetectFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want[0], string(f), name)
		assert.Equal(t, want[1], string(c), name)
	}

	_, _, err := loader.DetectFormat("g.csv")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestWriteDocument_RoundTripCompressed(t *testing.T) {
	doc, err := loader.ReadDocument(strings.NewReader(sampleYAML), loader.FormatYAML, loader.CompressionNone)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, name := range []string{"g.json.gz", "g.yaml.zst", "g.json.lz4", "g.yml"} {
		format, comp, err := loader.DetectFormat(name)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, loader.WriteDocument(&buf, doc, format, comp))
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		g, err := loader.FromFile(path)
		require.NoError(t, err, name)
		assert.Equal(t, 3, g.EdgeCount(), name)
		assert.Equal(t, 4, g.VertexCount(), name)
	}
}

func TestFromFile_Missing(t *testing.T) {
	_, err := loader.FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromNeo4j(t *testing.T) {
	c := loader.NewMemoryClient()
	c.PushReadResult(loader.Result{Records: []loader.Record{
		{"source": "a", "target": "b", "weight": 1.5},
		{"source": "b", "target": "c", "weight": int64(2)},
		{"source": int64(7), "target": "c", "weight": nil},
	}})

	g, err := loader.FromNeo4j(context.Background(), c, loader.Query{Directed: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "a", "b", "c"}, g.Vertices())

	e, err := g.GetEdge("e3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Weight, "missing weight defaults to 1")

	reads := c.Reads()
	require.Len(t, reads, 1)
	assert.Equal(t, loader.DefaultCypher, reads[0].Query)
}

func TestFromNeo4j_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := loader.FromNeo4j(ctx, loader.NewMemoryClient(), loader.Query{})
	assert.ErrorIs(t, err, loader.ErrEmptyDocument)

	boom := errors.New("boom")
	_, err = loader.FromNeo4j(ctx, loader.NewMemoryClient().WithError(boom), loader.Query{})
	assert.ErrorIs(t, err, boom)

	c := loader.NewMemoryClient()
	c.PushReadResult(loader.Result{Records: []loader.Record{{"source": "a", "weight": 1.0}}})
	_, err = loader.FromNeo4j(ctx, c, loader.Query{Cypher: "MATCH (n) RETURN n"})
	assert.ErrorIs(t, err, loader.ErrBadEdge)

	c = loader.NewMemoryClient()
	c.PushReadResult(loader.Result{Records: []loader.Record{{"source": "a", "target": "b", "weight": "heavy"}}})
	_, err = loader.FromNeo4j(ctx, c, loader.Query{})
	assert.ErrorIs(t, err, loader.ErrBadEdge)
}

func TestFromNeo4j_SelfLoop(t *testing.T) {
	c := loader.NewMemoryClient()
	c.PushReadResult(loader.Result{Records: []loader.Record{
		{"source": "a", "target": "a", "weight": 1.0},
		{"source": "a", "target": "b", "weight": 2.0},
	}})

	g, err := loader.FromNeo4j(context.Background(), c, loader.Query{Directed: true})
	require.NoError(t, err)
	assert.True(t, g.Looped())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
}

func TestNewNeo4jClient_MissingURI(t *testing.T) {
	_, err := loader.NewNeo4jClient(context.Background(), loader.Neo4jOptions{})
	assert.ErrorIs(t, err, loader.ErrMissingURI)
}
