package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/heatrod/internal/config"
	"github.com/san-kum/heatrod/internal/experiment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func runSmall(t *testing.T, preset string) (*config.Config, *experiment.Result) {
	t.Helper()
	cfg := config.GetPreset(preset)
	cfg.Space.Points = 11
	cfg.Time.Points = 5
	cfg.Seed = 42

	res, err := experiment.New(cfg, nil).Run(context.Background())
	require.NoError(t, err)
	return cfg, res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	cfg, res := runSmall(t, "neumann_cosine")
	runID, err := st.Save(cfg, res)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "neumann_cosine_"))

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "neumann", meta.Boundary)
	assert.Equal(t, "neumann_cosine", meta.Coefficients)
	assert.Equal(t, int64(42), meta.Seed)
	assert.Equal(t, 11, meta.SpacePoints)
	assert.Equal(t, 5, meta.TimePoints)
	assert.Equal(t, res.Metrics["max_temperature"], meta.Metrics["max_temperature"])

	for _, tc := range []struct {
		field Field
		want  *mat.Dense
	}{
		{Temperature, res.Temperature},
		{Flux, res.Flux},
	} {
		g, err := st.LoadGrid(runID, tc.field)
		require.NoError(t, err, tc.field)
		assert.Equal(t, res.Space, g.Space)
		assert.Equal(t, res.Times, g.Times)
		assert.True(t, mat.Equal(tc.want, g.Values), "%s grid changed on round trip", tc.field)
	}
}

func TestStoreSave_SameSecond(t *testing.T) {
	st := New(t.TempDir())
	cfg, res := runSmall(t, "dirichlet_bump")

	a, err := st.Save(cfg, res)
	require.NoError(t, err)
	b, err := st.Save(cfg, res)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStoreList(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "not_a_run"), 0755))
	cfg, res := runSmall(t, "dirichlet_bump")
	_, err = st.Save(cfg, res)
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "dirichlet_bump", runs[0].Name)
}

func TestStoreMissing(t *testing.T) {
	st := New(t.TempDir())

	_, err := st.Load("nonexistent")
	assert.Error(t, err)

	_, err = st.LoadGrid("nonexistent", Temperature)
	assert.Error(t, err)

	_, err = st.LoadGrid("nonexistent", Field("pressure"))
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestWriteReadGrid(t *testing.T) {
	space := []float64{0, 0.5, 1}
	times := []float64{0, 0.125}
	values := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 1.0 / 3,
		0, -2e-17,
	})

	var buf bytes.Buffer
	require.NoError(t, WriteGrid(&buf, space, times, values))
	assert.True(t, strings.HasPrefix(buf.String(), "x,0,0.125\n"))

	g, err := ReadGrid(&buf)
	require.NoError(t, err)
	assert.Equal(t, space, g.Space)
	assert.Equal(t, times, g.Times)
	assert.True(t, mat.Equal(values, g.Values))
	assert.Equal(t, 1.0/3, g.Column(1)[1])
}

func TestWriteGrid_ShapeMismatch(t *testing.T) {
	err := WriteGrid(&bytes.Buffer{}, []float64{0, 1}, []float64{0}, mat.NewDense(3, 1, nil))
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestReadGrid_Malformed(t *testing.T) {
	for name, body := range map[string]string{
		"empty":       "",
		"header only": "x,0,1\n",
		"bad number":  "x,0\n0,abc\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadGrid(strings.NewReader(body))
			assert.Error(t, err)
		})
	}
}

func TestExportJSON(t *testing.T) {
	_, res := runSmall(t, "dirichlet_bump")

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, res))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "dirichlet", data.Boundary)
	require.Len(t, data.Temperature, 11)
	assert.Len(t, data.Temperature[0], 5)
	assert.Equal(t, res.Temperature.At(4, 2), data.Temperature[4][2])
	assert.Equal(t, res.Flux.At(10, 4), data.Flux[10][4])
}
