package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	ds, err := Load(Embedded())
	require.NoError(t, err)
	require.Equal(t, 40, ds.Len())
	require.Len(t, ds.X, ds.Len())
	for _, row := range ds.X {
		require.Len(t, row, 8)
	}
	require.Equal(t, []float64{6, 148, 72, 35, 0, 33.6, 0.627, 50}, ds.X[0])
	require.Equal(t, 1, ds.Y[0])
	require.Equal(t, 0, ds.Y[1])
	require.Equal(t, map[string]int{"tested_negative": 0, "tested_positive": 1}, ds.Classes)
}

func TestParse_NumericClassesNoHeader(t *testing.T) {
	ds, err := Parse(strings.NewReader("1,2,3,4,5,6,7,8,0\n8,7,6,5,4,3,2,1,1\n"))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, ds.Y)
	require.Empty(t, ds.Classes)
}

func TestParse_UnknownClassTokens(t *testing.T) {
	ds, err := Parse(strings.NewReader("a,b,c,d,e,f,g,h,class\n1,2,3,4,5,6,7,8,yes\n1,2,3,4,5,6,7,8,no\n1,2,3,4,5,6,7,8,yes\n"))
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 2}, ds.Y)
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":       "",
		"header only": "preg,plas,pres,skin,insu,mass,pedi,age,class\n",
		"bad number":  "1,2,3,4,5,6,7,8,0\n1,x,3,4,5,6,7,8,0\n",
		"wrong width": "1,2,3,0\n",
		"empty class": "1,2,3,4,5,6,7,8,\n",
	}
	for name, in := range cases {
		_, err := Parse(strings.NewReader(in))
		require.Error(t, err, name)
	}
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "d.csv")
	require.NoError(t, os.WriteFile(p, []byte("# comment\n1,2,3,4,5,6,7,8,1\n"), 0o644))
	ds, err := Load(File(p))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())

	_, err = Load(File(filepath.Join(t.TempDir(), "missing.csv")))
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing.csv")
}
