package library_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glycoproteomics/cafog/pkg/reader/library"
)

func TestRead(t *testing.T) {
	in := strings.Join([]string{
		"glycan,composition,abundance",
		"A2G0F,,42.5",
		`custom,"2 Hex, 1 Fuc",10`,
		"A2G1F,",
	}, "\n")

	records, err := library.Read(strings.NewReader(in), "glycans.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "A2G0F", records[0].Name)
	assert.Empty(t, records[0].Composition)
	assert.InDelta(t, 42.5, records[0].Abundance, 1e-12)

	assert.Equal(t, "custom", records[1].Name)
	assert.Equal(t, "2 Hex, 1 Fuc", records[1].Composition)

	assert.Equal(t, "A2G1F", records[2].Name)
	assert.Zero(t, records[2].Abundance)
}

func TestRead_InvalidAbundance(t *testing.T) {
	in := "glycan,composition,abundance\nA2G0F,,oops\n"
	_, err := library.Read(strings.NewReader(in), "glycans.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid abundance")
}

func TestRead_HeaderOnly(t *testing.T) {
	records, err := library.Read(strings.NewReader("glycan,composition\n"), "glycans.csv")
	require.NoError(t, err)
	assert.Empty(t, records)
}
