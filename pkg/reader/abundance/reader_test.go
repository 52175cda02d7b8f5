package abundance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glycoproteomics/cafog/pkg/reader/abundance"
)

func TestRead(t *testing.T) {
	in := strings.Join([]string{
		"# glycoform abundances",
		"A2G0F/A2G0F,40.5,1.2",
		"A2G0F/A2G1F,35,0.8",
		"A2G1F/A2G1F,20,0.5",
	}, "\n")

	records, err := abundance.Read(strings.NewReader(in), "glycoforms.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "A2G0F/A2G0F", records[0].Label)
	assert.InDelta(t, 40.5, records[0].Abundance.Nominal, 1e-12)
	assert.InDelta(t, 1.2, records[0].Abundance.StdDev, 1e-12)
	assert.Equal(t, "A2G1F/A2G1F", records[2].Label)
}

func TestRead_MissingErrorColumn(t *testing.T) {
	in := "0,85\n1,10\n2,5\n"

	records, err := abundance.Read(strings.NewReader(in), "glycation.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, r := range records {
		assert.Zero(t, r.Abundance.StdDev)
	}
	assert.InDelta(t, 85, records[0].Abundance.Nominal, 1e-12)
}

func TestRead_ExtraColumnsIgnored(t *testing.T) {
	in := "A2G0F/A2G0F,40,1,extra,columns\n"

	records, err := abundance.Read(strings.NewReader(in), "glycoforms.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.InDelta(t, 40, records[0].Abundance.Nominal, 1e-12)
	assert.InDelta(t, 1, records[0].Abundance.StdDev, 1e-12)
}

func TestRead_TooFewColumns(t *testing.T) {
	_, err := abundance.Read(strings.NewReader("A2G0F/A2G0F\n"), "glycoforms.csv")
	assert.ErrorIs(t, err, abundance.ErrTooFewColumns)
}

func TestRead_InvalidValue(t *testing.T) {
	_, err := abundance.Read(strings.NewReader("A2G0F/A2G0F,abc,1\n"), "glycoforms.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestRead_Empty(t *testing.T) {
	records, err := abundance.Read(strings.NewReader(""), "glycoforms.csv")
	require.NoError(t, err)
	assert.Empty(t, records)
}
