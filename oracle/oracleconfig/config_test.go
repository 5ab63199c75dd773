package oracleconfig_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadav-alali/fairsweep/dataset"
	"github.com/nadav-alali/fairsweep/oracle/oracleconfig"
)

const validYAML = `
top_k_fraction: 0.5
constraints:
  0:
    blue: {min: 0.4, max: 0.6}
    orange: {min: 0.4, max: 0.6}
`

func TestLoadBracketed_ValidDocument(t *testing.T) {
	o, err := oracleconfig.LoadBracketed(strings.NewReader(validYAML))
	require.NoError(t, err)

	// top_k_fraction=0.5 over four items examines the first two positions;
	// one of each color keeps that window's fractions at 0.5, inside [0.4, 0.6].
	sat, err := o.Evaluate([]*dataset.Item{
		{Groups: []string{"blue"}},
		{Groups: []string{"orange"}},
		{Groups: []string{"blue"}},
		{Groups: []string{"orange"}},
	})
	require.NoError(t, err)
	assert.True(t, sat)
}

func TestLoadBracketed_InvalidFraction(t *testing.T) {
	_, err := oracleconfig.LoadBracketed(strings.NewReader(`
top_k_fraction: 2.0
constraints:
  0:
    blue: {min: 0, max: 1}
`))
	assert.Error(t, err)
}

func TestLoadBracketed_MalformedYAML(t *testing.T) {
	_, err := oracleconfig.LoadBracketed(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}

func TestLoadBracketedFile_MissingFile(t *testing.T) {
	_, err := oracleconfig.LoadBracketedFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}
