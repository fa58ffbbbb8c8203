//go:build !integration

package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/claims-triage/internal/pipeline"
)

func TestRenderResult_JSON(t *testing.T) {
	result := pipeline.Process(pipeline.SampleDocument())

	out, err := renderResult(result, "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Contains(t, decoded, "fields")
	assert.Contains(t, decoded, "missing_fields")
	assert.Contains(t, decoded, "routing")
}

func TestRenderResult_YAML(t *testing.T) {
	result := pipeline.Process("Claim Type: Auto\n")

	out, err := renderResult(result, "yaml")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "route: Manual Review")
	assert.Contains(t, s, "missing_fields:")
}

func TestRenderResult_Report(t *testing.T) {
	result := pipeline.Process(pipeline.SampleDocument())

	out, err := renderResult(result, "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "# FNOL Intake Report"))
}

func TestRenderResult_UnknownFormat(t *testing.T) {
	_, err := renderResult(pipeline.Process(""), "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}
