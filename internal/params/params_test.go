package params

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var declared = []Parameter{
	{Key: "CidrBlock", Description: "The VPC CIDR range", Default: "10.0.0.0/16"},
	{Key: "Environment", Default: "dev"},
}

func TestInteractiveReadsAnswersAndDefaults(t *testing.T) {
	out := &bytes.Buffer{}
	src := &Interactive{
		In:  strings.NewReader("10.1.0.0/16\n\n"),
		Out: out,
	}
	values, err := src.Values(context.Background(), declared)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CidrBlock":   "10.1.0.0/16",
		"Environment": "dev",
	}, values)
	assert.Contains(t, out.String(), "The VPC CIDR range")
	assert.Contains(t, out.String(), "CidrBlock [10.0.0.0/16]: ")
}

func TestInteractiveToleratesMissingTrailingNewline(t *testing.T) {
	src := &Interactive{
		In:  strings.NewReader("10.1.0.0/16\nprod"),
		Out: &bytes.Buffer{},
	}
	values, err := src.Values(context.Background(), declared)
	require.NoError(t, err)
	assert.Equal(t, "prod", values["Environment"])
}

func TestStaticFallsBackToDefaults(t *testing.T) {
	src := Static{"CidrBlock": "10.2.0.0/16"}
	values, err := src.Values(context.Background(), declared)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"CidrBlock":   "10.2.0.0/16",
		"Environment": "dev",
	}, values)
}
