package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSVGGolden(t *testing.T) {
	config := BuildChart(
		"Percentage of Delayed Flights per Airline", "Delay (%)",
		[]Share{
			{Label: "ACME", Value: 30},
			{Label: "Borealis", Value: 75},
		},
		nil,
	)
	require.NotNil(t, config)

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, config))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "delay_chart", buf.Bytes())
}

func TestRenderSVGDeterministic(t *testing.T) {
	config := BuildChart("Title", "X", []Share{{Label: "A", Value: 50}}, nil)

	var first, second bytes.Buffer
	require.NoError(t, RenderSVG(&first, config))
	require.NoError(t, RenderSVG(&second, config))
	assert.Equal(t, first.String(), second.String())
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	config := BuildChart("A & B <Chart>", "Delay (%)",
		[]Share{{Label: `O'Hare "ORD"`, Value: 10}}, nil)

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, config))

	out := buf.String()
	assert.Contains(t, out, "A &amp; B &lt;Chart&gt;")
	assert.Contains(t, out, "O&apos;Hare &quot;ORD&quot;")
	assert.NotContains(t, out, `>O'Hare`)
}

func TestRenderSVGNothingToRender(t *testing.T) {
	var buf bytes.Buffer

	err := RenderSVG(&buf, nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nothing to render"))

	err = RenderSVG(&buf, &ChartConfig{Title: "Empty"})
	require.Error(t, err)
}

func TestRenderSVGZeroValues(t *testing.T) {
	// All-zero values must not divide by zero or emit negative widths.
	config := BuildChart("Zeros", "X",
		[]Share{{Label: "A", Value: 0}, {Label: "B", Value: 0}}, nil)

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, config))
	assert.Contains(t, buf.String(), `width="0.0"`)
}
