package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReport = `Weather report for Nashik region, relevant for grape cultivation.

Current conditions as of today:
- Temperature: 31°C; Humidity: 60%
- Wind: 12 km/h from the northwest; gusty in the afternoon
- Rainfall: 2mm in the last 24 hours

7-day forecast:
- Mon 12 Aug: Sunny, high 33°C, low 22°C
- Tue 13 Aug: Partly cloudy, high 32°C
- Wed 14 Aug: Light showers expected

Weather alerts and warnings:
Heat advisory in effect through Wednesday
Note: advisory levels may change

Practical guidance for field actions:
- Apply mulch to conserve water around vines
- Shade young plants during peak afternoon heat

Soil moisture considerations:
Topsoil drying faster than usual for this season`

func TestParseForecast_CurrentConditions(t *testing.T) {
	facts := ParseForecast(sampleReport)

	assert.Equal(t, "31°C", facts.Temperature)
	assert.Equal(t, "60%", facts.Humidity)
	assert.Equal(t, "12 km/h from the northwest", facts.WindSpeed)
	assert.Equal(t, "2mm in the last 24 hours", facts.Rainfall)
}

func TestParseForecast_ForecastDays(t *testing.T) {
	facts := ParseForecast(sampleReport)

	require.Len(t, facts.Forecast, 3)
	assert.Equal(t, "Mon 12 Aug", facts.Forecast[0].Date)
	assert.Equal(t, "Sunny, high 33°C, low 22°C", facts.Forecast[0].Conditions)
	assert.Equal(t, "Wed 14 Aug", facts.Forecast[2].Date)
}

func TestParseForecast_AlertsSkipContextLines(t *testing.T) {
	facts := ParseForecast(sampleReport)

	require.NotEmpty(t, facts.Alerts)
	assert.Contains(t, facts.Alerts, "Heat advisory in effect through Wednesday")
	for _, alert := range facts.Alerts {
		assert.NotContains(t, alert, "advisory levels may change", "note lines are not alerts")
	}
}

func TestParseForecast_GuidanceBuckets(t *testing.T) {
	facts := ParseForecast(sampleReport)

	assert.Contains(t, facts.ConservationTips, "Apply mulch to conserve water around vines")
	assert.Contains(t, facts.ProtectiveMeasure, "Shade young plants during peak afternoon heat")
}

func TestParseForecast_IrrigationActions(t *testing.T) {
	facts := ParseForecast(sampleReport)

	assert.Contains(t, facts.IrrigationActions, "Apply mulch to conserve water around vines")
}

func TestParseForecast_SoilMoistureNotes(t *testing.T) {
	facts := ParseForecast(sampleReport)

	assert.Contains(t, facts.Notes, "Topsoil drying faster than usual for this season")
}

func TestParseForecast_MissingLabelsDefault(t *testing.T) {
	facts := ParseForecast("A vague report with no structure at all.")

	assert.Equal(t, "Not available", facts.Temperature)
	assert.Equal(t, "Not available", facts.Humidity)
	assert.Equal(t, "Not available", facts.WindSpeed)
	assert.Equal(t, "Not available", facts.Rainfall)
	assert.Empty(t, facts.Forecast)
	assert.Empty(t, facts.Alerts)
}

func TestParseForecast_FirstSectionFallback(t *testing.T) {
	// Without a "current conditions" heading the opening paragraph is
	// scanned instead.
	raw := "Temperature: 28°C; Humidity: 70%\n\nRest of the report."
	facts := ParseForecast(raw)

	assert.Equal(t, "28°C", facts.Temperature)
	assert.Equal(t, "70%", facts.Humidity)
}
