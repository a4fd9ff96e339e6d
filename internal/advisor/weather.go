package advisor

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// AdviseIrrigation fetches a prose weather report for the region and distills
// it into current conditions, a daily forecast, and an irrigation schedule.
// The weather fetch is the critical path; without it there is nothing to
// advise on and the error is returned to the caller.
func (a *Advisor) AdviseIrrigation(ctx context.Context, cropName, region string) (*WeatherAdvice, error) {
	report, err := a.grounded.FetchText(ctx, fmt.Sprintf(weatherForecastPrompt, region, cropName))
	if err != nil {
		return nil, err
	}

	facts := ParseForecast(report)

	advice := &WeatherAdvice{
		CropName: cropName,
		Region:   region,
		Weather: WeatherData{
			CurrentConditions: CurrentConditions{
				Temperature:     facts.Temperature,
				Humidity:        facts.Humidity,
				WindSpeed:       facts.WindSpeed,
				RainfallLast24h: facts.Rainfall,
			},
			DailyForecast: facts.Forecast,
		},
		IrrigationSchedule:    irrigationSchedule(facts.IrrigationActions),
		RiskAlerts:            facts.Alerts,
		ProtectiveMeasures:    facts.ProtectiveMeasure,
		WaterConservationTips: facts.ConservationTips,
		Notes:                 strings.Join(facts.Notes, " "),
		Sources:               []string{sourceWeatherScan},
	}
	if advice.Weather.DailyForecast == nil {
		advice.Weather.DailyForecast = []ForecastDay{}
	}

	// Placeholders keep every category populated for downstream display.
	if len(advice.RiskAlerts) == 0 {
		advice.RiskAlerts = []string{"No specific risk alerts at this time"}
	}
	if len(advice.ProtectiveMeasures) == 0 {
		advice.ProtectiveMeasures = []string{"Monitor crop conditions regularly"}
	}
	if len(advice.WaterConservationTips) == 0 {
		advice.WaterConservationTips = []string{"Follow standard water conservation practices"}
	}
	if advice.Notes == "" {
		advice.Notes = "Use standard agricultural practices appropriate for the season"
	}

	zap.L().Info("weather and irrigation advice generated",
		zap.String("crop", cropName),
		zap.String("region", region),
		zap.Int("forecast_days", len(advice.Weather.DailyForecast)),
		zap.Int("irrigation_actions", len(advice.IrrigationSchedule)),
	)
	return advice, nil
}

// irrigationSchedule wraps parsed field actions into schedule entries,
// falling back to a single monitoring action when the report had none.
func irrigationSchedule(actions []string) []IrrigationAction {
	if len(actions) == 0 {
		return []IrrigationAction{{
			Day:         "Daily",
			Action:      "Monitor soil moisture and irrigate as needed",
			WaterLiters: 0,
			Timing:      "Early morning",
			Reason:      "Standard practice for dry conditions",
		}}
	}

	schedule := make([]IrrigationAction, 0, len(actions))
	for _, action := range actions {
		schedule = append(schedule, IrrigationAction{
			Day:         "Daily",
			Action:      action,
			WaterLiters: 0,
			Timing:      "As needed",
			Reason:      "Based on conditions and forecast",
		})
	}
	return schedule
}
