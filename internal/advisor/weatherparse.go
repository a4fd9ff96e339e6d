package advisor

import "strings"

// WeatherFacts is the lossy, heuristic scan of a prose weather report.
// Fields the scan never finds keep their zero value; the orchestrator
// substitutes placeholders. The parser assumes the provider follows a loose
// heading convention ("Current conditions", "7-day forecast", alert and
// guidance sections) but guarantees nothing beyond best effort.
type WeatherFacts struct {
	Temperature       string
	Humidity          string
	WindSpeed         string
	Rainfall          string
	Forecast          []ForecastDay
	Alerts            []string
	ConservationTips  []string
	ProtectiveMeasure []string
	IrrigationActions []string
	Notes             []string
}

const notAvailable = "Not available"

var weekdayAbbrevs = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// ParseForecast scans heading-delimited prose for weather and irrigation
// facts. Sections are paragraphs split on blank lines; headings are matched
// by case-insensitive substring, first match winning for the current
// conditions and forecast categories.
func ParseForecast(raw string) WeatherFacts {
	facts := WeatherFacts{
		Temperature: notAvailable,
		Humidity:    notAvailable,
		WindSpeed:   notAvailable,
		Rainfall:    notAvailable,
	}

	sections := strings.Split(raw, "\n\n")
	if len(sections) == 0 {
		return facts
	}

	parseCurrentConditions(findSection(sections, "current conditions"), &facts)
	facts.Forecast = parseForecastDays(findSection(sections, "7-day forecast"))

	for _, section := range sections {
		lower := strings.ToLower(section)

		if strings.Contains(lower, "alert") || strings.Contains(lower, "warning") {
			for _, line := range contentLines(section) {
				l := strings.ToLower(line)
				if strings.HasPrefix(l, "note") || strings.HasPrefix(l, "context") {
					continue
				}
				facts.Alerts = append(facts.Alerts, line)
			}
		}

		if containsAny(lower, "guidance", "field actions", "practical", "protection") {
			for _, line := range contentLines(section) {
				l := strings.ToLower(line)
				if strings.Contains(l, "conserv") || strings.Contains(l, "water") {
					facts.ConservationTips = append(facts.ConservationTips, line)
				} else {
					facts.ProtectiveMeasure = append(facts.ProtectiveMeasure, line)
				}
			}
		}

		if containsAny(lower, "field actions", "soil moisture", "practical guidance", "irrigation") {
			for _, line := range strings.Split(section, "\n") {
				trimmed := strings.TrimSpace(line)
				if !strings.HasPrefix(trimmed, "-") && !strings.HasPrefix(trimmed, "*") {
					continue
				}
				action := strings.TrimSpace(strings.Trim(trimmed, "- *"))
				if action != "" && !strings.HasSuffix(action, ":") {
					facts.IrrigationActions = append(facts.IrrigationActions, action)
				}
			}
		}

		if strings.Contains(lower, "soil moisture") {
			facts.Notes = append(facts.Notes, contentLines(section)...)
		}
	}

	return facts
}

// findSection returns the first section whose lowercase text contains the
// keyword, falling back to the first section for "current conditions" so a
// report without headings still yields its opening lines.
func findSection(sections []string, keyword string) string {
	for _, s := range sections {
		if strings.Contains(strings.ToLower(s), keyword) {
			return s
		}
	}
	if keyword == "current conditions" && len(sections) > 0 {
		return sections[0]
	}
	return ""
}

// parseCurrentConditions checks each label independently so one line can
// carry several readings ("- Temperature: 31°C; Humidity: 60%").
func parseCurrentConditions(section string, facts *WeatherFacts) {
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "Temperature:") {
			facts.Temperature = labelValue(line, "Temperature:")
		}
		if strings.Contains(line, "Humidity:") {
			facts.Humidity = labelValue(line, "Humidity:")
		}
		if strings.Contains(line, "Wind:") {
			facts.WindSpeed = labelValue(line, "Wind:")
		}
		if strings.Contains(line, "Rainfall") {
			facts.Rainfall = labelValue(line, "Rainfall")
		}
	}
}

// labelValue takes the substring after the label, cut at the first
// semicolon. A stray leading colon (the "Rainfall" label has no trailing
// colon) is trimmed.
func labelValue(line, label string) string {
	_, after, found := strings.Cut(line, label)
	if !found {
		return notAvailable
	}
	value, _, _ := strings.Cut(after, ";")
	value = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(value), ":"))
	if value == "" {
		return notAvailable
	}
	return strings.TrimSpace(value)
}

// parseForecastDays collects bulleted lines naming a day of the week into
// date/conditions pairs split on the first colon.
func parseForecastDays(section string) []ForecastDay {
	if section == "" {
		return nil
	}

	var days []ForecastDay
	for _, line := range strings.Split(section, "\n") {
		if !strings.Contains(line, "- ") || !containsAny(strings.ToLower(line), weekdayAbbrevs...) {
			continue
		}
		date, conditions, found := strings.Cut(line, ":")
		date = strings.TrimSpace(strings.Trim(strings.TrimSpace(date), "- "))
		if !found {
			days = append(days, ForecastDay{Date: date, Conditions: date})
			continue
		}
		days = append(days, ForecastDay{Date: date, Conditions: strings.TrimSpace(conditions)})
	}
	return days
}

// contentLines returns the section's non-empty lines stripped of bullet
// markers, excluding heading-like lines (ending in a colon).
func contentLines(section string) []string {
	var lines []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "- *"))
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
