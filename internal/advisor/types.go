package advisor

import "github.com/agrisense/agri-advisor/internal/extract"

// MarketAnalysis is the smart-market response.
type MarketAnalysis struct {
	CropName          string           `json:"crop_name"`
	Region            string           `json:"region"`
	TrendInfo         extract.Document `json:"trend_info"`
	RecommendedAction string           `json:"recommended_action,omitempty"`
	Confidence        float64          `json:"confidence,omitempty"`
	Rationale         string           `json:"rationale,omitempty"`
	AlternateMarkets  []string         `json:"alternate_markets,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	Sources           []string         `json:"sources"`
}

// WeatherAdvice is the weather-irrigation response.
type WeatherAdvice struct {
	CropName              string             `json:"crop_name"`
	Region                string             `json:"region"`
	Weather               WeatherData        `json:"weather_data"`
	IrrigationSchedule    []IrrigationAction `json:"irrigation_schedule"`
	RiskAlerts            []string           `json:"risk_alerts"`
	ProtectiveMeasures    []string           `json:"protective_measures"`
	WaterConservationTips []string           `json:"water_conservation_tips"`
	Notes                 string             `json:"notes"`
	Sources               []string           `json:"sources"`
}

// WeatherData groups current conditions and the daily forecast.
type WeatherData struct {
	CurrentConditions CurrentConditions `json:"current_conditions"`
	DailyForecast     []ForecastDay     `json:"daily_forecast"`
}

// CurrentConditions holds present-moment weather readings as reported text.
type CurrentConditions struct {
	Temperature     string `json:"temperature"`
	Humidity        string `json:"humidity"`
	WindSpeed       string `json:"wind_speed"`
	RainfallLast24h string `json:"rainfall_last_24h"`
}

// ForecastDay is one entry of the multi-day forecast.
type ForecastDay struct {
	Date       string `json:"date"`
	Conditions string `json:"conditions"`
}

// IrrigationAction is one recommended field action.
type IrrigationAction struct {
	Day         string `json:"day"`
	Action      string `json:"action"`
	WaterLiters int    `json:"water_liters"`
	Timing      string `json:"timing"`
	Reason      string `json:"reason"`
}

// SchemeRequest is the govt-schemes request.
type SchemeRequest struct {
	FarmerName string `json:"farmer_name"`
	Region     string `json:"region"`
	Crop       string `json:"crop"`
	FarmSize   string `json:"farm_size"`
	Need       string `json:"need"`
}

// Scheme describes one government agriculture scheme.
type Scheme struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Eligibility        string `json:"eligibility"`
	Benefits           string `json:"benefits"`
	ApplicationProcess string `json:"application_process"`
	OfficialLink       string `json:"official_link"`
}

// SchemeAdvice is the govt-schemes response. Error is non-fatal: the
// request still yields whatever could be assembled.
type SchemeAdvice struct {
	MatchedSchemes             []Scheme `json:"matched_schemes"`
	PersonalizedRecommendation string   `json:"personalized_recommendation"`
	NextSteps                  string   `json:"next_steps"`
	Error                      string   `json:"error,omitempty"`
	Sources                    []string `json:"sources"`
}

// ProfitRequest is the crop-profit request. Numeric fields arrive as free
// text ("100 quintals", "₹50000 total") and are parsed heuristically when
// the numeric fallback needs them.
type ProfitRequest struct {
	Region        string `json:"region"`
	Crop          string `json:"crop"`
	FarmSize      string `json:"farm_size"`
	ExpectedYield string `json:"expected_yield"`
	CostFactors   string `json:"cost_factors"`
}

// ProfitPrediction is the crop-profit response. A prediction is always
// returned; Error records non-fatal degradation.
type ProfitPrediction struct {
	CropName        string   `json:"crop_name"`
	Region          string   `json:"region"`
	EstimatedYield  string   `json:"estimated_yield"`
	MarketPrice     string   `json:"market_price"`
	TotalCost       string   `json:"total_cost"`
	ExpectedRevenue string   `json:"expected_revenue"`
	ExpectedProfit  string   `json:"expected_profit"`
	ROI             string   `json:"roi,omitempty"`
	RiskFactors     []string `json:"risk_factors"`
	Recommendation  string   `json:"recommendation"`
	Notes           string   `json:"notes"`
	Error           string   `json:"error,omitempty"`
	Sources         []string `json:"sources"`
}

// CropDiagnosis is the crop-doctor response.
type CropDiagnosis struct {
	DiseaseName          string `json:"disease_name"`
	Severity             string `json:"severity"`
	RecommendedTreatment string `json:"recommended_treatment"`
}
