package domain

// Element codes published by the CWA F-C0032-001 dataset
const (
	ElementWeather   = "Wx"
	ElementRain      = "PoP"
	ElementMinTemp   = "MinT"
	ElementMaxTemp   = "MaxT"
	ElementComfort   = "CI"
	ElementWindSpeed = "WS"
)

// UpstreamResponse represents the CWA open-data API response body
type UpstreamResponse struct {
	Success string `json:"success"`
	Records struct {
		DatasetDescription string             `json:"datasetDescription"`
		Location           []UpstreamLocation `json:"location"`
	} `json:"records"`
}

// UpstreamLocation is one city's raw forecast record
type UpstreamLocation struct {
	LocationName   string            `json:"locationName"`
	WeatherElement []UpstreamElement `json:"weatherElement"`
}

// UpstreamElement is the time series of a single element code
type UpstreamElement struct {
	ElementName string             `json:"elementName"`
	Time        []UpstreamTimeSlot `json:"time"`
}

// UpstreamTimeSlot carries one element value for one forecast period
type UpstreamTimeSlot struct {
	StartTime string             `json:"startTime"`
	EndTime   string             `json:"endTime"`
	Parameter *UpstreamParameter `json:"parameter"`
}

// UpstreamParameter holds the element value. Only ParameterName is served.
type UpstreamParameter struct {
	ParameterName  string `json:"parameterName"`
	ParameterValue string `json:"parameterValue,omitempty"`
	ParameterUnit  string `json:"parameterUnit,omitempty"`
}

// CityForecast is the simplified forecast for one city
type CityForecast struct {
	City      string         `json:"city"`
	Forecasts []ForecastSlot `json:"forecasts"`
}

// ForecastSlot is one forecast period with display-ready values
type ForecastSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Weather   string `json:"weather"`
	Rain      string `json:"rain"`
	MinTemp   string `json:"minTemp"`
	MaxTemp   string `json:"maxTemp"`
	Comfort   string `json:"comfort"`
	WindSpeed string `json:"windSpeed"`
}

// ForecastResponse wraps all city forecasts
type ForecastResponse struct {
	Success bool           `json:"success"`
	Data    []CityForecast `json:"data"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
