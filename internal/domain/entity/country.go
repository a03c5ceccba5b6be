package entity

// Country is an entry of the country reference list
type Country struct {
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Flag          string    `json:"flag,omitempty"`
	FlagSVG       string    `json:"flagSvg,omitempty"`
	GoogleMaps    string    `json:"googleMaps,omitempty"`
	OpenStreetMap string    `json:"openStreetMaps,omitempty"`
	Coordinates   []float64 `json:"coordinates,omitempty"`
}
