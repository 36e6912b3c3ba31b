package geo

// GeocodeRequest is the address lookup payload.
type GeocodeRequest struct {
	Address string `json:"address" binding:"required,min=5"`
}

// Location is a resolved street address.
type Location struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
	PlaceID          string  `json:"placeId"`
	ZipCode          string  `json:"zipCode,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	County           string  `json:"county,omitempty"`
}

// geocodeResponse mirrors the Google Geocoding API payload.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		PlaceID           string `json:"place_id"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}
