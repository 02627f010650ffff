package masterdata

// MasterData is the static reference-data catalog: the locations a delivery
// can be booked between and the available booking classes. It is computed
// once at startup and held read-only for the process lifetime.
type MasterData struct {
	Locations    []string `json:"locations"`
	BookingClass []string `json:"bookingClass"`
}

var data = MasterData{
	Locations: []string{
		"Dublin", "Cork", "Limerick", "Galway",
		"Waterford", "Drogheda", "Kilkenny", "Wexford", "Sligo", "Clonmel",
		"Dundalk", "Bray", "Navan", "Ennis", "Carlow", "Naas", "Athlone",
		"Donegal", "Mayo", "Tipperary",
	},
	BookingClass: []string{"STANDARD", "EXPRESS", "ONE-DAY", "CHEAPER"},
}

// Fetch returns a copy of the catalog so callers cannot mutate it.
func Fetch() MasterData {
	out := MasterData{
		Locations:    make([]string, len(data.Locations)),
		BookingClass: make([]string, len(data.BookingClass)),
	}
	copy(out.Locations, data.Locations)
	copy(out.BookingClass, data.BookingClass)
	return out
}
