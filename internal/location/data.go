package location

// countryDetail holds the per-country reference lists
type countryDetail struct {
	States []string
	Cities []string
}

// Static reference dataset. Continent membership drives the Region→Country
// cascade in the forms; states and cities are keyed by ISO code.
var continentCountries = map[string][]Country{
	"Africa": {
		{Name: "Egypt", Code: "EG"},
		{Name: "Kenya", Code: "KE"},
		{Name: "Morocco", Code: "MA"},
		{Name: "South Africa", Code: "ZA"},
		{Name: "Tanzania", Code: "TZ"},
	},
	"Asia": {
		{Name: "India", Code: "IN"},
		{Name: "Indonesia", Code: "ID"},
		{Name: "Japan", Code: "JP"},
		{Name: "Malaysia", Code: "MY"},
		{Name: "Maldives", Code: "MV"},
		{Name: "Nepal", Code: "NP"},
		{Name: "Singapore", Code: "SG"},
		{Name: "Sri Lanka", Code: "LK"},
		{Name: "Thailand", Code: "TH"},
		{Name: "United Arab Emirates", Code: "AE"},
		{Name: "Vietnam", Code: "VN"},
	},
	"Europe": {
		{Name: "France", Code: "FR"},
		{Name: "Germany", Code: "DE"},
		{Name: "Greece", Code: "GR"},
		{Name: "Iceland", Code: "IS"},
		{Name: "Italy", Code: "IT"},
		{Name: "Netherlands", Code: "NL"},
		{Name: "Portugal", Code: "PT"},
		{Name: "Spain", Code: "ES"},
		{Name: "Switzerland", Code: "CH"},
		{Name: "United Kingdom", Code: "GB"},
	},
	"North America": {
		{Name: "Canada", Code: "CA"},
		{Name: "Costa Rica", Code: "CR"},
		{Name: "Mexico", Code: "MX"},
		{Name: "United States", Code: "US"},
	},
	"Oceania": {
		{Name: "Australia", Code: "AU"},
		{Name: "Fiji", Code: "FJ"},
		{Name: "New Zealand", Code: "NZ"},
	},
	"South America": {
		{Name: "Argentina", Code: "AR"},
		{Name: "Brazil", Code: "BR"},
		{Name: "Chile", Code: "CL"},
		{Name: "Peru", Code: "PE"},
	},
}

var countryDetails = map[string]countryDetail{
	"IN": {
		States: []string{"Goa", "Himachal Pradesh", "Kerala", "Maharashtra", "Rajasthan", "Uttarakhand"},
		Cities: []string{"Agra", "Bengaluru", "Delhi", "Jaipur", "Kochi", "Manali", "Mumbai", "Rishikesh", "Udaipur"},
	},
	"ID": {
		States: []string{"Bali", "East Java", "Jakarta", "West Nusa Tenggara"},
		Cities: []string{"Denpasar", "Jakarta", "Lombok", "Ubud", "Yogyakarta"},
	},
	"JP": {
		States: []string{"Hokkaido", "Kanto", "Kansai", "Okinawa"},
		Cities: []string{"Kyoto", "Naha", "Osaka", "Sapporo", "Tokyo"},
	},
	"TH": {
		States: []string{"Bangkok", "Chiang Mai", "Krabi", "Phuket"},
		Cities: []string{"Bangkok", "Chiang Mai", "Krabi Town", "Pattaya", "Phuket"},
	},
	"VN": {
		States: []string{"Central Vietnam", "North Vietnam", "South Vietnam"},
		Cities: []string{"Da Nang", "Hanoi", "Ho Chi Minh City", "Hoi An"},
	},
	"MV": {
		States: []string{"Kaafu Atoll", "Male"},
		Cities: []string{"Hulhumale", "Maafushi", "Male"},
	},
	"AE": {
		States: []string{"Abu Dhabi", "Dubai", "Sharjah"},
		Cities: []string{"Abu Dhabi", "Dubai", "Sharjah"},
	},
	"SG": {
		States: []string{"Central Region"},
		Cities: []string{"Singapore"},
	},
	"LK": {
		States: []string{"Central Province", "Southern Province", "Western Province"},
		Cities: []string{"Colombo", "Ella", "Galle", "Kandy"},
	},
	"NP": {
		States: []string{"Bagmati", "Gandaki"},
		Cities: []string{"Kathmandu", "Pokhara"},
	},
	"MY": {
		States: []string{"Kuala Lumpur", "Penang", "Sabah"},
		Cities: []string{"George Town", "Kota Kinabalu", "Kuala Lumpur", "Langkawi"},
	},
	"FR": {
		States: []string{"Ile-de-France", "Normandy", "Provence"},
		Cities: []string{"Bordeaux", "Lyon", "Marseille", "Nice", "Paris"},
	},
	"IT": {
		States: []string{"Lazio", "Lombardy", "Tuscany", "Veneto"},
		Cities: []string{"Florence", "Milan", "Rome", "Venice"},
	},
	"ES": {
		States: []string{"Andalusia", "Catalonia", "Madrid"},
		Cities: []string{"Barcelona", "Madrid", "Seville", "Valencia"},
	},
	"GR": {
		States: []string{"Attica", "Crete", "South Aegean"},
		Cities: []string{"Athens", "Heraklion", "Mykonos", "Santorini"},
	},
	"CH": {
		States: []string{"Bern", "Geneva", "Valais", "Zurich"},
		Cities: []string{"Geneva", "Interlaken", "Lucerne", "Zermatt", "Zurich"},
	},
	"GB": {
		States: []string{"England", "Northern Ireland", "Scotland", "Wales"},
		Cities: []string{"Belfast", "Cardiff", "Edinburgh", "London", "Manchester"},
	},
	"PT": {
		States: []string{"Algarve", "Lisbon", "Madeira", "Porto"},
		Cities: []string{"Faro", "Funchal", "Lisbon", "Porto"},
	},
	"IS": {
		States: []string{"Capital Region", "South Iceland"},
		Cities: []string{"Reykjavik", "Vik"},
	},
	"NL": {
		States: []string{"North Holland", "South Holland"},
		Cities: []string{"Amsterdam", "Rotterdam", "The Hague"},
	},
	"DE": {
		States: []string{"Bavaria", "Berlin", "Hesse"},
		Cities: []string{"Berlin", "Frankfurt", "Munich"},
	},
	"US": {
		States: []string{"Arizona", "California", "Florida", "Hawaii", "Nevada", "New York"},
		Cities: []string{"Honolulu", "Las Vegas", "Los Angeles", "Miami", "New York", "San Francisco"},
	},
	"CA": {
		States: []string{"Alberta", "British Columbia", "Ontario", "Quebec"},
		Cities: []string{"Banff", "Montreal", "Toronto", "Vancouver"},
	},
	"MX": {
		States: []string{"Baja California Sur", "Quintana Roo", "Yucatan"},
		Cities: []string{"Cabo San Lucas", "Cancun", "Merida", "Tulum"},
	},
	"CR": {
		States: []string{"Guanacaste", "Puntarenas", "San Jose"},
		Cities: []string{"La Fortuna", "San Jose", "Tamarindo"},
	},
	"AU": {
		States: []string{"New South Wales", "Queensland", "Victoria", "Western Australia"},
		Cities: []string{"Brisbane", "Cairns", "Melbourne", "Perth", "Sydney"},
	},
	"NZ": {
		States: []string{"Auckland", "Canterbury", "Otago"},
		Cities: []string{"Auckland", "Christchurch", "Queenstown"},
	},
	"FJ": {
		States: []string{"Central Division", "Western Division"},
		Cities: []string{"Nadi", "Suva"},
	},
	"EG": {
		States: []string{"Cairo", "Giza", "Red Sea"},
		Cities: []string{"Cairo", "Hurghada", "Luxor", "Sharm El Sheikh"},
	},
	"KE": {
		States: []string{"Mombasa", "Nairobi", "Rift Valley"},
		Cities: []string{"Mombasa", "Nairobi", "Naivasha"},
	},
	"MA": {
		States: []string{"Casablanca-Settat", "Fes-Meknes", "Marrakesh-Safi"},
		Cities: []string{"Casablanca", "Fes", "Marrakesh"},
	},
	"ZA": {
		States: []string{"Gauteng", "KwaZulu-Natal", "Western Cape"},
		Cities: []string{"Cape Town", "Durban", "Johannesburg"},
	},
	"TZ": {
		States: []string{"Arusha", "Zanzibar"},
		Cities: []string{"Arusha", "Stone Town"},
	},
	"AR": {
		States: []string{"Buenos Aires", "Mendoza", "Patagonia"},
		Cities: []string{"Buenos Aires", "El Calafate", "Mendoza"},
	},
	"BR": {
		States: []string{"Amazonas", "Bahia", "Rio de Janeiro", "Sao Paulo"},
		Cities: []string{"Manaus", "Rio de Janeiro", "Salvador", "Sao Paulo"},
	},
	"CL": {
		States: []string{"Antofagasta", "Santiago Metropolitan", "Valparaiso"},
		Cities: []string{"San Pedro de Atacama", "Santiago", "Valparaiso"},
	},
	"PE": {
		States: []string{"Cusco", "Lima", "Puno"},
		Cities: []string{"Arequipa", "Cusco", "Lima", "Puno"},
	},
}
