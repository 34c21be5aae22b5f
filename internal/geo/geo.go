// Package geo maps city and country strings to coordinates using static
// lookup tables.
//
// This is a coarse placeholder geocoder, not a geocoding service: coordinates
// are city or country centroids, never venue-precise. The tables are ordered
// slices so the substring fallback resolves deterministically; the first table
// entry that matches wins, a documented imprecision for short or ambiguous
// city names.
package geo

import "strings"

// Point is a lat/lng pair.
type Point struct {
	Lat float64
	Lng float64
}

type entry struct {
	name  string
	point Point
}

var cityTable = []entry{
	// Europe
	{"paris", Point{48.8566, 2.3522}},
	{"london", Point{51.5074, -0.1278}},
	{"berlin", Point{52.5200, 13.4050}},
	{"amsterdam", Point{52.3676, 4.9041}},
	{"barcelona", Point{41.3851, 2.1734}},
	{"madrid", Point{40.4168, -3.7038}},
	{"lisbon", Point{38.7223, -9.1393}},
	{"vienna", Point{48.2082, 16.3738}},
	{"zurich", Point{47.3769, 8.5417}},
	{"geneva", Point{46.2044, 6.1432}},
	{"brussels", Point{50.8503, 4.3517}},
	{"copenhagen", Point{55.6761, 12.5683}},
	{"stockholm", Point{59.3293, 18.0686}},
	{"oslo", Point{59.9139, 10.7522}},
	{"helsinki", Point{60.1699, 24.9384}},
	{"prague", Point{50.0755, 14.4378}},
	{"warsaw", Point{52.2297, 21.0122}},
	{"dublin", Point{53.3498, -6.2603}},
	{"milan", Point{45.4642, 9.1900}},
	{"rome", Point{41.9028, 12.4964}},
	{"munich", Point{48.1351, 11.5820}},
	{"lyon", Point{45.7640, 4.8357}},
	{"toulouse", Point{43.6047, 1.4442}},
	{"grenoble", Point{45.1885, 5.7245}},
	{"nantes", Point{47.2184, -1.5536}},
	{"bordeaux", Point{44.8378, -0.5792}},
	{"sofia", Point{42.6977, 23.3219}},
	{"athens", Point{37.9838, 23.7275}},
	{"krakow", Point{50.0647, 19.9450}},

	// North America
	{"san francisco", Point{37.7749, -122.4194}},
	{"new york", Point{40.7128, -74.0060}},
	{"los angeles", Point{34.0522, -118.2437}},
	{"seattle", Point{47.6062, -122.3321}},
	{"austin", Point{30.2672, -97.7431}},
	{"chicago", Point{41.8781, -87.6298}},
	{"boston", Point{42.3601, -71.0589}},
	{"denver", Point{39.7392, -104.9903}},
	{"las vegas", Point{36.1699, -115.1398}},
	{"portland", Point{45.5051, -122.6750}},
	{"toronto", Point{43.6532, -79.3832}},
	{"montreal", Point{45.5017, -73.5673}},
	{"vancouver", Point{49.2827, -123.1207}},

	// Asia Pacific
	{"tokyo", Point{35.6762, 139.6503}},
	{"singapore", Point{1.3521, 103.8198}},
	{"bangalore", Point{12.9716, 77.5946}},
	{"mumbai", Point{19.0760, 72.8777}},
	{"delhi", Point{28.7041, 77.1025}},
	{"sydney", Point{-33.8688, 151.2093}},
	{"melbourne", Point{-37.8136, 144.9631}},
	{"seoul", Point{37.5665, 126.9780}},
	{"shanghai", Point{31.2304, 121.4737}},
	{"hong kong", Point{22.3193, 114.1694}},
	{"bangkok", Point{13.7563, 100.5018}},
	{"jakarta", Point{-6.2088, 106.8456}},

	// South America
	{"sao paulo", Point{-23.5505, -46.6333}},
	{"buenos aires", Point{-34.6037, -58.3816}},
	{"santiago", Point{-33.4489, -70.6693}},

	// Africa
	{"cape town", Point{-33.9249, 18.4241}},
	{"lagos", Point{6.5244, 3.3792}},
	{"nairobi", Point{-1.2921, 36.8219}},

	// Middle East
	{"dubai", Point{25.2048, 55.2708}},
	{"tel aviv", Point{32.0853, 34.7818}},
}

var countryTable = []entry{
	{"usa", Point{37.0902, -95.7129}},
	{"united states", Point{37.0902, -95.7129}},
	{"uk", Point{55.3781, -3.4360}},
	{"united kingdom", Point{55.3781, -3.4360}},
	{"germany", Point{51.1657, 10.4515}},
	{"france", Point{46.2276, 2.2137}},
	{"spain", Point{40.4637, -3.7492}},
	{"italy", Point{41.8719, 12.5674}},
	{"netherlands", Point{52.1326, 5.2913}},
	{"belgium", Point{50.5039, 4.4699}},
	{"switzerland", Point{46.8182, 8.2275}},
	{"austria", Point{47.5162, 14.5501}},
	{"poland", Point{51.9194, 19.1451}},
	{"sweden", Point{60.1282, 18.6435}},
	{"norway", Point{60.4720, 8.4689}},
	{"denmark", Point{56.2639, 9.5018}},
	{"finland", Point{61.9241, 25.7482}},
	{"canada", Point{56.1304, -106.3468}},
	{"australia", Point{-25.2744, 133.7751}},
	{"japan", Point{36.2048, 138.2529}},
	{"india", Point{20.5937, 78.9629}},
	{"singapore", Point{1.3521, 103.8198}},
	{"brazil", Point{-14.2350, -51.9253}},
	{"mexico", Point{23.6345, -102.5528}},
}

// Geocode resolves a city/country pair to centroid coordinates. Lookup order:
// exact city match, substring city match (either direction), exact country
// match, substring country match. Returns nil when nothing matches.
func Geocode(city, country string) *Point {
	c := strings.ToLower(strings.TrimSpace(city))
	k := strings.ToLower(strings.TrimSpace(country))

	if c != "" {
		for _, e := range cityTable {
			if e.name == c {
				p := e.point
				return &p
			}
		}
		for _, e := range cityTable {
			if strings.Contains(c, e.name) || strings.Contains(e.name, c) {
				p := e.point
				return &p
			}
		}
	}

	if k != "" {
		for _, e := range countryTable {
			if e.name == k {
				p := e.point
				return &p
			}
		}
		for _, e := range countryTable {
			if strings.Contains(k, e.name) {
				p := e.point
				return &p
			}
		}
	}

	return nil
}
