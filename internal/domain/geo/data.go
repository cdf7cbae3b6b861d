// Static name → coordinate tables for the offline resolver.  The tables are
// compiled once at process start into immutable lookup maps; nothing in this
// file is mutated after init.  Coordinates are country/region centroids or
// city centres at whole-map precision — the platform never promises
// sub-degree accuracy.
package geo

// placeEntry couples every accepted spelling of a place (English, French,
// common abbreviations) with its coordinates.  Keys are matched after
// normalisation, so entries are written lowercase.
type placeEntry struct {
	names []string
	lat   float64
	lon   float64
}

// countryTable lists sovereign states.  Country matches always win over
// region/city matches for the same candidate string.
var countryTable = []placeEntry{
	{[]string{"united states", "united states of america", "usa", "us", "etats-unis", "états-unis", "amerique", "america"}, 39.8, -98.6},
	{[]string{"china", "chine", "people's republic of china"}, 35.9, 104.2},
	{[]string{"russia", "russie", "russian federation"}, 61.5, 105.3},
	{[]string{"ukraine"}, 48.4, 31.2},
	{[]string{"germany", "allemagne"}, 51.2, 10.4},
	{[]string{"france"}, 46.6, 2.2},
	{[]string{"united kingdom", "uk", "great britain", "britain", "royaume-uni", "grande-bretagne"}, 54.8, -2.9},
	{[]string{"japan", "japon"}, 36.2, 138.3},
	{[]string{"india", "inde"}, 20.6, 79.0},
	{[]string{"brazil", "bresil", "brésil"}, -14.2, -51.9},
	{[]string{"canada"}, 56.1, -106.3},
	{[]string{"australia", "australie"}, -25.3, 133.8},
	{[]string{"mexico", "mexique"}, 23.6, -102.6},
	{[]string{"italy", "italie"}, 41.9, 12.6},
	{[]string{"spain", "espagne"}, 40.5, -3.7},
	{[]string{"poland", "pologne"}, 51.9, 19.1},
	{[]string{"netherlands", "pays-bas", "holland"}, 52.1, 5.3},
	{[]string{"belgium", "belgique"}, 50.5, 4.5},
	{[]string{"switzerland", "suisse"}, 46.8, 8.2},
	{[]string{"sweden", "suede", "suède"}, 60.1, 18.6},
	{[]string{"norway", "norvege", "norvège"}, 60.5, 8.5},
	{[]string{"finland", "finlande"}, 61.9, 25.7},
	{[]string{"denmark", "danemark"}, 56.3, 9.5},
	{[]string{"austria", "autriche"}, 47.5, 14.6},
	{[]string{"greece", "grece", "grèce"}, 39.1, 21.8},
	{[]string{"portugal"}, 39.4, -8.2},
	{[]string{"ireland", "irlande"}, 53.4, -8.2},
	{[]string{"iceland", "islande"}, 64.9, -19.0},
	{[]string{"czech republic", "czechia", "tchequie", "tchéquie"}, 49.8, 15.5},
	{[]string{"slovakia", "slovaquie"}, 48.7, 19.7},
	{[]string{"hungary", "hongrie"}, 47.2, 19.5},
	{[]string{"romania", "roumanie"}, 45.9, 25.0},
	{[]string{"bulgaria", "bulgarie"}, 42.7, 25.5},
	{[]string{"serbia", "serbie"}, 44.0, 21.0},
	{[]string{"croatia", "croatie"}, 45.1, 15.2},
	{[]string{"slovenia", "slovenie", "slovénie"}, 46.2, 15.0},
	{[]string{"bosnia", "bosnia and herzegovina", "bosnie"}, 43.9, 17.7},
	{[]string{"albania", "albanie"}, 41.2, 20.2},
	{[]string{"estonia", "estonie"}, 58.6, 25.0},
	{[]string{"latvia", "lettonie"}, 56.9, 24.6},
	{[]string{"lithuania", "lituanie"}, 55.2, 23.9},
	{[]string{"belarus", "bielorussie", "biélorussie"}, 53.7, 28.0},
	{[]string{"moldova", "moldavie"}, 47.4, 28.4},
	{[]string{"georgia", "georgie", "géorgie"}, 42.3, 43.4},
	{[]string{"armenia", "armenie", "arménie"}, 40.1, 45.0},
	{[]string{"azerbaijan", "azerbaidjan", "azerbaïdjan"}, 40.1, 47.6},
	{[]string{"turkey", "turkiye", "turquie"}, 39.0, 35.2},
	{[]string{"egypt", "egypte", "égypte"}, 26.8, 30.8},
	{[]string{"saudi arabia", "arabie saoudite"}, 23.9, 45.1},
	{[]string{"united arab emirates", "uae", "emirats arabes unis", "émirats arabes unis"}, 23.4, 53.8},
	{[]string{"qatar"}, 25.4, 51.2},
	{[]string{"kuwait", "koweit", "koweït"}, 29.3, 47.5},
	{[]string{"bahrain", "bahrein", "bahreïn"}, 26.1, 50.6},
	{[]string{"oman"}, 21.5, 55.9},
	{[]string{"yemen", "yémen"}, 15.6, 48.5},
	{[]string{"israel", "israël"}, 31.1, 34.9},
	{[]string{"iran"}, 32.4, 53.7},
	{[]string{"iraq", "irak"}, 33.2, 43.7},
	{[]string{"syria", "syrie"}, 34.8, 39.0},
	{[]string{"lebanon", "liban"}, 33.9, 35.9},
	{[]string{"jordan", "jordanie"}, 30.6, 36.2},
	{[]string{"south korea", "korea", "republic of korea", "coree du sud", "corée du sud"}, 35.9, 127.8},
	{[]string{"north korea", "coree du nord", "corée du nord", "dprk"}, 40.3, 127.5},
	{[]string{"taiwan", "taïwan"}, 23.7, 121.0},
	{[]string{"vietnam", "viet nam"}, 14.1, 108.3},
	{[]string{"thailand", "thailande", "thaïlande"}, 15.9, 101.0},
	{[]string{"indonesia", "indonesie", "indonésie"}, -0.8, 113.9},
	{[]string{"malaysia", "malaisie"}, 4.2, 102.0},
	{[]string{"singapore", "singapour"}, 1.35, 103.82},
	{[]string{"philippines"}, 12.9, 121.8},
	{[]string{"pakistan"}, 30.4, 69.3},
	{[]string{"afghanistan"}, 33.9, 67.7},
	{[]string{"bangladesh"}, 23.7, 90.4},
	{[]string{"myanmar", "burma", "birmanie"}, 21.9, 96.0},
	{[]string{"kazakhstan"}, 48.0, 66.9},
	{[]string{"uzbekistan", "ouzbekistan", "ouzbékistan"}, 41.4, 64.6},
	{[]string{"turkmenistan"}, 39.0, 59.6},
	{[]string{"kyrgyzstan", "kirghizistan"}, 41.2, 74.8},
	{[]string{"tajikistan", "tadjikistan"}, 38.9, 71.3},
	{[]string{"mongolia", "mongolie"}, 46.9, 103.8},
	{[]string{"nepal", "népal"}, 28.4, 84.1},
	{[]string{"sri lanka"}, 7.9, 80.8},
	{[]string{"argentina", "argentine"}, -38.4, -63.6},
	{[]string{"chile", "chili"}, -35.7, -71.5},
	{[]string{"peru", "perou", "pérou"}, -9.2, -75.0},
	{[]string{"colombia", "colombie"}, 4.6, -74.3},
	{[]string{"venezuela"}, 6.4, -66.6},
	{[]string{"bolivia", "bolivie"}, -16.3, -63.6},
	{[]string{"ecuador", "equateur", "équateur"}, -1.8, -78.2},
	{[]string{"uruguay"}, -32.5, -55.8},
	{[]string{"paraguay"}, -23.4, -58.4},
	{[]string{"guyana"}, 4.9, -58.9},
	{[]string{"cuba"}, 21.5, -77.8},
	{[]string{"haiti", "haïti"}, 19.0, -72.3},
	{[]string{"dominican republic", "republique dominicaine", "république dominicaine"}, 18.7, -70.2},
	{[]string{"panama"}, 8.5, -80.8},
	{[]string{"costa rica"}, 9.7, -83.8},
	{[]string{"guatemala"}, 15.8, -90.2},
	{[]string{"honduras"}, 15.2, -86.2},
	{[]string{"nicaragua"}, 12.9, -85.2},
	{[]string{"el salvador"}, 13.8, -88.9},
	{[]string{"south africa", "afrique du sud"}, -30.6, 22.9},
	{[]string{"nigeria", "nigéria"}, 9.1, 8.7},
	{[]string{"ethiopia", "ethiopie", "éthiopie"}, 9.1, 40.5},
	{[]string{"kenya"}, 0.0, 37.9},
	{[]string{"ghana"}, 8.0, -1.0},
	{[]string{"morocco", "maroc"}, 31.8, -7.1},
	{[]string{"algeria", "algerie", "algérie"}, 28.0, 1.7},
	{[]string{"tunisia", "tunisie"}, 33.9, 9.5},
	{[]string{"libya", "libye"}, 26.3, 17.2},
	{[]string{"sudan", "soudan"}, 12.9, 30.2},
	{[]string{"democratic republic of the congo", "dr congo", "drc", "congo-kinshasa", "republique democratique du congo", "république démocratique du congo", "rdc"}, -2.9, 23.4},
	{[]string{"republic of the congo", "congo", "congo-brazzaville"}, -0.2, 15.8},
	{[]string{"mali"}, 17.6, -4.0},
	{[]string{"niger"}, 17.6, 8.1},
	{[]string{"chad", "tchad"}, 15.5, 18.7},
	{[]string{"somalia", "somalie"}, 5.2, 46.2},
	{[]string{"mozambique"}, -18.7, 35.5},
	{[]string{"zambia", "zambie"}, -13.1, 27.9},
	{[]string{"zimbabwe"}, -19.0, 29.2},
	{[]string{"angola"}, -11.2, 17.9},
	{[]string{"tanzania", "tanzanie"}, -6.4, 34.9},
	{[]string{"uganda", "ouganda"}, 1.4, 32.3},
	{[]string{"senegal", "sénégal"}, 14.5, -14.5},
	{[]string{"ivory coast", "cote d'ivoire", "côte d'ivoire"}, 7.5, -5.6},
	{[]string{"cameroon", "cameroun"}, 7.4, 12.4},
	{[]string{"new zealand", "nouvelle-zelande", "nouvelle-zélande"}, -40.9, 174.9},
	{[]string{"greenland", "groenland"}, 71.7, -42.6},
}

// regionTable lists geopolitical zones, waterways/chokepoints, and major
// cities.  Consulted only after the country table misses.
var regionTable = []placeEntry{
	// Zones
	{[]string{"middle east", "moyen-orient"}, 29.3, 42.6},
	{[]string{"europe"}, 54.5, 15.3},
	{[]string{"european union", "eu", "union europeenne", "union européenne"}, 50.8, 4.4},
	{[]string{"western europe", "europe de l'ouest"}, 48.0, 7.0},
	{[]string{"eastern europe", "europe de l'est"}, 50.0, 30.0},
	{[]string{"north america", "amerique du nord", "amérique du nord"}, 45.0, -100.0},
	{[]string{"south america", "amerique du sud", "amérique du sud"}, -15.6, -56.1},
	{[]string{"latin america", "amerique latine", "amérique latine"}, -14.0, -60.0},
	{[]string{"central america", "amerique centrale", "amérique centrale"}, 12.8, -85.6},
	{[]string{"africa", "afrique"}, 1.7, 17.7},
	{[]string{"north africa", "afrique du nord", "maghreb"}, 28.0, 10.0},
	{[]string{"sub-saharan africa", "afrique subsaharienne"}, 0.0, 20.0},
	{[]string{"west africa", "afrique de l'ouest"}, 12.0, -3.0},
	{[]string{"east africa", "afrique de l'est"}, 1.0, 38.0},
	{[]string{"horn of africa", "corne de l'afrique"}, 8.0, 48.0},
	{[]string{"sahel"}, 14.5, 0.0},
	{[]string{"asia", "asie"}, 34.0, 100.6},
	{[]string{"southeast asia", "asie du sud-est"}, 5.0, 110.0},
	{[]string{"south asia", "asie du sud"}, 22.0, 78.0},
	{[]string{"central asia", "asie centrale"}, 45.0, 65.0},
	{[]string{"east asia", "asie de l'est"}, 35.0, 115.0},
	{[]string{"asia-pacific", "asia pacific", "apac"}, 10.0, 135.0},
	{[]string{"indo-pacific", "indo-pacifique"}, 0.0, 100.0},
	{[]string{"oceania", "oceanie", "océanie"}, -22.7, 140.0},
	{[]string{"balkans"}, 42.5, 21.0},
	{[]string{"caucasus", "caucase"}, 42.0, 45.0},
	{[]string{"scandinavia", "scandinavie", "nordics"}, 62.0, 15.0},
	{[]string{"baltics", "baltic states", "pays baltes"}, 57.0, 24.5},
	{[]string{"persian gulf", "gulf", "golfe persique", "golfe"}, 26.5, 51.5},
	{[]string{"red sea", "mer rouge"}, 20.0, 38.0},
	{[]string{"south china sea", "mer de chine meridionale", "mer de chine méridionale"}, 12.0, 113.0},
	{[]string{"strait of hormuz", "hormuz", "detroit d'ormuz", "détroit d'ormuz"}, 26.6, 56.5},
	{[]string{"suez canal", "suez", "canal de suez"}, 30.5, 32.3},
	{[]string{"panama canal", "canal de panama"}, 9.1, -79.7},
	{[]string{"black sea", "mer noire"}, 43.4, 34.3},
	{[]string{"mediterranean", "mediterranee", "méditerranée"}, 35.0, 18.0},
	{[]string{"arctic", "arctique"}, 78.0, 0.0},
	{[]string{"antarctica", "antarctique"}, -75.0, 0.0},
	{[]string{"taiwan strait", "detroit de taiwan", "détroit de taïwan"}, 24.5, 119.5},
	{[]string{"korean peninsula", "peninsule coreenne", "péninsule coréenne"}, 38.0, 127.5},
	{[]string{"eurasia", "eurasie"}, 55.0, 80.0},

	// Cities
	{[]string{"london", "londres"}, 51.51, -0.13},
	{[]string{"paris"}, 48.86, 2.35},
	{[]string{"berlin"}, 52.52, 13.40},
	{[]string{"madrid"}, 40.42, -3.70},
	{[]string{"rome"}, 41.90, 12.50},
	{[]string{"brussels", "bruxelles"}, 50.85, 4.35},
	{[]string{"amsterdam"}, 52.37, 4.90},
	{[]string{"rotterdam"}, 51.92, 4.48},
	{[]string{"antwerp", "anvers"}, 51.22, 4.40},
	{[]string{"vienna", "vienne"}, 48.21, 16.37},
	{[]string{"zurich"}, 47.38, 8.54},
	{[]string{"geneva", "geneve", "genève"}, 46.20, 6.14},
	{[]string{"frankfurt", "francfort"}, 50.11, 8.68},
	{[]string{"munich"}, 48.14, 11.58},
	{[]string{"hamburg", "hambourg"}, 53.55, 9.99},
	{[]string{"milan"}, 45.46, 9.19},
	{[]string{"warsaw", "varsovie"}, 52.23, 21.01},
	{[]string{"prague"}, 50.08, 14.44},
	{[]string{"budapest"}, 47.50, 19.04},
	{[]string{"athens", "athenes", "athènes"}, 37.98, 23.73},
	{[]string{"lisbon", "lisbonne"}, 38.72, -9.14},
	{[]string{"dublin"}, 53.35, -6.26},
	{[]string{"stockholm"}, 59.33, 18.07},
	{[]string{"oslo"}, 59.91, 10.75},
	{[]string{"copenhagen", "copenhague"}, 55.68, 12.57},
	{[]string{"helsinki"}, 60.17, 24.94},
	{[]string{"kyiv", "kiev"}, 50.45, 30.52},
	{[]string{"moscow", "moscou"}, 55.76, 37.62},
	{[]string{"istanbul"}, 41.01, 28.98},
	{[]string{"ankara"}, 39.93, 32.86},
	{[]string{"dubai", "dubaï"}, 25.20, 55.27},
	{[]string{"abu dhabi"}, 24.45, 54.38},
	{[]string{"riyadh", "riyad"}, 24.71, 46.68},
	{[]string{"doha"}, 25.29, 51.53},
	{[]string{"tehran", "teheran", "téhéran"}, 35.69, 51.39},
	{[]string{"baghdad", "bagdad"}, 33.31, 44.36},
	{[]string{"jerusalem", "jérusalem"}, 31.77, 35.21},
	{[]string{"tel aviv"}, 32.09, 34.78},
	{[]string{"cairo", "le caire"}, 30.04, 31.24},
	{[]string{"casablanca"}, 33.57, -7.59},
	{[]string{"lagos"}, 6.52, 3.38},
	{[]string{"nairobi"}, -1.29, 36.82},
	{[]string{"johannesburg"}, -26.20, 28.05},
	{[]string{"cape town", "le cap"}, -33.92, 18.42},
	{[]string{"kinshasa"}, -4.44, 15.27},
	{[]string{"addis ababa", "addis-abeba"}, 9.01, 38.75},
	{[]string{"beijing", "pekin", "pékin"}, 39.90, 116.41},
	{[]string{"shanghai"}, 31.23, 121.47},
	{[]string{"shenzhen"}, 22.54, 114.06},
	{[]string{"hong kong"}, 22.32, 114.17},
	{[]string{"taipei"}, 25.03, 121.57},
	{[]string{"tokyo"}, 35.68, 139.69},
	{[]string{"osaka"}, 34.69, 135.50},
	{[]string{"seoul", "séoul"}, 37.57, 126.98},
	{[]string{"pyongyang"}, 39.04, 125.76},
	{[]string{"bangkok"}, 13.76, 100.50},
	{[]string{"jakarta"}, -6.21, 106.85},
	{[]string{"manila", "manille"}, 14.60, 120.98},
	{[]string{"hanoi", "hanoï"}, 21.03, 105.85},
	{[]string{"ho chi minh city", "saigon"}, 10.82, 106.63},
	{[]string{"mumbai", "bombay"}, 19.08, 72.88},
	{[]string{"new delhi", "delhi"}, 28.61, 77.21},
	{[]string{"bangalore", "bengaluru"}, 12.97, 77.59},
	{[]string{"karachi"}, 24.86, 67.00},
	{[]string{"islamabad"}, 33.68, 73.05},
	{[]string{"dhaka"}, 23.81, 90.41},
	{[]string{"kabul", "kaboul"}, 34.56, 69.21},
	{[]string{"sydney"}, -33.87, 151.21},
	{[]string{"melbourne"}, -37.81, 144.96},
	{[]string{"auckland"}, -36.85, 174.76},
	{[]string{"new york", "new york city", "nyc"}, 40.71, -74.01},
	{[]string{"washington", "washington dc", "washington, d.c."}, 38.91, -77.04},
	{[]string{"los angeles"}, 34.05, -118.24},
	{[]string{"san francisco"}, 37.77, -122.42},
	{[]string{"chicago"}, 41.88, -87.63},
	{[]string{"houston"}, 29.76, -95.37},
	{[]string{"boston"}, 42.36, -71.06},
	{[]string{"seattle"}, 47.61, -122.33},
	{[]string{"miami"}, 25.76, -80.19},
	{[]string{"toronto"}, 43.65, -79.38},
	{[]string{"vancouver"}, 49.28, -123.12},
	{[]string{"montreal", "montréal"}, 45.50, -73.57},
	{[]string{"mexico city", "mexico df"}, 19.43, -99.13},
	{[]string{"sao paulo", "são paulo"}, -23.55, -46.63},
	{[]string{"rio de janeiro"}, -22.91, -43.17},
	{[]string{"buenos aires"}, -34.60, -58.38},
	{[]string{"santiago"}, -33.45, -70.67},
	{[]string{"lima"}, -12.05, -77.04},
	{[]string{"bogota", "bogotá"}, 4.71, -74.07},
	{[]string{"caracas"}, 10.48, -66.90},
	{[]string{"havana", "la havane"}, 23.11, -82.37},
}

// buildIndex flattens a place table into a normalised name → coordinates map.
func buildIndex(table []placeEntry) map[string][2]float64 {
	idx := make(map[string][2]float64, len(table)*2)
	for _, e := range table {
		for _, n := range e.names {
			idx[n] = [2]float64{e.lat, e.lon}
		}
	}
	return idx
}

// countryIndex and regionIndex are read-only after init and safe for
// concurrent use across all requests.
var (
	countryIndex = buildIndex(countryTable)
	regionIndex  = buildIndex(regionTable)
)

//Personal.AI order the ending
