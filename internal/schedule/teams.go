package schedule

// Team and venue catalogs for generated seasons. These mirror the names that
// appear in AFL Tables and footywire.com records, including the duplicate
// and misspelt venue entries, so generated data carries the same
// irregularities downstream consumers have to cope with.

// NonBrisbaneTeams are the teams eligible for every round.
var NonBrisbaneTeams = []string{
	"Richmond",
	"Carlton",
	"Melbourne",
	"Greater Western Sydney",
	"Essendon",
	"Sydney",
	"Collingwood",
	"North Melbourne",
	"Western Bulldogs",
	"Fremantle",
	"Port Adelaide",
	"St Kilda",
	"Hawthorn",
	"Adelaide",
	"Gold Coast",
	"Geelong",
	"West Coast",
	"Fitzroy",
	"University",
}

// BrisbaneTeams contribute at most one representative per round. Depending
// on how team names are normalised downstream, both franchises can collapse
// into a single "Brisbane", which would make a round with both invalid.
var BrisbaneTeams = []string{
	"Brisbane Bears",
	"Brisbane Lions",
}

// Venues is the combined venue catalog.
var Venues = []string{
	// AFL Tables venues
	"Football Park",
	"S.C.G.",
	"Windy Hill",
	"Subiaco",
	"Moorabbin Oval",
	"M.C.G.",
	"Kardinia Park",
	"Victoria Park",
	"Waverley Park",
	"Princes Park",
	"Western Oval",
	"W.A.C.A.",
	"Carrara",
	"Gabba",
	"Docklands",
	"York Park",
	"Manuka Oval",
	"Sydney Showground",
	"Adelaide Oval",
	"Bellerive Oval",
	"Marrara Oval",
	"Traeger Park",
	"Perth Stadium",
	"Stadium Australia",
	"Wellington",
	"Lake Oval",
	"East Melbourne",
	"Corio Oval",
	"Junction Oval",
	"Brunswick St",
	"Punt Rd",
	"Glenferrie Oval",
	"Arden St",
	"Olympic Park",
	"Yarraville Oval",
	"Toorak Park",
	"Euroa",
	"Coburg Oval",
	"Brisbane Exhibition",
	"North Hobart",
	"Bruce Stadium",
	"Yallourn",
	"Cazaly's Stadium",
	"Eureka Stadium",
	"Blacktown",
	"Jiangwan Stadium",
	"Albury",
	"Riverway Stadium",
	// Footywire venues
	"AAMI Stadium",
	"ANZ Stadium",
	"UTAS Stadium",
	"Blacktown International",
	"Blundstone Arena",
	"Domain Stadium",
	"Etihad Stadium",
	"GMHBA Stadium",
	"MCG",
	"Mars Stadium",
	"Metricon Stadium",
	"Optus Stadium",
	"SCG",
	"Spotless Stadium",
	"TIO Stadium",
	"Westpac Stadium",
	"Marvel Stadium",
	"Canberra Oval",
	// footywire.com spells 'Traeger' as 'Traegar' in its fixtures
	"TIO Traegar Park",
}
