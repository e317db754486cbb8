package abbrev

import (
	"regexp"
	"sort"
	"strings"
)

// streetExpand maps USPS-style street type abbreviations to full words.
// Keys and values are upper case; expansion output is title-cased.
var streetExpand = map[string]string{
	"ALY":  "ALLEY",
	"ANX":  "ANNEX",
	"ARC":  "ARCADE",
	"AV":   "AVENUE",
	"AVE":  "AVENUE",
	"BCH":  "BEACH",
	"BLF":  "BLUFF",
	"BLVD": "BOULEVARD",
	"BND":  "BEND",
	"BR":   "BRANCH",
	"BRG":  "BRIDGE",
	"BRK":  "BROOK",
	"BYP":  "BYPASS",
	"CIR":  "CIRCLE",
	"CLB":  "CLUB",
	"CMN":  "COMMON",
	"COR":  "CORNER",
	"CP":   "CAMP",
	"CRES": "CRESCENT",
	"CRK":  "CREEK",
	"CSWY": "CAUSEWAY",
	"CT":   "COURT",
	"CTR":  "CENTER",
	"CV":   "COVE",
	"CYN":  "CANYON",
	"DL":   "DALE",
	"DR":   "DRIVE",
	"EST":  "ESTATE",
	"EXPY": "EXPRESSWAY",
	"EXT":  "EXTENSION",
	"FLD":  "FIELD",
	"FLS":  "FALLS",
	"FRD":  "FORD",
	"FRG":  "FORGE",
	"FRK":  "FORK",
	"FRST": "FOREST",
	"FRY":  "FERRY",
	"FT":   "FORT",
	"FWY":  "FREEWAY",
	"GDN":  "GARDEN",
	"GDNS": "GARDENS",
	"GLN":  "GLEN",
	"GRN":  "GREEN",
	"GRV":  "GROVE",
	"GTWY": "GATEWAY",
	"HBR":  "HARBOR",
	"HL":   "HILL",
	"HLS":  "HILLS",
	"HOLW": "HOLLOW",
	"HTS":  "HEIGHTS",
	"HVN":  "HAVEN",
	"HWY":  "HIGHWAY",
	"INLT": "INLET",
	"JCT":  "JUNCTION",
	"KNL":  "KNOLL",
	"LDG":  "LODGE",
	"LK":   "LAKE",
	"LN":   "LANE",
	"LNDG": "LANDING",
	"MDW":  "MEADOW",
	"MDWS": "MEADOWS",
	"ML":   "MILL",
	"MLS":  "MILLS",
	"MNR":  "MANOR",
	"MSN":  "MISSION",
	"MT":   "MOUNT",
	"MTN":  "MOUNTAIN",
	"ORCH": "ORCHARD",
	"PKWY": "PARKWAY",
	"PL":   "PLACE",
	"PLZ":  "PLAZA",
	"PNES": "PINES",
	"PRT":  "PORT",
	"PT":   "POINT",
	"RD":   "ROAD",
	"RDG":  "RIDGE",
	"RIV":  "RIVER",
	"RNCH": "RANCH",
	"RTE":  "ROUTE",
	"SHR":  "SHORE",
	"SHRS": "SHORES",
	"SMT":  "SUMMIT",
	"SPG":  "SPRING",
	"SPGS": "SPRINGS",
	"SQ":   "SQUARE",
	"ST":   "STREET",
	"STA":  "STATION",
	"TER":  "TERRACE",
	"TPKE": "TURNPIKE",
	"TRCE": "TRACE",
	"TRL":  "TRAIL",
	"TUNL": "TUNNEL",
	"VIS":  "VISTA",
	"VLG":  "VILLAGE",
	"VLY":  "VALLEY",
	"VW":   "VIEW",
	"WLK":  "WALK",
	"XING": "CROSSING",
	"XRD":  "CROSSROAD",
}

// nameExpand covers general-word abbreviations that show up in street and
// city names but are not street types.
var nameExpand = map[string]string{
	"BLDG": "BUILDING",
	"INTL": "INTERNATIONAL",
	"MEM":  "MEMORIAL",
	"NATL": "NATIONAL",
	"UNIV": "UNIVERSITY",
}

var directionExpand = map[string]string{
	"N":  "NORTH",
	"S":  "SOUTH",
	"E":  "EAST",
	"W":  "WEST",
	"NE": "NORTHEAST",
	"NW": "NORTHWEST",
	"SE": "SOUTHEAST",
	"SW": "SOUTHWEST",
}

// stateExpand maps full state and territory names to their 2-letter codes.
var stateExpand = map[string]string{
	"ALABAMA":                  "AL",
	"ALASKA":                   "AK",
	"AMERICAN SAMOA":           "AS",
	"ARIZONA":                  "AZ",
	"ARKANSAS":                 "AR",
	"CALIFORNIA":               "CA",
	"COLORADO":                 "CO",
	"CONNECTICUT":              "CT",
	"DELAWARE":                 "DE",
	"DISTRICT OF COLUMBIA":     "DC",
	"FLORIDA":                  "FL",
	"GEORGIA":                  "GA",
	"GUAM":                     "GU",
	"HAWAII":                   "HI",
	"IDAHO":                    "ID",
	"ILLINOIS":                 "IL",
	"INDIANA":                  "IN",
	"IOWA":                     "IA",
	"KANSAS":                   "KS",
	"KENTUCKY":                 "KY",
	"LOUISIANA":                "LA",
	"MAINE":                    "ME",
	"MARYLAND":                 "MD",
	"MASSACHUSETTS":            "MA",
	"MICHIGAN":                 "MI",
	"MINNESOTA":                "MN",
	"MISSISSIPPI":              "MS",
	"MISSOURI":                 "MO",
	"MONTANA":                  "MT",
	"NEBRASKA":                 "NE",
	"NEVADA":                   "NV",
	"NEW HAMPSHIRE":            "NH",
	"NEW JERSEY":               "NJ",
	"NEW MEXICO":               "NM",
	"NEW YORK":                 "NY",
	"NORTH CAROLINA":           "NC",
	"NORTH DAKOTA":             "ND",
	"NORTHERN MARIANA ISLANDS": "MP",
	"OHIO":                     "OH",
	"OKLAHOMA":                 "OK",
	"OREGON":                   "OR",
	"PENNSYLVANIA":             "PA",
	"PUERTO RICO":              "PR",
	"RHODE ISLAND":             "RI",
	"SOUTH CAROLINA":           "SC",
	"SOUTH DAKOTA":             "SD",
	"TENNESSEE":                "TN",
	"TEXAS":                    "TX",
	"UTAH":                     "UT",
	"VERMONT":                  "VT",
	"VIRGIN ISLANDS":           "VI",
	"VIRGINIA":                 "VA",
	"WASHINGTON":               "WA",
	"WEST VIRGINIA":            "WV",
	"WISCONSIN":                "WI",
	"WYOMING":                  "WY",
}

// Derived lookups, built once at startup and never mutated.
var (
	// combinedExpand merges street types and general words for the
	// whole-word expansion pass.
	combinedExpand = buildCombined()
	// streetWords holds the full street-type words; directionals directly
	// before one of these are street names, not directions.
	streetWords = buildStreetWords()
	// stateCodes holds the valid 2-letter codes.
	stateCodes = buildStateCodes()

	abbrPattern = buildAbbrPattern()
)

func buildCombined() map[string]string {
	combined := make(map[string]string, len(streetExpand)+len(nameExpand))
	for k, v := range streetExpand {
		combined[k] = v
	}
	for k, v := range nameExpand {
		combined[k] = v
	}
	return combined
}

func buildStreetWords() map[string]bool {
	words := make(map[string]bool, len(streetExpand))
	for _, v := range streetExpand {
		words[v] = true
	}
	return words
}

func buildStateCodes() map[string]bool {
	codes := make(map[string]bool, len(stateExpand))
	for _, code := range stateExpand {
		codes[code] = true
	}
	return codes
}

func buildAbbrPattern() *regexp.Regexp {
	keys := make([]string, 0, len(combinedExpand))
	for k := range combinedExpand {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return regexp.MustCompile(`(?i)\b(` + strings.Join(keys, "|") + `)\b\.?`)
}

// CanonicalState rewrites a state value to its 2-letter code: full names
// are replaced, valid codes are upper-cased, anything else is returned
// unchanged for validation to judge.
func CanonicalState(value string) string {
	bare := strings.ReplaceAll(value, ".", "")
	upper := strings.ToUpper(bare)
	if code, ok := stateExpand[upper]; ok {
		return code
	}
	if len(bare) == 2 && stateCodes[upper] {
		return upper
	}
	return value
}
