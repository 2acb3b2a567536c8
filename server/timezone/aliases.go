package timezone

// Alias maps a place name or abbreviation to an IANA zone identifier.
type Alias struct {
	Name   string
	ZoneID string
}

// DefaultAliases returns the built-in alias table. Order matters: the
// detector scans it top to bottom and the first whole-word hit wins, so
// multi-word names come before their substrings ("new york" before "york")
// and abbreviations before country names.
func DefaultAliases() []Alias {
	return []Alias{
		// Multi-word place names.
		{"new york", TimezoneAmericaNewYork},
		{"los angeles", TimezoneAmericaLosAngeles},
		{"san francisco", TimezoneAmericaLosAngeles},
		{"mexico city", "America/Mexico_City"},
		{"sao paulo", "America/Sao_Paulo"},
		{"buenos aires", "America/Argentina/Buenos_Aires"},
		{"hong kong", "Asia/Hong_Kong"},
		{"kuala lumpur", "Asia/Kuala_Lumpur"},
		{"sri lanka", "Asia/Colombo"},
		{"new zealand", "Pacific/Auckland"},
		{"south africa", "Africa/Johannesburg"},
		{"south korea", "Asia/Seoul"},
		{"saudi arabia", "Asia/Riyadh"},
		{"united kingdom", TimezoneEuropeLondon},
		{"czech republic", "Europe/Prague"},
		{"costa rica", "America/Costa_Rica"},
		{"puerto rico", "America/Puerto_Rico"},
		{"el salvador", "America/El_Salvador"},

		// Abbreviations. "utc" and "gmt" are reached only when the text has
		// no usable offset after them.
		{"utc", TimezoneUTC},
		{"gmt", TimezoneUTC},
		{"est", TimezoneAmericaNewYork},
		{"edt", TimezoneAmericaNewYork},
		{"cst", TimezoneAmericaChicago},
		{"cdt", TimezoneAmericaChicago},
		{"mst", "America/Denver"},
		{"mdt", "America/Denver"},
		{"pst", TimezoneAmericaLosAngeles},
		{"pdt", TimezoneAmericaLosAngeles},
		{"ist", TimezoneAsiaKolkata},
		{"bst", TimezoneEuropeLondon},
		{"cet", TimezoneEuropeParis},
		{"cest", TimezoneEuropeParis},
		{"jst", TimezoneAsiaTokyo},
		{"aest", TimezoneAustraliaSydney},
		{"aedt", TimezoneAustraliaSydney},

		// Countries and regions.
		{"usa", TimezoneAmericaNewYork},
		{"america", TimezoneAmericaNewYork},
		{"canada", "America/Toronto"},
		{"mexico", "America/Mexico_City"},
		{"brazil", "America/Sao_Paulo"},
		{"argentina", "America/Argentina/Buenos_Aires"},
		{"chile", "America/Santiago"},
		{"colombia", "America/Bogota"},
		{"peru", "America/Lima"},
		{"uk", TimezoneEuropeLondon},
		{"england", TimezoneEuropeLondon},
		{"britain", TimezoneEuropeLondon},
		{"ireland", "Europe/Dublin"},
		{"scotland", TimezoneEuropeLondon},
		{"france", TimezoneEuropeParis},
		{"germany", "Europe/Berlin"},
		{"netherlands", "Europe/Amsterdam"},
		{"holland", "Europe/Amsterdam"},
		{"belgium", "Europe/Brussels"},
		{"spain", "Europe/Madrid"},
		{"portugal", "Europe/Lisbon"},
		{"italy", "Europe/Rome"},
		{"switzerland", "Europe/Zurich"},
		{"austria", "Europe/Vienna"},
		{"poland", "Europe/Warsaw"},
		{"sweden", "Europe/Stockholm"},
		{"norway", "Europe/Oslo"},
		{"denmark", "Europe/Copenhagen"},
		{"finland", "Europe/Helsinki"},
		{"greece", "Europe/Athens"},
		{"turkey", "Europe/Istanbul"},
		{"russia", "Europe/Moscow"},
		{"ukraine", "Europe/Kyiv"},
		{"romania", "Europe/Bucharest"},
		{"hungary", "Europe/Budapest"},
		{"egypt", "Africa/Cairo"},
		{"nigeria", "Africa/Lagos"},
		{"kenya", "Africa/Nairobi"},
		{"morocco", "Africa/Casablanca"},
		{"israel", "Asia/Jerusalem"},
		{"uae", "Asia/Dubai"},
		{"dubai", "Asia/Dubai"},
		{"qatar", "Asia/Qatar"},
		{"india", TimezoneAsiaKolkata},
		{"pakistan", "Asia/Karachi"},
		{"bangladesh", "Asia/Dhaka"},
		{"nepal", "Asia/Kathmandu"},
		{"thailand", "Asia/Bangkok"},
		{"vietnam", "Asia/Ho_Chi_Minh"},
		{"indonesia", "Asia/Jakarta"},
		{"malaysia", "Asia/Kuala_Lumpur"},
		{"singapore", "Asia/Singapore"},
		{"philippines", "Asia/Manila"},
		{"china", "Asia/Shanghai"},
		{"taiwan", "Asia/Taipei"},
		{"japan", TimezoneAsiaTokyo},
		{"korea", "Asia/Seoul"},
		{"australia", TimezoneAustraliaSydney},

		// Cities.
		{"london", TimezoneEuropeLondon},
		{"paris", TimezoneEuropeParis},
		{"berlin", "Europe/Berlin"},
		{"amsterdam", "Europe/Amsterdam"},
		{"madrid", "Europe/Madrid"},
		{"lisbon", "Europe/Lisbon"},
		{"rome", "Europe/Rome"},
		{"zurich", "Europe/Zurich"},
		{"vienna", "Europe/Vienna"},
		{"stockholm", "Europe/Stockholm"},
		{"oslo", "Europe/Oslo"},
		{"copenhagen", "Europe/Copenhagen"},
		{"helsinki", "Europe/Helsinki"},
		{"athens", "Europe/Athens"},
		{"istanbul", "Europe/Istanbul"},
		{"moscow", "Europe/Moscow"},
		{"dublin", "Europe/Dublin"},
		{"prague", "Europe/Prague"},
		{"warsaw", "Europe/Warsaw"},
		{"cairo", "Africa/Cairo"},
		{"lagos", "Africa/Lagos"},
		{"nairobi", "Africa/Nairobi"},
		{"johannesburg", "Africa/Johannesburg"},
		{"mumbai", TimezoneAsiaKolkata},
		{"delhi", TimezoneAsiaKolkata},
		{"kolkata", TimezoneAsiaKolkata},
		{"bangalore", TimezoneAsiaKolkata},
		{"karachi", "Asia/Karachi"},
		{"dhaka", "Asia/Dhaka"},
		{"colombo", "Asia/Colombo"},
		{"bangkok", "Asia/Bangkok"},
		{"jakarta", "Asia/Jakarta"},
		{"manila", "Asia/Manila"},
		{"beijing", "Asia/Shanghai"},
		{"shanghai", "Asia/Shanghai"},
		{"seoul", "Asia/Seoul"},
		{"tokyo", TimezoneAsiaTokyo},
		{"osaka", TimezoneAsiaTokyo},
		{"sydney", TimezoneAustraliaSydney},
		{"melbourne", "Australia/Melbourne"},
		{"brisbane", "Australia/Brisbane"},
		{"perth", "Australia/Perth"},
		{"auckland", "Pacific/Auckland"},
		{"wellington", "Pacific/Auckland"},
		{"toronto", "America/Toronto"},
		{"vancouver", "America/Vancouver"},
		{"montreal", "America/Toronto"},
		{"chicago", TimezoneAmericaChicago},
		{"houston", TimezoneAmericaChicago},
		{"dallas", TimezoneAmericaChicago},
		{"denver", "America/Denver"},
		{"phoenix", "America/Phoenix"},
		{"seattle", TimezoneAmericaLosAngeles},
		{"boston", TimezoneAmericaNewYork},
		{"miami", TimezoneAmericaNewYork},
		{"atlanta", TimezoneAmericaNewYork},
		{"honolulu", "Pacific/Honolulu"},
		{"anchorage", "America/Anchorage"},
	}
}
