package country

// Region labels.
const (
	Africa       = "Africa"
	Asia         = "Asia"
	Europe       = "Europe"
	NorthAmerica = "North America"
	Oceania      = "Oceania"
	SouthAmerica = "South America"
	Other        = "Other"
)

// entry is one ISO 3166-1 country or territory. aliases holds official
// long forms, common short names and the spellings the World Bank uses in
// its bulk downloads.
type entry struct {
	alpha2  string
	alpha3  string
	name    string
	region  string
	aliases []string
}

// entries follows ISO 3166-1 plus Kosovo (XKX, the code the World Bank
// uses). Central America and the Caribbean are North America; Antarctica
// and the uninhabited southern territories are Other.
var entries = []entry{
	{"AF", "AFG", "Afghanistan", Asia, nil},
	{"AX", "ALA", "Aland Islands", Europe, []string{"Åland Islands"}},
	{"AL", "ALB", "Albania", Europe, nil},
	{"DZ", "DZA", "Algeria", Africa, nil},
	{"AS", "ASM", "American Samoa", Oceania, nil},
	{"AD", "AND", "Andorra", Europe, nil},
	{"AO", "AGO", "Angola", Africa, nil},
	{"AI", "AIA", "Anguilla", NorthAmerica, nil},
	{"AQ", "ATA", "Antarctica", Other, nil},
	{"AG", "ATG", "Antigua and Barbuda", NorthAmerica, nil},
	{"AR", "ARG", "Argentina", SouthAmerica, nil},
	{"AM", "ARM", "Armenia", Asia, nil},
	{"AW", "ABW", "Aruba", NorthAmerica, nil},
	{"AU", "AUS", "Australia", Oceania, nil},
	{"AT", "AUT", "Austria", Europe, nil},
	{"AZ", "AZE", "Azerbaijan", Asia, nil},
	{"BS", "BHS", "Bahamas", NorthAmerica, []string{"Bahamas, The"}},
	{"BH", "BHR", "Bahrain", Asia, nil},
	{"BD", "BGD", "Bangladesh", Asia, nil},
	{"BB", "BRB", "Barbados", NorthAmerica, nil},
	{"BY", "BLR", "Belarus", Europe, nil},
	{"BE", "BEL", "Belgium", Europe, nil},
	{"BZ", "BLZ", "Belize", NorthAmerica, nil},
	{"BJ", "BEN", "Benin", Africa, nil},
	{"BM", "BMU", "Bermuda", NorthAmerica, nil},
	{"BT", "BTN", "Bhutan", Asia, nil},
	{"BO", "BOL", "Bolivia", SouthAmerica, []string{"Plurinational State of Bolivia"}},
	{"BQ", "BES", "Bonaire, Sint Eustatius and Saba", NorthAmerica, nil},
	{"BA", "BIH", "Bosnia and Herzegovina", Europe, nil},
	{"BW", "BWA", "Botswana", Africa, nil},
	{"BV", "BVT", "Bouvet Island", Other, nil},
	{"BR", "BRA", "Brazil", SouthAmerica, nil},
	{"IO", "IOT", "British Indian Ocean Territory", Africa, []string{"Chagos Archipelago"}},
	{"BN", "BRN", "Brunei Darussalam", Asia, []string{"Brunei"}},
	{"BG", "BGR", "Bulgaria", Europe, nil},
	{"BF", "BFA", "Burkina Faso", Africa, nil},
	{"BI", "BDI", "Burundi", Africa, nil},
	{"CV", "CPV", "Cabo Verde", Africa, []string{"Cape Verde"}},
	{"KH", "KHM", "Cambodia", Asia, nil},
	{"CM", "CMR", "Cameroon", Africa, nil},
	{"CA", "CAN", "Canada", NorthAmerica, nil},
	{"KY", "CYM", "Cayman Islands", NorthAmerica, []string{"Cayman Is."}},
	{"CF", "CAF", "Central African Republic", Africa, nil},
	{"TD", "TCD", "Chad", Africa, nil},
	{"CL", "CHL", "Chile", SouthAmerica, nil},
	{"CN", "CHN", "China", Asia, nil},
	{"CX", "CXR", "Christmas Island", Oceania, nil},
	{"CC", "CCK", "Cocos (Keeling) Islands", Oceania, nil},
	{"CO", "COL", "Colombia", SouthAmerica, nil},
	{"KM", "COM", "Comoros", Africa, nil},
	{"CG", "COG", "Congo", Africa, []string{"Congo, Rep.", "Republic of the Congo", "Congo-Brazzaville"}},
	{"CD", "COD", "Congo, Democratic Republic of the", Africa, []string{"Congo, Dem. Rep.", "Democratic Republic of the Congo", "DR Congo", "Zaire"}},
	{"CK", "COK", "Cook Islands", Oceania, nil},
	{"CR", "CRI", "Costa Rica", NorthAmerica, nil},
	{"CI", "CIV", "Cote d'Ivoire", Africa, []string{"Ivory Coast", "Côte d'Ivoire"}},
	{"HR", "HRV", "Croatia", Europe, nil},
	{"CU", "CUB", "Cuba", NorthAmerica, nil},
	{"CW", "CUW", "Curacao", NorthAmerica, []string{"Curaçao"}},
	{"CY", "CYP", "Cyprus", Asia, nil},
	{"CZ", "CZE", "Czechia", Europe, []string{"Czech Republic"}},
	{"DK", "DNK", "Denmark", Europe, nil},
	{"DJ", "DJI", "Djibouti", Africa, nil},
	{"DM", "DMA", "Dominica", NorthAmerica, nil},
	{"DO", "DOM", "Dominican Republic", NorthAmerica, nil},
	{"EC", "ECU", "Ecuador", SouthAmerica, nil},
	{"EG", "EGY", "Egypt", Africa, []string{"Egypt, Arab Rep."}},
	{"SV", "SLV", "El Salvador", NorthAmerica, nil},
	{"GQ", "GNQ", "Equatorial Guinea", Africa, nil},
	{"ER", "ERI", "Eritrea", Africa, nil},
	{"EE", "EST", "Estonia", Europe, nil},
	{"SZ", "SWZ", "Eswatini", Africa, []string{"Swaziland"}},
	{"ET", "ETH", "Ethiopia", Africa, nil},
	{"FK", "FLK", "Falkland Islands (Malvinas)", SouthAmerica, []string{"Falkland Islands"}},
	{"FO", "FRO", "Faroe Islands", Europe, nil},
	{"FJ", "FJI", "Fiji", Oceania, nil},
	{"FI", "FIN", "Finland", Europe, nil},
	{"FR", "FRA", "France", Europe, nil},
	{"GF", "GUF", "French Guiana", SouthAmerica, nil},
	{"PF", "PYF", "French Polynesia", Oceania, nil},
	{"TF", "ATF", "French Southern Territories", Other, nil},
	{"GA", "GAB", "Gabon", Africa, nil},
	{"GM", "GMB", "Gambia", Africa, []string{"Gambia, The"}},
	{"GE", "GEO", "Georgia", Asia, nil},
	{"DE", "DEU", "Germany", Europe, nil},
	{"GH", "GHA", "Ghana", Africa, nil},
	{"GI", "GIB", "Gibraltar", Europe, nil},
	{"GR", "GRC", "Greece", Europe, nil},
	{"GL", "GRL", "Greenland", NorthAmerica, nil},
	{"GD", "GRD", "Grenada", NorthAmerica, nil},
	{"GP", "GLP", "Guadeloupe", NorthAmerica, nil},
	{"GU", "GUM", "Guam", Oceania, nil},
	{"GT", "GTM", "Guatemala", NorthAmerica, nil},
	{"GG", "GGY", "Guernsey", Europe, nil},
	{"GN", "GIN", "Guinea", Africa, nil},
	{"GW", "GNB", "Guinea-Bissau", Africa, nil},
	{"GY", "GUY", "Guyana", SouthAmerica, nil},
	{"HT", "HTI", "Haiti", NorthAmerica, nil},
	{"HM", "HMD", "Heard Island and McDonald Islands", Other, nil},
	{"VA", "VAT", "Holy See", Europe, []string{"Vatican City", "Holy See (Vatican City State)"}},
	{"HN", "HND", "Honduras", NorthAmerica, nil},
	{"HK", "HKG", "Hong Kong", Asia, []string{"Hong Kong SAR, China"}},
	{"HU", "HUN", "Hungary", Europe, nil},
	{"IS", "ISL", "Iceland", Europe, nil},
	{"IN", "IND", "India", Asia, nil},
	{"ID", "IDN", "Indonesia", Asia, nil},
	{"IR", "IRN", "Iran", Asia, []string{"Iran, Islamic Rep.", "Islamic Republic of Iran"}},
	{"IQ", "IRQ", "Iraq", Asia, nil},
	{"IE", "IRL", "Ireland", Europe, nil},
	{"IM", "IMN", "Isle of Man", Europe, nil},
	{"IL", "ISR", "Israel", Asia, nil},
	{"IT", "ITA", "Italy", Europe, nil},
	{"JM", "JAM", "Jamaica", NorthAmerica, nil},
	{"JP", "JPN", "Japan", Asia, nil},
	{"JE", "JEY", "Jersey", Europe, nil},
	{"JO", "JOR", "Jordan", Asia, nil},
	{"KZ", "KAZ", "Kazakhstan", Asia, nil},
	{"KE", "KEN", "Kenya", Africa, nil},
	{"KI", "KIR", "Kiribati", Oceania, nil},
	{"KP", "PRK", "North Korea", Asia, []string{"Korea, Dem. People's Rep.", "Democratic People's Republic of Korea"}},
	{"KR", "KOR", "South Korea", Asia, []string{"Korea, Rep.", "Republic of Korea", "Korea"}},
	{"XK", "XKX", "Kosovo", Europe, nil},
	{"KW", "KWT", "Kuwait", Asia, nil},
	{"KG", "KGZ", "Kyrgyzstan", Asia, []string{"Kyrgyz Republic"}},
	{"LA", "LAO", "Laos", Asia, []string{"Lao PDR", "Lao People's Democratic Republic"}},
	{"LV", "LVA", "Latvia", Europe, nil},
	{"LB", "LBN", "Lebanon", Asia, nil},
	{"LS", "LSO", "Lesotho", Africa, nil},
	{"LR", "LBR", "Liberia", Africa, nil},
	{"LY", "LBY", "Libya", Africa, []string{"Libyan Arab Jamahiriya"}},
	{"LI", "LIE", "Liechtenstein", Europe, nil},
	{"LT", "LTU", "Lithuania", Europe, nil},
	{"LU", "LUX", "Luxembourg", Europe, nil},
	{"MO", "MAC", "Macao", Asia, []string{"Macao SAR, China", "Macau"}},
	{"MG", "MDG", "Madagascar", Africa, nil},
	{"MW", "MWI", "Malawi", Africa, nil},
	{"MY", "MYS", "Malaysia", Asia, nil},
	{"MV", "MDV", "Maldives", Asia, nil},
	{"ML", "MLI", "Mali", Africa, nil},
	{"MT", "MLT", "Malta", Europe, nil},
	{"MH", "MHL", "Marshall Islands", Oceania, nil},
	{"MQ", "MTQ", "Martinique", NorthAmerica, nil},
	{"MR", "MRT", "Mauritania", Africa, nil},
	{"MU", "MUS", "Mauritius", Africa, nil},
	{"YT", "MYT", "Mayotte", Africa, nil},
	{"MX", "MEX", "Mexico", NorthAmerica, nil},
	{"FM", "FSM", "Micronesia", Oceania, []string{"Micronesia, Fed. Sts.", "Federated States of Micronesia"}},
	{"MD", "MDA", "Moldova", Europe, []string{"Republic of Moldova"}},
	{"MC", "MCO", "Monaco", Europe, nil},
	{"MN", "MNG", "Mongolia", Asia, nil},
	{"ME", "MNE", "Montenegro", Europe, nil},
	{"MS", "MSR", "Montserrat", NorthAmerica, nil},
	{"MA", "MAR", "Morocco", Africa, nil},
	{"MZ", "MOZ", "Mozambique", Africa, nil},
	{"MM", "MMR", "Myanmar", Asia, []string{"Burma"}},
	{"NA", "NAM", "Namibia", Africa, nil},
	{"NR", "NRU", "Nauru", Oceania, nil},
	{"NP", "NPL", "Nepal", Asia, nil},
	{"NL", "NLD", "Netherlands", Europe, []string{"Netherlands, The", "Holland"}},
	{"NC", "NCL", "New Caledonia", Oceania, nil},
	{"NZ", "NZL", "New Zealand", Oceania, nil},
	{"NI", "NIC", "Nicaragua", NorthAmerica, nil},
	{"NE", "NER", "Niger", Africa, nil},
	{"NG", "NGA", "Nigeria", Africa, nil},
	{"NU", "NIU", "Niue", Oceania, nil},
	{"NF", "NFK", "Norfolk Island", Oceania, nil},
	{"MK", "MKD", "North Macedonia", Europe, []string{"Macedonia", "Macedonia, FYR"}},
	{"MP", "MNP", "Northern Mariana Islands", Oceania, []string{"N. Mariana Islands"}},
	{"NO", "NOR", "Norway", Europe, nil},
	{"OM", "OMN", "Oman", Asia, nil},
	{"PK", "PAK", "Pakistan", Asia, nil},
	{"PW", "PLW", "Palau", Oceania, nil},
	{"PS", "PSE", "Palestine", Asia, []string{"West Bank and Gaza", "State of Palestine"}},
	{"PA", "PAN", "Panama", NorthAmerica, nil},
	{"PG", "PNG", "Papua New Guinea", Oceania, nil},
	{"PY", "PRY", "Paraguay", SouthAmerica, nil},
	{"PE", "PER", "Peru", SouthAmerica, nil},
	{"PH", "PHL", "Philippines", Asia, nil},
	{"PN", "PCN", "Pitcairn", Oceania, []string{"Pitcairn Islands"}},
	{"PL", "POL", "Poland", Europe, nil},
	{"PT", "PRT", "Portugal", Europe, nil},
	{"PR", "PRI", "Puerto Rico", NorthAmerica, nil},
	{"QA", "QAT", "Qatar", Asia, nil},
	{"RE", "REU", "Reunion", Africa, []string{"Réunion"}},
	{"RO", "ROU", "Romania", Europe, nil},
	{"RU", "RUS", "Russia", Europe, []string{"Russian Federation"}},
	{"RW", "RWA", "Rwanda", Africa, nil},
	{"BL", "BLM", "Saint Barthelemy", NorthAmerica, []string{"Saint Barthélemy"}},
	{"SH", "SHN", "Saint Helena, Ascension and Tristan da Cunha", Africa, []string{"Saint Helena", "St. Helena"}},
	{"KN", "KNA", "Saint Kitts and Nevis", NorthAmerica, []string{"St. Kitts and Nevis"}},
	{"LC", "LCA", "Saint Lucia", NorthAmerica, []string{"St. Lucia"}},
	{"MF", "MAF", "Saint Martin (French part)", NorthAmerica, []string{"St. Martin (French part)"}},
	{"PM", "SPM", "Saint Pierre and Miquelon", NorthAmerica, []string{"St. Pierre and Miquelon"}},
	{"VC", "VCT", "Saint Vincent and the Grenadines", NorthAmerica, []string{"St. Vincent and the Grenadines"}},
	{"WS", "WSM", "Samoa", Oceania, nil},
	{"SM", "SMR", "San Marino", Europe, nil},
	{"ST", "STP", "Sao Tome and Principe", Africa, []string{"São Tomé and Príncipe"}},
	{"SA", "SAU", "Saudi Arabia", Asia, nil},
	{"SN", "SEN", "Senegal", Africa, nil},
	{"RS", "SRB", "Serbia", Europe, nil},
	{"SC", "SYC", "Seychelles", Africa, nil},
	{"SL", "SLE", "Sierra Leone", Africa, nil},
	{"SG", "SGP", "Singapore", Asia, nil},
	{"SX", "SXM", "Sint Maarten (Dutch part)", NorthAmerica, []string{"Sint Maarten"}},
	{"SK", "SVK", "Slovakia", Europe, []string{"Slovak Republic"}},
	{"SI", "SVN", "Slovenia", Europe, nil},
	{"SB", "SLB", "Solomon Islands", Oceania, nil},
	{"SO", "SOM", "Somalia", Africa, []string{"Somalia, Fed. Rep."}},
	{"ZA", "ZAF", "South Africa", Africa, nil},
	{"GS", "SGS", "South Georgia and the South Sandwich Islands", Other, nil},
	{"SS", "SSD", "South Sudan", Africa, nil},
	{"ES", "ESP", "Spain", Europe, nil},
	{"LK", "LKA", "Sri Lanka", Asia, nil},
	{"SD", "SDN", "Sudan", Africa, nil},
	{"SR", "SUR", "Suriname", SouthAmerica, nil},
	{"SJ", "SJM", "Svalbard and Jan Mayen", Europe, nil},
	{"SE", "SWE", "Sweden", Europe, nil},
	{"CH", "CHE", "Switzerland", Europe, nil},
	{"SY", "SYR", "Syria", Asia, []string{"Syrian Arab Republic"}},
	{"TW", "TWN", "Taiwan", Asia, []string{"Taiwan, China", "Taiwan, Province of China"}},
	{"TJ", "TJK", "Tajikistan", Asia, nil},
	{"TZ", "TZA", "Tanzania", Africa, []string{"United Republic of Tanzania"}},
	{"TH", "THA", "Thailand", Asia, nil},
	{"TL", "TLS", "Timor-Leste", Asia, []string{"East Timor"}},
	{"TG", "TGO", "Togo", Africa, nil},
	{"TK", "TKL", "Tokelau", Oceania, nil},
	{"TO", "TON", "Tonga", Oceania, nil},
	{"TT", "TTO", "Trinidad and Tobago", NorthAmerica, nil},
	{"TN", "TUN", "Tunisia", Africa, nil},
	{"TR", "TUR", "Turkiye", Asia, []string{"Turkey", "Türkiye"}},
	{"TM", "TKM", "Turkmenistan", Asia, nil},
	{"TC", "TCA", "Turks and Caicos Islands", NorthAmerica, nil},
	{"TV", "TUV", "Tuvalu", Oceania, nil},
	{"UG", "UGA", "Uganda", Africa, nil},
	{"UA", "UKR", "Ukraine", Europe, nil},
	{"AE", "ARE", "United Arab Emirates", Asia, []string{"UAE"}},
	{"GB", "GBR", "United Kingdom", Europe, []string{"Great Britain", "UK", "Britain"}},
	{"US", "USA", "United States", NorthAmerica, []string{"United States of America", "USA", "US"}},
	{"UM", "UMI", "United States Minor Outlying Islands", Oceania, nil},
	{"UY", "URY", "Uruguay", SouthAmerica, nil},
	{"UZ", "UZB", "Uzbekistan", Asia, nil},
	{"VU", "VUT", "Vanuatu", Oceania, nil},
	{"VE", "VEN", "Venezuela", SouthAmerica, []string{"Venezuela, RB", "Bolivarian Republic of Venezuela"}},
	{"VN", "VNM", "Viet Nam", Asia, []string{"Vietnam"}},
	{"VG", "VGB", "Virgin Islands (British)", NorthAmerica, []string{"British Virgin Islands"}},
	{"VI", "VIR", "Virgin Islands (U.S.)", NorthAmerica, []string{"Virgin Islands (U.S.)", "US Virgin Islands"}},
	{"WF", "WLF", "Wallis and Futuna", Oceania, nil},
	{"EH", "ESH", "Western Sahara", Africa, nil},
	{"YE", "YEM", "Yemen", Asia, []string{"Yemen, Rep."}},
	{"ZM", "ZMB", "Zambia", Africa, nil},
	{"ZW", "ZWE", "Zimbabwe", Africa, nil},
}
