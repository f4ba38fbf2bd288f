// Package country attributes countries to affiliation text using a static,
// curated lexicon. Two entry points exist: Extract, which scans one
// author's affiliation segment and returns every country it can defend,
// and ExtractHighPrecision, which inspects a canonical affiliation name
// and returns at most one country, preferring "unknown" over guessing.
//
// Tables are ordered slices: insertion order is lexicon precedence order
// (alphabetical by key, case-insensitive, as curated).
package country

import "strings"

// Entry pairs a lexicon key with the canonical country name it attributes.
type Entry struct {
	Key     string
	Country string
}

// synonymTable maps normalized matching keys (see textnorm.MatchKey) to
// canonical country names. Used for last-segment and whole-string synonym
// lookups in the high-precision extractor.
var synonymTable = []Entry{
	{"u s a", "United States"},
	{"u s", "United States"},
	{"usa", "United States"},
	{"us", "United States"},
	{"united states", "United States"},
	{"united states of america", "United States"},
	{"uk", "United Kingdom"},
	{"u k", "United Kingdom"},
	{"united kingdom", "United Kingdom"},
	{"england", "United Kingdom"},
	{"scotland", "United Kingdom"},
	{"wales", "United Kingdom"},
	{"peoples r china", "China"},
	{"people s republic of china", "China"},
	{"pr china", "China"},
	{"p r china", "China"},
	{"republic of korea", "South Korea"},
	{"south korea", "South Korea"},
	{"korea south", "South Korea"},
}

// countryTable holds display-form keys: ISO-style 2-3 letter codes,
// official names, and common variants. Short all-uppercase keys are
// matched case-sensitively with word boundaries; everything else matches
// case-insensitively with word boundaries.
var countryTable = []Entry{
	{"AE", "United Arab Emirates"},
	{"AR", "Argentina"},
	{"Argentina", "Argentina"},
	{"AT", "Austria"},
	{"AU", "Australia"},
	{"Australia", "Australia"},
	{"Austria", "Austria"},
	{"Bangladesh", "Bangladesh"},
	{"BD", "Bangladesh"},
	{"BE", "Belgium"},
	{"Belgium", "Belgium"},
	{"BR", "Brazil"},
	{"Brazil", "Brazil"},
	{"CA", "Canada"},
	{"Canada", "Canada"},
	{"CH", "Switzerland"},
	{"Chile", "Chile"},
	{"China", "China"},
	{"CL", "Chile"},
	{"CN", "China"},
	{"CO", "Colombia"},
	{"Colombia", "Colombia"},
	{"CZ", "Czech Republic"},
	{"Czech Republic", "Czech Republic"},
	{"Czechia", "Czech Republic"},
	{"DE", "Germany"},
	{"Denmark", "Denmark"},
	{"Deutschland", "Germany"},
	{"DK", "Denmark"},
	{"EG", "Egypt"},
	{"Egypt", "Egypt"},
	{"ES", "Spain"},
	{"FI", "Finland"},
	{"Finland", "Finland"},
	{"FR", "France"},
	{"France", "France"},
	{"Germany", "Germany"},
	{"GR", "Greece"},
	{"Great Britain", "United Kingdom"},
	{"Greece", "Greece"},
	{"HK", "Hong Kong"},
	{"Hong Kong", "Hong Kong"},
	{"HU", "Hungary"},
	{"Hungary", "Hungary"},
	{"ID", "Indonesia"},
	{"IE", "Ireland"},
	{"IL", "Israel"},
	{"IN", "India"},
	{"India", "India"},
	{"Indonesia", "Indonesia"},
	{"IQ", "Iraq"},
	{"IR", "Iran"},
	{"Iran", "Iran"},
	{"Iraq", "Iraq"},
	{"Ireland", "Ireland"},
	{"Israel", "Israel"},
	{"IT", "Italy"},
	{"Italy", "Italy"},
	{"Japan", "Japan"},
	{"JP", "Japan"},
	{"Korea", "South Korea"},
	{"KR", "South Korea"},
	{"KSA", "Saudi Arabia"},
	{"Malaysia", "Malaysia"},
	{"Mexico", "Mexico"},
	{"MX", "Mexico"},
	{"MY", "Malaysia"},
	{"Netherlands", "Netherlands"},
	{"New Zealand", "New Zealand"},
	{"NL", "Netherlands"},
	{"NO", "Norway"},
	{"Norway", "Norway"},
	{"NZ", "New Zealand"},
	{"Pakistan", "Pakistan"},
	{"PH", "Philippines"},
	{"Philippines", "Philippines"},
	{"PK", "Pakistan"},
	{"PL", "Poland"},
	{"Poland", "Poland"},
	{"Portugal", "Portugal"},
	{"PRC", "China"},
	{"PT", "Portugal"},
	{"QA", "Qatar"},
	{"Qatar", "Qatar"},
	{"RU", "Russia"},
	{"Russia", "Russia"},
	{"Saudi Arabia", "Saudi Arabia"},
	{"SE", "Sweden"},
	{"SG", "Singapore"},
	{"SI", "Slovenia"},
	{"Singapore", "Singapore"},
	{"SK", "Slovakia"},
	{"Slovakia", "Slovakia"},
	{"Slovenia", "Slovenia"},
	{"South Africa", "South Africa"},
	{"South Korea", "South Korea"},
	{"Spain", "Spain"},
	{"Sweden", "Sweden"},
	{"Switzerland", "Switzerland"},
	{"Taiwan", "Taiwan"},
	{"TH", "Thailand"},
	{"Thailand", "Thailand"},
	{"The Netherlands", "Netherlands"},
	{"TR", "Turkey"},
	{"Turkey", "Turkey"},
	{"TW", "Taiwan"},
	{"U.S.", "United States"},
	{"U.S.A.", "United States"},
	{"UAE", "United Arab Emirates"},
	{"UK", "United Kingdom"},
	{"United Arab Emirates", "United Arab Emirates"},
	{"United Kingdom", "United Kingdom"},
	{"United States", "United States"},
	{"US", "United States"},
	{"USA", "United States"},
	{"Viet Nam", "Vietnam"},
	{"Vietnam", "Vietnam"},
	{"VN", "Vietnam"},
	{"ZA", "South Africa"},
}

// keywordTable maps institution, city, and lab keywords to countries.
// Matched as case-insensitive substrings, and only consulted when the
// countryTable scan finds nothing.
var keywordTable = []Entry{
	{"A*STAR", "Singapore"},
	{"Aalto University", "Finland"},
	{"Adobe", "United States"},
	{"Agency for Science, Technology and Research", "Singapore"},
	{"AGH University of Science and Technology", "Poland"},
	{"Ain Shams University", "Egypt"},
	{"Air Force Research Laboratory", "United States"},
	{"AIT", "Thailand"},
	{"Allen Institute for Cell Science", "United States"},
	{"American Museum of Natural History", "United States"},
	{"American University of Sharjah", "United Arab Emirates"},
	{"Amirkabir University of Technology", "Iran"},
	{"An Independent Researcher", "Canada"},
	{"Aptima Inc.", "United States"},
	{"Argonne National Laboratory", "United States"},
	{"Aristotle University of Thessaloniki", "Greece"},
	{"Arizona State University", "United States"},
	{"Asian Institute of Technology", "Thailand"},
	{"Ateneo de Manila University", "Philippines"},
	{"Australian National University", "Australia"},
	{"Bandung Institute of Technology", "Indonesia"},
	{"Bangladesh University of Engineering and Technology", "Bangladesh"},
	{"Bangor University", "United Kingdom"},
	{"Barcelona Supercomputing Center", "Spain"},
	{"Battelle Memorial Institute", "United States"},
	{"Battelle Pacific Northwest Division", "United States"},
	{"Bauhaus-Universität Weimar", "Germany"},
	{"Bell Communications Research", "United States"},
	{"Berlin", "Germany"},
	{"BOSCH Research", "Germany"},
	{"Boğaziçi University", "Turkey"},
	{"Brigham and Women's Hospital", "United States"},
	{"British Columbia", "Canada"},
	{"Brookhaven National Laboratory", "United States"},
	{"Brown University", "United States"},
	{"Bucknell University", "United States"},
	{"BUET", "Bangladesh"},
	{"Cahners MicroDesign Resources", "United States"},
	{"Cairo University", "Egypt"},
	{"Caltech", "United States"},
	{"Cambridge", "United Kingdom"},
	{"Carnegie Mellon", "United States"},
	{"CCS", "Spain"},
	{"Center for Applied Scientific Computing, Lawrence Livermore National Laboratory", "United States"},
	{"Centrum Wiskunde & Informatica (CWI)", "Netherlands"},
	{"Chalmers University of Technology", "Sweden"},
	{"Chinese Academy of Sciences", "China"},
	{"Chulalongkorn University", "Thailand"},
	{"CNRS", "France"},
	{"Columbia University", "United States"},
	{"Computer Science Corporation", "United States"},
	{"Congressional Budget Office", "United States"},
	{"Congressional Budget Office, United States Congress", "United States"},
	{"CUHK", "Hong Kong"},
	{"CWI", "Netherlands"},
	{"Czech Technical University", "Czech Republic"},
	{"Da Nang", "Vietnam"},
	{"Dalhousie University", "Canada"},
	{"Dana-Farber Cancer Institute", "United States"},
	{"Darmstadt", "Germany"},
	{"Data Visualization Research Laboratory", "United States"},
	{"De La Salle University", "Philippines"},
	{"Delft", "Netherlands"},
	{"DePaul University", "United States"},
	{"Discovery Analytics Center", "United States"},
	{"DTU", "Denmark"},
	{"Duke University", "United States"},
	{"Duy Tan University", "Vietnam"},
	{"Ecole Polytechnique Fédérale de Lausanne", "Switzerland"},
	{"Eindhoven", "Netherlands"},
	{"ELTE", "Hungary"},
	{"ENAC", "France"},
	{"EPFL", "Switzerland"},
	{"ETH", "Switzerland"},
	{"ETH Zurich", "Switzerland"},
	{"ETH Zürich", "Switzerland"},
	{"Eötvös Loránd University", "Hungary"},
	{"Facebook", "United States"},
	{"Federal University of Ceara", "Brazil"},
	{"Federal University of Rio Grande do Sul", "Brazil"},
	{"Florida State University", "United States"},
	{"Folger Shakespeare Library", "United States"},
	{"Ford Motor Company", "United States"},
	{"Fraunhofer", "Germany"},
	{"FX Palo Alto Laboratory", "United States"},
	{"Gadjah Mada University", "Indonesia"},
	{"General Electric CRD", "United States"},
	{"Georgia Institute of Technology", "United States"},
	{"Georgia Tech", "United States"},
	{"German Climate Computing Center", "Germany"},
	{"GFZ German Research Centre for Geosciences", "Germany"},
	{"Gonzaga University", "United States"},
	{"Google", "United States"},
	{"Grand Valley State University", "United States"},
	{"Graz", "Austria"},
	{"H2O.ai, UIC", "United States"},
	{"Hamad Bin Khalifa University", "Qatar"},
	{"Hamad Bin Khalifa University (HBKU)", "Qatar"},
	{"Hanoi", "Vietnam"},
	{"Hanoi University of Science and Technology", "Vietnam"},
	{"Harvard", "United States"},
	{"HBKU", "Qatar"},
	{"HCMUT", "Vietnam"},
	{"Heidelberg", "Germany"},
	{"Hewlett-Packard GmbH", "Germany"},
	{"HKU", "Hong Kong"},
	{"HKUST", "Hong Kong"},
	{"Ho Chi Minh City", "Vietnam"},
	{"Ho Chi Minh City University of Technology", "Vietnam"},
	{"Hong Kong University of Science and Technology", "Hong Kong"},
	{"HUST", "Vietnam"},
	{"IBM", "United States"},
	{"IDEA", "United States"},
	{"IDEA.org", "United States"},
	{"IEEE Spectrum", "United States"},
	{"IISc", "India"},
	{"IIT", "India"},
	{"IIT Kharagpur", "India"},
	{"Independent", "United States"},
	{"Indian Institute of Science", "India"},
	{"Indian Institute of Technology", "India"},
	{"Indian Institute of Technology Kharagpur", "India"},
	{"Indiana University", "United States"},
	{"INGEOSUR CONICET", "Argentina"},
	{"INRIA", "France"},
	{"Institut Teknologi Bandung", "Indonesia"},
	{"Instituto Superior Técnico", "Portugal"},
	{"Intel", "United States"},
	{"Intelligent Light", "United States"},
	{"IRI", "Canada"},
	{"IST Lisbon", "Portugal"},
	{"Istanbul Technical University", "Turkey"},
	{"ITB", "Indonesia"},
	{"ITS", "Indonesia"},
	{"ITU", "Turkey"},
	{"Johns Hopkins University", "United States"},
	{"KAIST", "South Korea"},
	{"Kapsch TrafficCom AG", "Austria"},
	{"Karlsruhe Institute of Technology", "Germany"},
	{"KAUST", "Saudi Arabia"},
	{"Khalifa University", "United Arab Emirates"},
	{"King Abdullah University of Science and Technology", "Saudi Arabia"},
	{"King Abdullah University of Science and Technology (KAUST)", "Saudi Arabia"},
	{"King Mongkut's University of Technology Thonburi", "Thailand"},
	{"Kitware, Inc.", "United States"},
	{"KMUTT", "Thailand"},
	{"Kohn Pedersen Fox Associates PC", "United States"},
	{"Konstanz", "Germany"},
	{"KTH", "Sweden"},
	{"KTH Royal Institute of Technology", "Sweden"},
	{"Kyoto", "Japan"},
	{"La Sapienza University of Rome", "Italy"},
	{"Lahore University of Management Sciences", "Pakistan"},
	{"Lancaster University", "United Kingdom"},
	{"Lawrence Berkeley National Laboratory (LBNL)", "United States"},
	{"Lawrence Livermore National Laboratory", "United States"},
	{"LBNL", "United States"},
	{"Leipzig University", "Germany"},
	{"Linköping University", "Sweden"},
	{"LLNL", "United States"},
	{"Lomonosov Moscow State University", "Russia"},
	{"London", "United Kingdom"},
	{"Looking Glass HF, Inc.", "United States"},
	{"Los Alamos National Laboratory", "United States"},
	{"LUMS", "Pakistan"},
	{"Macrofocus GmbH", "Germany"},
	{"Mahidol University", "Thailand"},
	{"Maine Medical Center", "United States"},
	{"Maine Medical Center and Tufts Medical School", "United States"},
	{"Masaryk University", "Czech Republic"},
	{"Massachusetts Institute of Technology", "United States"},
	{"Max Planck Institute for Evolutionary Biology", "Germany"},
	{"Max Planck Institute for Informatics", "Germany"},
	{"MERL", "United States"},
	{"METU", "Turkey"},
	{"Microsoft Corporation", "United States"},
	{"Microsoft Research", "United States"},
	{"Middle East Technical University", "Turkey"},
	{"Middlesex University", "United Kingdom"},
	{"Minneapolis College of Art and Design", "United States"},
	{"Mississippi State University", "United States"},
	{"MIT", "United States"},
	{"Mitsubishi Electric Research Laboratories", "United States"},
	{"MMU", "Malaysia"},
	{"Monash", "Australia"},
	{"Moscow State University", "Russia"},
	{"Multimedia University", "Malaysia"},
	{"Munich", "Germany"},
	{"Nanyang Technological University", "Singapore"},
	{"NASA Ames Research Center", "United States"},
	{"NASA Goddard Space Flight Center", "United States"},
	{"NASA Langley Research Center", "United States"},
	{"National Autonomous University of Mexico", "Mexico"},
	{"National Chiao Tung University", "Taiwan"},
	{"National Taiwan University", "Taiwan"},
	{"National Technical University of Athens", "Greece"},
	{"National University of Sciences and Technology", "Pakistan"},
	{"National University of Singapore", "Singapore"},
	{"NC State University", "United States"},
	{"New Jersey Institute of Technology", "United States"},
	{"New York University", "United States"},
	{"North Carolina State University", "United States"},
	{"Northeastern University", "United States"},
	{"Northwestern University", "United States"},
	{"NTU", "Singapore"},
	{"NTU Taiwan", "Taiwan"},
	{"NTUA", "Greece"},
	{"NUS", "Singapore"},
	{"NUST", "Pakistan"},
	{"NVIDIA", "United States"},
	{"NYU", "United States"},
	{"OCAD University", "Canada"},
	{"OCADU", "Canada"},
	{"Oculus Info", "United States"},
	{"Oculus Info, Inc.", "United States"},
	{"Office of Research and Development, U.S. Environmental Protection Agency", "United States"},
	{"Ohio State University", "United States"},
	{"Ohio Supercomputer Center", "United States"},
	{"Ontario Tech University", "Canada"},
	{"Oregon State University", "United States"},
	{"Oxford", "United Kingdom"},
	{"Pacific Data Images (PDI)", "United States"},
	{"Pacific Northwest National Lab", "United States"},
	{"Pacific Northwest National Laboratory", "United States"},
	{"Palo Alto Research Center (PARC)", "United States"},
	{"Paris", "France"},
	{"Peking", "China"},
	{"Politecnico di Milano", "Italy"},
	{"Pontificia Universidad Católica de Chile", "Chile"},
	{"Potsdam University of Applied Sciences", "Germany"},
	{"Princeton", "United States"},
	{"PUC-Rio", "Brazil"},
	{"Purdue U.", "United States"},
	{"Purdue University", "United States"},
	{"Qatar University", "Qatar"},
	{"Quaid-i-Azam University", "Pakistan"},
	{"Robert Bosch Research", "Germany"},
	{"Robert Bosch Research and Technology Center", "Germany"},
	{"Roy Family Homeschool", "United States"},
	{"Saarland University", "Germany"},
	{"San Diego Supercomputer Center", "United States"},
	{"Sandia National Laboratories", "United States"},
	{"Sapienza University of Rome", "Italy"},
	{"Secure Decisions", "United States"},
	{"Seoul", "South Korea"},
	{"Sepuluh Nopember Institute of Technology", "Indonesia"},
	{"Shanghai Jiao Tong University", "China"},
	{"Sharif University of Technology", "Iran"},
	{"Shenzhen Institutes of Advanced Technology", "China"},
	{"Shenzhen University", "China"},
	{"Sichuan University", "China"},
	{"Simon Fraser University", "Canada"},
	{"Singapore Management University", "Singapore"},
	{"Singapore University of Technology and Design", "Singapore"},
	{"Skolkovo Institute of Science and Technology", "Russia"},
	{"Skoltech", "Russia"},
	{"Slovak Academy of Sciences", "Slovakia"},
	{"SMU", "Singapore"},
	{"Sorbonne University", "France"},
	{"SPADAC, Inc.", "United States"},
	{"SRI International", "United States"},
	{"SSS Research, Inc.", "United States"},
	{"Stanford", "United States"},
	{"State University of New York at Stony Brook", "United States"},
	{"Stellenbosch University", "South Africa"},
	{"Stony Brook University", "United States"},
	{"Stuttgart", "Germany"},
	{"SUTD", "Singapore"},
	{"Swansea University", "United Kingdom"},
	{"Tableau Research", "United States"},
	{"TDTU", "Vietnam"},
	{"Tec de Monterrey", "Mexico"},
	{"Tecgraf Institute, PUC-Rio", "Brazil"},
	{"Technical University of Denmark", "Denmark"},
	{"Technical University of Munich", "Germany"},
	{"Technion", "Israel"},
	{"Technische Universitat Dresden", "Germany"},
	{"Technische Universität München", "Germany"},
	{"Technische Universität Műnchen", "Germany"},
	{"Technology Applications, Inc.", "United States"},
	{"Tecnológico de Monterrey", "Mexico"},
	{"Tel Aviv Univeristy", "Israel"},
	{"Tel Aviv University", "Israel"},
	{"The Chinese University of Hong Kong", "Hong Kong"},
	{"The Discovery Analytics Center", "United States"},
	{"The Hebrew University of Jerusalem", "Israel"},
	{"The Ohio State University", "United States"},
	{"The Pennsylvania State University", "United States"},
	{"The Scripps Research Institute", "United States"},
	{"The University of Hong Kong", "Hong Kong"},
	{"The University of New Hampshire", "United States"},
	{"The University of North Carolina,", "United States"},
	{"The University of Oklahoma", "United States"},
	{"The University of Queensland", "Australia"},
	{"The University of Tokyo", "Japan"},
	{"Tianjin University", "China"},
	{"Tokyo", "Japan"},
	{"Ton Duc Thang University", "Vietnam"},
	{"Tongji University", "China"},
	{"Toronto", "Canada"},
	{"Trinity College Dublin", "Ireland"},
	{"Tsinghua", "China"},
	{"TU Delft", "Netherlands"},
	{"TU Dresden", "Germany"},
	{"TU Kaiserslautern", "Germany"},
	{"TU Wien", "Austria"},
	{"Tufts U", "United States"},
	{"Tufts University", "United States"},
	{"TUM", "Germany"},
	{"Twitter Inc.", "United States"},
	{"Twitter, Inc.", "United States"},
	{"U-tad", "Spain"},
	{"U.N.C. Charlotte", "United States"},
	{"U.S. Geological Survey", "United States"},
	{"UAE University", "United Arab Emirates"},
	{"Uber", "United States"},
	{"UC Davis", "United States"},
	{"UCD", "Ireland"},
	{"UCLA School of Medicine", "United States"},
	{"UCT", "South Africa"},
	{"UFES", "Brazil"},
	{"UI", "Indonesia"},
	{"UKM", "Malaysia"},
	{"Ulm University", "Germany"},
	{"Ulsan Nat'l Inst. of Science and Technology (UNIST)", "South Korea"},
	{"UM", "Malaysia"},
	{"UMass Dartmouth", "United States"},
	{"Umm Al-Qura University", "Saudi Arabia"},
	{"UNAM", "Mexico"},
	{"UNC Charlotte", "United States"},
	{"UNC-Charlotte", "United States"},
	{"UNIST", "South Korea"},
	{"United Arab Emirates University", "United Arab Emirates"},
	{"Univ. of Bergen", "Norway"},
	{"Universidad de Buenos Aires", "Argentina"},
	{"Universidad de los Andes", "Colombia"},
	{"Universidade do Porto", "Portugal"},
	{"Universidade Federal Fluminense", "Brazil"},
	{"Universitas Gadjah Mada", "Indonesia"},
	{"Universitas Indonesia", "Indonesia"},
	{"Universiti Kebangsaan Malaysia", "Malaysia"},
	{"Universiti Malaya", "Malaysia"},
	{"Universiti Putra Malaysia", "Malaysia"},
	{"Universiti Sains Malaysia", "Malaysia"},
	{"Universiti Teknologi Malaysia", "Malaysia"},
	{"University College Dublin", "Ireland"},
	{"University of Alabama Huntsville", "United States"},
	{"University of Alabama in Huntsville", "United States"},
	{"University of Amsterdam", "Netherlands"},
	{"University of Arizona", "United States"},
	{"University of Baghdad", "Iraq"},
	{"University of Basrah", "Iraq"},
	{"University of Bergen", "Norway"},
	{"University of Bergen and Rainfall AS Bergen", "Norway"},
	{"University of Bologna", "Italy"},
	{"University of Bonn", "Germany"},
	{"University of Bristol", "United Kingdom"},
	{"University of Buenos Aires", "Argentina"},
	{"University of Calgary", "Canada"},
	{"University of California", "United States"},
	{"University of Campinas", "Brazil"},
	{"University of Cape Town", "South Africa"},
	{"University of Chester", "United Kingdom"},
	{"University of Chicago", "United States"},
	{"University of Chile", "Chile"},
	{"University of Colorado", "United States"},
	{"University of Colorado Boulder", "United States"},
	{"University of Copenhagen", "Denmark"},
	{"University of Dhaka", "Bangladesh"},
	{"University of Duisburg-Essen", "Germany"},
	{"University of East Anglia", "United Kingdom"},
	{"University of Florida", "United States"},
	{"University of Groningen", "Netherlands"},
	{"University of Haifa", "Israel"},
	{"University of Helsinki", "Finland"},
	{"University of Hong Kong", "Hong Kong"},
	{"University of Houston", "United States"},
	{"University of Illinois", "United States"},
	{"University of Indonesia", "Indonesia"},
	{"University of Lincoln", "United Kingdom"},
	{"University of Ljubljana", "Slovenia"},
	{"University of Louisville", "United States"},
	{"University of Magdeburg", "Germany"},
	{"University of Malaya", "Malaysia"},
	{"University of Manitoba", "Canada"},
	{"University of Maryland", "United States"},
	{"University of Maryland Baltimore County", "United States"},
	{"University of Massachusetts", "United States"},
	{"University of Melbourne", "Australia"},
	{"University of Michigan", "United States"},
	{"University of Minnesota", "United States"},
	{"University of Minnesota Computer Scientist", "United States"},
	{"University of New Hampshire", "United States"},
	{"University of North Carolina", "United States"},
	{"University of Notre Dame", "United States"},
	{"University of Oklahoma", "United States"},
	{"University of Ontario Institute of Technology", "Canada"},
	{"University of Pittsburgh", "United States"},
	{"University of Porto", "Portugal"},
	{`University of Rome ""La Sapienza""`, "Italy"},
	{`University of Rome "La Sapienza"`, "Italy"},
	{"University of Rostock", "Germany"},
	{"University of South Carolina", "United States"},
	{"University of South Florida", "United States"},
	{"University of Southern California", "United States"},
	{"University of Sydney", "Australia"},
	{"University of São Paulo", "Brazil"},
	{"University of Tehran", "Iran"},
	{"University of Texas", "United States"},
	{"University of the Andes", "Colombia"},
	{"University of the Philippines", "Philippines"},
	{"University of the Witwatersrand", "South Africa"},
	{"University of Tokyo", "Japan"},
	{"University of Tübingen", "Germany"},
	{"University of Utah", "United States"},
	{"University of Victoria", "Canada"},
	{"University of Virginia", "United States"},
	{"University of Warsaw", "Poland"},
	{"University of Washington", "United States"},
	{"University of Wisconsin", "United States"},
	{"University of Wisconsin-Madison", "United States"},
	{"University-Purdue University", "United States"},
	{"Universität Bonn", "Germany"},
	{"Universität Kaiserslautern", "Germany"},
	{"Universität Leipzig", "Germany"},
	{"Université Laval", "Canada"},
	{"UNS, VyGLab", "Argentina"},
	{"UP Diliman", "Philippines"},
	{"UPC", "Spain"},
	{"UPC Barcelona", "Spain"},
	{"UPM", "Spain"},
	{"URJC", "Spain"},
	{"USM", "Malaysia"},
	{"UTM", "Malaysia"},
	{"Vancouver", "Canada"},
	{"Vanderbilt University", "United States"},
	{"Vanderbilt University School of Medicine", "United States"},
	{"VAST", "Vietnam"},
	{"VIDi", "United States"},
	{"Vienna", "Austria"},
	{"Vietnam Academy of Science and Technology", "Vietnam"},
	{"Vietnam National University - Hanoi", "Vietnam"},
	{"Vietnam National University Hanoi", "Vietnam"},
	{"Vietnam National University Ho Chi Minh City", "Vietnam"},
	{"Vietnam National University, Hanoi", "Vietnam"},
	{"Vietnam National University, Ho Chi Minh City", "Vietnam"},
	{"Virginia Tech", "United States"},
	{"ViRVIG Group", "Spain"},
	{"Visa Research", "United States"},
	{"Visintuit LLC", "United States"},
	{"Vision Systems and Technology, Inc.", "United States"},
	{"VNU Hanoi", "Vietnam"},
	{"VNU-HCM", "Vietnam"},
	{"VRVis", "Austria"},
	{"VRVis Research Center", "Austria"},
	{"Warsaw University of Technology", "Poland"},
	{"Washington University", "United States"},
	{"Wayne State University", "United States"},
	{"Wits University", "South Africa"},
	{"Worcester Polytechnic Institute", "United States"},
	{"WSI/GRIS University of Tübingen", "Germany"},
	{"Xi'an Jiaotong University", "China"},
	{"Yale", "United States"},
	{"Zhejiang", "China"},
	{"Zurich", "Switzerland"},
}

// ambiguousISO2 lists two-letter codes that are too ambiguous to accept
// from the last-segment code path ("CA" could be Canada or California).
var ambiguousISO2 = map[string]bool{
	"CA": true,
}

// usStateCodes holds the two-letter US state and territory postal codes.
// Codes in this set that collide with country codes are suppressed when
// the surrounding text is independently recognized as US context.
var usStateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true,
	"CO": true, "CT": true, "DE": true, "FL": true, "GA": true,
	"HI": true, "IA": true, "ID": true, "IL": true, "IN": true,
	"KS": true, "KY": true, "LA": true, "MA": true, "MD": true,
	"ME": true, "MI": true, "MN": true, "MO": true, "MS": true,
	"MT": true, "NC": true, "ND": true, "NE": true, "NH": true,
	"NJ": true, "NM": true, "NV": true, "NY": true, "OH": true,
	"OK": true, "OR": true, "PA": true, "RI": true, "SC": true,
	"SD": true, "TN": true, "TX": true, "UT": true, "VA": true,
	"VT": true, "WA": true, "WI": true, "WV": true, "WY": true,
	"DC": true, "PR": true,
}

// iso2Names resolves ISO 3166-1 alpha-2 codes to the canonical country
// names used throughout the lexicon.
var iso2Names = map[string]string{
	"AE": "United Arab Emirates",
	"AR": "Argentina",
	"AT": "Austria",
	"AU": "Australia",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BR": "Brazil",
	"CA": "Canada",
	"CH": "Switzerland",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"CZ": "Czech Republic",
	"DE": "Germany",
	"DK": "Denmark",
	"EG": "Egypt",
	"ES": "Spain",
	"FI": "Finland",
	"FR": "France",
	"GB": "United Kingdom",
	"GR": "Greece",
	"HK": "Hong Kong",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IN": "India",
	"IQ": "Iraq",
	"IR": "Iran",
	"IT": "Italy",
	"JP": "Japan",
	"KR": "South Korea",
	"MX": "Mexico",
	"MY": "Malaysia",
	"NL": "Netherlands",
	"NO": "Norway",
	"NZ": "New Zealand",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PT": "Portugal",
	"QA": "Qatar",
	"RU": "Russia",
	"SA": "Saudi Arabia",
	"SE": "Sweden",
	"SG": "Singapore",
	"SI": "Slovenia",
	"SK": "Slovakia",
	"TH": "Thailand",
	"TR": "Turkey",
	"TW": "Taiwan",
	"US": "United States",
	"VN": "Vietnam",
	"ZA": "South Africa",
}

// iso3Names resolves alpha-3 codes and common three-letter abbreviations
// (PRC, KSA, UAE) seen in affiliation text.
var iso3Names = map[string]string{
	"ARE": "United Arab Emirates",
	"ARG": "Argentina",
	"AUS": "Australia",
	"AUT": "Austria",
	"BEL": "Belgium",
	"BGD": "Bangladesh",
	"BRA": "Brazil",
	"CAN": "Canada",
	"CHE": "Switzerland",
	"CHL": "Chile",
	"CHN": "China",
	"COL": "Colombia",
	"CZE": "Czech Republic",
	"DEU": "Germany",
	"DNK": "Denmark",
	"EGY": "Egypt",
	"ESP": "Spain",
	"FIN": "Finland",
	"FRA": "France",
	"GBR": "United Kingdom",
	"GRC": "Greece",
	"HKG": "Hong Kong",
	"HUN": "Hungary",
	"IDN": "Indonesia",
	"IND": "India",
	"IRL": "Ireland",
	"IRN": "Iran",
	"IRQ": "Iraq",
	"ISR": "Israel",
	"ITA": "Italy",
	"JPN": "Japan",
	"KOR": "South Korea",
	"KSA": "Saudi Arabia",
	"MEX": "Mexico",
	"MYS": "Malaysia",
	"NLD": "Netherlands",
	"NOR": "Norway",
	"NZL": "New Zealand",
	"PAK": "Pakistan",
	"PHL": "Philippines",
	"POL": "Poland",
	"PRC": "China",
	"PRT": "Portugal",
	"QAT": "Qatar",
	"RUS": "Russia",
	"SAU": "Saudi Arabia",
	"SGP": "Singapore",
	"SVK": "Slovakia",
	"SVN": "Slovenia",
	"SWE": "Sweden",
	"THA": "Thailand",
	"TUR": "Turkey",
	"TWN": "Taiwan",
	"UAE": "United Arab Emirates",
	"USA": "United States",
	"VNM": "Vietnam",
	"ZAF": "South Africa",
}

// FromISO2 resolves an ISO alpha-2 code (any case) to a canonical country
// name. Used to translate external enrichment results.
func FromISO2(code string) (string, bool) {
	name, ok := iso2Names[strings.ToUpper(code)]
	return name, ok
}

// LookupCode resolves a 2- or 3-letter code to a canonical country name.
func LookupCode(code string) (string, bool) {
	code = strings.ToUpper(code)
	switch len(code) {
	case 2:
		name, ok := iso2Names[code]
		return name, ok
	case 3:
		name, ok := iso3Names[code]
		return name, ok
	}
	return "", false
}

// CountryKeys returns the country lexicon in precedence order.
func CountryKeys() []Entry {
	out := make([]Entry, len(countryTable))
	copy(out, countryTable)
	return out
}

// KeywordKeys returns the keyword lexicon in precedence order.
func KeywordKeys() []Entry {
	out := make([]Entry, len(keywordTable))
	copy(out, keywordTable)
	return out
}

// SynonymKeys returns the normalized-key synonym lexicon in precedence order.
func SynonymKeys() []Entry {
	out := make([]Entry, len(synonymTable))
	copy(out, synonymTable)
	return out
}
