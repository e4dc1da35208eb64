package classify

// Category is one entry in the job taxonomy. Keyword matching is
// case-insensitive substring containment, so multi-word phrases are
// allowed and short ambiguous tokens are deliberately absent.
type Category struct {
	Name              string   `yaml:"name"`
	Primary           []string `yaml:"primary"`
	Secondary         []string `yaml:"secondary"`
	CompanyIndicators []string `yaml:"company_indicators"`
	Exclusions        []string `yaml:"exclusions"`
}

const Other = "Other"

// defaultTaxonomy is the built-in category data. Declaration order is
// load-bearing: score ties resolve to the earliest category.
var defaultTaxonomy = []Category{
	{
		Name:              "Finance & Banking",
		Primary:           []string{"accountant", "finance", "banking", "audit", "accounting", "economist", "treasurer", "bookkeeper"},
		Secondary:         []string{"financial", "budget", "cashier", "credit", "loan", "investment", "tax", "payroll", "reconciliation"},
		CompanyIndicators: []string{"bank", "microfinance", "insurance", "building society", "asset management"},
	},
	{
		Name:              "IT & Technology",
		Primary:           []string{"developer", "programmer", "software", "systems administrator", "network administrator", "database administrator", "web developer", "data analyst", "cyber"},
		Secondary:         []string{"technology", "computer", "digital", "technical", "coding", "programming", "javascript", "python", "java", "html", "css", "ict", "information technology", "helpdesk", "network", "database"},
		CompanyIndicators: []string{"tech", "telecoms", "fintech", "software house"},
		Exclusions:        []string{"mechanic", "electrician"},
	},
	{
		Name:              "Healthcare",
		Primary:           []string{"nurse", "doctor", "medical", "pharmacist", "physician", "dentist", "midwife", "radiographer"},
		Secondary:         []string{"health", "hospital", "clinic", "pharmacy", "therapist", "healthcare", "clinical", "patient", "treatment", "nursing", "lab technician", "medical officer", "health officer"},
		CompanyIndicators: []string{"hospital", "clinic", "medical aid", "pharmacy"},
		Exclusions:        []string{"veterinary", "animal health"},
	},
	{
		Name:              "Education & Training",
		Primary:           []string{"teacher", "lecturer", "professor", "tutor", "instructor"},
		Secondary:         []string{"education", "training", "academic", "school", "university", "educational", "curriculum", "learning", "student", "teaching", "trainer", "facilitator"},
		CompanyIndicators: []string{"school", "college", "university", "academy"},
		Exclusions:        []string{"training coordinator"},
	},
	{
		Name:              "Sales & Marketing",
		Primary:           []string{"sales", "marketing", "business development", "merchandiser", "telesales"},
		Secondary:         []string{"market", "customer", "client", "promotion", "advertising", "brand", "retail", "commercial", "revenue", "campaign"},
		CompanyIndicators: []string{"agency", "fmcg", "wholesale"},
	},
	{
		Name:              "Human Resources",
		Primary:           []string{"human resources", "recruitment", "human capital", "talent acquisition"},
		Secondary:         []string{"talent", "personnel", "employee", "payroll", "benefits", "compensation", "training coordinator", "people", "workforce", "industrial relations"},
		CompanyIndicators: []string{"recruitment agency", "staffing"},
	},
	{
		Name:              "Engineering",
		Primary:           []string{"engineer", "engineering", "mechanical", "electrical", "civil", "architect"},
		Secondary:         []string{"construction", "maintenance", "repair", "installation", "infrastructure", "project engineer", "artisan", "fitter", "boilermaker", "quantity surveyor"},
		CompanyIndicators: []string{"construction", "mining", "engineering"},
		Exclusions:        []string{"software engineer", "network engineer", "data engineer"},
	},
	{
		Name:              "Administration",
		Primary:           []string{"administrator", "secretary", "receptionist", "personal assistant", "clerk"},
		Secondary:         []string{"admin", "assistant", "office", "administrative", "coordinator", "support", "data entry", "filing", "records", "typist"},
		Exclusions:        []string{"database administrator", "systems administrator"},
	},
	{
		Name:              "Management",
		Primary:           []string{"manager", "director", "chief executive", "general manager", "managing director"},
		Secondary:         []string{"supervisor", "head", "chief", "executive", "leadership", "team lead", "senior", "management", "operations", "strategic", "planning", "ceo", "coo", "cfo"},
	},
	{
		Name:              "Legal",
		Primary:           []string{"lawyer", "legal", "attorney", "paralegal", "legal officer"},
		Secondary:         []string{"law", "court", "judicial", "compliance", "contract", "litigation", "conveyancing"},
		CompanyIndicators: []string{"law firm", "chambers"},
	},
	{
		Name:              "Agriculture",
		Primary:           []string{"agriculture", "farming", "farmer", "agronomy", "agronomist", "veterinary"},
		Secondary:         []string{"agricultural", "crop", "livestock", "irrigation", "rural", "extension officer", "horticulture", "tobacco", "dairy"},
		CompanyIndicators: []string{"farm", "estate", "agro"},
	},
	{
		Name:              "NGO & Development",
		Primary:           []string{"ngo", "humanitarian", "nonprofit", "charity"},
		Secondary:         []string{"development", "community", "social", "volunteer", "aid", "relief", "donor", "grant", "project officer", "livelihoods", "safeguarding", "monitoring and evaluation"},
		CompanyIndicators: []string{"trust", "foundation", "international", "world vision", "unicef"},
		Exclusions:        []string{"business development", "property development"},
	},
	{
		Name:              "Consulting",
		Primary:           []string{"consultant", "consulting", "consultancy"},
		Secondary:         []string{"advisory", "expert", "specialist", "freelance", "contractor", "expertise", "advisor"},
		CompanyIndicators: []string{"consulting", "advisory"},
	},
	{
		Name:              "Transportation & Logistics",
		Primary:           []string{"driver", "logistics", "transport"},
		Secondary:         []string{"delivery", "shipping", "warehouse", "supply chain", "distribution", "fleet", "cargo", "freight", "dispatch", "forklift"},
		CompanyIndicators: []string{"logistics", "freight", "couriers", "haulage"},
	},
	{
		Name:              "Security",
		Primary:           []string{"security", "guard"},
		Secondary:         []string{"protection", "safety", "surveillance", "risk", "emergency", "loss control", "cctv"},
		CompanyIndicators: []string{"security services"},
		Exclusions:        []string{"cyber security", "information security", "food security", "social security"},
	},
}

// titleSignal is the fallback used when no category scores above zero:
// a strong single-word hint checked against the title only, in order.
type titleSignal struct {
	word       string
	category   string
	contextual bool
}

var titleSignals = []titleSignal{
	{word: "accountant", category: "Finance & Banking"},
	{word: "manager", category: "Management"},
	{word: "director", category: "Management"},
	{word: "assistant", category: "Administration"},
	{word: "clerk", category: "Administration"},
	{word: "officer", contextual: true},
	{word: "coordinator", contextual: true},
}

// signalContexts disambiguates "officer"/"coordinator" titles by the
// first context whose keywords appear in the combined text.
var signalContexts = []struct {
	category string
	keywords []string
}{
	{"Healthcare", []string{"health", "medical", "clinic", "patient", "nursing"}},
	{"Finance & Banking", []string{"finance", "financial", "bank", "audit", "loan"}},
	{"NGO & Development", []string{"ngo", "community", "donor", "humanitarian", "programme", "program"}},
	{"Administration", []string{"office", "admin", "records", "clerical"}},
}
