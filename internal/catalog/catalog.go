package catalog

import "fmt"

// Check is a single verification service offering. Identity is Name, which
// must be unique across the whole catalog.
type Check struct {
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	TAT            string `json:"tat"`
	PartnerNetwork string `json:"partner_network"`
	Method         string `json:"method"`
	Insights       string `json:"insights,omitempty"`
}

type Category struct {
	Name   string  `json:"name"`
	Checks []Check `json:"checks"`
}

// Catalog is an immutable, ordered collection of check categories with a
// name index built once at construction.
type Catalog struct {
	categories []Category
	index      map[string]Check
}

// New builds a catalog and its name index. A duplicate check name anywhere
// in the catalog is rejected.
func New(categories []Category) (*Catalog, error) {
	index := make(map[string]Check)
	for _, cat := range categories {
		for _, ch := range cat.Checks {
			if _, exists := index[ch.Name]; exists {
				return nil, fmt.Errorf("duplicate check name %q", ch.Name)
			}
			index[ch.Name] = ch
		}
	}
	return &Catalog{categories: categories, index: index}, nil
}

func (c *Catalog) Categories() []Category {
	return c.categories
}

// Lookup returns the check with the given name and whether it exists.
func (c *Catalog) Lookup(name string) (Check, bool) {
	ch, ok := c.index[name]
	return ch, ok
}

// Price returns the base price for a check name, or 0 when the name is not
// in the catalog. The lenient fallback keeps old journeys usable after a
// catalog update removes a check.
func (c *Catalog) Price(name string) int64 {
	return c.index[name].Price
}

// Checks named here carry a quantity multiplier that the operator is
// prompted for on first selection.
const (
	CheckHighestEducation  = "Highest Education*"
	CheckEmploymentConduct = "Employment & Conduct (Per check) - Last 7 years"
)

var SpecialChecks = map[string]string{
	CheckHighestEducation:  "Education",
	CheckEmploymentConduct: "Employment",
}

// Default returns the built-in verification check catalog.
func Default() *Catalog {
	c, err := New(defaultCategories)
	if err != nil {
		panic(err) // built-in data is duplicate free, verified by tests
	}
	return c
}

var defaultCategories = []Category{
	{
		Name: "Identity Checks",
		Checks: []Check{
			{Name: "Aadhaar", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digi-locker / OCR"},
			{Name: "PAN Basic", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch"},
			{Name: "PAN Advanced (Aadhaar <> PAN Linkage)", Price: 45, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch", Insights: "Equal will provide name mismatch check with Aadhaar"},
			{Name: "Bank Account Validation", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch", Insights: "Equal will provide name mismatch check with Aadhaar"},
			{Name: "Voter ID", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch"},
			{Name: "Driving License", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch"},
			{Name: "Vehicle RC", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch"},
			{Name: "ESIC", Price: 30, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Digital Fetch"},
		},
	},
	{
		Name: "Social Media Checks",
		Checks: []Check{
			{Name: "Social Media", Price: 150, TAT: "Instant", PartnerNetwork: "3 Data Partners", Method: "Digital Fetch"},
		},
	},
	{
		Name: "Criminal Checks",
		Checks: []Check{
			{Name: "Criminal Court (CCRV)", Price: 200, TAT: "T + 48 hours", PartnerNetwork: "2 Data Partners", Method: "Digital Fetch", Insights: "Equal shall provide legal case history with Name of petitioner, respondant, & case status insights"},
			{Name: "Police verification through Law firm", Price: 500, TAT: "T + 14 days", PartnerNetwork: "2 Data Partners", Method: "Physical verification"},
			{Name: "Global database check", Price: 250, TAT: "Instant", PartnerNetwork: "2 Partners", Method: "Digital Fetch"},
		},
	},
	{
		Name: "Salary Validation",
		Checks: []Check{
			{Name: "Payslip (Tampering + POO + MCA)", Price: 150, TAT: "4 Hours", PartnerNetwork: "3 Data Partners", Method: "User Upload", Insights: "Equal shall provide income insights based on Payslip & Bank Statement - POI & POO, Document tampering, Salary mismatch insights & Company existance insights"},
			{Name: "Bank Statement (Match against Payslip)", Price: 150, TAT: "4 Hours", PartnerNetwork: "3 Data Partners", Method: "User Upload"},
		},
	},
	{
		Name: "Credit Checks",
		Checks: []Check{
			{Name: "Credit check (CIBIL / CRIF / Experian / Equifax)", Price: 200, TAT: "Instant", PartnerNetwork: "4 Data Partners", Method: "Digital Fetch"},
			{Name: "India Credit Default Database Check", Price: 50, TAT: "Instant", PartnerNetwork: "Unknown", Method: "Digital Fetch"},
		},
	},
	{
		Name: "Address Checks",
		Checks: []Check{
			{Name: "Permanent Address check (Physical - PAN India Coverage)", Price: 400, TAT: "T + 14 days", PartnerNetwork: "4 Partners", Method: "BGV Partner"},
			{Name: "Current Address check (Physical - PAN India Coverage)", Price: 400, TAT: "T + 14 days", PartnerNetwork: "Unknown", Method: "BGV Partner"},
			{Name: "Digital Address check", Price: 200, TAT: "Instant", PartnerNetwork: "Unknown", Method: "Digital Address check", Insights: "Equal will provide Address insights with google lat+long capture coordinates and uploaded utility bill information"},
		},
	},
	{
		Name: "Education Checks",
		Checks: []Check{
			{Name: "Highest Education*", Price: 500, TAT: "T + 14 days", PartnerNetwork: "3 Partners", Method: "User Upload"},
		},
	},
	{
		Name: "Employment Checks",
		Checks: []Check{
			{Name: "Employment & Conduct (Per check) - Last 7 years", Price: 2000, TAT: "T + 14 days", PartnerNetwork: "3 Partners", Method: "User Upload", Insights: "Equal shall provide insights based on EPFO data on Alternate employment, Business, Employment history gaps"},
			{Name: "Self-Employment Check (Via Business PAN)", Price: 100, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Fetch by PAN"},
			{Name: "PF UAN Advanced", Price: 100, TAT: "Instant", PartnerNetwork: "4 Partners", Method: "Fetch by Phone number", Insights: "Equal will provide name mismatch check with Aadhaar"},
			{Name: "CV Validation", Price: 250, TAT: "T + 7 days", PartnerNetwork: "5 BGV Partners", Method: "User Upload"},
			{Name: "Directorship Check", Price: 50, TAT: "Instant", PartnerNetwork: "5 Data Partners", Method: "Fetch by PAN"},
			{Name: "Right to Work (Govt ID)", Price: 60, TAT: "Instant", PartnerNetwork: "6 Data Partners", Method: "Fetch by Valid India Govt. ID"},
		},
	},
	{
		Name: "Professional Checks",
		Checks: []Check{
			{Name: "Professional Reference Check", Price: 300, TAT: "T + 14 days", PartnerNetwork: "5 BGV Partners", Method: "User Upload"},
		},
	},
}
