package model

type State struct {
	BrandName      string           `json:"brand_name"`
	LogoURL        *string          `json:"logo_url"`
	Journeys       []Journey        `json:"journeys"`
	PriceOverrides map[string]int64 `json:"price_overrides"`
	Multipliers    map[string]int64 `json:"multipliers"`
	SetupFee       int64            `json:"setup_fee"`
	AnnualFee      int64            `json:"annual_fee"`

	AgreementTitle     string    `json:"agreement_title"`
	AgreementIntro     string    `json:"agreement_intro"`
	ValueAddedServices []Service `json:"value_added_services"`
	AggregatorServices []Service `json:"aggregator_services"`
	PricingNotes       []string  `json:"pricing_notes"`
	TermsAndConditions []string  `json:"terms_and_conditions"`

	// Transient edit-target flags. They drive which editing surface is
	// visible and have no effect on pricing.
	IsCostsModalOpen   bool            `json:"is_costs_modal_open"`
	IsJourneyModalOpen bool            `json:"is_journey_modal_open"`
	EditingJourney     *Journey        `json:"editing_journey"`
	EditingCheck       *CheckEdit      `json:"editing_check"`
	EditingMultiplier  *MultiplierEdit `json:"editing_multiplier"`

	JourneySeq int `json:"-"` // internal: next journey sequence number
}

type Journey struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	SelectedChecks map[string]bool `json:"selected_checks"`
	// TotalPrice is a cache recomputed when the journey is saved, not a
	// source of truth. Grand totals are always computed live.
	TotalPrice int64 `json:"total_price"`
}

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CheckEdit struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type MultiplierEdit struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	DefaultValue int64  `json:"default_value"`
}

const (
	DefaultSetupFee  = 1_000_000
	DefaultAnnualFee = 1_200_000
)

const DefaultAgreementIntro = "This agreement is entered into between Equal Digital and {brandName} for the provision of identity verification services as detailed below. The services will be delivered according to the specified turnaround times and through our verified partner network."

// NewState returns the agreement configuration every session starts from.
func NewState() *State {
	return &State{
		BrandName:      "",
		LogoURL:        nil,
		Journeys:       []Journey{},
		PriceOverrides: map[string]int64{},
		Multipliers:    map[string]int64{},
		SetupFee:       DefaultSetupFee,
		AnnualFee:      DefaultAnnualFee,
		AgreementTitle: "ID Verification Agreement",
		AgreementIntro: DefaultAgreementIntro,
		ValueAddedServices: []Service{
			{Name: "Equal Console", Description: "Equal console access shall be provided for end-end visibility on candidate e-onboarding status"},
			{Name: "Equal Gateway instances", Description: "Equal will provide unique gateway instances configuring the BGV checks for each Keka's customer"},
			{Name: "Equal Reporting", Description: "Equal shall provide outreach logs for audit purpose"},
			{Name: "Business Rule Engine", Description: "Equal will provide insights on the BGV reports based on business logic provided by Merchant"},
			{Name: "Routing Engine", Description: "Equal will dynamically route request between partners for higher success rate"},
		},
		AggregatorServices: []Service{
			{Name: "Partner Network Optimisation", Description: "Equal will constantly be optimising our partner network for higher success rate for every module opted"},
			{Name: "Partner Additions", Description: "Equal will add more reliable partners for every module who has best-in-class network uptime with higher throughput"},
			{Name: "Cloud Optimisation", Description: "Equal will leverage Amazon cloud infrastructure CDN services for higher network availability"},
			{Name: "Cloud Security", Description: "Equal will leverage highest level of cyber security mesures enabling zero trust security architecture"},
		},
		PricingNotes: []string{
			"A minor % of Education verification may incur an additional challan cost that's charged by the Universities at the time of verifications - this charge will be passed on at actuals",
			"AMC + Value-added Service paid yearly once (Prepay Annual) that includes Updates, Patches, Bug fixes & Customer Support",
			"All prices are exclusive of applicable taxes",
		},
		TermsAndConditions: []string{
			"All verification services will be provided through our certified partner network",
			"Turnaround times are indicative and may vary based on data availability",
			"Pricing is per verification check and excludes applicable taxes",
			"This agreement is valid for 30 days from the date of issue",
			"All services are subject to Equal Digital's standard terms and conditions",
		},
	}
}

// FindJourney returns the index of the journey with the given id, or -1.
func (s *State) FindJourney(id string) int {
	for i := range s.Journeys {
		if s.Journeys[i].ID == id {
			return i
		}
	}
	return -1
}

// OwnerOfCheck returns the journey that currently has the named check
// flagged true, excluding the journey with id excludeID. Used to enforce
// that a check belongs to at most one journey.
func (s *State) OwnerOfCheck(name, excludeID string) *Journey {
	for i := range s.Journeys {
		j := &s.Journeys[i]
		if j.ID == excludeID {
			continue
		}
		if j.SelectedChecks[name] {
			return j
		}
	}
	return nil
}
