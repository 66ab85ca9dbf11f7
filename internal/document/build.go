package document

import (
	"strings"
	"time"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
	"agreement-engine/internal/pricing"
)

const (
	providerName = "Equal Digital"
	footerText   = "This document is generated automatically by Equal Digital's Agreement Portal. For questions or clarifications, please contact our support team."

	brandToken       = "{brandName}"
	brandPlaceholder = "[Client Name]"
)

// Build projects the agreement state into a document tree. It is a pure
// function of the state and catalog apart from the date line.
func Build(state *model.State, cat *catalog.Catalog) *Document {
	doc := &Document{FileName: FileName(state.BrandName)}

	logoURL := ""
	if state.LogoURL != nil {
		logoURL = *state.LogoURL
	}
	doc.Blocks = append(doc.Blocks, Block{
		Kind: KindHeader,
		Header: &Header{
			ClientLogoURL: logoURL,
			ProviderName:  providerName,
			Title:         state.AgreementTitle,
			Date:          time.Now().Format("02 January 2006"),
		},
	})

	brand := state.BrandName
	if brand == "" {
		brand = brandPlaceholder
	}
	doc.Blocks = append(doc.Blocks, Block{
		Kind: KindParagraph,
		Text: strings.ReplaceAll(state.AgreementIntro, brandToken, brand),
	})

	if rows := serviceRows(state, cat); len(rows) > 0 {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:    KindTable,
			Title:   "Selected Verification Services",
			Columns: []string{"Service Name", "Journey", "TAT", "Partner Network", "Price (INR)"},
			Rows:    rows,
		})
	}

	doc.Blocks = append(doc.Blocks, Block{
		Kind:  KindSummary,
		Title: "Pricing Summary",
		Summary: &Summary{
			GrandTotal: FormatINR(pricing.GrandTotal(state.Journeys, state.PriceOverrides, state.Multipliers, cat)),
			Fees: []FeeLine{
				feeLine("One-time Setup Fee", state.SetupFee, model.DefaultSetupFee),
				feeLine("Annual Maintenance Fee", state.AnnualFee, model.DefaultAnnualFee),
			},
			Notes: visibleNotes(state),
		},
	})

	if rows := insightRows(state, cat); len(rows) > 0 {
		doc.Blocks = append(doc.Blocks, Block{
			Kind:    KindTable,
			Title:   "Insights",
			Columns: []string{"Service", "Insights"},
			Rows:    rows,
		})
	}

	doc.Blocks = append(doc.Blocks, serviceTable("Value Added Services", state.ValueAddedServices))
	doc.Blocks = append(doc.Blocks, serviceTable("Aggregator Services", state.AggregatorServices))

	doc.Blocks = append(doc.Blocks, Block{
		Kind:  KindBullets,
		Title: "Terms & Conditions",
		Items: state.TermsAndConditions,
	})

	doc.Blocks = append(doc.Blocks, Block{Kind: KindFooter, Text: footerText})

	return doc
}

// serviceRows emits one row per true-flagged check across all journeys,
// with the owning journey's name and the live effective price.
func serviceRows(state *model.State, cat *catalog.Catalog) [][]string {
	var rows [][]string
	for i := range state.Journeys {
		j := &state.Journeys[i]
		for _, name := range pricing.OrderedSelected(j, cat) {
			ch, _ := cat.Lookup(name)
			price := pricing.EffectivePrice(name, state.PriceOverrides, state.Multipliers, cat)
			rows = append(rows, []string{name, j.Name, ch.TAT, ch.PartnerNetwork, FormatINR(price)})
		}
	}
	return rows
}

// insightRows lists every selected check that carries insights, once,
// regardless of how many journeys reference it.
func insightRows(state *model.State, cat *catalog.Catalog) [][]string {
	var rows [][]string
	for _, name := range pricing.SelectedCheckNames(state.Journeys, cat) {
		ch, ok := cat.Lookup(name)
		if !ok || ch.Insights == "" {
			continue
		}
		rows = append(rows, []string{ch.Name, ch.Insights})
	}
	return rows
}

// visibleNotes filters the pricing notes: the education challan note only
// appears when at least one journey has the education check selected.
func visibleNotes(state *model.State) []string {
	educationSelected := false
	for i := range state.Journeys {
		if state.Journeys[i].SelectedChecks[catalog.CheckHighestEducation] {
			educationSelected = true
			break
		}
	}

	var notes []string
	for _, note := range state.PricingNotes {
		if strings.Contains(note, "Education verification") && !educationSelected {
			continue
		}
		notes = append(notes, note)
	}
	return notes
}

func serviceTable(title string, services []model.Service) Block {
	rows := make([][]string, 0, len(services))
	for _, s := range services {
		rows = append(rows, []string{s.Name, s.Description})
	}
	return Block{
		Kind:    KindTable,
		Title:   title,
		Columns: []string{"Service", "Description"},
		Rows:    rows,
	}
}

func feeLine(label string, amount, defaultAmount int64) FeeLine {
	line := FeeLine{Label: label, Amount: FormatINR(amount)}
	if amount != defaultAmount {
		line.DefaultAmount = FormatINR(defaultAmount)
		line.StrikeDefault = true
	}
	return line
}

// FileName builds the download name: non-alphanumeric characters in the
// brand name become underscores, an empty brand falls back to "Agreement".
func FileName(brandName string) string {
	if brandName == "" {
		return "Equal_Digital_Agreement_Agreement.pdf"
	}
	var b strings.Builder
	for _, r := range brandName {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return "Equal_Digital_Agreement_" + b.String() + ".pdf"
}

// FormatINR renders an amount with Indian digit grouping: the last three
// digits form one group, every two digits after that another
// (12345678 -> "1,23,45,678").
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := []byte{}
	for i, n := 0, amount; ; i++ {
		digits = append(digits, byte('0'+n%10))
		n /= 10
		if n == 0 {
			break
		}
		if i == 2 || (i > 2 && (i-2)%2 == 0) {
			digits = append(digits, ',')
		}
	}

	if neg {
		digits = append(digits, '-')
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}
	return string(digits)
}
