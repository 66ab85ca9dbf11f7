package actions

var registry = map[string]ActionHandler{
	"add_journey":            &AddJourneyHandler{},
	"update_journey":         &UpdateJourneyHandler{},
	"delete_journey":         &DeleteJourneyHandler{},
	"open_journey_modal":     &OpenJourneyModalHandler{},
	"close_journey_modal":    &CloseJourneyModalHandler{},
	"set_price_override":     &SetPriceOverrideHandler{},
	"open_price_modal":       &OpenPriceModalHandler{},
	"close_price_modal":      &ClosePriceModalHandler{},
	"set_multiplier":         &SetMultiplierHandler{},
	"open_multiplier_modal":  &OpenMultiplierModalHandler{},
	"close_multiplier_modal": &CloseMultiplierModalHandler{},
	"open_costs_modal":       &OpenCostsModalHandler{},
	"close_costs_modal":      &CloseCostsModalHandler{},
	"update_content":         &UpdateContentHandler{},
}

func Get(name string) (ActionHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
