package actions

import (
	"fmt"

	json "github.com/goccy/go-json"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
)

type setPriceOverrideProps struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type SetPriceOverrideHandler struct{}

func (h *SetPriceOverrideHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props setPriceOverrideProps
	json.Unmarshal(action.ActionProperties, &props)

	// Negative overrides are stored as supplied; callers are expected to
	// validate input, the warning just makes the odd value visible.
	if props.Price < 0 {
		return []model.ConfigurationMessage{{
			Level:   model.LevelWarning,
			Code:    "NEGATIVE_PRICE_OVERRIDE",
			Message: fmt.Sprintf("Price override for %s is negative", props.Name),
		}}
	}
	return nil
}

func (h *SetPriceOverrideHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props setPriceOverrideProps
	json.Unmarshal(action.ActionProperties, &props)

	state.PriceOverrides[props.Name] = props.Price
	state.EditingCheck = nil

	// Already-saved journeys keep their cached totals until they are next
	// edited; only the live grand total reflects the new override.
	return nil
}

type setMultiplierProps struct {
	Name       string `json:"name"`
	Multiplier int64  `json:"multiplier"`
}

type SetMultiplierHandler struct{}

func (h *SetMultiplierHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *SetMultiplierHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props setMultiplierProps
	json.Unmarshal(action.ActionProperties, &props)

	var msgs []model.ConfigurationMessage
	if props.Multiplier < 1 {
		props.Multiplier = 1
		msgs = append(msgs, model.ConfigurationMessage{
			Level:   model.LevelWarning,
			Code:    "MULTIPLIER_CLAMPED",
			Message: fmt.Sprintf("Multiplier for %s clamped to 1", props.Name),
		})
	}

	state.Multipliers[props.Name] = props.Multiplier
	state.EditingMultiplier = nil

	return msgs
}
