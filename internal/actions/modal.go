package actions

import (
	json "github.com/goccy/go-json"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
)

// Modal actions only touch transient edit-target flags; none of them affect
// pricing, so validation is always empty.

type openJourneyModalProps struct {
	Journey *model.Journey `json:"journey"`
}

type OpenJourneyModalHandler struct{}

func (h *OpenJourneyModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *OpenJourneyModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props openJourneyModalProps
	json.Unmarshal(action.ActionProperties, &props)

	state.EditingJourney = props.Journey
	state.IsJourneyModalOpen = true
	return nil
}

type CloseJourneyModalHandler struct{}

func (h *CloseJourneyModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *CloseJourneyModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	state.EditingJourney = nil
	state.IsJourneyModalOpen = false
	return nil
}

type OpenPriceModalHandler struct{}

func (h *OpenPriceModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *OpenPriceModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props model.CheckEdit
	json.Unmarshal(action.ActionProperties, &props)

	state.EditingCheck = &props
	return nil
}

type ClosePriceModalHandler struct{}

func (h *ClosePriceModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *ClosePriceModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	state.EditingCheck = nil
	return nil
}

type OpenMultiplierModalHandler struct{}

func (h *OpenMultiplierModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *OpenMultiplierModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props model.MultiplierEdit
	json.Unmarshal(action.ActionProperties, &props)

	state.EditingMultiplier = &props
	return nil
}

type CloseMultiplierModalHandler struct{}

func (h *CloseMultiplierModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *CloseMultiplierModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	state.EditingMultiplier = nil
	return nil
}

type OpenCostsModalHandler struct{}

func (h *OpenCostsModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *OpenCostsModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	state.IsCostsModalOpen = true
	return nil
}

type CloseCostsModalHandler struct{}

func (h *CloseCostsModalHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	return nil
}

func (h *CloseCostsModalHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	state.IsCostsModalOpen = false
	return nil
}
