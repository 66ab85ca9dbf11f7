package actions

import (
	"fmt"

	json "github.com/goccy/go-json"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
	"agreement-engine/internal/pricing"
)

type addJourneyProps struct {
	Name   string          `json:"name"`
	Checks map[string]bool `json:"checks"`
}

type AddJourneyHandler struct{}

func (h *AddJourneyHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props addJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	// Journey names are a UI policy, not a core invariant: any string is
	// accepted here, including empty.
	return validateSelection(state, props.Checks, "")
}

func (h *AddJourneyHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props addJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	if props.Checks == nil {
		props.Checks = map[string]bool{}
	}

	state.JourneySeq++
	journey := model.Journey{
		ID:             fmt.Sprintf("j-%d", state.JourneySeq),
		Name:           props.Name,
		SelectedChecks: props.Checks,
	}
	journey.TotalPrice = pricing.JourneyTotal(&journey, state.PriceOverrides, state.Multipliers, cat)

	state.Journeys = append(state.Journeys, journey)
	state.IsJourneyModalOpen = false
	state.EditingJourney = nil

	return nil
}

type updateJourneyProps struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Checks map[string]bool `json:"checks"`
}

type UpdateJourneyHandler struct{}

func (h *UpdateJourneyHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props updateJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	if state.FindJourney(props.ID) < 0 {
		return []model.ConfigurationMessage{{
			Level:   model.LevelWarning,
			Code:    "JOURNEY_NOT_FOUND",
			Message: fmt.Sprintf("No journey with id %s, update skipped", props.ID),
		}}
	}

	return validateSelection(state, props.Checks, props.ID)
}

func (h *UpdateJourneyHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props updateJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	idx := state.FindJourney(props.ID)
	if idx < 0 {
		return nil
	}

	if props.Checks == nil {
		props.Checks = map[string]bool{}
	}

	j := &state.Journeys[idx]
	j.Name = props.Name
	j.SelectedChecks = props.Checks
	j.TotalPrice = pricing.JourneyTotal(j, state.PriceOverrides, state.Multipliers, cat)

	state.IsJourneyModalOpen = false
	state.EditingJourney = nil

	return nil
}

type deleteJourneyProps struct {
	ID string `json:"id"`
}

type DeleteJourneyHandler struct{}

func (h *DeleteJourneyHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props deleteJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	if state.FindJourney(props.ID) < 0 {
		return []model.ConfigurationMessage{{
			Level:   model.LevelWarning,
			Code:    "JOURNEY_NOT_FOUND",
			Message: fmt.Sprintf("No journey with id %s, delete skipped", props.ID),
		}}
	}
	return nil
}

func (h *DeleteJourneyHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props deleteJourneyProps
	json.Unmarshal(action.ActionProperties, &props)

	idx := state.FindJourney(props.ID)
	if idx < 0 {
		return nil
	}
	state.Journeys = append(state.Journeys[:idx], state.Journeys[idx+1:]...)
	return nil
}

// validateSelection enforces that a check belongs to at most one journey
// (the second assignment is rejected) and warns when a special check is
// selected before its quantity multiplier has been set.
func validateSelection(state *model.State, checks map[string]bool, excludeID string) []model.ConfigurationMessage {
	var msgs []model.ConfigurationMessage

	for name, selected := range checks {
		if !selected {
			continue
		}

		if owner := state.OwnerOfCheck(name, excludeID); owner != nil {
			msgs = append(msgs, model.ConfigurationMessage{
				Level:   model.LevelCritical,
				Code:    "CHECK_ALREADY_ASSIGNED",
				Message: fmt.Sprintf("%s is already part of %s", name, owner.Name),
			})
			continue
		}

		if label, special := catalog.SpecialChecks[name]; special {
			if _, has := state.Multipliers[name]; !has {
				msgs = append(msgs, model.ConfigurationMessage{
					Level:   model.LevelWarning,
					Code:    "MULTIPLIER_NOT_SET",
					Message: fmt.Sprintf("%s is priced per %s record; no multiplier set, assuming 1", name, label),
				})
			}
		}
	}

	return msgs
}
