package actions

import (
	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
)

// ActionHandler defines the contract for all configuration actions.
// Validate checks business rules against the current state without touching
// it; Apply performs the state transition. An action whose validation
// produced a CRITICAL message is never applied.
type ActionHandler interface {
	Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage
	Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage
}
