package engine

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"agreement-engine/internal/actions"
	"agreement-engine/internal/catalog"
	"agreement-engine/internal/jsonpatch"
	"agreement-engine/internal/model"
	"agreement-engine/internal/pricing"
)

// Step runs a single action against the state: validate, then apply unless
// validation produced a CRITICAL message. Unknown action names and blocked
// actions leave the state untouched. Returns the action's messages and
// whether it was blocked.
func Step(state *model.State, cat *catalog.Catalog, act *model.Action) ([]model.ConfigurationMessage, bool) {
	handler, ok := actions.Get(act.ActionName)
	if !ok {
		return []model.ConfigurationMessage{{
			Level:   model.LevelWarning,
			Code:    "UNKNOWN_ACTION",
			Message: fmt.Sprintf("Unknown action: %s", act.ActionName),
		}}, false
	}

	msgs := handler.Validate(state, cat, act)
	for _, m := range msgs {
		if m.Level == model.LevelCritical {
			return msgs, true
		}
	}

	return append(msgs, handler.Apply(state, cat, act)...), false
}

// Process folds the request's actions over a fresh agreement state. A
// CRITICAL message halts the batch with outcome FAILURE; warnings are
// recorded and processing continues. The response carries the end state,
// derived pricing and an RFC 6902 patch from the initial state.
func Process(req *model.ConfigurationRequest, cat *catalog.Catalog) *model.ConfigurationResponse {
	start := time.Now()

	state := model.NewState()

	var allMessages []model.ConfigurationMessage
	var processedActions []model.ProcessedAction
	outcome := model.OutcomeSuccess

	var lastActionID string
	lastActionIndex := 0

	for i, act := range req.ConfigurationInstructions.Actions {
		msgs, blocked := Step(state, cat, &act)

		var msgIndexes []int
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			msgIndexes = append(msgIndexes, m.ID)
		}

		processedActions = append(processedActions, model.ProcessedAction{
			Action:                      act,
			ConfigurationMessageIndexes: msgIndexes,
		})

		if blocked {
			outcome = model.OutcomeFailure
			break
		}

		lastActionID = act.ActionID
		lastActionIndex = i
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.ConfigurationMessage{}
	}

	return &model.ConfigurationResponse{
		ConfigurationMetadata: model.ConfigurationMetadata{
			ConfigurationID:          uuid.New().String(),
			TenantID:                 req.TenantID,
			ConfigurationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ConfigurationCompletedAt: now.Format(time.RFC3339),
			ConfigurationDurationMs:  elapsed.Milliseconds(),
			ConfigurationOutcome:     outcome,
		},
		ConfigurationResult: model.ConfigurationResult{
			Messages: allMessages,
			Actions:  processedActions,
			EndState: model.StateEnvelope{
				ActionID:    lastActionID,
				ActionIndex: lastActionIndex,
				State:       *state,
			},
			InitialState: model.InitialState{State: *model.NewState()},
			Pricing:      summarize(state, cat),
			StatePatch:   statePatch(model.NewState(), state),
		},
	}
}

func summarize(state *model.State, cat *catalog.Catalog) model.PricingSummary {
	totals := make([]model.JourneyTotal, 0, len(state.Journeys))
	for i := range state.Journeys {
		j := &state.Journeys[i]
		totals = append(totals, model.JourneyTotal{
			JourneyID:   j.ID,
			Name:        j.Name,
			CachedTotal: j.TotalPrice,
			LiveTotal:   pricing.JourneyTotal(j, state.PriceOverrides, state.Multipliers, cat),
		})
	}
	return model.PricingSummary{
		GrandTotal:    pricing.GrandTotal(state.Journeys, state.PriceOverrides, state.Multipliers, cat),
		SetupFee:      state.SetupFee,
		AnnualFee:     state.AnnualFee,
		JourneyTotals: totals,
	}
}

func statePatch(from, to *model.State) []byte {
	a, err := asValue(from)
	if err != nil {
		return []byte("[]")
	}
	b, err := asValue(to)
	if err != nil {
		return []byte("[]")
	}

	ops := jsonpatch.Diff(a, b, "")
	if len(ops) == 0 {
		return []byte("[]")
	}
	raw, err := json.Marshal(ops)
	if err != nil {
		return []byte("[]")
	}
	return raw
}

func asValue(state *model.State) (interface{}, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}
