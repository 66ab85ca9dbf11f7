package model

import "encoding/json"

type ConfigurationResponse struct {
	ConfigurationMetadata ConfigurationMetadata `json:"configuration_metadata"`
	ConfigurationResult   ConfigurationResult   `json:"configuration_result"`
}

type ConfigurationMetadata struct {
	ConfigurationID          string `json:"configuration_id"`
	TenantID                 string `json:"tenant_id"`
	ConfigurationStartedAt   string `json:"configuration_started_at"`
	ConfigurationCompletedAt string `json:"configuration_completed_at"`
	ConfigurationDurationMs  int64  `json:"configuration_duration_ms"`
	ConfigurationOutcome     string `json:"configuration_outcome"`
}

type ConfigurationResult struct {
	Messages     []ConfigurationMessage `json:"messages"`
	Actions      []ProcessedAction      `json:"actions"`
	EndState     StateEnvelope          `json:"end_state"`
	InitialState InitialState           `json:"initial_state"`
	Pricing      PricingSummary         `json:"pricing"`
	StatePatch   json.RawMessage        `json:"state_patch"`
}

type ProcessedAction struct {
	Action                      Action `json:"action"`
	ConfigurationMessageIndexes []int  `json:"configuration_message_indexes,omitempty"`
}

type StateEnvelope struct {
	ActionID    string `json:"action_id"`
	ActionIndex int    `json:"action_index"`
	State       State  `json:"state"`
}

type InitialState struct {
	State State `json:"state"`
}

// PricingSummary carries the derived pricing for the end state. GrandTotal
// is always computed live from current overrides and multipliers; the
// per-journey entries expose both the cached total stored at save time and
// the live total so a staleness window is observable rather than hidden.
type PricingSummary struct {
	GrandTotal    int64          `json:"grand_total"`
	SetupFee      int64          `json:"setup_fee"`
	AnnualFee     int64          `json:"annual_fee"`
	JourneyTotals []JourneyTotal `json:"journey_totals"`
}

type JourneyTotal struct {
	JourneyID   string `json:"journey_id"`
	Name        string `json:"name"`
	CachedTotal int64  `json:"cached_total"`
	LiveTotal   int64  `json:"live_total"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
