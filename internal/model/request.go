package model

import "encoding/json"

type ConfigurationRequest struct {
	TenantID                  string                    `json:"tenant_id"`
	ConfigurationInstructions ConfigurationInstructions `json:"configuration_instructions"`
}

type ConfigurationInstructions struct {
	Actions []Action `json:"actions"`
}

type Action struct {
	ActionID         string          `json:"action_id"`
	ActionName       string          `json:"action_name"`
	ActionProperties json.RawMessage `json:"action_properties"`
}
