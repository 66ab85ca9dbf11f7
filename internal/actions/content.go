package actions

import (
	"bytes"

	json "github.com/goccy/go-json"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/logo"
	"agreement-engine/internal/model"
)

var jsonNull = []byte("null")

// updateContentProps covers every editable content field. Pointers
// distinguish "absent" from "set to zero value" so the action is a shallow
// merge; logo_url keeps the raw message because explicit null clears the
// logo while absence leaves it alone.
type updateContentProps struct {
	SetupFee           *int64           `json:"setup_fee"`
	AnnualFee          *int64           `json:"annual_fee"`
	AgreementTitle     *string          `json:"agreement_title"`
	AgreementIntro     *string          `json:"agreement_intro"`
	ValueAddedServices *[]model.Service `json:"value_added_services"`
	AggregatorServices *[]model.Service `json:"aggregator_services"`
	PricingNotes       *[]string        `json:"pricing_notes"`
	TermsAndConditions *[]string        `json:"terms_and_conditions"`
	BrandName          *string          `json:"brand_name"`
	LogoURL            json.RawMessage  `json:"logo_url"`
}

type UpdateContentHandler struct{}

func (h *UpdateContentHandler) Validate(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props updateContentProps
	json.Unmarshal(action.ActionProperties, &props)

	if len(props.LogoURL) == 0 || bytes.Equal(props.LogoURL, jsonNull) {
		return nil
	}

	var dataURL string
	if err := json.Unmarshal(props.LogoURL, &dataURL); err != nil {
		return []model.ConfigurationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_LOGO",
			Message: "logo_url must be a string or null",
		}}
	}
	if err := logo.Validate(dataURL); err != nil {
		return []model.ConfigurationMessage{{
			Level:   model.LevelCritical,
			Code:    "INVALID_LOGO",
			Message: err.Error(),
		}}
	}
	return nil
}

func (h *UpdateContentHandler) Apply(state *model.State, cat *catalog.Catalog, action *model.Action) []model.ConfigurationMessage {
	var props updateContentProps
	json.Unmarshal(action.ActionProperties, &props)

	if props.SetupFee != nil {
		state.SetupFee = *props.SetupFee
	}
	if props.AnnualFee != nil {
		state.AnnualFee = *props.AnnualFee
	}
	if props.AgreementTitle != nil {
		state.AgreementTitle = *props.AgreementTitle
	}
	if props.AgreementIntro != nil {
		state.AgreementIntro = *props.AgreementIntro
	}
	if props.ValueAddedServices != nil {
		state.ValueAddedServices = *props.ValueAddedServices
	}
	if props.AggregatorServices != nil {
		state.AggregatorServices = *props.AggregatorServices
	}
	if props.PricingNotes != nil {
		state.PricingNotes = *props.PricingNotes
	}
	if props.TermsAndConditions != nil {
		state.TermsAndConditions = *props.TermsAndConditions
	}
	if props.BrandName != nil {
		state.BrandName = *props.BrandName
	}
	if len(props.LogoURL) > 0 {
		if bytes.Equal(props.LogoURL, jsonNull) {
			state.LogoURL = nil
		} else {
			var dataURL string
			if json.Unmarshal(props.LogoURL, &dataURL) == nil {
				state.LogoURL = &dataURL
			}
		}
	}

	state.IsCostsModalOpen = false
	return nil
}
