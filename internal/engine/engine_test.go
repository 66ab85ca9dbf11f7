package engine

import (
	"encoding/json"
	"fmt"
	"testing"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/model"
	"agreement-engine/internal/pricing"
)

func run(t *testing.T, acts ...model.Action) *model.ConfigurationResponse {
	t.Helper()
	req := &model.ConfigurationRequest{
		TenantID: "test-tenant",
		ConfigurationInstructions: model.ConfigurationInstructions{
			Actions: acts,
		},
	}
	return Process(req, catalog.Default())
}

func act(name, props string) model.Action {
	return model.Action{
		ActionID:         fmt.Sprintf("act-%s", name),
		ActionName:       name,
		ActionProperties: json.RawMessage(props),
	}
}

func hasCode(resp *model.ConfigurationResponse, code string) bool {
	for _, m := range resp.ConfigurationResult.Messages {
		if m.Code == code {
			return true
		}
	}
	return false
}

func TestAddJourney(t *testing.T) {
	resp := run(t, act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`))

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if resp.ConfigurationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.ConfigurationMetadata.TenantID)
	}

	state := resp.ConfigurationResult.EndState.State
	if len(state.Journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(state.Journeys))
	}

	j := state.Journeys[0]
	if j.ID != "j-1" {
		t.Fatalf("expected journey id j-1, got %s", j.ID)
	}
	if j.Name != "J1" {
		t.Fatalf("expected journey name J1, got %s", j.Name)
	}
	if j.TotalPrice != 30 {
		t.Fatalf("expected journey total 30, got %d", j.TotalPrice)
	}
	if state.IsJourneyModalOpen {
		t.Fatal("expected journey modal to be closed after save")
	}

	if resp.ConfigurationResult.Pricing.GrandTotal != 30 {
		t.Fatalf("expected grand total 30, got %d", resp.ConfigurationResult.Pricing.GrandTotal)
	}

	// initial_state carries the session defaults
	initial := resp.ConfigurationResult.InitialState.State
	if len(initial.Journeys) != 0 {
		t.Fatalf("expected 0 journeys in initial state, got %d", len(initial.Journeys))
	}
	if initial.SetupFee != model.DefaultSetupFee || initial.AnnualFee != model.DefaultAnnualFee {
		t.Fatal("expected default fees in initial state")
	}
}

func TestOverrideAndMultiplier(t *testing.T) {
	resp := run(t,
		act("set_price_override", `{"name": "Aadhaar", "price": 20}`),
		act("set_multiplier", `{"name": "Aadhaar", "multiplier": 3}`),
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}

	state := resp.ConfigurationResult.EndState.State
	if state.Journeys[0].TotalPrice != 60 {
		t.Fatalf("expected journey total 60, got %d", state.Journeys[0].TotalPrice)
	}
	if resp.ConfigurationResult.Pricing.GrandTotal != 60 {
		t.Fatalf("expected grand total 60, got %d", resp.ConfigurationResult.Pricing.GrandTotal)
	}
}

func TestOverrideAfterSaveLeavesCachedTotalStale(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
		act("set_price_override", `{"name": "Aadhaar", "price": 20}`),
	)

	state := resp.ConfigurationResult.EndState.State
	if state.Journeys[0].TotalPrice != 30 {
		t.Fatalf("expected cached total to stay 30, got %d", state.Journeys[0].TotalPrice)
	}

	jt := resp.ConfigurationResult.Pricing.JourneyTotals[0]
	if jt.CachedTotal != 30 {
		t.Fatalf("expected cached total 30, got %d", jt.CachedTotal)
	}
	if jt.LiveTotal != 20 {
		t.Fatalf("expected live total 20, got %d", jt.LiveTotal)
	}
	if resp.ConfigurationResult.Pricing.GrandTotal != 20 {
		t.Fatalf("expected live grand total 20, got %d", resp.ConfigurationResult.Pricing.GrandTotal)
	}
}

func TestUpdateJourney(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
		act("update_journey", `{"id": "j-1", "name": "J1 renamed", "checks": {"PAN Basic": true, "Voter ID": true}}`),
	)

	state := resp.ConfigurationResult.EndState.State
	if len(state.Journeys) != 1 {
		t.Fatalf("expected exactly 1 journey after update, got %d", len(state.Journeys))
	}

	j := state.Journeys[0]
	if j.ID != "j-1" {
		t.Fatalf("expected id to be preserved, got %s", j.ID)
	}
	if j.Name != "J1 renamed" {
		t.Fatalf("expected renamed journey, got %s", j.Name)
	}
	if j.TotalPrice != 60 {
		t.Fatalf("expected recomputed total 60, got %d", j.TotalPrice)
	}
}

func TestDeleteJourneyMissingIDIsNoOp(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
		act("delete_journey", `{"id": "j-99"}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "JOURNEY_NOT_FOUND") {
		t.Fatal("expected JOURNEY_NOT_FOUND warning")
	}
	if len(resp.ConfigurationResult.EndState.State.Journeys) != 1 {
		t.Fatal("expected journey list to be unchanged")
	}
}

func TestUpdateAfterDeleteIsNoOp(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
		act("delete_journey", `{"id": "j-1"}`),
		act("update_journey", `{"id": "j-1", "name": "ghost", "checks": {"Aadhaar": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "JOURNEY_NOT_FOUND") {
		t.Fatal("expected JOURNEY_NOT_FOUND warning")
	}
	if len(resp.ConfigurationResult.EndState.State.Journeys) != 0 {
		t.Fatal("expected no journey to be re-created after delete")
	}
}

func TestCheckExclusiveAcrossJourneys(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"PAN Basic": true}}`),
		act("add_journey", `{"name": "J2", "checks": {"PAN Basic": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "CHECK_ALREADY_ASSIGNED") {
		t.Fatal("expected CHECK_ALREADY_ASSIGNED message")
	}

	state := resp.ConfigurationResult.EndState.State
	if len(state.Journeys) != 1 {
		t.Fatalf("expected second assignment to be rejected, got %d journeys", len(state.Journeys))
	}

	names := pricing.SelectedCheckNames(state.Journeys, catalog.Default())
	count := 0
	for _, n := range names {
		if n == "PAN Basic" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected PAN Basic exactly once in flattened set, got %d", count)
	}
}

func TestFalseFlagDoesNotBlockOtherJourney(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"PAN Basic": false, "Aadhaar": true}}`),
		act("add_journey", `{"name": "J2", "checks": {"PAN Basic": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if len(resp.ConfigurationResult.EndState.State.Journeys) != 2 {
		t.Fatal("expected both journeys to be created")
	}
}

func TestUnknownActionIsSkipped(t *testing.T) {
	resp := run(t,
		act("reticulate_splines", `{}`),
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "UNKNOWN_ACTION") {
		t.Fatal("expected UNKNOWN_ACTION warning")
	}
	if len(resp.ConfigurationResult.EndState.State.Journeys) != 1 {
		t.Fatal("expected subsequent action to still apply")
	}
}

func TestMultiplierClampedToOne(t *testing.T) {
	resp := run(t,
		act("set_multiplier", `{"name": "Aadhaar", "multiplier": 0}`),
	)

	if !hasCode(resp, "MULTIPLIER_CLAMPED") {
		t.Fatal("expected MULTIPLIER_CLAMPED warning")
	}
	if got := resp.ConfigurationResult.EndState.State.Multipliers["Aadhaar"]; got != 1 {
		t.Fatalf("expected multiplier 1, got %d", got)
	}
}

func TestSpecialCheckWithoutMultiplierWarns(t *testing.T) {
	resp := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Highest Education*": true}}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "MULTIPLIER_NOT_SET") {
		t.Fatal("expected MULTIPLIER_NOT_SET warning")
	}
	// The selection itself is not blocked
	if len(resp.ConfigurationResult.EndState.State.Journeys) != 1 {
		t.Fatal("expected journey to be created despite the warning")
	}

	// No warning once the multiplier exists
	resp = run(t,
		act("set_multiplier", `{"name": "Highest Education*", "multiplier": 2}`),
		act("add_journey", `{"name": "J1", "checks": {"Highest Education*": true}}`),
	)
	if hasCode(resp, "MULTIPLIER_NOT_SET") {
		t.Fatal("did not expect MULTIPLIER_NOT_SET after set_multiplier")
	}
	if got := resp.ConfigurationResult.EndState.State.Journeys[0].TotalPrice; got != 1000 {
		t.Fatalf("expected journey total 1000, got %d", got)
	}
}

func TestUpdateContent(t *testing.T) {
	resp := run(t,
		act("open_costs_modal", `{}`),
		act("update_content", `{"brand_name": "Acme", "setup_fee": 500000}`),
	)

	state := resp.ConfigurationResult.EndState.State
	if state.BrandName != "Acme" {
		t.Fatalf("expected brand Acme, got %s", state.BrandName)
	}
	if state.SetupFee != 500000 {
		t.Fatalf("expected setup fee 500000, got %d", state.SetupFee)
	}
	if state.AnnualFee != model.DefaultAnnualFee {
		t.Fatalf("expected annual fee untouched, got %d", state.AnnualFee)
	}
	if state.IsCostsModalOpen {
		t.Fatal("expected costs modal to close after update_content")
	}
}

func TestInvalidLogoRejected(t *testing.T) {
	resp := run(t,
		act("update_content", `{"logo_url": "not-a-data-url"}`),
	)

	if resp.ConfigurationMetadata.ConfigurationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.ConfigurationMetadata.ConfigurationOutcome)
	}
	if !hasCode(resp, "INVALID_LOGO") {
		t.Fatal("expected INVALID_LOGO message")
	}
	if resp.ConfigurationResult.EndState.State.LogoURL != nil {
		t.Fatal("expected logo to stay unset")
	}
}

func TestGrandTotalOrderInvariant(t *testing.T) {
	a := run(t,
		act("add_journey", `{"name": "J1", "checks": {"Aadhaar": true, "Voter ID": true}}`),
		act("add_journey", `{"name": "J2", "checks": {"Social Media": true}}`),
	)
	b := run(t,
		act("add_journey", `{"name": "J2", "checks": {"Social Media": true}}`),
		act("add_journey", `{"name": "J1", "checks": {"Voter ID": true, "Aadhaar": true}}`),
	)

	if a.ConfigurationResult.Pricing.GrandTotal != b.ConfigurationResult.Pricing.GrandTotal {
		t.Fatalf("grand total depends on creation order: %d vs %d",
			a.ConfigurationResult.Pricing.GrandTotal, b.ConfigurationResult.Pricing.GrandTotal)
	}
	if a.ConfigurationResult.Pricing.GrandTotal != 210 {
		t.Fatalf("expected grand total 210, got %d", a.ConfigurationResult.Pricing.GrandTotal)
	}
}

func TestModalActions(t *testing.T) {
	resp := run(t,
		act("open_journey_modal", `{"journey": null}`),
	)
	state := resp.ConfigurationResult.EndState.State
	if !state.IsJourneyModalOpen {
		t.Fatal("expected journey modal open")
	}
	if state.EditingJourney != nil {
		t.Fatal("expected no edit target for a fresh journey")
	}

	resp = run(t,
		act("open_price_modal", `{"name": "Aadhaar", "price": 30}`),
		act("close_price_modal", `{}`),
	)
	if resp.ConfigurationResult.EndState.State.EditingCheck != nil {
		t.Fatal("expected price edit target cleared")
	}
}

func TestStatePatchRecordsChange(t *testing.T) {
	resp := run(t, act("update_content", `{"brand_name": "Acme"}`))

	var ops []map[string]interface{}
	if err := json.Unmarshal(resp.ConfigurationResult.StatePatch, &ops); err != nil {
		t.Fatalf("state_patch is not valid JSON: %v", err)
	}

	found := false
	for _, op := range ops {
		if op["path"] == "/brand_name" && op["op"] == "replace" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a replace op for /brand_name in state_patch")
	}
}
