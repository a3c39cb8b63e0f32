package brief

import (
	"reflect"
	"strings"
	"testing"
)

const validBrief = `{
	"business": {"description": "Specialty coffee roastery", "location": "Helsinki"},
	"target_market": {"age": "25-40"},
	"objectives": {"primary": "sales"},
	"budget": 1000,
	"start_date": "2024-01-01",
	"campaign_duration_days": 30,
	"social_accounts": [{"platform": "instagram", "urls": ["https://instagram.com/example"]}],
	"creative_assets": {"has_assets": true, "description": "3 image assets and 1 video"}
}`

func TestParse_Valid(t *testing.T) {
	b, err := Parse([]byte(validBrief))
	if err != nil {
		t.Fatalf("parse valid brief: %v", err)
	}
	if b.Business.Location != "Helsinki" {
		t.Fatalf("unexpected location %q", b.Business.Location)
	}
	v, err := b.BudgetValue()
	if err != nil || v != 1000 {
		t.Fatalf("expected budget 1000, got %g (%v)", v, err)
	}
	if got := b.Platforms(); !reflect.DeepEqual(got, []string{"instagram"}) {
		t.Fatalf("unexpected platforms %v", got)
	}
}

func TestParse_BudgetAsNumericString(t *testing.T) {
	raw := strings.Replace(validBrief, `"budget": 1000`, `"budget": "1500.50"`, 1)
	b, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	v, err := b.BudgetValue()
	if err != nil || v != 1500.50 {
		t.Fatalf("expected 1500.50, got %g (%v)", v, err)
	}
	if b.BudgetText() != "1500.50" {
		t.Fatalf("expected budget text without quotes, got %q", b.BudgetText())
	}
}

func TestParse_MissingFields(t *testing.T) {
	raw := strings.Replace(validBrief, `"social_accounts": [{"platform": "instagram", "urls": ["https://instagram.com/example"]}],`, `"social_accounts": [],`, 1)
	if _, err := Parse([]byte(raw)); err == nil || !strings.Contains(err.Error(), "social_accounts") {
		t.Fatalf("expected missing social_accounts error, got %v", err)
	}
}

func TestParse_MissingCreativeAssets(t *testing.T) {
	// An absent creative_assets key is a load error, not an implicit
	// has_assets=false.
	raw := strings.Replace(validBrief, `"creative_assets": {"has_assets": true, "description": "3 image assets and 1 video"}`, `"creative_assets": null`, 1)
	if _, err := Parse([]byte(raw)); err == nil || !strings.Contains(err.Error(), "creative_assets") {
		t.Fatalf("expected missing creative_assets error, got %v", err)
	}

	noKey := strings.Replace(validBrief, `,
	"creative_assets": {"has_assets": true, "description": "3 image assets and 1 video"}`, "", 1)
	if _, err := Parse([]byte(noKey)); err == nil || !strings.Contains(err.Error(), "creative_assets") {
		t.Fatalf("expected missing creative_assets error for absent key, got %v", err)
	}
}

func TestParse_NonNumericBudget(t *testing.T) {
	raw := strings.Replace(validBrief, `"budget": 1000`, `"budget": "plenty"`, 1)
	if _, err := Parse([]byte(raw)); err == nil || !strings.Contains(err.Error(), "not numeric") {
		t.Fatalf("expected numeric budget error, got %v", err)
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
}
