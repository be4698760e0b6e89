package entities

import "testing"

func TestParseEstimateStatus(t *testing.T) {
	cases := map[string]struct {
		want EstimateStatus
		ok   bool
	}{
		"Draft":     {EstimateStatusDraft, true},
		"submitted": {EstimateStatusSubmitted, true},
		" WON ":     {EstimateStatusWon, true},
		"lost":      {EstimateStatusLost, true},
		"Archived":  {EstimateStatus("Archived"), false},
		"":          {EstimateStatus(""), false},
	}
	for raw, tc := range cases {
		got, ok := ParseEstimateStatus(raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseEstimateStatus(%q) = %q,%v want %q,%v", raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestEstimate_Clone(t *testing.T) {
	e := Estimate{
		ID:        "e1",
		LineItems: []LineItem{{ID: "l1", Qty: 1, Rate: 2, Amount: 2}},
		Margin:    Float64(10),
	}
	c := e.Clone()
	c.LineItems[0].Qty = 99
	*c.Margin = 50

	if e.LineItems[0].Qty != 1 {
		t.Fatalf("clone shares line items")
	}
	if *e.Margin != 10 {
		t.Fatalf("clone shares margin")
	}
	if c.Tax != nil {
		t.Fatalf("expected nil tax to stay nil")
	}
}

func TestEstimate_Percentages(t *testing.T) {
	e := Estimate{}
	if e.MarginPct() != 0 || e.TaxPct() != 0 {
		t.Fatalf("unset percentages should be 0")
	}
	e.Margin, e.Tax = Float64(15), Float64(8.5)
	if e.MarginPct() != 15 || e.TaxPct() != 8.5 {
		t.Fatalf("unexpected percentages: %v %v", e.MarginPct(), e.TaxPct())
	}
}

func TestEstimate_FindLineItem(t *testing.T) {
	e := Estimate{LineItems: []LineItem{{ID: "a"}, {ID: "b"}}}
	if e.FindLineItem("b") != 1 {
		t.Fatalf("expected index 1")
	}
	if e.FindLineItem("zz") != -1 {
		t.Fatalf("expected -1 for missing id")
	}
}
