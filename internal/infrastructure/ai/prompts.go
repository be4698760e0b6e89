package ai

import (
	"fmt"
	"strings"

	"bidboard/internal/domain/entities"
	"bidboard/internal/usecase/interfaces"
)

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None provided"
	}
	return s
}

func auditPrompt(e entities.Estimate) string {
	var b strings.Builder
	b.WriteString("You are a senior construction estimator and project risk manager. Audit this bid.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\nLocation: %s\nTotal Amount: $%.2f\nLine Items:\n", e.Name, e.Location, e.Total)
	for _, it := range e.LineItems {
		fmt.Fprintf(&b, "- %s: %g units @ $%g each (Total: $%g)\n", it.Name, it.Qty, it.Rate, it.Amount)
	}
	fmt.Fprintf(&b, "\nExclusions: %s\nMemo: %s\n\n", orNone(e.Exclusions), orNone(e.Memo))
	b.WriteString("List risks such as under-budgeting or missing scope, give actionable recommendations, ")
	b.WriteString("and score the bid's accuracy and competitiveness from 0 to 100.")
	return b.String()
}

func suggestionsPrompt(e entities.Estimate) string {
	var b strings.Builder
	b.WriteString("You are a senior construction estimator. Suggest 5-8 missing or complementary material or labor items.\n\n")
	fmt.Fprintf(&b, "Project Name: %s\nProject Location: %s\nCurrent Scope:\n", e.Name, e.Location)
	for _, it := range e.LineItems {
		fmt.Fprintf(&b, "- %s: %s\n", it.Name, it.Description)
	}
	b.WriteString("\nUse typical market averages for quantities and unit rates.")
	return b.String()
}

const extractionPrompt = `Extract construction line items from this document (invoice, quote or site note).
For each item return its name, a description, the quantity and the unit rate.
Leave a value out when the document does not state it.`

func siteReportPrompt(notes string) string {
	return fmt.Sprintf(`Write a construction site daily report from these field notes and/or the attached photo.
Field notes: %q

When a photo is attached, look for work in progress, safety hazards and materials on site.
Include: project name (infer or use a placeholder), work completed, materials used,
issues or delays, weather, safety observations and a one or two sentence summary.`, notes)
}

func salesInstruction(sc interfaces.SalesContext) string {
	pipelineValue := 0.0
	for _, e := range sc.Estimates {
		pipelineValue += e.Total
	}
	names := make([]string, 0, len(sc.Customers))
	for _, c := range sc.Customers {
		names = append(names, c.Name)
	}

	var b strings.Builder
	b.WriteString("You are a construction sales strategist helping an estimator win more work, ")
	b.WriteString("strengthen client relationships and negotiate better margins.\n\n")
	fmt.Fprintf(&b, "Active bids: %d\nTotal pipeline value: $%.2f\nKey clients: %s\n\nProjects:\n",
		len(sc.Estimates), pipelineValue, strings.Join(names, ", "))
	for _, e := range sc.Estimates {
		fmt.Fprintf(&b, "- %s, status %s, value $%.2f\n", e.Name, e.Status, e.Total)
	}
	b.WriteString("\nBe specific about the projects and clients mentioned. ")
	b.WriteString("Offer tactical bidding advice such as follow-up cadence and value engineering. ")
	b.WriteString("Format with bold text and bullet points.")
	return b.String()
}

func marketQuery(e entities.Estimate) string {
	names := make([]string, 0, 3)
	for _, it := range e.LineItems {
		if len(names) == 3 {
			break
		}
		names = append(names, it.Name)
	}
	return fmt.Sprintf("Current construction material costs and labor rates in %s for: %s.", e.Location, strings.Join(names, ", "))
}
