package ai

import "google.golang.org/genai"

var (
	stringSchema      = &genai.Schema{Type: genai.TypeString}
	numberSchema      = &genai.Schema{Type: genai.TypeNumber}
	stringArraySchema = &genai.Schema{Type: genai.TypeArray, Items: stringSchema}
)

var auditSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"score":           {Type: genai.TypeNumber, Description: "Confidence score 0-100"},
		"summary":         {Type: genai.TypeString, Description: "One-paragraph executive summary"},
		"risks":           {Type: genai.TypeArray, Items: stringSchema, Description: "Identified risks"},
		"recommendations": {Type: genai.TypeArray, Items: stringSchema, Description: "Actionable recommendations"},
	},
	Required: []string{"score", "summary", "risks", "recommendations"},
}

var suggestionsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestions": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":          stringSchema,
					"description":   stringSchema,
					"suggestedQty":  numberSchema,
					"suggestedRate": numberSchema,
					"reason":        stringSchema,
				},
				Required: []string{"name", "description", "suggestedQty", "suggestedRate", "reason"},
			},
		},
	},
	Required: []string{"suggestions"},
}

// Item fields are optional so the model can leave out values the document lacks.
var extractionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"items": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":        stringSchema,
					"description": stringSchema,
					"qty":         numberSchema,
					"rate":        numberSchema,
				},
			},
		},
	},
	Required: []string{"items"},
}

var siteReportSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"projectName":        stringSchema,
		"workCompleted":      stringArraySchema,
		"materialsUsed":      stringArraySchema,
		"issues":             stringArraySchema,
		"weather":            stringSchema,
		"safetyObservations": stringSchema,
		"summary":            stringSchema,
	},
	Required: []string{"projectName", "workCompleted", "materialsUsed", "issues", "weather", "safetyObservations", "summary"},
}
