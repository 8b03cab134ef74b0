package advisor

import "google.golang.org/genai"

func boolPtr(b bool) *bool { return &b }

// triageSchema: {text, options[], isFinal, triageResult?}
var triageSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"text": {
			Type:        genai.TypeString,
			Description: "The response text or question to ask the user.",
		},
		"options": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "A list of 2-4 short suggested response buttons for the user (e.g., 'Yes', 'No', 'High Fever').",
		},
		"isFinal": {
			Type:        genai.TypeBoolean,
			Description: "Set to true only if you have gathered enough information to provide a preliminary triage recommendation.",
		},
		"triageResult": {
			Type:        genai.TypeObject,
			Nullable:    boolPtr(true),
			Description: "Required if isFinal is true.",
			Properties: map[string]*genai.Schema{
				"level": {
					Type:        genai.TypeString,
					Enum:        []string{"Green", "Yellow", "Red"},
					Description: "Green: Non-urgent. Yellow: Urgent appointment needed. Red: Emergency room.",
				},
				"specialty": {
					Type:        genai.TypeString,
					Description: "The recommended medical specialty (e.g., General Physician, Cardiologist, Dermatologist).",
				},
				"summary": {
					Type:        genai.TypeString,
					Description: "A concise summary of the preliminary analysis for the doctor.",
				},
			},
			Required: []string{"level", "specialty", "summary"},
		},
	},
	Required: []string{"text", "isFinal"},
}

var prescriptionSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"diagnosis": {
			Type:        genai.TypeString,
			Description: "The diagnosis extracted from the prescription or notes.",
		},
		"medications": {
			Type:        genai.TypeArray,
			Items:       &genai.Schema{Type: genai.TypeString},
			Description: "List of medications prescribed with dosage.",
		},
		"followUp": {
			Type:        genai.TypeString,
			Description: "Recommended follow-up time (e.g., '1 week', '3 days').",
		},
	},
	Required: []string{"diagnosis", "medications"},
}
