package advisor

import (
	"fmt"
	"strings"

	"sarthi-backend/internal/models"
)

const prescriptionInstruction = "You are an expert AI medical assistant. Your task is to transcribe handwritten or printed medical prescriptions into structured data. Extract the Diagnosis, Medications (with dosage), and any Follow-up advice."

const prescriptionRequest = "Analyze this prescription image and extract the details."

func languageName(lang models.Language) string {
	if lang.Normalize() == models.LanguageHindi {
		return "Hindi"
	}
	return "English"
}

func timeline(events []models.MedicalEvent, limit int, withDescription bool) string {
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	lines := make([]string, 0, len(events))
	for _, e := range events {
		if withDescription {
			lines = append(lines, fmt.Sprintf("- %s: %s (%s)", e.Date, e.Title, e.Description))
		} else {
			lines = append(lines, fmt.Sprintf("- %s: %s (%s)", e.Date, e.Title, e.Type))
		}
	}
	return strings.Join(lines, "\n")
}

// triageInstruction membangun system prompt "Vaidya AI" dari profil pasien
func triageInstruction(profile models.UserProfile, lang models.Language) string {
	langRule := "Respond in English."
	if lang.Normalize() == models.LanguageHindi {
		langRule = "IMPORTANT: You MUST respond in Hindi (Devanagari script). Use simple, empathetic Hindi suitable for an Indian patient."
	}

	var b strings.Builder
	b.WriteString("You are \"Vaidya AI\", an intelligent and empathetic medical assistant tailored for the Indian healthcare context.\n")
	b.WriteString("Your goal is to assess the user's symptoms efficiently and recommend a triage level and specialist.\n")
	b.WriteString(langRule + "\n\n")
	b.WriteString("User Profile:\n")
	fmt.Fprintf(&b, "- Age: %d\n", profile.Age)
	fmt.Fprintf(&b, "- Allergies: %s\n", strings.Join(profile.Allergies, ", "))
	fmt.Fprintf(&b, "- Medications: %s\n\n", strings.Join(profile.MedicationNames(), ", "))
	b.WriteString("Medical History Timeline:\n")
	b.WriteString(timeline(profile.MedicalEvents, 0, true) + "\n\n")
	fmt.Fprintf(&b, "Summary: %s\n\n", profile.MedicalHistory)
	b.WriteString("Protocol:\n")
	b.WriteString("1. Ask 1-3 targeted follow-up questions to clarify symptoms. If the user uploads an image (e.g., rash, wound), analyze it.\n")
	fmt.Fprintf(&b, "2. Provide \"options\" for quick replies (in %s).\n", languageName(lang))
	b.WriteString("3. Once you have enough info, set \"isFinal\" to true.\n")
	b.WriteString("4. For critical issues (chest pain, heavy bleeding), set Triage Level \"Red\" immediately and advise calling 112 or 108.\n")
	b.WriteString("5. Use Indian terminology where appropriate.\n")
	b.WriteString("6. Be warm, professional, and concise.\n")
	return b.String()
}

func summaryPrompt(profile models.UserProfile, lang models.Language) string {
	return fmt.Sprintf(`Analyze this patient profile and provide a brief, empathetic 3-4 sentence health summary in %s.

Name: %s, Age: %d
Conditions: %s
Meds: %s
Recent Events:
%s

Output format: Plain text paragraph. Do not use markdown formatting.`,
		languageName(lang), profile.Name, profile.Age, profile.MedicalHistory,
		strings.Join(profile.MedicationNames(), ", "), timeline(profile.MedicalEvents, 5, false))
}

func tipPrompt(profile models.UserProfile, lang models.Language) string {
	return fmt.Sprintf(`Based on the following user profile, generate a single, short, personalized, and actionable health tip or habit for today in %s.
Keep it under 30 words.

Profile:
- Age: %d
- Conditions: %s
- Medications: %s
- Allergies: %s`,
		languageName(lang), profile.Age, profile.MedicalHistory,
		strings.Join(profile.MedicationNames(), ", "), strings.Join(profile.Allergies, ", "))
}
