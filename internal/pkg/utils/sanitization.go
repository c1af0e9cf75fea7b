package utils

import (
	"strings"

	"confidant-service/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			sanitizedArray = append(sanitizedArray, strings.ToLower(trimmed))
		}
	}
	return sanitizedArray
}

func SanitizeTherapyMatchRequest(input *requests.TherapyMatch) {
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.Religion = strings.ToLower(strings.TrimSpace(input.Religion))
	input.Status = strings.ToLower(strings.TrimSpace(input.Status))
	input.State = strings.ToLower(strings.TrimSpace(input.State))
	input.Country = strings.ToLower(strings.TrimSpace(input.Country))
	input.Problems = cleanWhiteSpaceFromEachStringOfAnArray(input.Problems)
}

func SanitizeSelectTherapyRequest(input *requests.SelectTherapy) {
	input.TherapistID = strings.TrimSpace(input.TherapistID)
	input.SubscriptionPlanID = strings.TrimSpace(input.SubscriptionPlanID)
}

func SanitizeBookAppointmentRequest(input *requests.BookAppointment) {
	input.Time = strings.TrimSpace(input.Time)
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		input.Title = "Appointment"
	}
}
