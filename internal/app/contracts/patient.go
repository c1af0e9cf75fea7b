package contracts

import (
	"confidant-service/internal/app/models"
	"context"
)

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	// AppendRequestProfile adds the profile to the patient's request history
	// as a set: submitting the same profile twice stores it once.
	AppendRequestProfile(ctx context.Context, patientID string, profile models.PatientProfile) error
}

type PatientUsecase interface {
	GetProfile(ctx context.Context, patientID string) (*models.Patient, error)
}
