package patients

import (
	"context"
	"fmt"
	"sync"

	"confidant-service/internal/app/contracts"
	"confidant-service/internal/app/models"
	"confidant-service/internal/pkg/constvars"
	"confidant-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		instance := &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
		patientUsecaseInstance = instance
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) GetProfile(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(fmt.Errorf("patient %s does not exist", patientID))
	}
	return patient, nil
}
