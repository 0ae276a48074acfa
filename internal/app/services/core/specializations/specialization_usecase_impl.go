package specializations

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

// The specialization catalog is a fixed dataset. It changes with releases,
// not at runtime, so it ships compiled in rather than stored.
var specializationCatalog = []models.Specialization{
	{ID: 1, Name: "Dermatologists", Description: "Specialists who diagnose and treat conditions related to skin, hair, and nails, including acne, allergies, and infections."},
	{ID: 2, Name: "Allergists / Immunologists", Description: "Doctors who treat allergies, asthma, and immune system disorders to help patients manage allergic reactions and immune health."},
	{ID: 3, Name: "Endocrinologists", Description: "Experts in hormone-related conditions such as diabetes, thyroid disorders, and metabolic imbalances."},
	{ID: 4, Name: "Family Physicians", Description: "Primary care doctors who provide comprehensive healthcare for individuals and families of all ages."},
	{ID: 5, Name: "Pediatricians", Description: "Doctors specializing in the medical care, growth, and development of infants, children, and adolescents."},
	{ID: 6, Name: "Podiatrists", Description: "Specialists who diagnose and treat foot, ankle, and lower limb conditions, including injuries and chronic pain."},
	{ID: 7, Name: "Sleep Medicine Specialists", Description: "Doctors who diagnose and treat sleep disorders such as insomnia, sleep apnea, and narcolepsy."},
	{ID: 8, Name: "Cardiologists", Description: "Specialists who diagnose and treat heart and blood vessel diseases, ensuring overall cardiovascular health."},
	{ID: 9, Name: "Neurologists", Description: "Doctors who treat disorders of the brain, spine, and nervous system, including migraines, epilepsy, and strokes."},
	{ID: 10, Name: "Orthopedic Specialists", Description: "Experts in diagnosing and treating bone, joint, muscle, and ligament conditions, including fractures and arthritis."},
}

type specializationUsecase struct {
	Log *zap.Logger
}

var (
	specializationUsecaseInstance contracts.SpecializationUsecase
	onceSpecializationUsecase     sync.Once
)

func NewSpecializationUsecase(logger *zap.Logger) contracts.SpecializationUsecase {
	onceSpecializationUsecase.Do(func() {
		specializationUsecaseInstance = &specializationUsecase{Log: logger}
	})
	return specializationUsecaseInstance
}

func (uc *specializationUsecase) FindAll(ctx context.Context) ([]models.Specialization, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("specializationUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	catalog := make([]models.Specialization, len(specializationCatalog))
	copy(catalog, specializationCatalog)
	return catalog, nil
}
