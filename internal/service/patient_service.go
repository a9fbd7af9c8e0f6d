package service

import (
	"context"
	"time"

	"dental-assistant-be/internal/dto"
	"dental-assistant-be/internal/entity"
	"dental-assistant-be/internal/pkg/logger"
	"dental-assistant-be/internal/pkg/serverutils"
	"dental-assistant-be/internal/repository/contract"
	"dental-assistant-be/internal/repository/specification"
	"dental-assistant-be/internal/repository/unitofwork"
	"dental-assistant-be/pkg/events"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultPage  = 1
	defaultLimit = 10

	totalPatientsCacheKey = "patients:total"

	EventPatientCreated = "PATIENT_CREATED"
	EventPatientUpdated = "PATIENT_UPDATED"
	EventPatientDeleted = "PATIENT_DELETED"
)

const dateLayout = "2006-01-02"

type IPatientService interface {
	List(ctx context.Context, page, limit int, search string) (*dto.ListPatientsResponse, error)
	GetById(ctx context.Context, id uint) (*dto.PatientResponse, error)
	Create(ctx context.Context, userId uint, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id uint) error
}

type patientService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	log        logger.ILogger

	// countCache keeps the unfiltered list total out of the hot path;
	// flushed on every write.
	countCache *gocache.Cache
}

func NewPatientService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	log logger.ILogger,
) IPatientService {
	return &patientService{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        log,
		countCache: gocache.New(30*time.Second, time.Minute),
	}
}

func (s *patientService) List(ctx context.Context, page, limit int, search string) (*dto.ListPatientsResponse, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PatientRepository()

	listSpecs := []specification.Specification{}
	countSpecs := []specification.Specification{}
	if search != "" {
		searchSpec := specification.PatientSearchQuery{Query: search}
		listSpecs = append(listSpecs, searchSpec)
		countSpecs = append(countSpecs, searchSpec)
	}

	total, err := s.countPatients(ctx, repo, search, countSpecs)
	if err != nil {
		return nil, err
	}

	listSpecs = append(listSpecs,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	patients, err := repo.FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.PatientResponse, len(patients))
	for i, p := range patients {
		result[i] = toPatientResponse(p)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &dto.ListPatientsResponse{
		Patients: result,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}

func (s *patientService) countPatients(ctx context.Context, repo contract.PatientRepository, search string, specs []specification.Specification) (int64, error) {
	if search == "" {
		if cached, found := s.countCache.Get(totalPatientsCacheKey); found {
			return cached.(int64), nil
		}
	}

	total, err := repo.Count(ctx, specs...)
	if err != nil {
		return 0, err
	}

	if search == "" {
		s.countCache.SetDefault(totalPatientsCacheKey, total)
	}
	return total, nil
}

func (s *patientService) GetById(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient, err := uow.PatientRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("Patient")
	}
	return toPatientResponse(patient), nil
}

func (s *patientService) Create(ctx context.Context, userId uint, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, serverutils.NewValidationError("date_of_birth", "Valid date is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	patient := entity.Patient{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  dob,
		MedicalNotes: req.MedicalNotes,
		CreatedBy:    &userId,
	}

	if err := uow.PatientRepository().Create(ctx, &patient); err != nil {
		return nil, err
	}
	s.countCache.Flush()

	s.publish(ctx, EventPatientCreated, map[string]interface{}{
		"patient_id": patient.Id,
		"name":       patient.Name,
		"created_by": userId,
	})

	return toPatientResponse(&patient), nil
}

func (s *patientService) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, serverutils.NewValidationError("date_of_birth", "Valid date is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PatientRepository()

	patient, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, serverutils.NewNotFoundError("Patient")
	}

	patient.Name = req.Name
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.DateOfBirth = dob
	patient.MedicalNotes = req.MedicalNotes

	if err := repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	s.countCache.Flush()

	s.publish(ctx, EventPatientUpdated, map[string]interface{}{
		"patient_id": patient.Id,
		"name":       patient.Name,
	})

	return toPatientResponse(patient), nil
}

func (s *patientService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.PatientRepository()

	patient, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if patient == nil {
		return serverutils.NewNotFoundError("Patient")
	}

	// Chat messages go with the patient via ON DELETE CASCADE.
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.countCache.Flush()

	s.publish(ctx, EventPatientDeleted, map[string]interface{}{
		"patient_id": id,
	})

	return nil
}

func (s *patientService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.NewBaseEvent(eventType, data)); err != nil {
		s.log.Warn("patient", "failed to publish audit event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}

func toPatientResponse(p *entity.Patient) *dto.PatientResponse {
	return &dto.PatientResponse{
		Id:           p.Id,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		DateOfBirth:  formatDate(p.DateOfBirth),
		MedicalNotes: p.MedicalNotes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
