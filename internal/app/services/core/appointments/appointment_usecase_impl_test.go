package appointments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeAppointmentRepository keeps records in memory with the same contract
// semantics as the Mongo implementation: owner-scoped lookups and a
// date-then-time string sort.
type fakeAppointmentRepository struct {
	records []models.Appointment
	seq     int
}

func (f *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	f.seq++
	appointmentModel.ID = fmt.Sprintf("appt-%d", f.seq)
	appointmentModel.CreatedAt = time.Now()
	appointmentModel.UpdatedAt = appointmentModel.CreatedAt
	f.records = append(f.records, *appointmentModel)
	return appointmentModel.ID, nil
}

func (f *fakeAppointmentRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	owned := make([]models.Appointment, 0)
	for _, record := range f.records {
		if record.OwnerID == ownerID {
			owned = append(owned, record)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].Date != owned[j].Date {
			return owned[i].Date < owned[j].Date
		}
		return owned[i].Time < owned[j].Time
	})
	return owned, nil
}

func (f *fakeAppointmentRepository) FindByIDAndOwner(ctx context.Context, appointmentID, ownerID string) (*models.Appointment, error) {
	for i := range f.records {
		if f.records[i].ID == appointmentID && f.records[i].OwnerID == ownerID {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID, status string) error {
	for i := range f.records {
		if f.records[i].ID == appointmentID {
			f.records[i].Status = status
			f.records[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return nil
}

func newTestAppointmentUsecase(repo *fakeAppointmentRepository) *appointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: repo,
		Log:                   zap.NewNop(),
	}
}

func bookingRequest(date, timeSlot string) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		DoctorID:        "doc-1",
		DoctorName:      "Dr. Anjali Verma",
		Specialization:  "Dermatologists",
		Clinic:          "Medibook Derma Clinic",
		Date:            date,
		Time:            timeSlot,
		ConsultationFee: 800,
		Reason:          "skin rash",
	}
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	ctx := context.Background()
	caller := &models.CallerIdentity{UserID: "user-1", Role: constvars.RoleUser}

	t.Run("Owner and Status Are Server Assigned", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		response, err := uc.CreateAppointment(ctx, caller, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)
		assert.Equal(t, "user-1", response.OwnerID)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, response.Status)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, time.Now().Format(constvars.DateLayoutISO), response.BookedAt, "booking date is server-assigned")
	})

	t.Run("Future Booking Displays Confirmed", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		response, err := uc.CreateAppointment(ctx, caller, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, response.DisplayStatus)
	})

	t.Run("Same Slot Can Be Booked Twice", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		first, err := uc.CreateAppointment(ctx, caller, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)
		second, err := uc.CreateAppointment(ctx, caller, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, repo.records, 2)
	})
}

func TestAppointmentUsecase_FindByOwner(t *testing.T) {
	ctx := context.Background()
	alice := &models.CallerIdentity{UserID: "alice", Role: constvars.RoleUser}
	bob := &models.CallerIdentity{UserID: "bob", Role: constvars.RoleUser}

	t.Run("Only Own Appointments Are Returned", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		_, err := uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)
		_, err = uc.CreateAppointment(ctx, bob, bookingRequest("2099-05-02", "11:00 AM"))
		assert.NoError(t, err)

		aliceList, err := uc.FindByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, aliceList, 1)
		assert.Equal(t, "alice", aliceList[0].OwnerID)
	})

	t.Run("Sorted By Date Then Time As Plain Strings", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		_, _ = uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-02", "09:00 AM"))
		_, _ = uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "11:00 AM"))
		_, _ = uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "10:00 AM"))

		list, err := uc.FindByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, list, 3)
		assert.Equal(t, "2099-05-01", list[0].Date)
		assert.Equal(t, "10:00 AM", list[0].Time)
		assert.Equal(t, "11:00 AM", list[1].Time)
		assert.Equal(t, "2099-05-02", list[2].Date)
	})

	t.Run("Past Confirmed Appointment Displays Completed Without Rewriting Status", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		_, err := uc.CreateAppointment(ctx, alice, bookingRequest("2020-01-01", "10:00 AM"))
		assert.NoError(t, err)

		list, err := uc.FindByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, constvars.AppointmentStatusCompleted, list[0].DisplayStatus)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, list[0].Status)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, repo.records[0].Status, "stored status must stay Confirmed")
	})
}

func TestAppointmentUsecase_CancelAppointment(t *testing.T) {
	ctx := context.Background()
	alice := &models.CallerIdentity{UserID: "alice", Role: constvars.RoleUser}
	bob := &models.CallerIdentity{UserID: "bob", Role: constvars.RoleUser}

	t.Run("Owner Can Cancel", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		created, err := uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)

		cancelled, err := uc.CancelAppointment(ctx, alice, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, cancelled.Status)
		assert.Equal(t, constvars.AppointmentStatusCancelled, repo.records[0].Status)
	})

	t.Run("Foreign Appointment Yields Not Found", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		created, err := uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)

		_, err = uc.CancelAppointment(ctx, bob, created.ID)
		assert.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.AppointmentStatusConfirmed, repo.records[0].Status, "a foreign cancel must not touch the record")
	})

	t.Run("Unknown ID Yields Not Found", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		_, err := uc.CancelAppointment(ctx, alice, "missing")
		assert.Error(t, err)
	})

	t.Run("Repeat Cancel Succeeds and Stays Cancelled", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		created, err := uc.CreateAppointment(ctx, alice, bookingRequest("2099-05-01", "10:00 AM"))
		assert.NoError(t, err)

		_, err = uc.CancelAppointment(ctx, alice, created.ID)
		assert.NoError(t, err)
		again, err := uc.CancelAppointment(ctx, alice, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, again.Status)
	})

	t.Run("Cancelled Appointment Displays Cancelled Even When Past", func(t *testing.T) {
		repo := &fakeAppointmentRepository{}
		uc := newTestAppointmentUsecase(repo)

		created, err := uc.CreateAppointment(ctx, alice, bookingRequest("2020-01-01", "10:00 AM"))
		assert.NoError(t, err)
		_, err = uc.CancelAppointment(ctx, alice, created.ID)
		assert.NoError(t, err)

		list, err := uc.FindByOwner(ctx, alice)
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, list[0].DisplayStatus)
	})
}
