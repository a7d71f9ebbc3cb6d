package service

import (
	"strings"
	"sync"
	"testing"
	"time"

	"mindcare-backend/internal/model"
	"mindcare-backend/utilities"
)

// syncAppointmentRepo guards the fake for the asynchronous listener path.
type syncAppointmentRepo struct {
	fakeAppointmentRepo
	mu      sync.Mutex
	created chan model.Appointment
}

func (f *syncAppointmentRepo) CreateAppointment(appointment *model.Appointment) error {
	f.mu.Lock()
	err := f.fakeAppointmentRepo.CreateAppointment(appointment)
	f.mu.Unlock()
	if err == nil && f.created != nil {
		f.created <- *appointment
	}
	return err
}

func TestConfirmationListenerCreatesPendingOffer(t *testing.T) {
	repo := &syncAppointmentRepo{created: make(chan model.Appointment, 1)}
	svc := NewAppointmentService(repo)

	bus := utilities.NewEventBus()
	svc.RegisterConfirmationListener(bus)

	handed := bus.Publish(EventConfirmationRequested, model.ConfirmationRequest{
		RequestID: "q-1",
		StudentID: 7,
		SurveyID:  1,
		ResultID:  "r-1",
	})
	if handed != 1 {
		t.Fatalf("publish reached %d handlers, want 1", handed)
	}

	select {
	case appointment := <-repo.created:
		if appointment.StudentID != 7 {
			t.Errorf("student id = %d, want 7", appointment.StudentID)
		}
		if appointment.Status != "PENDING" {
			t.Errorf("status = %q, want PENDING", appointment.Status)
		}
		if !strings.Contains(appointment.Notes, "r-1") {
			t.Errorf("notes %q do not reference the triggering result", appointment.Notes)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the appointment offer")
	}
}

func TestConfirmationListenerIgnoresUnexpectedPayload(t *testing.T) {
	repo := &syncAppointmentRepo{created: make(chan model.Appointment, 1)}
	svc := NewAppointmentService(repo)

	bus := utilities.NewEventBus()
	svc.RegisterConfirmationListener(bus)
	bus.Publish(EventConfirmationRequested, "not a confirmation request")

	select {
	case appointment := <-repo.created:
		t.Errorf("unexpected payload created an appointment: %+v", appointment)
	case <-time.After(200 * time.Millisecond):
	}
}
