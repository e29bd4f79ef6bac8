package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaplus/salon-scheduler/internal/httperr"
	"github.com/agendaplus/salon-scheduler/internal/models"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC) // segunda-feira

func validInput() NewInput {
	return NewInput{
		DateTime:   testNow.Add(48 * time.Hour),
		Duration:   60,
		UserID:     "user-1",
		ClientID:   "client-1",
		ScheduleID: "schedule-1",
		StatusID:   "status-pending",
		ServiceIDs: []string{"svc-1", "svc-2"},
	}
}

func TestNew(t *testing.T) {
	ap, err := New(validInput(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 60, ap.DurationMin)
	assert.Equal(t, []string{"svc-1", "svc-2"}, ap.ServiceIDs())
	assert.Nil(t, ap.ConfirmedAt)
}

func TestNew_DurationBounds(t *testing.T) {
	cases := []struct {
		name     string
		duration int
		wantErr  bool
	}{
		{"below minimum", 10, true},
		{"minimum", 15, false},
		{"not multiple of step", 50, true},
		{"typical", 90, false},
		{"maximum", 480, false},
		{"above maximum", 495, true},
		{"zero", 0, true},
		{"negative", -15, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Duration = tc.duration

			_, err := New(in, testNow)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, httperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_DateInPast(t *testing.T) {
	in := validInput()
	in.DateTime = testNow.Add(-time.Minute)

	_, err := New(in, testNow)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "date_in_past"))
}

func TestNew_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*NewInput)
		code   string
	}{
		{"no client", func(in *NewInput) { in.ClientID = "" }, "missing_client"},
		{"no user", func(in *NewInput) { in.UserID = "" }, "missing_user"},
		{"no schedule", func(in *NewInput) { in.ScheduleID = "" }, "missing_schedule"},
		{"no status", func(in *NewInput) { in.StatusID = "" }, "missing_status"},
		{"zero date", func(in *NewInput) { in.DateTime = time.Time{} }, "missing_date_time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := New(in, testNow)
			require.Error(t, err)
			assert.True(t, httperr.IsCode(err, tc.code))
		})
	}
}

func TestConfirm(t *testing.T) {
	ap, err := New(validInput(), testNow)
	require.NoError(t, err)

	require.NoError(t, Confirm(ap, testNow))
	require.NotNil(t, ap.ConfirmedAt)
	first := *ap.ConfirmedAt

	// Segunda confirmação não sobrescreve a primeira.
	err = Confirm(ap, testNow.Add(time.Hour))
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "already_confirmed"))
	assert.Equal(t, first, *ap.ConfirmedAt)
}

func TestReschedule(t *testing.T) {
	ap, err := New(validInput(), testNow)
	require.NoError(t, err)

	newStart := testNow.Add(72 * time.Hour)
	require.NoError(t, Reschedule(ap, newStart, 90, testNow))
	assert.Equal(t, newStart, ap.DateTime)
	assert.Equal(t, 90, ap.DurationMin)

	// Duração zero preserva a atual.
	require.NoError(t, Reschedule(ap, newStart.Add(time.Hour), 0, testNow))
	assert.Equal(t, 90, ap.DurationMin)
}

func TestReschedule_InvalidRestoresPrevious(t *testing.T) {
	ap, err := New(validInput(), testNow)
	require.NoError(t, err)
	prevStart, prevDur := ap.DateTime, ap.DurationMin

	err = Reschedule(ap, testNow.Add(72*time.Hour), 7, testNow)
	require.Error(t, err)
	assert.Equal(t, prevStart, ap.DateTime)
	assert.Equal(t, prevDur, ap.DurationMin)

	err = Reschedule(ap, testNow.Add(-time.Hour), 0, testNow)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "date_in_past"))
	assert.Equal(t, prevStart, ap.DateTime)
}

func TestAddRemoveService(t *testing.T) {
	ap, err := New(validInput(), testNow)
	require.NoError(t, err)

	err = AddService(ap, "svc-1", testNow)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "duplicate_service"))

	require.NoError(t, AddService(ap, "svc-3", testNow))
	assert.Equal(t, []string{"svc-1", "svc-2", "svc-3"}, ap.ServiceIDs())

	require.NoError(t, RemoveService(ap, "svc-2", testNow))
	assert.Equal(t, []string{"svc-1", "svc-3"}, ap.ServiceIDs())

	// Posições reindexadas após remoção.
	for i, s := range ap.Services {
		assert.Equal(t, i, s.Position)
	}

	err = RemoveService(ap, "svc-404", testNow)
	require.Error(t, err)
	assert.True(t, httperr.IsCode(err, "service_not_in_appointment"))
}

func mkAppointment(start time.Time, durationMin int) *models.Appointment {
	return &models.Appointment{DateTime: start, DurationMin: durationMin}
}

func TestHasConflictWith(t *testing.T) {
	base := time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		a    *models.Appointment
		b    *models.Appointment
		want bool
	}{
		{
			"overlapping",
			mkAppointment(base, 60),                   // 10:00-11:00
			mkAppointment(base.Add(30*time.Minute), 60), // 10:30-11:30
			true,
		},
		{
			"contained",
			mkAppointment(base, 120),                  // 10:00-12:00
			mkAppointment(base.Add(30*time.Minute), 30), // 10:30-11:00
			true,
		},
		{
			"identical",
			mkAppointment(base, 60),
			mkAppointment(base, 60),
			true,
		},
		{
			"back to back",
			mkAppointment(base, 60),                 // 10:00-11:00
			mkAppointment(base.Add(time.Hour), 60), // 11:00-12:00
			false,
		},
		{
			"disjoint",
			mkAppointment(base, 30),
			mkAppointment(base.Add(3*time.Hour), 30),
			false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasConflictWith(tc.a, tc.b))
			// Simetria
			assert.Equal(t, tc.want, HasConflictWith(tc.b, tc.a))
		})
	}
}

func TestCanBeModified(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	assert.True(t, CanBeModified(mkAppointment(now.Add(25*time.Hour), 60), now))
	assert.False(t, CanBeModified(mkAppointment(now.Add(23*time.Hour), 60), now))
	// Exatamente 24h de antecedência não é modificável.
	assert.False(t, CanBeModified(mkAppointment(now.Add(24*time.Hour), 60), now))
	assert.False(t, CanBeModified(mkAppointment(now.Add(-time.Hour), 60), now))
}
