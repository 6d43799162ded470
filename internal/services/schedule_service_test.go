package services

import (
	"testing"

	"github.com/h4ks-com/brewlog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.ScheduleStatus
		want     bool
	}{
		{models.StatusPlanned, models.StatusCompleted, true},
		{models.StatusPlanned, models.StatusCancelled, true},
		{models.StatusPlanned, models.StatusSkipped, true},
		{models.StatusPlanned, models.StatusPlanned, true},
		{models.StatusCompleted, models.StatusCompleted, true},
		{models.StatusCompleted, models.StatusPlanned, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPlanned, false},
		{models.StatusSkipped, models.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestScheduleService_CompleteStampsOnce(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})

	in := ScheduleInput{CoffeeBeanID: bean.ID, ScheduledDate: day(1), ScheduledTime: "07:30", BrewMethod: "AeroPress"}
	entry, err := env.schedule.Create(alice.ID, in)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanned, entry.Status)
	assert.Nil(t, entry.CompletedAt)

	in.Status = string(models.StatusCompleted)
	done, err := env.schedule.Update(alice.ID, entry.ID, in)
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	first := *done.CompletedAt

	in.Notes = "bloom 45s"
	again, err := env.schedule.Update(alice.ID, entry.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "bloom 45s", again.Notes)
	assert.True(t, first.Equal(*again.CompletedAt))

	in.Status = string(models.StatusPlanned)
	_, err = env.schedule.Update(alice.ID, entry.ID, in)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = env.schedule.Reopen(alice.ID, entry.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestScheduleService_Reopen(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})

	in := ScheduleInput{CoffeeBeanID: bean.ID, ScheduledDate: day(2)}
	entry, err := env.schedule.Create(alice.ID, in)
	require.NoError(t, err)

	in.Status = string(models.StatusSkipped)
	_, err = env.schedule.Update(alice.ID, entry.ID, in)
	require.NoError(t, err)

	in.Status = string(models.StatusPlanned)
	_, err = env.schedule.Update(alice.ID, entry.ID, in)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	reopened, err := env.schedule.Reopen(alice.ID, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPlanned, reopened.Status)

	_, err = env.schedule.Reopen(alice.ID, 999)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestScheduleService_Validation(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})

	_, err := env.schedule.Create(alice.ID, ScheduleInput{
		CoffeeBeanID:  bean.ID,
		ScheduledTime: "25:00",
		WaterTemp:     ptr(300),
		Status:        "brewing",
	})
	verr, ok := IsValidation(err)
	require.True(t, ok)

	var fields []string
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"scheduled_date", "scheduled_time", "water_temp", "status"}, fields)
}

func TestScheduleService_UpcomingAndStats(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{})

	create := func(date, at string, status models.ScheduleStatus) {
		t.Helper()
		_, err := env.schedule.Create(alice.ID, ScheduleInput{CoffeeBeanID: bean.ID, ScheduledDate: date, ScheduledTime: at, Status: string(status)})
		require.NoError(t, err)
	}
	create(day(-1), "08:00", models.StatusPlanned)
	create(day(0), "18:00", models.StatusPlanned)
	create(day(0), "07:00", models.StatusPlanned)
	create(day(3), "09:00", models.StatusCancelled)
	create(day(5), "09:00", models.StatusPlanned)
	create(day(0), "12:00", models.StatusCompleted)

	upcoming, err := env.schedule.Upcoming(alice.ID, 0)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)
	assert.Equal(t, "07:00", upcoming[0].ScheduledTime)
	assert.Equal(t, "18:00", upcoming[1].ScheduledTime)
	assert.Equal(t, day(5), models.FormatDate(&upcoming[2].ScheduledDate))

	stats, err := env.schedule.Stats(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &ScheduleStats{
		TotalScheduled: 6,
		PlannedCount:   4,
		CompletedCount: 1,
		CancelledCount: 1,
		TodayCount:     3,
	}, stats)

	cancelled, err := env.schedule.List(alice.ID, ScheduleListFilter{Status: "cancelled"})
	require.NoError(t, err)
	assert.Len(t, cancelled, 1)
}

func TestScheduleService_Delete(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	bean := env.bean(t, alice.ID, BeanInput{})

	entry, err := env.schedule.Create(alice.ID, ScheduleInput{CoffeeBeanID: bean.ID, ScheduledDate: day(1)})
	require.NoError(t, err)

	assert.ErrorIs(t, env.schedule.Delete(bob.ID, entry.ID), ErrScheduleNotFound)
	require.NoError(t, env.schedule.Delete(alice.ID, entry.ID))
	_, err = env.schedule.Get(alice.ID, entry.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
