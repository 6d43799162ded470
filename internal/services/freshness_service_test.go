package services

import (
	"testing"

	"github.com/h4ks-com/brewlog/internal/freshness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreshnessService_Alerts(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	expired := env.bean(t, alice.ID, BeanInput{Name: "Expired", BestByDate: day(-1)})
	soon := env.bean(t, alice.ID, BeanInput{Name: "Soon", BestByDate: day(5)})
	old := env.bean(t, alice.ID, BeanInput{Name: "Old", RoastDate: day(-120)})
	empty := env.bean(t, alice.ID, BeanInput{Name: "Empty", BestByDate: day(-10)})
	undated := env.bean(t, alice.ID, BeanInput{Name: "Undated"})

	env.lot(t, alice.ID, expired.ID, 100)
	env.lot(t, alice.ID, soon.ID, 100)
	env.lot(t, alice.ID, old.ID, 100)
	env.lot(t, alice.ID, undated.ID, 100)
	env.lot(t, alice.ID, empty.ID, 0)

	alerts, err := env.freshness.Alerts(alice.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, expired.ID, alerts[0].BeanID)
	assert.Equal(t, freshness.Expired, alerts[0].Status)
	assert.Equal(t, 0, alerts[0].Priority)
	require.NotNil(t, alerts[0].DaysUntilExpiry)
	assert.Equal(t, -1, *alerts[0].DaysUntilExpiry)

	assert.Equal(t, soon.ID, alerts[1].BeanID)
	assert.Equal(t, freshness.ExpiringSoon, alerts[1].Status)

	assert.Equal(t, old.ID, alerts[2].BeanID)
	assert.Equal(t, freshness.OldRoast, alerts[2].Status)
	require.NotNil(t, alerts[2].DaysSinceRoast)
	assert.Equal(t, 120, *alerts[2].DaysSinceRoast)
	assert.Equal(t, "Old", alerts[2].Name)
}

func TestFreshnessService_Summary(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.user(t, "alice")

	env.bean(t, alice.ID, BeanInput{Name: "Expired", BestByDate: day(-1)})
	env.bean(t, alice.ID, BeanInput{Name: "Soon", BestByDate: day(3)})
	env.bean(t, alice.ID, BeanInput{Name: "Fresh roast", RoastDate: day(-2)})
	env.bean(t, alice.ID, BeanInput{Name: "Undated"})

	summary, err := env.freshness.Summary(alice.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalBeansWithDates)
	assert.Equal(t, 1, summary.ExpiredCount)
	assert.Equal(t, 1, summary.ExpiringSoonCount)
}
