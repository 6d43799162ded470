package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJournal(t *testing.T, env *testEnv) uint {
	t.Helper()
	alice := env.user(t, "alice")
	bean := env.bean(t, alice.ID, BeanInput{Name: "Gesha", Origin: "Panama", BuyingPrice: ptr(42.0), AmountGrams: ptr(200.0), RoastDate: day(-3)})
	env.lot(t, alice.ID, bean.ID, 200)

	_, err := env.tastings.Create(alice.ID, TastingInput{CoffeeBeanID: bean.ID, OverallRating: ptr(9), Notes: "jasmine"})
	require.NoError(t, err)
	_, err = env.costs.Create(alice.ID, CostInput{CoffeeBeanID: bean.ID, PurchaseDate: day(-3), Amount: ptr(42.0), QuantityGrams: 200})
	require.NoError(t, err)
	_, err = env.brewLogs.Create(alice.ID, BrewLogInput{CoffeeBeanID: bean.ID, BrewMethod: "V60", GramsUsed: 15})
	require.NoError(t, err)

	// another user's data must stay out of the export
	bob := env.user(t, "bob")
	env.bean(t, bob.ID, BeanInput{Name: "Bob's Blend"})

	return alice.ID
}

func TestExportService_ExportJournal(t *testing.T) {
	env := setupTestEnv(t)
	userID := seedJournal(t, env)

	export, err := env.export.ExportJournal(userID)
	require.NoError(t, err)

	assert.Equal(t, "alice", export.Username)
	assert.Equal(t, testNow, export.ExportedAt)
	assert.NotEmpty(t, export.Signature)
	require.Len(t, export.Beans, 1)

	bean := export.Beans[0]
	assert.Equal(t, "Gesha", bean.Name)
	assert.Equal(t, "USD", bean.Currency)
	assert.Equal(t, day(-3), bean.RoastDate)
	require.NotNil(t, bean.BuyingPrice)
	assert.Equal(t, "42", bean.BuyingPrice.String())
	assert.Equal(t, "42", bean.TotalCost.String())
	assert.Equal(t, 1, bean.CupsBrewed)
	assert.Len(t, bean.Lots, 1)
	require.Len(t, bean.Tastings, 1)
	assert.Equal(t, "jasmine", bean.Tastings[0].Notes)
	assert.Len(t, bean.CostEntries, 1)
	assert.Len(t, bean.BrewLogs, 1)
}

func TestExportService_ExportUserNotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.export.ExportJournal(404)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExportService_VerifyExport(t *testing.T) {
	env := setupTestEnv(t)
	userID := seedJournal(t, env)

	export, err := env.export.ExportJournal(userID)
	require.NoError(t, err)

	exportJSON, err := json.Marshal(export)
	require.NoError(t, err)

	valid, err := env.export.VerifyExport(exportJSON, export.Signature)
	assert.NoError(t, err)
	assert.True(t, valid)

	valid, err = env.export.VerifyExport(exportJSON, "invalid-signature-12345")
	assert.NoError(t, err)
	assert.False(t, valid)

	var decoded JournalExport
	require.NoError(t, json.Unmarshal(exportJSON, &decoded))
	valid, err = env.export.VerifyExportData(&decoded)
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestExportService_VerifyExportTamperedData(t *testing.T) {
	env := setupTestEnv(t)
	userID := seedJournal(t, env)

	export, err := env.export.ExportJournal(userID)
	require.NoError(t, err)
	originalSignature := export.Signature

	export.Beans[0].CupsBrewed = 999

	tamperedJSON, err := json.Marshal(export)
	require.NoError(t, err)

	valid, err := env.export.VerifyExport(tamperedJSON, originalSignature)
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestExportService_VerifyExportInvalidInput(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.export.VerifyExport([]byte("{invalid json"), "some-signature")
	assert.Equal(t, ErrInvalidExport, err)

	_, err = env.export.VerifyExportData(&JournalExport{Username: "alice"})
	assert.Equal(t, ErrInvalidExport, err)
}

func TestExportService_VerifyExportWithDifferentKey(t *testing.T) {
	env := setupTestEnv(t)
	userID := seedJournal(t, env)

	other := NewExportService(env.repos, "key2-different-32-characters!!", env.clock)

	export, err := env.export.ExportJournal(userID)
	require.NoError(t, err)

	exportJSON, err := json.Marshal(export)
	require.NoError(t, err)

	valid, err := other.VerifyExport(exportJSON, export.Signature)
	assert.NoError(t, err)
	assert.False(t, valid)
}
