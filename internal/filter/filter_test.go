package filter_test

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/filter"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/models"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/testutil"
	"github.com/ahmetcoskunkizilkaya/rentdesk/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type query map[string]string

func (q query) Query(key string, defaultValue ...string) string {
	if v, ok := q[key]; ok {
		return v
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

func TestParseRejectsUnknownEnums(t *testing.T) {
	_, err := filter.ParseProperty(query{"status": "SOLD"})
	assert.True(t, validation.Is(err))

	_, err = filter.ParseTenant(query{"kycStatus": "MAYBE"})
	assert.True(t, validation.Is(err))

	_, err = filter.ParsePayment(query{"status": "LATE"})
	assert.True(t, validation.Is(err))

	_, err = filter.ParseDocument(query{"type": "PASSPORT_SCAN"})
	assert.True(t, validation.Is(err))

	_, err = filter.ParseAgreement(query{"rentalId": "not-a-uuid"})
	assert.True(t, validation.Is(err))
}

func TestParseAvailable(t *testing.T) {
	f, err := filter.ParseAvailable(query{"minRent": "1000", "maxRent": "3000.50", "bedrooms": "2", "propertyType": "HOUSE"})
	require.NoError(t, err)
	assert.True(t, f.MinRent.Equal(decimal.NewFromInt(1000)))
	assert.True(t, f.MaxRent.Equal(decimal.RequireFromString("3000.50")))
	assert.Equal(t, 2, *f.Bedrooms)
	assert.Equal(t, models.PropertyHouse, f.Type)

	_, err = filter.ParseAvailable(query{"minRent": "5000", "maxRent": "100"})
	assert.EqualError(t, err, "minRent must not exceed maxRent")

	_, err = filter.ParseAvailable(query{"bedrooms": "-1"})
	assert.True(t, validation.Is(err))

	_, err = filter.ParseAvailable(query{"maxRent": "lots"})
	assert.True(t, validation.Is(err))
}

func TestAvailableFilterApply(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	_, landlord := fx.Landlord("owner@example.com")

	cheap := fx.Property(landlord.ID, "Garden Studio", models.PropertyAvailable)
	require.NoError(t, db.Model(cheap).Updates(map[string]interface{}{"rent_amount": decimal.NewFromInt(900), "city": "Oakland"}).Error)
	fx.Property(landlord.ID, "Bay Loft", models.PropertyAvailable)
	fx.Property(landlord.ID, "Busy Flat", models.PropertyOccupied)

	run := func(q query) []models.Property {
		f, err := filter.ParseAvailable(q)
		require.NoError(t, err)
		var out []models.Property
		require.NoError(t, db.Model(&models.Property{}).Scopes(f.Apply).Order("name").Find(&out).Error)
		return out
	}

	all := run(query{})
	require.Len(t, all, 2)

	under := run(query{"maxRent": "1000"})
	require.Len(t, under, 1)
	assert.Equal(t, "Garden Studio", under[0].Name)

	searched := run(query{"search": "LOFT"})
	require.Len(t, searched, 1)
	assert.Equal(t, "Bay Loft", searched[0].Name)

	assert.Len(t, run(query{"city": "Oakland"}), 1)
	assert.Empty(t, run(query{"search": "busy"}))
}

func TestSearchMatchesWildcardsLiterally(t *testing.T) {
	db := testutil.NewDB(t)
	fx := testutil.NewFixtures(t, db)
	_, landlord := fx.Landlord("owner@example.com")
	fx.Property(landlord.ID, "100% Sunny", models.PropertyAvailable)
	fx.Property(landlord.ID, "Loft_A", models.PropertyAvailable)
	fx.Property(landlord.ID, "Plain", models.PropertyAvailable)

	names := func(search string) []string {
		f, err := filter.ParseAvailable(query{"search": search})
		require.NoError(t, err)
		var out []models.Property
		require.NoError(t, db.Model(&models.Property{}).Scopes(f.Apply).Order("name").Find(&out).Error)
		result := make([]string, len(out))
		for i, p := range out {
			result[i] = p.Name
		}
		return result
	}

	assert.Equal(t, []string{"100% Sunny"}, names("%"))
	assert.Equal(t, []string{"Loft_A"}, names("_"))
	assert.Empty(t, names(`\`))
	assert.Equal(t, []string{"100% Sunny"}, names("0% s"))
}
