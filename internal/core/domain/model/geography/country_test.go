package geography_test

import (
	"testing"

	"shipping/internal/core/domain/model/geography"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDirectory(t *testing.T) *geography.Directory {
	t.Helper()
	directory, err := geography.LoadDirectory()
	require.NoError(t, err)
	return directory
}

func TestNewDirectory(t *testing.T) {
	t.Run("should reject an empty country table", func(t *testing.T) {
		_, err := geography.NewDirectory(nil)

		assert.ErrorIs(t, err, geography.ErrEmptyCountryTable)
	})

	t.Run("should reject a country without a name", func(t *testing.T) {
		_, err := geography.NewDirectory([]geography.Country{{Code: "XX"}})

		assert.Error(t, err)
	})

	t.Run("should keep the table in order", func(t *testing.T) {
		directory := loadDirectory(t)

		countries := directory.Countries()
		require.NotEmpty(t, countries)
		assert.Equal(t, "Saudi Arabia", countries[0].Name)
	})
}

func TestDirectory_Contains(t *testing.T) {
	directory := loadDirectory(t)

	assert.True(t, directory.Contains("Saudi Arabia"))
	assert.True(t, directory.Contains("Germany"))
	assert.False(t, directory.Contains("Atlantis"))
	assert.False(t, directory.Contains(""))
	// lookups are exact-match on the canonical name
	assert.False(t, directory.Contains("saudi arabia"))
}

func TestDirectory_IsGulf(t *testing.T) {
	directory := loadDirectory(t)

	for _, name := range []string{"Saudi Arabia", "United Arab Emirates", "Kuwait", "Qatar", "Bahrain", "Oman"} {
		assert.True(t, directory.IsGulf(name), name)
	}
	for _, name := range []string{"Iraq", "Jordan", "Egypt", "Germany", "United States"} {
		assert.False(t, directory.IsGulf(name), name)
	}

	t.Run("unknown names report non-Gulf", func(t *testing.T) {
		assert.False(t, directory.IsGulf("Atlantis"))
		assert.False(t, directory.IsGulf(""))
	})
}

func TestDirectory_Classify(t *testing.T) {
	directory := loadDirectory(t)

	t.Run("should classify every same-country pair as Domestic", func(t *testing.T) {
		for _, country := range directory.Countries() {
			assert.Equal(t, geography.Domestic,
				directory.Classify(country.Name, country.Name), country.Name)
		}
	})

	t.Run("should classify Gulf pairs as IntraGulf", func(t *testing.T) {
		assert.Equal(t, geography.IntraGulf, directory.Classify("Saudi Arabia", "Kuwait"))
		assert.Equal(t, geography.IntraGulf, directory.Classify("Qatar", "Bahrain"))
	})

	t.Run("should classify every other pair as International", func(t *testing.T) {
		testCases := []struct {
			sender   string
			receiver string
		}{
			{"Saudi Arabia", "Iraq"},
			{"Germany", "Kuwait"},
			{"Jordan", "Egypt"},
			{"United States", "India"},
		}

		for _, tc := range testCases {
			assert.Equal(t, geography.International,
				directory.Classify(tc.sender, tc.receiver), "%s -> %s", tc.sender, tc.receiver)
		}
	})

	t.Run("should be deterministic for the same pair", func(t *testing.T) {
		first := directory.Classify("Saudi Arabia", "Kuwait")
		for range 5 {
			assert.Equal(t, first, directory.Classify("Saudi Arabia", "Kuwait"))
		}
	})

	t.Run("unknown pairs classify as International", func(t *testing.T) {
		assert.Equal(t, geography.International, directory.Classify("Atlantis", "Kuwait"))
		assert.Equal(t, geography.Domestic, directory.Classify("Atlantis", "Atlantis"))
	})
}
