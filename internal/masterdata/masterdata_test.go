package masterdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetch_ReturnsCatalog(t *testing.T) {
	data := Fetch()

	assert.Len(t, data.Locations, 20)
	assert.Contains(t, data.Locations, "Dublin")
	assert.Contains(t, data.Locations, "Cork")
	assert.Equal(t, []string{"STANDARD", "EXPRESS", "ONE-DAY", "CHEAPER"}, data.BookingClass)
}

func TestFetch_CallersCannotMutateCatalog(t *testing.T) {
	first := Fetch()
	first.Locations[0] = "Atlantis"
	first.BookingClass[0] = "TELEPORT"

	second := Fetch()
	assert.Equal(t, "Dublin", second.Locations[0])
	assert.Equal(t, "STANDARD", second.BookingClass[0])
}
