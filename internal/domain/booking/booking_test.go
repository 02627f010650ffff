package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFields() Fields {
	return Fields{
		FromLocation:          "Galway",
		ToLocation:            "Sligo",
		Price:                 14.25,
		BookingClass:          "STANDARD",
		PickupAddress:         "1 Shop St",
		DeliveryAddress:       "8 Quay St",
		ReceiverName:          "M. Burke",
		EstimatedDeliveryDate: "2024-06-10",
	}
}

func TestNewBooking_ForcesActiveAndAssignsID(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, bk.ID())
	assert.Equal(t, StatusActive, bk.Status())
	assert.Equal(t, "alice", bk.BookedBy())
	assert.Equal(t, int64(1), bk.Version())
	assert.Equal(t, bk.BookedOn(), bk.ModifiedOn())
	assert.Empty(t, bk.Images())
}

func TestNewBooking_RequiresOwner(t *testing.T) {
	_, err := NewBooking("", testFields())
	assert.Error(t, err)
}

func TestOwnedBy_ExactMatchOnly(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)

	assert.True(t, bk.OwnedBy("alice"))
	assert.False(t, bk.OwnedBy("Alice"), "ownership comparison is not case-normalized")
	assert.False(t, bk.OwnedBy("bob"))
}

func TestApplyPatch_NilFieldsLeftUntouched(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)

	newPrice := 20.00
	bk.ApplyPatch(nil, &newPrice)

	assert.Equal(t, "STANDARD", bk.BookingClass())
	assert.Equal(t, 20.00, bk.Price())
}

func TestApplyPatch_EmptyPatchAdvancesModifiedOn(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)
	before := bk.ModifiedOn()

	time.Sleep(5 * time.Millisecond)
	bk.ApplyPatch(nil, nil)

	assert.True(t, bk.ModifiedOn().After(before))
	assert.Equal(t, 14.25, bk.Price())
	assert.Equal(t, "STANDARD", bk.BookingClass())
}

func TestInactivate_Terminal(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)

	bk.Inactivate()
	assert.Equal(t, StatusInactive, bk.Status())

	bk.Inactivate()
	assert.Equal(t, StatusInactive, bk.Status(), "re-applying is a no-op, not an error")
}

func TestAttachImage_AppendOnlyAndOrdered(t *testing.T) {
	bk, err := NewBooking("alice", testFields())
	require.NoError(t, err)

	bk.AttachImage("https://img.example/a.jpg")
	bk.AttachImage("https://img.example/b.jpg")

	require.Len(t, bk.Images(), 2)
	assert.Equal(t, "https://img.example/a.jpg", bk.Images()[0])
	assert.Equal(t, "https://img.example/b.jpg", bk.Images()[1])
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusActive.CanTransitionTo(StatusInactive))
	assert.False(t, StatusInactive.CanTransitionTo(StatusActive), "INACTIVE never reactivates")
	assert.False(t, StatusActive.IsTerminal())
	assert.True(t, StatusInactive.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	status, err := ParseStatus("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	_, err = ParseStatus("active")
	assert.Error(t, err, "status values are uppercase")

	_, err = ParseStatus("DELETED")
	assert.Error(t, err)
}
