package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComplaintStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Under Repair", "Ready for Pickup", "Completed"} {
		status, ok := ParseComplaintStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, ComplaintStatus(s), status)
	}

	for _, s := range []string{"", "Bogus", "pending", "COMPLETED", "Under repair", " Pending"} {
		_, ok := ParseComplaintStatus(s)
		assert.False(t, ok, s)
	}
}

func TestDefaultTransitionsFullyConnected(t *testing.T) {
	table := DefaultTransitions()
	for _, from := range ComplaintStatuses {
		for _, to := range ComplaintStatuses {
			assert.True(t, table.Allows(from, to), "%s -> %s", from, to)
		}
	}
	assert.True(t, table.Allows(StatusCompleted, StatusPending))
}

func TestTransitionTableRestrictions(t *testing.T) {
	table := DefaultTransitions()
	table[StatusCompleted] = nil

	assert.False(t, table.Allows(StatusCompleted, StatusPending))
	assert.True(t, table.Allows(StatusPending, StatusCompleted))
	assert.False(t, table.Allows(ComplaintStatus("Bogus"), StatusPending))
	assert.False(t, table.Allows(StatusPending, ComplaintStatus("Bogus")))
}

func TestDefaultTransitionsAreIndependent(t *testing.T) {
	a := DefaultTransitions()
	a[StatusPending][0] = StatusCompleted

	b := DefaultTransitions()
	assert.Equal(t, StatusPending, b[StatusPending][0])
	assert.Equal(t, StatusPending, ComplaintStatuses[0])
}

func TestComplaintLaptopModel(t *testing.T) {
	c := Complaint{LaptopBrand: "Dell", Model: "XPS 15"}
	assert.Equal(t, "Dell XPS 15", c.LaptopModel())
}
