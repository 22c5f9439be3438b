package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanAdmission_AllFitWithinCapacity(t *testing.T) {
	out := PlanAdmission(AdmissionInput{
		Limit:     4,
		Requested: []string{"a", "b", "c"},
	})

	assert.Equal(t, []string{"a", "b", "c"}, out.Admitted)
	assert.Empty(t, out.Rejected)
	assert.Empty(t, out.AlreadyWatered)
	assert.Equal(t, 1, out.Remaining)
}

func TestPlanAdmission_RequestOrderWins(t *testing.T) {
	// Two already watered, three new, limit four: exactly two slots left and
	// they go to the first two requested.
	out := PlanAdmission(AdmissionInput{
		Limit:          4,
		AlreadyWatered: 2,
		Requested:      []string{"x", "y", "z"},
	})

	assert.Equal(t, []string{"x", "y"}, out.Admitted)
	assert.Equal(t, []string{"z"}, out.Rejected)
	assert.Equal(t, 0, out.Remaining)
}

func TestPlanAdmission_AlreadyWateredIsFree(t *testing.T) {
	out := PlanAdmission(AdmissionInput{
		Limit:          2,
		AlreadyWatered: 2,
		Requested:      []string{"a", "b", "c"},
		WateredToday:   map[string]bool{"a": true, "b": true},
	})

	assert.Equal(t, []string{"a", "b"}, out.AlreadyWatered, "re-requests of watered plants always pass")
	assert.Empty(t, out.Admitted)
	assert.Equal(t, []string{"c"}, out.Rejected)
	assert.Equal(t, 0, out.Remaining)
}

func TestPlanAdmission_CapacityAlreadyExceeded(t *testing.T) {
	// A lowered limit can leave the ledger above capacity; remaining clamps
	// to zero instead of going negative.
	out := PlanAdmission(AdmissionInput{
		Limit:          2,
		AlreadyWatered: 5,
		Requested:      []string{"a"},
	})

	assert.Empty(t, out.Admitted)
	assert.Equal(t, []string{"a"}, out.Rejected)
	assert.Equal(t, 0, out.Remaining)
}

func TestPlanAdmission_DuplicatesCollapse(t *testing.T) {
	out := PlanAdmission(AdmissionInput{
		Limit:     2,
		Requested: []string{"a", "a", "b", "a"},
	})

	assert.Equal(t, []string{"a", "b"}, out.Admitted, "duplicates must not burn capacity")
	assert.Empty(t, out.Rejected)
	assert.Equal(t, 0, out.Remaining)
}

func TestPlanAdmission_EmptyRequest(t *testing.T) {
	out := PlanAdmission(AdmissionInput{Limit: 4, AlreadyWatered: 1})

	assert.Empty(t, out.Admitted)
	assert.Empty(t, out.Rejected)
	assert.Equal(t, 3, out.Remaining)
}

func TestPlanAdmission_NeverAdmitsBeyondLimit(t *testing.T) {
	for already := 0; already <= 6; already++ {
		out := PlanAdmission(AdmissionInput{
			Limit:          4,
			AlreadyWatered: already,
			Requested:      []string{"a", "b", "c", "d", "e", "f"},
		})
		assert.LessOrEqual(t, already+len(out.Admitted), max(4, already),
			"already=%d: newly admitted must fit the cap", already)
		assert.Equal(t, 6, len(out.Admitted)+len(out.Rejected), "already=%d: every request gets an outcome", already)
	}
}
