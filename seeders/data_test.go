package seeders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailorshop/pkg/constants"
)

func seededRoles(t *testing.T, from, to string) []string {
	t.Helper()
	for _, tr := range transitionsData {
		if tr.From == from && tr.To == to {
			return tr.AllowedRoles
		}
	}
	t.Fatalf("no seeded transition %s -> %s", from, to)
	return nil
}

// The shop-floor roles act on the edges of their own stage: the designer
// allocates fabric, the tailor moves garments through stitching and fittings,
// delivery hands over. Staff and admin may do everything.
func TestSeededTransitionRoleGrants(t *testing.T) {
	cases := []struct {
		from, to string
		extra    []string
	}{
		{constants.StatusBooked, constants.StatusFabricAllocated, []string{constants.RoleDesigner}},
		{constants.StatusFabricAllocated, constants.StatusStitching, []string{constants.RoleTailor}},
		{constants.StatusStitching, constants.StatusTrialScheduled, []string{constants.RoleTailor}},
		{constants.StatusStitching, constants.StatusReady, []string{constants.RoleTailor}},
		{constants.StatusTrialScheduled, constants.StatusAlteration, nil},
		{constants.StatusTrialScheduled, constants.StatusReady, []string{constants.RoleTailor}},
		{constants.StatusAlteration, constants.StatusReady, []string{constants.RoleTailor}},
		{constants.StatusReady, constants.StatusDelivered, []string{constants.RoleDelivery}},
		{constants.StatusDelivered, constants.StatusClosed, nil},
	}
	require.Len(t, transitionsData, len(cases))

	for _, tc := range cases {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			roles := seededRoles(t, tc.from, tc.to)
			want := append([]string{}, tc.extra...)
			want = append(want, constants.RoleStaff, constants.RoleAdmin)
			assert.ElementsMatch(t, want, roles)
		})
	}
}

func TestSeededDeliveryRequiresCompletedPayment(t *testing.T) {
	for _, tr := range transitionsData {
		if tr.From == constants.StatusReady && tr.To == constants.StatusDelivered {
			assert.Equal(t, constants.PreconditionPaymentCompleted, tr.Precondition)
			return
		}
	}
	t.Fatal("ready -> delivered transition is not seeded")
}
