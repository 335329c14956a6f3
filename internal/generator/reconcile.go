package generator

import "github.com/tanzhongyan/Singheatlh/internal/domain/entity"

// ReconcileNoShows returns a copy of appointments with every no-show marked Missed,
// along with how many records changed. The input slice is left untouched.
func ReconcileNoShows(appointments []entity.Appointment, noShowIDs map[string]struct{}) ([]entity.Appointment, int) {
	reconciled := make([]entity.Appointment, len(appointments))
	copy(reconciled, appointments)

	changed := 0
	for i := range reconciled {
		if _, ok := noShowIDs[reconciled[i].ID]; !ok {
			continue
		}
		if reconciled[i].IsUpcoming() {
			reconciled[i].MarkMissed()
			changed++
		}
	}

	return reconciled, changed
}
