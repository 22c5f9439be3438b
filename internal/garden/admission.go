package garden

// AdmissionInput is one day's watering request batch held against the
// configured daily capacity.
type AdmissionInput struct {
	Limit          int
	AlreadyWatered int             // distinct plants already recorded for the date
	Requested      []string        // plant IDs in request order
	WateredToday   map[string]bool // membership in the day's ledger
}

// Admission partitions a request batch into its outcomes. Rejection is an
// outcome, not an error: the remainder of the batch still goes through.
type Admission struct {
	Admitted       []string
	AlreadyWatered []string
	Rejected       []string
	Remaining      int // capacity left once the admitted plants are applied
}

// PlanAdmission applies the daily capacity rule to a request batch. Plants
// already watered on the date pass through without consuming capacity
// (re-watering is an idempotent no-op downstream); the rest are admitted in
// request order until capacity runs out. Duplicates collapse to their first
// occurrence.
func PlanAdmission(in AdmissionInput) Admission {
	remaining := in.Limit - in.AlreadyWatered
	if remaining < 0 {
		remaining = 0
	}

	var out Admission
	seen := make(map[string]bool, len(in.Requested))
	for _, id := range in.Requested {
		if seen[id] {
			continue
		}
		seen[id] = true
		switch {
		case in.WateredToday[id]:
			out.AlreadyWatered = append(out.AlreadyWatered, id)
		case len(out.Admitted) < remaining:
			out.Admitted = append(out.Admitted, id)
		default:
			out.Rejected = append(out.Rejected, id)
		}
	}
	out.Remaining = remaining - len(out.Admitted)
	return out
}
