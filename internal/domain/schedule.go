package domain

// CheckConflicts fails when candidate overlaps any workout in existing.
// Touching endpoints count as overlap; the candidate's own id is skipped.
func CheckConflicts(candidate *Workout, existing []Workout) error {
	if candidate.Start.IsZero() {
		return ErrMissingStartTime
	}
	candidateEnd := candidate.End()
	for i := range existing {
		w := &existing[i]
		if candidate.ID != 0 && w.ID == candidate.ID {
			continue
		}
		existingEnd := w.End()
		if candidateEnd.Before(w.Start) || candidate.Start.After(existingEnd) {
			continue
		}
		return &WorkoutTimeConflictError{
			ExistingID:     w.ID,
			ExistingStart:  w.Start,
			ExistingEnd:    existingEnd,
			CandidateID:    candidate.ID,
			CandidateStart: candidate.Start,
			CandidateEnd:   candidateEnd,
		}
	}
	return nil
}
