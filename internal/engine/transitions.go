package engine

import "github.com/akyairhashvil/intervaltimer/internal/models"

// Start returns the run for a freshly opened profile.
func Start(profile models.TimerProfile) models.ActiveRun {
	return models.ActiveRun{
		Profile:       profile,
		Phase:         models.PhaseWarmUp,
		TimeRemaining: profile.WarmUp,
		CurrentSet:    profile.Sets,
		CurrentRound:  profile.Rounds,
	}
}

// Forward applies one forward skip. ended is true when the run leaves
// Cooldown; the returned run is then stopped at zero in Cooldown.
func Forward(run models.ActiveRun) (next models.ActiveRun, ended bool) {
	p := run.Profile
	next = run
	switch run.Phase {
	case models.PhaseWarmUp:
		next.Phase = models.PhaseLow
		next.TimeRemaining = p.LowIntensity
	case models.PhaseLow:
		next.Phase = models.PhaseHigh
		next.TimeRemaining = p.HighIntensity
	case models.PhaseHigh:
		switch {
		case run.CurrentSet > 1:
			next.Phase = models.PhaseLow
			next.TimeRemaining = p.LowIntensity
			next.CurrentSet--
		case run.CurrentRound > 1:
			next.Phase = models.PhaseRest
			next.TimeRemaining = p.Rest
			next.CurrentRound--
		default:
			next.Phase = models.PhaseCooldown
			next.TimeRemaining = p.Cooldown
		}
	case models.PhaseRest:
		next.Phase = models.PhaseLow
		next.TimeRemaining = p.LowIntensity
		next.CurrentSet = p.Sets
	case models.PhaseCooldown:
		next.TimeRemaining = 0
		next.IsRunning = false
		next.Finished = true
		return next, true
	}
	return next, false
}

// Backward applies one backward skip. It jumps to the start of the previous
// phase; Cooldown goes straight back to High.
func Backward(run models.ActiveRun) models.ActiveRun {
	p := run.Profile
	next := run
	next.Finished = false
	switch run.Phase {
	case models.PhaseWarmUp:
		next.TimeRemaining = p.WarmUp
	case models.PhaseLow:
		switch {
		case run.CurrentSet == p.Sets && run.CurrentRound == p.Rounds:
			next.Phase = models.PhaseWarmUp
			next.TimeRemaining = p.WarmUp
		case run.CurrentSet == p.Sets && run.CurrentRound < p.Rounds:
			next.Phase = models.PhaseRest
			next.TimeRemaining = p.Rest
			next.CurrentRound++
		default:
			next.Phase = models.PhaseHigh
			next.TimeRemaining = p.HighIntensity
			next.CurrentSet++
		}
	case models.PhaseHigh:
		next.Phase = models.PhaseLow
		next.TimeRemaining = p.LowIntensity
	case models.PhaseRest, models.PhaseCooldown:
		next.Phase = models.PhaseHigh
		next.TimeRemaining = p.HighIntensity
	}
	return next
}
