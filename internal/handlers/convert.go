package handlers

import (
	"github.com/samber/lo"

	"wordarena/internal/game"
	"wordarena/internal/viewmodel"
)

// toSnapshotView converts a core snapshot into the JSON shape the client
// renders from.
func toSnapshotView(snap game.Snapshot) viewmodel.Snapshot {
	view := viewmodel.Snapshot{
		Screen:           snap.Screen.String(),
		Done:             snap.Done,
		Overlay:          snap.Overlay,
		TransitionActive: snap.TransitionActive,
		HoldActive:       snap.HoldActive,
		Answer:           snap.Answer,
		ShakeTicks:       snap.ShakeTicks,
		Difficulties: lo.Map(game.Difficulties(), func(d game.Difficulty, _ int) string {
			return d.String()
		}),
	}
	if snap.Session != nil {
		view.Session = &viewmodel.Session{
			Difficulty:    snap.Session.Difficulty.String(),
			Score:         snap.Session.Score,
			RoundsTotal:   snap.Session.RoundsTotal,
			RoundsPlayed:  snap.Session.RoundsPlayed,
			Correct:       snap.Session.Stats.CorrectAnswers,
			Incorrect:     snap.Session.Stats.IncorrectAnswers,
			CurrentStreak: snap.Session.Stats.CurrentStreak,
			BestStreak:    snap.Session.Stats.BestStreak,
			Accuracy:      snap.Session.Stats.Accuracy(),
		}
	}
	if snap.Round != nil {
		view.Round = &viewmodel.Round{
			Index:  snap.Round.Index,
			Total:  snap.Round.Total,
			Length: snap.Round.Length,
			Letters: lo.Map(snap.Round.Letters, func(l game.LetterSnapshot, _ int) viewmodel.Letter {
				return viewmodel.Letter{Char: string(l.Char), State: l.State.String()}
			}),
		}
	}
	view.Effects = lo.Map(snap.Effects, func(e game.EffectSnapshot, _ int) viewmodel.Effect {
		return viewmodel.Effect{
			Kind:     e.Kind.String(),
			Word:     e.Word,
			OriginX:  e.OriginX,
			OriginY:  e.OriginY,
			Strength: e.Strength,
		}
	})
	return view
}
