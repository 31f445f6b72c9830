package combat

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"tactics_ai/internal/grid"
)

type SimResult struct {
	Battle  string         `json:"battle"`
	Victor  string         `json:"victor"`
	Options []OptionResult `json:"options"`
	Events  []Event        `json:"events,omitempty"`
}

// OptionResult is one scored option. Executable is false when the option had
// no launch tile; its 0 score then means "cannot be used", not "useless".
type OptionResult struct {
	ID         string         `json:"id"`
	Caster     string         `json:"caster"`
	Ability    string         `json:"ability"`
	Target     *grid.Point    `json:"target,omitempty"`
	Direction  grid.Direction `json:"direction"`
	AngleBased bool           `json:"angle_based"`
	Score      int            `json:"score"`
	Executable bool           `json:"executable"`
	BestMove   *grid.Point    `json:"best_move,omitempty"`
	AngleScore int            `json:"angle_score,omitempty"`
}

// RunSingle scores every option of b once. Nothing is scored when the
// battle already has a victor.
func RunSingle(env *Env, b *Battle, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			ev.T = env.Time
			events = append(events, ev)
		}
	}

	res := SimResult{Battle: b.ID, Victor: grid.AllianceNone.String()}
	if v := b.Victory.Victor(b.Units); v != grid.AllianceNone {
		res.Victor = v.String()
		emit(Event{Type: "Victory", Payload: map[string]any{"victor": res.Victor}})
		log.Info().Str("battle", b.ID).Str("victor", res.Victor).Msg("battle already decided; nothing to score")
		res.Events = events
		return res
	}

	for _, p := range b.Options {
		if record {
			p.Option.WithTrace(emit)
		}
		score := p.Option.GetScore(p.Caster, p.Ability)
		or := OptionResult{
			ID:         p.ID,
			Caster:     p.Caster.ID,
			Ability:    p.Ability.ID,
			Target:     pointOf(p.Option.Target()),
			Direction:  p.Option.Direction(),
			AngleBased: p.Ability.IsAngleBased(),
			Score:      score,
		}
		if best := p.Option.BestMoveTile(); best != nil {
			or.Executable = true
			or.BestMove = pointOf(best)
			if or.AngleBased {
				or.AngleScore = p.Option.BestAngleBasedScore()
			}
		}
		res.Options = append(res.Options, or)
		emit(Event{Type: "Score", Payload: map[string]any{
			"option": p.ID, "score": score, "executable": or.Executable,
		}})
		log.Debug().Str("option", p.ID).Int("score", score).Bool("executable", or.Executable).Msg("scored")
	}
	res.Events = events
	return res
}

func pointOf(t *grid.Tile) *grid.Point {
	if t == nil {
		return nil
	}
	p := t.Pos
	return &p
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
