// Package engine provides the Step() orchestrator that wires together
// lexing, classification, rules, and effects into a single line.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/nathoo/witchertrack/engine/effects"
	"github.com/nathoo/witchertrack/engine/grammar"
	"github.com/nathoo/witchertrack/engine/lexer"
	"github.com/nathoo/witchertrack/engine/query"
	"github.com/nathoo/witchertrack/engine/rules"
	"github.com/nathoo/witchertrack/engine/state"
	"github.com/nathoo/witchertrack/types"
)

// Invalid is the response to any line no sentence form accepts.
const Invalid = "INVALID"

// Engine holds the world and the logger every step reports to.
type Engine struct {
	World *types.World
	Log   *zap.Logger
}

// New creates an engine over an empty world. A nil logger discards logs.
func New(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		World: state.NewWorld(),
		Log:   log,
	}
}

// Seed applies effects directly, bypassing guards. Used to load lore before
// the first line is read.
func (e *Engine) Seed(effs []types.Effect) []types.Event {
	evts := effects.Apply(e.World, effs)
	e.Log.Debug("world seeded",
		zap.Int("effects", len(effs)),
		zap.Int("events", len(evts)),
	)
	return evts
}

// Step processes one input line and returns the result.
func (e *Engine) Step(input string) types.Result {
	line := strings.TrimSpace(input)
	if line == "" {
		return e.invalid(line, nil)
	}

	// 1. Lex.
	toks, err := lexer.Lex(line)
	if err != nil {
		return e.invalid(line, err)
	}

	// 2. Classify.
	sentence := grammar.Classify(toks)
	if sentence.Kind == types.KindInvalid {
		return e.invalid(line, nil)
	}

	// 3. Execute.
	result := e.execute(sentence)
	result.Kind = sentence.Kind
	e.World.Turn++

	e.Log.Debug("step",
		zap.String("line", line),
		zap.String("kind", string(result.Kind)),
		zap.Strings("output", result.Output),
		zap.Int("effects", len(result.Effects)),
		zap.Int("turn", e.World.Turn),
	)
	for _, ev := range result.Events {
		e.Log.Debug("event", zap.String("type", ev.Type), zap.Any("data", ev.Data))
	}

	return result
}

// execute routes a classified sentence to its executor.
func (e *Engine) execute(s types.Sentence) types.Result {
	switch s.Kind {
	case types.KindLoot:
		return e.loot(s)
	case types.KindTrade:
		return e.trade(s)
	case types.KindBrew:
		return e.brew(s)
	case types.KindLearnEffect:
		return e.learnEffect(s)
	case types.KindLearnFormula:
		return e.learnFormula(s)
	case types.KindEncounter:
		return e.encounter(s)
	case types.KindTotalAll:
		return reply(query.TotalAll(e.World, s.Category))
	case types.KindTotalOne:
		return reply(query.TotalOne(e.World, s.Category, s.Name))
	case types.KindWhatEffective:
		return reply(query.Effective(e.World, s.Beast))
	case types.KindWhatIn:
		return reply(query.Ingredients(e.World, s.Name))
	case types.KindExit:
		return types.Result{Exit: true}
	default:
		return types.Result{Output: []string{Invalid}}
	}
}

// commit checks every guard against the current world and, only if all
// hold, applies effs. On a failing guard the world is untouched and the
// guard's response is returned instead of ok.
func (e *Engine) commit(guards []rules.Guard, effs []types.Effect, ok string) types.Result {
	if g, failed := rules.FirstFailing(guards, e.World); failed {
		return reply(g.Fail)
	}
	return types.Result{
		Effects: effs,
		Events:  effects.Apply(e.World, effs),
		Output:  []string{ok},
	}
}

func (e *Engine) invalid(line string, err error) types.Result {
	fields := []zap.Field{zap.String("line", line)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	e.Log.Debug("invalid line", fields...)
	return types.Result{Output: []string{Invalid}}
}

func reply(msg string) types.Result {
	return types.Result{Output: []string{msg}}
}

// FormatEvent renders an event as a single trace line with its data keys
// in sorted order.
func FormatEvent(ev types.Event) string {
	keys := make([]string, 0, len(ev.Data))
	for k := range ev.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("[trace] ")
	b.WriteString(ev.Type)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, ev.Data[k])
	}
	return b.String()
}
