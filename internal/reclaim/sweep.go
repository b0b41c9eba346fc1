package reclaim

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/csictl/internal/tools"
)

// StepResult records one step's outcome. The sweep stores results for
// reporting but never branches on them.
type StepResult struct {
	Name   string
	OK     bool
	Detail string
}

// Sweeper executes a reclamation plan against a container runtime.
type Sweeper struct {
	Runtime string
	Runner  tools.Runner
}

// Run executes every step in order. Step failures (including "nothing to
// operate on" errors from the runtime) are absorbed into the results.
// The only returned error is the runtime binary itself being absent,
// which no step can recover from.
func (s Sweeper) Run(steps []Step, emit func(StepResult)) ([]StepResult, error) {
	results := make([]StepResult, 0, len(steps))
	for _, step := range steps {
		res, err := s.runStep(step)
		if err != nil {
			return results, err
		}
		log.Debug().Str("step", res.Name).Bool("ok", res.OK).Msg(res.Detail)
		if emit != nil {
			emit(res)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s Sweeper) runStep(step Step) (StepResult, error) {
	args := step.Args

	if len(step.Collect) > 0 {
		out, _, exit, err := s.Runner.Run(s.Runtime, step.Collect...)
		if err != nil && tools.IsMissingBinary(err) {
			return StepResult{}, fmt.Errorf("runtime binary %q not found: %w", s.Runtime, err)
		}
		if exit != 0 {
			return StepResult{
				Name:   step.Name,
				OK:     false,
				Detail: fmt.Sprintf("id query failed (exit %d)", exit),
			}, nil
		}
		ids := strings.Fields(string(out))
		if len(ids) == 0 {
			return StepResult{Name: step.Name, OK: true, Detail: step.Empty}, nil
		}
		args = append(append([]string{}, step.Args...), ids...)
	}

	_, stderr, exit, err := s.Runner.Run(s.Runtime, args...)
	if err != nil && tools.IsMissingBinary(err) {
		return StepResult{}, fmt.Errorf("runtime binary %q not found: %w", s.Runtime, err)
	}
	if exit != 0 {
		detail := strings.TrimSpace(string(stderr))
		if detail == "" {
			detail = fmt.Sprintf("exit %d", exit)
		}
		return StepResult{Name: step.Name, OK: false, Detail: detail}, nil
	}
	return StepResult{Name: step.Name, OK: true, Detail: "done"}, nil
}
