package spec

import "github.com/isncg/glad-go/pkg/diag"

// Check reports model-level problems that Build tolerates: commands
// declared more than once (the first declaration is used) and commands
// required by a feature or extension but never declared (they are skipped
// by the Selector).
func (s *Spec) Check(logger diag.Logger) {
	logger = diag.OrNoop(logger)

	declared := make(map[string]bool, len(s.Commands))
	for _, c := range s.Commands {
		if declared[c.Name] {
			logger.Log(diag.NewEvent(diag.StageModel, diag.KindDuplicateCommand, c.Name,
				"command declared more than once; keeping the first declaration"))
			continue
		}
		declared[c.Name] = true
	}

	reported := make(map[string]bool)
	missing := func(owner string, reqs []Require) {
		for _, r := range reqs {
			for _, name := range r.Commands {
				if declared[name] || reported[name] {
					continue
				}
				reported[name] = true
				logger.Log(diag.NewEvent(diag.StageModel, diag.KindMissingCommand, name,
					"required command is not declared; skipping it", owner))
			}
		}
	}
	for _, f := range s.Features {
		missing(f.Name, f.Requires)
		missing(f.Name, f.Removes)
	}
	for _, x := range s.Extensions {
		missing(x.Name, x.Requires)
	}
}
