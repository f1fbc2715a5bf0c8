package emit

import "github.com/isncg/glad-go/pkg/diag"

// identifiers tracks the package-level names declared by the generated
// file. The first declaration of a name wins.
type identifiers struct {
	owner  map[string]string
	logger diag.Logger
}

func newIdentifiers(logger diag.Logger) *identifiers {
	return &identifiers{owner: make(map[string]string), logger: logger}
}

// declare claims name for source and reports whether it was free.
func (ids *identifiers) declare(name, source string) bool {
	if prev, taken := ids.owner[name]; taken {
		ids.logger.Log(diag.NewEvent(diag.StageEmit, diag.KindIdentifierCollision, name,
			"identifier already declared; dropping the later declaration", prev, source))
		return false
	}
	ids.owner[name] = source
	return true
}
