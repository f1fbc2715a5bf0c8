package diag

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Event is one diagnostic reported by a pipeline stage.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was reported.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the generator run (UUID), set by WithRunID.
	RunID string `cbor:"2,keyasint,omitempty"`

	Stage    Stage    `cbor:"3,keyasint"`
	Kind     Kind     `cbor:"4,keyasint"`
	Severity Severity `cbor:"5,keyasint"`

	// Subject names the entity the event is about: a group, member,
	// command, parameter or type token.
	Subject string `cbor:"6,keyasint,omitempty"`

	// Detail is a human-readable explanation.
	Detail string `cbor:"7,keyasint,omitempty"`

	// Values carries the conflicting or dropped values, in order.
	Values []string `cbor:"8,keyasint,omitempty"`
}

// NewEvent creates an event with the current time and the default severity
// of kind.
func NewEvent(stage Stage, kind Kind, subject, detail string, values ...string) Event {
	return Event{
		Timestamp: time.Now(),
		Stage:     stage,
		Kind:      kind,
		Severity:  kind.DefaultSeverity(),
		Subject:   subject,
		Detail:    detail,
		Values:    values,
	}
}

// Stage identifies the pipeline stage that reported an event.
type Stage uint8

const (
	StageModel Stage = iota
	StageTables
	StageResolve
	StageEmit
)

var stageNames = []string{"MODEL", "TABLES", "RESOLVE", "EMIT"}

// String returns the stage name.
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "UNKNOWN"
}

// ParseStage parses a stage name case-insensitively.
func ParseStage(s string) (Stage, error) {
	for i, n := range stageNames {
		if strings.EqualFold(s, n) {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("invalid stage: %s (valid: model, tables, resolve, emit)", s)
}

// Kind classifies a diagnostic.
type Kind uint8

const (
	// KindEmptyGroupKey: a member with no group and no block default is
	// left out of the grouped output.
	KindEmptyGroupKey Kind = iota
	// KindAmbiguousGroupType: a group carries more than one storage hint.
	KindAmbiguousGroupType
	// KindUnknownStorageHint: a hint code has no storage mapping.
	KindUnknownStorageHint
	// KindUnknownPrimitiveType: a type token has no mapping and passes
	// through verbatim.
	KindUnknownPrimitiveType
	// KindUntypedParameter: a parameter without a usable type and without
	// indirection becomes uintptr.
	KindUntypedParameter
	// KindDuplicateMember: two members of a group translate to the same name.
	KindDuplicateMember
	// KindDuplicateConstant: a flat-table name was already taken.
	KindDuplicateConstant
	// KindDuplicateCommand: a command is declared twice in the registry, or
	// appears in both the core and the extension sets.
	KindDuplicateCommand
	// KindIdentifierCollision: a generated identifier was already declared.
	KindIdentifierCollision
	// KindRenamedType: a group type was renamed to avoid a wrapper name.
	KindRenamedType
	// KindInvalidIdentifier: a translated name is not a Go identifier and
	// the declaration is dropped.
	KindInvalidIdentifier
	// KindVendorWord: a registry vendor tag was added to the word table.
	KindVendorWord
	// KindMissingCommand: a feature or extension requires a command the
	// registry never declares.
	KindMissingCommand
)

var kindNames = []string{
	"EmptyGroupKey",
	"AmbiguousGroupType",
	"UnknownStorageHint",
	"UnknownPrimitiveType",
	"UntypedParameter",
	"DuplicateMember",
	"DuplicateConstant",
	"DuplicateCommand",
	"IdentifierCollision",
	"RenamedType",
	"InvalidIdentifier",
	"VendorWord",
	"MissingCommand",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(s, n) {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("invalid kind: %s", s)
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// DefaultSeverity returns the severity NewEvent assigns to k. Expected
// consequences of registry layout are Info; everything that changes or
// guesses at the output is a Warning.
func (k Kind) DefaultSeverity() Severity {
	switch k {
	case KindDuplicateCommand, KindRenamedType, KindEmptyGroupKey, KindVendorWord:
		return SeverityInfo
	default:
		return SeverityWarning
	}
}

// Severity grades an event.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses "info" or "warn"/"warning".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(s) {
	case "info":
		return SeverityInfo, nil
	case "warn", "warning":
		return SeverityWarning, nil
	default:
		return 0, fmt.Errorf("invalid severity: %s (valid: info, warn)", s)
	}
}

// ErrUnknownEvent is returned when a decoded event carries a stage, kind or
// severity this version of glad-gen does not know.
var ErrUnknownEvent = errors.New("unknown diagnostic event")

// Validate reports whether the stage, kind and severity are known values.
func (e Event) Validate() error {
	switch {
	case int(e.Stage) >= len(stageNames):
		return fmt.Errorf("%w: stage %d", ErrUnknownEvent, e.Stage)
	case int(e.Kind) >= len(kindNames):
		return fmt.Errorf("%w: kind %d", ErrUnknownEvent, e.Kind)
	case e.Severity > SeverityWarning:
		return fmt.Errorf("%w: severity %d", ErrUnknownEvent, e.Severity)
	}
	return nil
}
