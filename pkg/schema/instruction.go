package schema

import (
	"fmt"
	"slices"

	"github.com/aretw0/swml/pkg/codec"
	"github.com/aretw0/swml/pkg/domain"
)

// InstructionType validates a single SWML instruction: a bare shorthand
// string or a mapping with exactly one known verb key.
type InstructionType struct {
	// verbs restricts the accepted verbs; nil accepts the whole catalogue.
	verbs []domain.Verb
	name  string
}

func (t *InstructionType) Name() string { return t.name }

func (t *InstructionType) allows(v domain.Verb) bool {
	return t.verbs == nil || slices.Contains(t.verbs, v)
}

func (t *InstructionType) Validate(value any) error {
	if s, ok := value.(string); ok {
		switch {
		case !t.allows(domain.Verb(s)):
			return fmt.Errorf("%q is not allowed here", s)
		case domain.Shorthand(s).Valid():
			return nil
		case domain.Verb(s).Known():
			return fmt.Errorf("%q has no shorthand form", s)
		default:
			return fmt.Errorf("unknown instruction %q", s)
		}
	}

	entries, ok := codec.Entries(value)
	if !ok {
		return fmt.Errorf("expected %s, got %T", t.name, value)
	}
	if len(entries) != 1 {
		return fmt.Errorf("instruction must have exactly one key, got %d", len(entries))
	}

	key, body := entries[0].Key, entries[0].Value
	verb := domain.Verb(key)
	bodyType, known := catalogue()[verb]
	if !known {
		return aggregate([]error{&ValidationError{Key: key, Reason: "unknown instruction"}})
	}
	if !t.allows(verb) {
		return aggregate([]error{&ValidationError{Key: key, Reason: "not allowed here"}})
	}
	if err := bodyType.Validate(body); err != nil {
		return aggregate(nest(key, body, err))
	}
	return nil
}

// Instruction accepts any instruction of the catalogue.
func Instruction() Type { return &InstructionType{name: "instruction"} }

// Instructions accepts a list of instructions.
func Instructions() Type { return Slice(Instruction()) }

// Branch accepts a cond or switch instruction.
func Branch() Type {
	return &InstructionType{name: "branch", verbs: []domain.Verb{domain.VerbCond, domain.VerbSwitch}}
}

// ResultType validates the continuation of request, connect, prompt,
// sip_refer and ai prompts: one branch or a list of branches.
type ResultType struct {
	OneOfType
}

func (t *ResultType) Name() string { return "result" }

// Result accepts one branch or a list of branches.
func Result() Type {
	return &ResultType{OneOfType{types: []Type{Branch(), Slice(Branch())}}}
}

// ShorthandAllowed reports whether verb may be written as a bare string.
func ShorthandAllowed(verb domain.Verb) bool {
	return domain.Shorthand(verb).Valid()
}
