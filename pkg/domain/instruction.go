package domain

import "slices"

// Verb is the discriminant of an instruction: the single top-level key of its
// rendered object, or the bare string of its shorthand form.
type Verb string

// Control-flow verbs.
const (
	VerbCond     Verb = "cond"
	VerbSwitch   Verb = "switch"
	VerbExecute  Verb = "execute"
	VerbTransfer Verb = "transfer"
	VerbGoto     Verb = "goto"
	VerbReturn   Verb = "return"
	VerbSet      Verb = "set"
	VerbUnset    Verb = "unset"
	VerbRequest  Verb = "request"
)

// Call-action verbs.
const (
	VerbAnswer         Verb = "answer"
	VerbHangup         Verb = "hangup"
	VerbConnect        Verb = "connect"
	VerbPlay           Verb = "play"
	VerbPrompt         Verb = "prompt"
	VerbRecord         Verb = "record"
	VerbRecordCall     Verb = "record_call"
	VerbStopRecordCall Verb = "stop_record_call"
	VerbSendDigits     Verb = "send_digits"
	VerbSendFax        Verb = "send_fax"
	VerbReceiveFax     Verb = "receive_fax"
	VerbSendSMS        Verb = "send_sms"
	VerbSIPRefer       Verb = "sip_refer"
	VerbTap            Verb = "tap"
	VerbStopTap        Verb = "stop_tap"
	VerbDenoise        Verb = "denoise"
	VerbStopDenoise    Verb = "stop_denoise"
	VerbJoinRoom       Verb = "join_room"
)

// VerbAI configures a voice AI agent on the call.
const VerbAI Verb = "ai"

// Verbs returns every verb of the catalogue in a stable order.
func Verbs() []Verb {
	return []Verb{
		VerbCond, VerbSwitch, VerbExecute, VerbTransfer, VerbGoto, VerbReturn,
		VerbSet, VerbUnset, VerbRequest,
		VerbAnswer, VerbHangup, VerbConnect, VerbPlay, VerbPrompt, VerbRecord,
		VerbRecordCall, VerbStopRecordCall, VerbSendDigits, VerbSendFax,
		VerbReceiveFax, VerbSendSMS, VerbSIPRefer, VerbTap, VerbStopTap,
		VerbDenoise, VerbStopDenoise, VerbJoinRoom,
		VerbAI,
	}
}

// Known reports whether v is part of the catalogue.
func (v Verb) Known() bool { return slices.Contains(Verbs(), v) }

// Instruction is a single step of a section.
// The set of implementations is closed: only the types in this package
// satisfy it.
type Instruction interface {
	// Verb returns the instruction's discriminant key.
	Verb() Verb
	instruction()
}

// Shorthand is the bare-string form of an instruction. It invokes the verb
// with its defaults, e.g. "answer" or "hangup".
type Shorthand string

const (
	ShortAnswer         Shorthand = "answer"
	ShortHangup         Shorthand = "hangup"
	ShortDenoise        Shorthand = "denoise"
	ShortStopDenoise    Shorthand = "stop_denoise"
	ShortRecord         Shorthand = "record"
	ShortReceiveFax     Shorthand = "receive_fax"
	ShortStopRecordCall Shorthand = "stop_record_call"
	ShortStopTap        Shorthand = "stop_tap"
	ShortReturn         Shorthand = "return"
)

// Shorthands returns every verb that accepts the bare-string form.
func Shorthands() []Shorthand {
	return []Shorthand{
		ShortAnswer, ShortHangup, ShortDenoise, ShortStopDenoise, ShortRecord,
		ShortReceiveFax, ShortStopRecordCall, ShortStopTap, ShortReturn,
	}
}

func (s Shorthand) Verb() Verb { return Verb(s) }
func (Shorthand) instruction() {}

// Valid reports whether s is one of the accepted bare-string forms.
func (s Shorthand) Valid() bool { return slices.Contains(Shorthands(), s) }

// Map is an open key/value payload forwarded to the runtime uninterpreted.
// As an optional field a nil Map is omitted and an empty one renders as {}.
type Map map[string]any

// IsZero reports whether m is unset.
func (m Map) IsZero() bool { return m == nil }

// Ptr returns a pointer to v. It is the usual way to set optional fields:
//
//	domain.Play{Volume: domain.Ptr(-4.0)}
func Ptr[T any](v T) *T {
	return &v
}
