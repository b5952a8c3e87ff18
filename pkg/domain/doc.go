/*
Package domain contains the SWML instruction catalogue.

Every instruction a section can hold is a distinct Go type implementing the
sealed Instruction interface. Each type renders as a single-key object whose
key is the instruction's Verb and whose value is its configuration:

	{ "play": { "url": "say:Hello" } }

Verbs that accept a bare-string form ("answer", "hangup", "record", ...) are
expressed with the Shorthand type.

# Optional fields

Optional scalar fields are pointers. A nil pointer is omitted from the
rendered document; a pointer to a zero value is rendered as that value, so
"beep: false" survives serialization. Use Ptr to take the address of a
literal:

	domain.Record{Beep: domain.Ptr(false)}

# Branching

Cond and Switch hold nested instruction lists and may be nested to any depth.
The same two types form the Result payload shared by Request, Connect, Prompt,
SIPRefer and AIPrompt.

# Pass-through payloads

Fields typed Map (and the few typed any) are forwarded to the runtime
verbatim; this package does not interpret them.
*/
package domain
