package domain

// Cond runs Then when the When expression holds and Else otherwise.
// Both branches always render, an empty branch as [].
type Cond struct {
	When string
	Then []Instruction
	Else []Instruction
}

type condBody struct {
	When string        `json:"when" yaml:"when"`
	Then []Instruction `json:"then" yaml:"then"`
	Else []Instruction `json:"else" yaml:"else"`
}

func (c Cond) body() condBody {
	return condBody{When: c.When, Then: orEmpty(c.Then), Else: orEmpty(c.Else)}
}

func (Cond) Verb() Verb    { return VerbCond }
func (Cond) instruction() {}

func (c Cond) MarshalJSON() ([]byte, error) { return encodeJSON(tagged(VerbCond, c.body())) }
func (c Cond) MarshalYAML() (any, error)    { return tagged(VerbCond, c.body()), nil }

// Case is one labelled branch of a Switch.
type Case struct {
	Label   string
	Actions []Instruction
}

// Switch dispatches on the value of Variable. Cases render as a mapping in
// the order they were declared. A nil Default is omitted; an empty one
// renders as [].
type Switch struct {
	Variable string
	Cases    []Case
	Default  []Instruction
}

type switchBody struct {
	Variable string                     `json:"variable" yaml:"variable"`
	Case     *OrderedMap[[]Instruction] `json:"case,omitempty" yaml:"case,omitempty"`
	Default  *[]Instruction             `json:"default,omitempty" yaml:"default,omitempty"`
}

func (s Switch) body() switchBody {
	b := switchBody{Variable: s.Variable, Default: optionalList(s.Default)}
	if len(s.Cases) > 0 {
		cases := NewOrderedMap[[]Instruction]()
		for _, c := range s.Cases {
			cases.Set(c.Label, orEmpty(c.Actions))
		}
		b.Case = &cases
	}
	return b
}

func (Switch) Verb() Verb    { return VerbSwitch }
func (Switch) instruction() {}

func (s Switch) MarshalJSON() ([]byte, error) { return encodeJSON(tagged(VerbSwitch, s.body())) }
func (s Switch) MarshalYAML() (any, error)    { return tagged(VerbSwitch, s.body()), nil }

// Execute calls the section Dest as a subroutine and continues with OnReturn
// once it returns.
type Execute struct {
	Dest     string
	Params   Map
	Meta     Map
	OnReturn []Instruction
}

type executeBody struct {
	Dest     string         `json:"dest" yaml:"dest"`
	Params   Map            `json:"params,omitzero" yaml:"params,omitempty"`
	Meta     Map            `json:"meta,omitzero" yaml:"meta,omitempty"`
	OnReturn *[]Instruction `json:"on_return,omitempty" yaml:"on_return,omitempty"`
}

func (e Execute) body() executeBody {
	return executeBody{Dest: e.Dest, Params: e.Params, Meta: e.Meta, OnReturn: optionalList(e.OnReturn)}
}

func (Execute) Verb() Verb    { return VerbExecute }
func (Execute) instruction() {}

func (e Execute) MarshalJSON() ([]byte, error) { return encodeJSON(tagged(VerbExecute, e.body())) }
func (e Execute) MarshalYAML() (any, error)    { return tagged(VerbExecute, e.body()), nil }

// Transfer hands the call to the section or URL Dest without returning.
type Transfer struct {
	Dest   string `json:"dest" yaml:"dest"`
	Params Map    `json:"params,omitzero" yaml:"params,omitempty"`
	Meta   Map    `json:"meta,omitzero" yaml:"meta,omitempty"`
}

func (Transfer) Verb() Verb    { return VerbTransfer }
func (Transfer) instruction() {}

func (t Transfer) MarshalJSON() ([]byte, error) {
	type body Transfer
	return encodeJSON(tagged(VerbTransfer, body(t)))
}

func (t Transfer) MarshalYAML() (any, error) {
	type body Transfer
	return tagged(VerbTransfer, body(t)), nil
}

// Goto jumps to a label in the current section, at most Max times.
type Goto struct {
	Label string  `json:"label" yaml:"label"`
	When  *string `json:"when,omitempty" yaml:"when,omitempty"`
	Max   *int    `json:"max,omitempty" yaml:"max,omitempty"`
	Meta  Map     `json:"meta,omitzero" yaml:"meta,omitempty"`
}

func (Goto) Verb() Verb    { return VerbGoto }
func (Goto) instruction() {}

func (g Goto) MarshalJSON() ([]byte, error) {
	type body Goto
	return encodeJSON(tagged(VerbGoto, body(g)))
}

func (g Goto) MarshalYAML() (any, error) {
	type body Goto
	return tagged(VerbGoto, body(g)), nil
}

// Return leaves the current section with Value, usually a string or a Map.
// Use ShortReturn to return without a value.
type Return struct {
	Value any
}

func (Return) Verb() Verb    { return VerbReturn }
func (Return) instruction() {}

func (r Return) MarshalJSON() ([]byte, error) { return encodeJSON(tagged(VerbReturn, r.Value)) }
func (r Return) MarshalYAML() (any, error)    { return tagged(VerbReturn, r.Value), nil }

// Set assigns script variables.
type Set struct {
	Vars Map
}

func (Set) Verb() Verb    { return VerbSet }
func (Set) instruction() {}

func (s Set) MarshalJSON() ([]byte, error) { return encodeJSON(tagged(VerbSet, openBag(s.Vars))) }
func (s Set) MarshalYAML() (any, error)    { return tagged(VerbSet, openBag(s.Vars)), nil }

// Unset removes script variables.
type Unset struct {
	Vars StringOrList `json:"vars" yaml:"vars"`
}

func (Unset) Verb() Verb    { return VerbUnset }
func (Unset) instruction() {}

func (u Unset) MarshalJSON() ([]byte, error) {
	type body Unset
	return encodeJSON(tagged(VerbUnset, body(u)))
}

func (u Unset) MarshalYAML() (any, error) {
	type body Unset
	return tagged(VerbUnset, body(u)), nil
}

// Request performs an HTTP call from the runtime. Body is a string or a Map.
type Request struct {
	URL            string        `json:"url" yaml:"url"`
	Method         RequestMethod `json:"method" yaml:"method"`
	Headers        Map           `json:"headers,omitzero" yaml:"headers,omitempty"`
	Body           any           `json:"body,omitempty" yaml:"body,omitempty"`
	Timeout        *float64      `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	ConnectTimeout *float64      `json:"connect_timeout,omitempty" yaml:"connect_timeout,omitempty"`
	Result         *Result       `json:"result,omitempty" yaml:"result,omitempty"`
	SaveVariables  *bool         `json:"save_variables,omitempty" yaml:"save_variables,omitempty"`
}

func (Request) Verb() Verb    { return VerbRequest }
func (Request) instruction() {}

func (r Request) MarshalJSON() ([]byte, error) {
	type body Request
	return encodeJSON(tagged(VerbRequest, body(r)))
}

func (r Request) MarshalYAML() (any, error) {
	type body Request
	return tagged(VerbRequest, body(r)), nil
}
