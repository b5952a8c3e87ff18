package domain

// Branch is an instruction that can continue a flow conditionally.
// Only Cond and Switch are branches.
type Branch interface {
	Instruction
	branch()
}

func (Cond) branch()   {}
func (Switch) branch() {}

// Result is the conditional continuation carried by request, connect,
// prompt, sip_refer and ai.prompt. It renders either as a single branch or
// as a list of branches.
type Result struct {
	branches []Branch
	list     bool
}

// ResultOf builds a result holding exactly one branch.
func ResultOf(b Branch) *Result {
	return &Result{branches: compact([]Branch{b})}
}

// ResultList builds a result rendered as a list, even with one element.
func ResultList(branches ...Branch) *Result {
	return &Result{branches: compact(branches), list: true}
}

func (r Result) value() any {
	if !r.list && len(r.branches) == 1 {
		return r.branches[0]
	}
	if r.branches == nil {
		return []Branch{}
	}
	return r.branches
}

func (r Result) MarshalJSON() ([]byte, error) { return encodeJSON(r.value()) }
func (r Result) MarshalYAML() (any, error)    { return r.value(), nil }
