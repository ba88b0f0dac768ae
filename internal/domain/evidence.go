package domain

// Evidence is a partial assignment of observed values to node names.
// A nil or empty Evidence means nothing was observed.
type Evidence map[string]Value

// Clone returns an independent copy of the evidence.
func (e Evidence) Clone() Evidence {
	if e == nil {
		return nil
	}
	out := make(Evidence, len(e))
	for name, v := range e {
		out[name] = v
	}
	return out
}
