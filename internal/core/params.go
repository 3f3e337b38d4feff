package core

// Parameter describes a single read-only value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Value string
}

// ParameterSnapshot captures the current values exposed by a sim for display.
type ParameterSnapshot struct {
	Params []Parameter
}

// ParameterProvider is implemented by sims that expose display parameters.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
