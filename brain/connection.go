package brain

import "fmt"

// Connection is a single weight/bias parameter feeding one downstream neuron.
// Connections are never mutated after a Network is built.
type Connection struct {
	Weight float64
	Bias   float64
}

// String returns a string representation of the Connection.
func (c Connection) String() string {
	return fmt.Sprintf("Connection(Weight: %.3f, Bias: %.3f)", c.Weight, c.Bias)
}

// Contribution returns the amount this connection adds to a neuron's
// accumulator for the given input activation.
func (c Connection) Contribution(input float64) float64 {
	return input*c.Weight + c.Bias
}
