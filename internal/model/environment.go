package model

// Environment names used across config and server wiring.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Valid reports whether e is a known environment.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentDevelopment, EnvironmentProduction:
		return true
	}
	return false
}
