// Package epi defines the compartmental epidemic model under study.
//
// The model tracks Susceptible and Infected counts; Recovered is implied by
// population conservation. Core pieces:
//
//   - [Params]: R0, population size, and recovery rate, threaded explicitly
//     through every function (no package-level state)
//   - [Params.DSdt], [Params.DIdt]: the two compartment derivatives
//   - [ImpliedRecovered]: geometric-series estimate of the recovered pool at
//     seeding time (precondition R0 > 1)
//   - [SIR]: the [sim.System] adapter integrated by the engine
//
// All arithmetic is pure; validation happens at construction and seeding
// boundaries and fails fast with wrapped sentinel errors.
package epi
