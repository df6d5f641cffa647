// Package sim provides the fixed-step simulation engine.
//
//   - [State]: state vector
//   - [System]: ODE system interface (dX/dt = f(X, t))
//   - [Integrator]: single-step advance; [Resetter] for schemes with memory
//   - [Metric], [Observer]: per-point hooks during a run
//   - [Intervention]: state mutation at step boundaries
//   - [Simulator]: orchestrates a run, pre-sizing output trajectories
//
// Runs are single-threaded and deterministic: identical inputs produce
// bit-identical trajectories. Cancellation is via context only.
package sim
