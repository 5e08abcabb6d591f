// Package dispatch turns one day of hourly energy-balance records into the
// stacked bands of a dispatch chart. The stacking arithmetic lives here,
// separate from any rendering backend, so the additive invariants of the
// running totals can be tested directly.
package dispatch
