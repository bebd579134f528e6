// Package tally holds the aggregation formulas of the school: grade means,
// the coefficient-weighted general average and the cash ledger balance.
//
// Functions here are pure. They take domain values and never touch a store,
// so services can call them on whatever snapshot they loaded.
package tally
