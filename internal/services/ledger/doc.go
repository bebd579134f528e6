// Package ledger records tuition payments and other cash movements.
//
// The transaction log is append-only. The balance is never stored: every
// query folds the full log, so it always matches the recorded entries.
// Tuition payments raise the student's amount paid and append an inflow
// tagged with the student id; they can never push the amount paid above the
// class fee.
package ledger
