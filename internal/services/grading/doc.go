// Package grading records student grades and computes averages.
//
// Grades are kept per subject as a list of values in [0,100]. Recording a
// batch for a subject replaces the previous list for that subject. Values out
// of range are dropped from the batch and reported back, they never fail the
// call.
package grading
