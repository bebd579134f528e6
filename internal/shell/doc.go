// Package shell is the interactive text menu of schoolbook.
//
// It prompts for input, parses it into the typed values the registry
// services take, re-prompts until input is usable, and prints results and
// errors. It holds no school state of its own.
//
// Menus
//
//	Main      1 Students  2 Bursar  3 Quit
//	Students  configure classes and subjects, enroll, list, enter and show grades
//	Bursar    student payments, cash in and out, transaction list, balance
//
// End of input at any prompt ends the session without error.
package shell
