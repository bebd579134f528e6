// Package enrollment enrolls students into classes and serves the student
// directory. Students are never removed; listings follow enrollment order.
package enrollment
