// Package curriculum configures classes and the subjects taught in them.
//
// Configuration is append-only: classes and subjects can be added but never
// renamed or removed. Names are unique ignoring case, classes across the
// school and subjects within their class.
package curriculum
