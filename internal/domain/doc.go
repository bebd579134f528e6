// Package domain defines the school's data model and the contracts between
// its layers.
//
// Plain types live in the types subpackage and store/service interfaces in
// the interfaces subpackage; both are re-exported here as aliases so callers
// import a single package. Sentinel errors are declared in this package.
package domain
