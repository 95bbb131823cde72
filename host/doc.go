// Package host implements the environment services the container bridge
// consumes by contract but never reimplements: numeric-range iteration,
// multi-value bundles for transpiled call sites, module-path resolution, and
// compile-timestamp retrieval. The bridge core depends on none of this; the
// dependency runs strictly the other way.
package host
