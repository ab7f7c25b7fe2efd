// Package hash provides content digests and HTTP entity tags for rendered
// widget markup.
package hash
