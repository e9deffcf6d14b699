//go:build curvedebug

package curve

// Built with -tags curvedebug: builders and interpolators panic on points
// whose x decreases.
const debugOrdering = true
