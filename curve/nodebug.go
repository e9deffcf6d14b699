//go:build !curvedebug

package curve

const debugOrdering = false
