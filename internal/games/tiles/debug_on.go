//go:build tilesdebug

package tiles

const debugChecks = true
