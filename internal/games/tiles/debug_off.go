//go:build !tilesdebug

package tiles

const debugChecks = false
