//go:build !debug

package core

const debugChecks = false
