//go:build debug

package core

const debugChecks = true
