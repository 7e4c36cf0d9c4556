//go:build js

package game

// Browser builds cannot end their own process.
const quitSupported = false
