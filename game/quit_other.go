//go:build !js

package game

const quitSupported = true
