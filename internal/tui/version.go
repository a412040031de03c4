package tui

// AppVersion is set at build time.
var AppVersion = "0"
