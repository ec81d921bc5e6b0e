// Package version holds the build version string.
package version

// Version is the current shutterplan version.
const Version = "0.3.0"
