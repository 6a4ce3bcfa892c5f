// Package format holds the enumerations shared between strview packages.
package format
