// Package generator runs one conversion: it loads a device configuration,
// selects and assembles the templates it needs, substitutes the
// configuration values and writes the resulting IOS script.
//
// Nothing is written unless every step succeeded.
package generator
