// Package sitefile reads the tier description and writes the Jekyll
// configuration of the platform-support site.
//
// ConfigFile encodes the whole document before touching the destination, so
// a failed encoding leaves any previous output in place.
package sitefile
