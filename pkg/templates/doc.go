// Package templates reads the command templates scripts are assembled from.
//
// Templates are plain text files laid out as
//
//	<device>/<section>/<option>.txt   one command (block) per option
//	common/<name>.txt                 mode boilerplate, password, save and
//	                                  the composite templates of merge pairs
//
// and may contain placeholder tokens written <NAME>. A default tree is
// compiled into the binary; a directory on disk can replace it.
package templates
