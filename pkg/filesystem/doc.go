// Package filesystem holds the file operations gencisco performs on the
// destination side of a run.
//
// Everything goes through an afero.Fs so commands run against the OS
// filesystem while tests use afero.NewMemMapFs.
package filesystem
