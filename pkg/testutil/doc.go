// Package testutil provides fixtures shared by gencisco's package tests:
// source files on disk or in memory, and in-memory template trees.
//
// It imports no gencisco package so any package's internal tests can use it.
package testutil
