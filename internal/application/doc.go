// Package application provides the program driver. It wires the evaluator and
// logger together, prints the greeting, and runs the compute-and-print
// sequence inside a failure boundary so the main package only has to map the
// outcome to an exit status.
package application
