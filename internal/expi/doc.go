// Package expi evaluates the complex exponential of a pure imaginary argument,
// e^(-ix) = cos(x) - i*sin(x). Non-finite angles propagate NaN through the
// trigonometric functions and are never reported as failures.
package expi
