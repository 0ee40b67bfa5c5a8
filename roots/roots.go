// Package roots implements the Durand-Kerner (Weierstrass) method, which approximates
// all the complex roots of a polynomial simultaneously.
package roots
