/*
Package polyroots provides arbitrary precision decimal complex arithmetic and a
Durand-Kerner polynomial root solver built on it.

The sine, cosine and arctangent are evaluated from truncated Taylor series under a
single precision policy (see the utils/bignum package) and the solver (see the roots
package) finds all the complex roots of a polynomial simultaneously.
*/
package polyroots
