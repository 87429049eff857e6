/*
Package swifft is an implementation of the SWIFFT lattice-based compression
function: it maps a 2048-bit input block, optionally signed by a 2048-bit
sign block, to a 1024-bit composable output block under a fixed public key.

SWIFFT's output is additively and multiplicatively composable in the
underlying ring Z/257Z, so hashes of separately-computed blocks can be
combined with Add/Sub/Mul without recomputing the hash of the combination.
*/
package swifft
