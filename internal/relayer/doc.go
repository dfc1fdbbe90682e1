// Package relayer implements the fhevm.Instance contract on top of the FHE
// relayer's REST API, plus a fully in-process mock used for local chains and
// tests.
//
// The [Factory] decides per chain which implementation to hand out: chains
// listed in the instance config's MockChains map get a [MockInstance] backed
// by an in-memory ciphertext [Registry]; every other chain gets an HTTP
// instance that delegates encryption and decryption to the relayer endpoints
// under /v1/.
package relayer
