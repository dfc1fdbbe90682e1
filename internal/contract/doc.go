// Package contract adapts the on-chain FHETalk messaging contract to the
// rest of the client. It packs and unpacks call data with go-ethereum's ABI
// machinery, serves reads through eth_call and writes through signed
// transactions.
package contract
