// Package market resolves item quantities against live order books.
//
// A Book is an immutable snapshot of one side of the market for one
// type, sorted ascending by unit price. Fill walks the book greedily
// in price order and reports liquidity as part of the result rather
// than as an error: callers always get a number, degraded and flagged
// when market depth runs out.
package market
