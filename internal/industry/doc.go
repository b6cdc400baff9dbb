// Package industry turns recipes into profit figures.
//
// A recipe evaluation buys every ingredient from the sell-side order
// book, sells one unit of the product at best ask, and reports the
// difference. Planetary production additionally charges tier-based
// import and export customs fees that are independent of live prices.
package industry
