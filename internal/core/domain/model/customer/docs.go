// Package customer contains the Customer aggregate.
//
// A customer is the party orders are created for. The aggregate carries the
// contact profile (name and email) and guards its own invariants; orders
// reference customers by identifier only.
package customer
