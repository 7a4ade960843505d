// Package interest computes simple interest owed on overdue debit vouchers.
//
// A calculation is a forward-only pipeline over one party's vouchers:
//
//	Normalize -> Allocate -> Accrue -> Aggregate
//
// Normalize validates entries and splits them into date-ordered debits and
// credits. Allocate applies each credit FIFO to debits dated strictly before
// it. Accrue splits every debit's outstanding principal into constant-principal
// periods running from its due date to each payment and, if still unpaid, to
// the as-of date. Aggregate totals the settlements into a Result.
//
// Every stage is a pure function of its inputs; no state survives a call.
package interest
