// Package order implements the Order aggregate and its lifecycle.
//
// An order moves PENDING_CONFIRMATION -> PREPARING, then either to
// REQUESTING_DELIVERY (open to claims) or straight to DELIVERING when the
// merchant names a courier. Claiming moves REQUESTING_DELIVERY to DELIVERING,
// the assigned courier confirms DELIVERED, and the customer's review moves
// it to REVIEWED (reviewing again overwrites the review).
//
// Ownership is checked by the aggregate itself: only the order's merchant
// accepts and requests delivery, only the assigned courier confirms, only
// the customer reviews. Failures are typed errors from internal/pkg/errs.
package order
