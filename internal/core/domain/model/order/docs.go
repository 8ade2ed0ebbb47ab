// Package order contains the Order aggregate and its supporting value objects.
//
// The aggregate root is Order, which owns the customer details, the menu
// selections snapshotted at submit time (Line), the total amount fixed at
// creation, and the fulfillment Status. Status implements the order state
// machine; all mutation goes through Order.ChangeStatus so illegal
// transitions are rejected at the domain boundary.
//
// Orders are created with NewOrder (new submissions, creation-time invariants
// enforced) or RestoreOrder (rehydration from persistence). Direct struct
// construction is detected and rejected by Validate.
package order
