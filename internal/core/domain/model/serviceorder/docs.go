// Package serviceorder provides domain entities and business logic for
// service booking management. It implements the ServiceOrder aggregate root
// with lifecycle management, a scheduled work window, and a nested expense
// approval workflow.
//
// The package includes:
//   - ServiceOrder: The aggregate root owning frozen items, the pricing
//     snapshot, the work window, and the attached expenses
//   - Item: A frozen service line (variant, estimated hours, hourly rate)
//   - Expense: A reimbursement claim decided exactly once
//   - Status/Event: A state machine with an explicit transition table
//
// Key business rules:
//   - Status follows Pending -> Confirmed -> Scheduled -> InProgress ->
//     Completed -> Invoiced, with OnHold toggling against InProgress and
//     Cancelled reachable from every non-terminal status
//   - Completed is not terminal; a completed booking stays open for expense
//     submission until invoiced
//   - Invoice is the single point where the pricing snapshot is recomputed,
//     from the sum of Approved expenses, and requires every expense decided
//   - Hold and resume are strict transitions, never idempotent no-ops
package serviceorder
