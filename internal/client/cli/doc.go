// Package cli provides the interactive safety-inspection command-line client.
//
// It wires configuration, the local reference-data cache, the REST façade,
// and the screen controller into a terminal loop. Each iteration renders
// the controller's active screen, reads one command, and dispatches it as
// a controller transition.
//
// Key flows:
//   - Login with name and phone-suffix, routed by role
//   - Checklist completion with signature capture and submission
//   - Worker record list with edit, resubmit, and cancel
//   - Admin/sub-admin record review with approve, reject, and export
//   - Master-admin management of sub-admins and reference data
//
// The loop is started via App.Run(ctx), which blocks until the user exits.
package cli
