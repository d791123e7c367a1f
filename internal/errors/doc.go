// Package errors provides structured errors for the tactics-grid service.
//
// Errors carry a code, a user-facing message, an optional cause and
// metadata. They convert to and from gRPC status errors, with metadata
// travelling as a status detail.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("map not found")
//	err := errors.InvalidArgumentf("invalid width: %d", width)
//
// Adding metadata:
//
//	err := errors.NotFound("map not found").
//	    ForMap(mapID)
//
// Wrapping errors:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save map")
//	}
//
// Changing error semantics:
//
//	if err := json.Unmarshal(raw, &v); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeDataLoss, "map snapshot is not valid JSON")
//	}
//
// # Validation Errors
//
// Per-field problems are collected with a builder and returned as a single
// InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidatePositive("width", input.Width, vb)
//	errors.ValidateEnum("grid_type", input.GridType, []string{"square", "hex"}, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// GetFieldErrors returns the collected messages keyed by field path.
//
// # gRPC Integration
//
// Handlers return errors.ToGRPCError(err); clients recover the code, message
// and metadata with errors.FromGRPCError(err).
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound for missing maps
//   - Wrap storage errors with context
//
// Orchestrator layer:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap repository errors with business context
//
// Handler layer:
//   - Convert errors to gRPC format
package errors
