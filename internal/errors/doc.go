// Package errors provides the structured error type used across rpg-equipment.
//
// Every error carries a Code that survives wrapping, so a NotFound raised by a
// repository is still a NotFound when it reaches the gRPC handler:
//
//	err := errors.NotFoundf("item prototype %s not found", id).
//	    WithMeta("item_prototype_id", id.String())
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load item prototype")
//	}
//
//	if errors.IsNotFound(err) {
//	    // ...
//	}
//
// # Layer guidelines
//
// Repositories return NotFound / AlreadyExists / InvalidArgument and wrap
// storage failures (which become Internal). Services wrap with business
// context and never change the code. Handlers convert with ToGRPCError.
package errors
