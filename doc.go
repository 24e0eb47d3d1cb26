// doc.go — package documentation for xgx-stderror
//
// # Kinds and instances
//
// A Kind names a category of error and carries its class-level defaults.
// Kinds form a tree rooted at Standard; Extend adds a sub-kind:
//
//	var Gone = stderror.Safe(stderror.Standard.Extend("GoneError"))
//
//	err := Gone.New("order 42 was archived").
//	           Suggest("search the archive").
//	           SetCode("gone")
//
// Every instance carries the name of its own kind (err.Name() == "GoneError"),
// an optional message, an empty-by-default Code, ordered suggestions, a trace
// captured at construction and a safe flag.
//
// # Safety
//
// Safe marks a kind so that its instances start out safe to show a client.
// The flag is read once, when an instance is built, resolving through the
// parent chain to the nearest kind with an explicit setting. Kinds never
// marked anywhere in their chain start unsafe.
//
//	+------------------+------+
//	| Kind             | Safe |
//	+------------------+------+
//	| Standard         | no   |
//	| Unhandled        | yes  |
//	| NotFound         | yes  |
//	| NotAcceptable    | yes  |
//	| NotAuthorized    | yes  |
//	| NotImplemented   | no   |
//	+------------------+------+
//
// MarkSafe on an instance flips only that instance. Deciding what a client sees
// for an unsafe error belongs to the presentation layer, not to this package.
//
// # Traces and String
//
// String returns the trace, not the message. Error returns "<Name>: <message>".
//
// Traces are structured (resolved frames starting at the code that called New
// or Create) when runtime.Callers works, which the package probes once at init.
// Otherwise they are a runtime/debug.Stack snapshot that still includes the
// constructor frames. Configure and LoadConfig can force either strategy.
//
// # Wire form
//
// Serializable attaches a Codec to a kind; Marshal picks it up through the
// parent chain. All built-in kinds use JSON; YAML is also provided. The Payload
// carries name, message, code, suggestions and the safe flag, never the trace.
//
// # Interop
//
//   - *Error implements error, fmt.Formatter, json.Marshaler and slog.LogValuer.
//   - Kind.Wrap and From keep causes reachable for errors.Is / errors.As.
//   - KindOf, IsKind, IsSafe, CodeOf and HasCode traverse with errors.As.
//
// Instances do no locking; serialize concurrent SetCode/MarkSafe/Suggest calls.
package stderror
