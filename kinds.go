// kinds.go — the built-in taxonomy.
//
// Which kinds are Safe is policy, not an accident:
//
//	+------------------+----------------------+------+
//	| Var              | Name                 | Safe |
//	+------------------+----------------------+------+
//	| Standard         | StandardError        | no   |
//	| Unhandled        | UnhandledError       | yes  |
//	| NotFound         | NotFoundError        | yes  |
//	| NotAcceptable    | NotAcceptableError   | yes  |
//	| NotAuthorized    | NotAuthorizedError   | yes  |
//	| NotImplemented   | NotImplementedError  | no   |
//	+------------------+----------------------+------+
//
// NotImplemented stays unsafe: an implementation gap is an internal detail.
package stderror

var (
	// Standard is the root of the taxonomy.
	Standard = Serializable(defaultRegistry.Define("StandardError", nil), JSON)

	// Unhandled wraps failures nothing else classified.
	Unhandled = Safe(Serializable(Standard.Extend("UnhandledError"), JSON))

	// NotFound reports a missing resource.
	NotFound = Safe(Serializable(Standard.Extend("NotFoundError"), JSON))

	// NotAcceptable reports a request the resource cannot satisfy as asked.
	NotAcceptable = Safe(Serializable(Standard.Extend("NotAcceptableError"), JSON))

	// NotAuthorized reports a caller lacking permission.
	NotAuthorized = Safe(Serializable(Standard.Extend("NotAuthorizedError"), JSON))

	// NotImplemented reports a missing code path. Not safe.
	NotImplemented = Serializable(Standard.Extend("NotImplementedError"), JSON)
)
