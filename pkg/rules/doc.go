// Package rules defines the rule contract used by form fields and the
// evaluator that runs an ordered rule list against a single string value.
//
// A Rule is a plain function from the current input value to a Result. A
// Result has exactly two shapes: Pass, the success marker, and Fail, which
// carries the user-facing message. Any string, including the empty one, is a
// failure message.
//
// # Evaluation
//
// Evaluate walks the rules in declared order and stops at the first failure:
//
//	verdict, err := rules.Evaluate(value, []rules.Rule{
//	    rules.Required("Email is required"),
//	    rules.Email(""),
//	})
//	if err != nil {
//	    // a rule returned an unrecognized result; this is a bug in the rule
//	}
//	if !verdict.Valid {
//	    fmt.Println(verdict.Message)
//	}
//
// Evaluate never recovers from a panicking rule. A nil rule or a nil Result is
// reported as a *RuleFault so that malformed rules surface instead of silently
// passing.
//
// # Builtin rules
//
// The package ships constructors for the common cases: Required, MinLen,
// MaxLen, Len, Email, URL, Phone, Alpha, Alphanumeric, Numeric, Matches, OneOf
// and UUID. Check adapts any predicate. Every constructor accepts the failure
// message; an empty message selects a default English text.
package rules
