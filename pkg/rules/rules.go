package rules

// Result is the outcome of a single rule. Only Pass and Fail produce values.
type Result interface {
	result()
}

type pass struct{}

func (pass) result() {}

// Failure is a failed Result; its value is the message shown to the user.
type Failure string

func (Failure) result() {}

// Pass returns the success marker.
func Pass() Result { return pass{} }

// Fail returns a failure carrying msg. An empty msg is still a failure.
func Fail(msg string) Result { return Failure(msg) }

// Rule maps an input value to Pass or Fail.
type Rule func(value string) Result

// Verdict is the outcome of evaluating a rule list.
type Verdict struct {
	Valid   bool
	Message string
}

// Evaluate runs rs against value in order and returns the first failure.
// Rules after the first failure are not invoked.
func Evaluate(value string, rs []Rule) (Verdict, error) {
	if len(rs) == 0 {
		return Verdict{Valid: true}, nil
	}

	for i, rule := range rs {
		if rule == nil {
			return Verdict{}, &RuleFault{Index: i, Err: ErrNilRule}
		}

		switch res := rule(value).(type) {
		case pass:
			continue
		case Failure:
			return Verdict{Message: string(res)}, nil
		default:
			return Verdict{}, &RuleFault{Index: i, Err: ErrUnsupportedResult}
		}
	}

	return Verdict{Valid: true}, nil
}

// Check adapts a predicate into a Rule failing with msg when ok returns false.
func Check(ok func(value string) bool, msg string) Rule {
	return func(value string) Result {
		if ok(value) {
			return Pass()
		}
		return Fail(msg)
	}
}
