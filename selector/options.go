package selector

// Option configures a ModelSelector during construction.
type Option func(*options)

type options struct {
	problemType    ProblemType
	hasProblemType bool
}

// WithProblemType overrides problem-type inference with the given value.
//
// The value is stored verbatim and not validated: a value outside the known
// enum makes SuggestModels return an empty list instead of failing. Callers
// wanting fail-fast behavior can check ProblemType.Valid() up front.
func WithProblemType(pt ProblemType) Option {
	return func(o *options) {
		o.problemType = pt
		o.hasProblemType = true
	}
}
