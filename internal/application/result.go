package application

// Operation outcomes. Business failures are carried in a Result, never as a
// raised error that would abort the request pipeline.
const (
	StatusSuccess      = "Success"
	StatusUnsuccessful = "Unsuccessful"
)

// ErrorKind classifies why an operation was unsuccessful.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "NotFound"
	KindUnauthorized ErrorKind = "Unauthorized"
	KindValidation   ErrorKind = "Validation"
	KindStorage      ErrorKind = "Storage"
	KindDispatch     ErrorKind = "Dispatch"
)

// Result is the structured outcome of a lifecycle operation.
// Warning carries a non-fatal dispatch failure: the mutation committed, the
// notification did not go out.
type Result struct {
	Status     string    `json:"status"`
	Message    string    `json:"message"`
	CreationID string    `json:"creationId,omitempty"`
	Kind       ErrorKind `json:"errorKind,omitempty"`
	Error      string    `json:"error,omitempty"`
	Warning    string    `json:"warning,omitempty"`
}

func successResult() Result {
	return Result{Status: StatusSuccess, Message: "Operation Successful"}
}

func failureResult(kind ErrorKind, message string, err error) Result {
	r := Result{Status: StatusUnsuccessful, Message: message, Kind: kind}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}
