package domain

//region EmptyQueryError

type EmptyQueryError struct {
	Msg string
}

func (e *EmptyQueryError) Error() string {
	return e.Msg
}

func (e *EmptyQueryError) Is(target error) bool {
	_, ok := target.(*EmptyQueryError)
	return ok
}

//endregion

//region SelfTargetError

type SelfTargetError struct {
	Msg string
}

func (e *SelfTargetError) Error() string {
	return e.Msg
}

func (e *SelfTargetError) Is(target error) bool {
	_, ok := target.(*SelfTargetError)
	return ok
}

//endregion

//region UserNotFoundError

type UserNotFoundError struct {
	Msg string
}

func (e *UserNotFoundError) Error() string {
	return e.Msg
}

func (e *UserNotFoundError) Is(target error) bool {
	_, ok := target.(*UserNotFoundError)
	return ok
}

//endregion

//region NotAuthenticatedError

type NotAuthenticatedError struct {
	Msg string
}

func (e *NotAuthenticatedError) Error() string {
	return e.Msg
}

func (e *NotAuthenticatedError) Is(target error) bool {
	_, ok := target.(*NotAuthenticatedError)
	return ok
}

//endregion

//region NoRecipientError

type NoRecipientError struct {
	Msg string
}

func (e *NoRecipientError) Error() string {
	return e.Msg
}

func (e *NoRecipientError) Is(target error) bool {
	_, ok := target.(*NoRecipientError)
	return ok
}

//endregion

//region InvalidAmountError

type InvalidAmountError struct {
	Msg string
}

func (e *InvalidAmountError) Error() string {
	return e.Msg
}

func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

//endregion

//region NoItemSelectedError

type NoItemSelectedError struct {
	Msg string
}

func (e *NoItemSelectedError) Error() string {
	return e.Msg
}

func (e *NoItemSelectedError) Is(target error) bool {
	_, ok := target.(*NoItemSelectedError)
	return ok
}

//endregion

//region TransferRejectedError

type TransferRejectedError struct {
	Msg string
}

func (e *TransferRejectedError) Error() string {
	return e.Msg
}

func (e *TransferRejectedError) Is(target error) bool {
	_, ok := target.(*TransferRejectedError)
	return ok
}

//endregion

//region OperationInProgressError

type OperationInProgressError struct {
	Msg string
}

func (e *OperationInProgressError) Error() string {
	return e.Msg
}

func (e *OperationInProgressError) Is(target error) bool {
	_, ok := target.(*OperationInProgressError)
	return ok
}

//endregion

//region InvalidModeError

type InvalidModeError struct {
	Msg string
}

func (e *InvalidModeError) Error() string {
	return e.Msg
}

func (e *InvalidModeError) Is(target error) bool {
	_, ok := target.(*InvalidModeError)
	return ok
}

//endregion

//region NetworkFailureError

type NetworkFailureError struct {
	Msg string
	Err error
}

func (e *NetworkFailureError) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = "network failure"
	}

	if e.Err == nil {
		return msg
	}

	return msg + ": " + e.Err.Error()
}

func (e *NetworkFailureError) Is(target error) bool {
	_, ok := target.(*NetworkFailureError)
	return ok
}

func (e *NetworkFailureError) Unwrap() error {
	return e.Err
}

//endregion
