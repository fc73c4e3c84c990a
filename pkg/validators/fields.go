package validators

import "errors"

var (
	ErrUsernameEmpty = errors.New("no username provided")
	ErrReviewEmpty   = errors.New("review can't be empty")
)

func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	return nil
}

func ReviewValidator(r string) error {
	if r == "" {
		return ErrReviewEmpty
	}

	return nil
}
