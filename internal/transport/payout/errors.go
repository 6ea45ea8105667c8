package payout

import "errors"

var ErrNoPayouts = errors.New("no payouts")
