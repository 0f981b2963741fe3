package multipay

import (
	"strconv"

	"github.com/iov-one/vane"
)

// Event types emitted by this extension.
const (
	EventMultiAccountCreated         = "multipay.MultiAccountCreated"
	EventBalanceTransferredAndLocked = "multipay.BalanceTransferredAndLocked"
	EventCallExecuted                = "multipay.CallExecuted"
	EventFundsReverted               = "multipay.FundsReverted"
)

func timestamp(info vane.BlockInfo) []byte {
	return []byte(strconv.FormatInt(int64(info.UnixTime()), 10))
}

func multiAccountCreated(info vane.BlockInfo, escrow vane.Address) vane.Event {
	return vane.NewEvent(EventMultiAccountCreated).
		With("account_id", []byte(escrow.String())).
		With("timestamp", timestamp(info))
}

func balanceTransferredAndLocked(info vane.BlockInfo, escrow, from vane.Address) vane.Event {
	return vane.NewEvent(EventBalanceTransferredAndLocked).
		With("to_multi_id", []byte(escrow.String())).
		With("from", []byte(from.String())).
		With("timestamp", timestamp(info))
}

func callExecuted(info vane.BlockInfo, confirmed vane.Address) vane.Event {
	return vane.NewEvent(EventCallExecuted).
		With("multi_id", []byte(confirmed.String())).
		With("timestamp", timestamp(info))
}

func fundsReverted(info vane.BlockInfo, escrow, to vane.Address, reason RevertReason) vane.Event {
	return vane.NewEvent(EventFundsReverted).
		With("multi_id", []byte(escrow.String())).
		With("to", []byte(to.String())).
		With("reason", []byte(reason.String())).
		With("timestamp", timestamp(info))
}
