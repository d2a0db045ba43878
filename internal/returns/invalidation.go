package returns

import (
	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/querykey"
)

type Command string

const (
	CmdInitiateReturn       Command = "initiate_return"
	CmdConfirmReturnRequest Command = "confirm_return_request"
	CmdCancelReturnRequest  Command = "cancel_return_request"
	CmdAddReturnItems       Command = "add_return_items"
	CmdUpdateReturnItem     Command = "update_return_item"
	CmdRemoveReturnItem     Command = "remove_return_item"
	CmdUpdateReturn         Command = "update_return"
	CmdAddReturnShipping    Command = "add_return_shipping"
	CmdUpdateReturnShipping Command = "update_return_shipping"
	CmdDeleteReturnShipping Command = "delete_return_shipping"
	CmdInitiateReceive      Command = "initiate_receive"
	CmdAddReceiveItems      Command = "add_receive_items"
	CmdUpdateReceiveItem    Command = "update_receive_item"
	CmdRemoveReceiveItem    Command = "remove_receive_item"
	CmdAddDismissItems      Command = "add_dismiss_items"
	CmdUpdateDismissItem    Command = "update_dismiss_item"
	CmdRemoveDismissItem    Command = "remove_dismiss_item"
	CmdConfirmReceive       Command = "confirm_receive"
	CmdCancelReceive        Command = "cancel_receive"
	CmdRefundPayment        Command = "refund_payment"
)

// Invalidation is one key group to mark stale after a successful command.
type Invalidation struct {
	Key     querykey.Key
	Refetch cache.RefetchType
}

func stale(k querykey.Key) Invalidation { return Invalidation{Key: k} }

func forced(k querykey.Key) Invalidation { return Invalidation{Key: k, Refetch: cache.RefetchAll} }

// Invalidations returns the key groups a successful cmd invalidates, in
// order. The order preview is force-refetched after both cancel commands
// because the engine can serve the pre-cancel preview on the next read.
func Invalidations(cmd Command, orderID string) []Invalidation {
	preview := querykey.Orders.Preview(orderID)

	switch cmd {
	case CmdInitiateReturn, CmdInitiateReceive:
		return []Invalidation{
			stale(querykey.Orders.Details()),
			stale(querykey.Orders.Lists()),
			stale(preview),
		}
	case CmdConfirmReturnRequest, CmdConfirmReceive:
		return []Invalidation{
			stale(querykey.Orders.Details()),
			stale(querykey.Orders.Lists()),
			stale(preview),
			stale(querykey.Returns.Details()),
			stale(querykey.Returns.Lists()),
		}
	case CmdCancelReturnRequest, CmdCancelReceive:
		return []Invalidation{
			stale(querykey.Orders.Details()),
			stale(querykey.Orders.Lists()),
			forced(preview),
			stale(querykey.Returns.Details()),
			stale(querykey.Returns.Lists()),
		}
	case CmdAddReturnItems, CmdUpdateReturnItem, CmdRemoveReturnItem,
		CmdUpdateReturn,
		CmdAddReturnShipping, CmdUpdateReturnShipping, CmdDeleteReturnShipping,
		CmdAddReceiveItems, CmdUpdateReceiveItem, CmdRemoveReceiveItem,
		CmdAddDismissItems, CmdUpdateDismissItem, CmdRemoveDismissItem:
		return []Invalidation{stale(preview)}
	case CmdRefundPayment:
		return []Invalidation{
			stale(querykey.Payments.Details()),
			stale(querykey.Orders.Details()),
			stale(querykey.Orders.Lists()),
		}
	}
	return nil
}
