package inventory

import "errors"

var (
	// ErrTicketNotFound: id không tồn tại hoặc vé đã bị vô hiệu hoá
	ErrTicketNotFound = errors.New("TICKET_NOT_FOUND")
	// ErrSoldOut: quota đã cạn tại thời điểm check
	ErrSoldOut = errors.New("TICKET_SOLD_OUT")
	// ErrUnavailable: store không xác nhận được thao tác (lỗi DB, timeout).
	// Không có decrement dở dang trên nhánh này nên caller retry được.
	ErrUnavailable = errors.New("STORE_UNAVAILABLE")
	// ErrEventNotFound: event cha không tồn tại
	ErrEventNotFound = errors.New("EVENT_NOT_FOUND")
)
