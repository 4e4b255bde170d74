package postgre

import (
	"fmt"
	"strings"

	"github.com/msshishlin/shareit/internal/model"
	repo "github.com/msshishlin/shareit/internal/booking/repository"
)

// buildListBookingsQuery builds the WHERE + ORDER + LIMIT + OFFSET
// clause for ListBookings. All non-zero filters are AND conditions.
func buildListBookingsQuery(opt repo.ListBookingsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.BookerID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.booker_id = $%d", idx))
		args = append(args, opt.BookerID)
		idx++
	}
	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.ItemID != 0 {
		conditions = append(conditions, fmt.Sprintf("b.item_id = $%d", idx))
		args = append(args, opt.ItemID)
		idx++
	}
	if len(opt.ItemIDs) > 0 {
		placeholders := make([]string, len(opt.ItemIDs))
		for i, id := range opt.ItemIDs {
			placeholders[i] = fmt.Sprintf("$%d", idx)
			args = append(args, id)
			idx++
		}
		conditions = append(conditions, fmt.Sprintf("b.item_id IN (%s)", strings.Join(placeholders, ", ")))
	}

	switch opt.State {
	case model.SearchStatePast:
		conditions = append(conditions, fmt.Sprintf("b.end_date < $%d", idx))
		args = append(args, opt.Now)
		idx++
	case model.SearchStateFuture:
		conditions = append(conditions, fmt.Sprintf("b.start_date > $%d", idx))
		args = append(args, opt.Now)
		idx++
	case model.SearchStateCurrent:
		// Inclusive span: the original's literal start>now AND end<now
		// condition can never hold; see DESIGN.md.
		conditions = append(conditions, fmt.Sprintf("b.start_date <= $%d AND b.end_date >= $%d", idx, idx+1))
		args = append(args, opt.Now, opt.Now)
		idx += 2
	case model.SearchStateWaiting, model.SearchStateRejected:
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", idx))
		args = append(args, string(opt.State))
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY b.start_date DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
