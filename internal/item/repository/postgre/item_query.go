package postgre

import (
	"fmt"
	"strings"

	repo "github.com/msshishlin/shareit/internal/item/repository"
)

// buildListItemsQuery builds the WHERE clause + args for ListItems.
func buildListItemsQuery(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.OwnerID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.owner_id = $%d", idx))
		args = append(args, opt.OwnerID)
		idx++
	}
	if opt.RequestID != 0 {
		conditions = append(conditions, fmt.Sprintf("i.request_id = $%d", idx))
		args = append(args, opt.RequestID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListCommentsQuery builds the WHERE clause + args for ListComments.
func buildListCommentsQuery(opt repo.ListCommentsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ItemID != 0 {
		conditions = append(conditions, fmt.Sprintf("c.item_id = $%d", idx))
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
		conditions = append(conditions, fmt.Sprintf("c.item_id IN (%s)", strings.Join(placeholders, ", ")))
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
