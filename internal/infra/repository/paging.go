package repository

import (
	repo "ecshop/internal/repository"

	"gorm.io/gorm"
)

// sortByをDBカラムに変換してORDER BY句を組み立てる。
// 未知のsortByはデフォルトカラムに落とす。
// idソート以外はid ascをタイブレーカーに付ける。
func orderClauses(q repo.PageQuery, columns map[string]string, defaultColumn string) []string {
	col, ok := columns[q.SortBy]
	if !ok {
		col = defaultColumn
	}

	dir := "asc"
	if q.SortOrder == "desc" {
		dir = "desc"
	}

	orders := []string{col + " " + dir}
	if col != "id" {
		orders = append(orders, "id asc")
	}
	return orders
}

// ORDER BY / OFFSET / LIMITを適用する
func applyPage(tx *gorm.DB, q repo.PageQuery, columns map[string]string, defaultColumn string) *gorm.DB {
	for _, order := range orderClauses(q, columns, defaultColumn) {
		tx = tx.Order(order)
	}
	return tx.
		Offset(q.Page * q.Size).
		Limit(q.Size)
}
