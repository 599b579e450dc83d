package main

import (
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}

// GetRows2MapArray rows of sheet keyed by the trimmed first row, short rows padded with ""
func GetRows2MapArray(xlsx *excelize.File, sheet string) (data []map[string]string) {
	rows := simpleUtil.HandleError(xlsx.GetRows(sheet))
	if len(rows) == 0 {
		return
	}
	title := rows[0]
	for i := range title {
		title[i] = strings.TrimSpace(title[i])
	}
	for _, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		item := make(map[string]string, len(title))
		for j, key := range title {
			if j < len(row) {
				item[key] = strings.TrimSpace(row[j])
			} else {
				item[key] = ""
			}
		}
		data = append(data, item)
	}
	return
}

func addStatusSheet(xlsx *excelize.File, results []designResult) {
	simpleUtil.HandleError(xlsx.NewSheet(statusSheet))
	simpleUtil.CheckErr(xlsx.SetSheetRow(statusSheet, "A1", &StatusTitle))
	for i, result := range results {
		line := result.statusLine()
		simpleUtil.CheckErr(xlsx.SetSheetRow(statusSheet, CoordinatesToCellName(1, i+2), &line))
	}
}
